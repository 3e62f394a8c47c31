package challenge_sync

import (
	"context"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/model"
)

// Repository is the persistence boundary of the projector.
// Find methods return nil without an error when there is no match.
// Each handler's reads and writes form their own unit of work,
// no transaction spans multiple handler invocations.
type Repository interface {
	FindActiveChallenge(ctx context.Context) (*model.Challenge, error)
	FindChallenge(ctx context.Context, createdTxHash string) (*model.Challenge, error)
	FindParticipant(ctx context.Context, challengeId, address string) (*model.ChallengeParticipant, error)
	SaveChallenge(ctx context.Context, challenge *model.Challenge) error
	SaveParticipant(ctx context.Context, participant *model.ChallengeParticipant) error
}
