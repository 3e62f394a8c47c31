package challenge_sync

import (
	"context"
	"errors"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the gorm backed Repository
type Store struct {
	log *logrus.Entry
	db  *gorm.DB
}

func NewStore(db *gorm.DB) (self *Store) {
	self = new(Store)
	self.log = logger.NewSublogger("store")
	self.db = db
	return
}

func (self *Store) FindActiveChallenge(ctx context.Context) (out *model.Challenge, err error) {
	var challenge model.Challenge
	err = self.db.WithContext(ctx).
		Where("active = ?", true).
		First(&challenge).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return
	}
	return &challenge, nil
}

func (self *Store) FindChallenge(ctx context.Context, createdTxHash string) (out *model.Challenge, err error) {
	var challenge model.Challenge
	err = self.db.WithContext(ctx).
		Where("created_tx_hash = ?", createdTxHash).
		First(&challenge).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return
	}
	return &challenge, nil
}

func (self *Store) FindParticipant(ctx context.Context, challengeId, address string) (out *model.ChallengeParticipant, err error) {
	var participant model.ChallengeParticipant
	err = self.db.WithContext(ctx).
		Where("challenge_id = ? AND address = ?", challengeId, address).
		First(&participant).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return
	}
	return &participant, nil
}

func (self *Store) SaveChallenge(ctx context.Context, challenge *model.Challenge) (err error) {
	return self.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(challenge).
		Error
}

func (self *Store) SaveParticipant(ctx context.Context, participant *model.ChallengeParticipant) (err error) {
	return self.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(participant).
		Error
}
