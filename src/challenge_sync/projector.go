package challenge_sync

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/model"
	monitor_archiver "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/archiver"

	"github.com/sirupsen/logrus"
)

// Projector consumes ordered normalized transactions, decodes each one and
// applies the matching effect against the persistence boundary.
//
// Every handler is idempotent against replay of the same transaction hash.
// The dedup window is memory only, a restart reprocesses recent
// transactions and the handlers must absorb that.
type Projector struct {
	config  *config.Config
	log     *logrus.Entry
	repo    Repository
	window  *DedupWindow
	monitor *monitor_archiver.Monitor
}

func NewProjector(config *config.Config) (self *Projector) {
	self = new(Projector)
	self.config = config
	self.log = logger.NewSublogger("projector")
	self.window = NewDedupWindow(config.Challenge.DedupCapacity)
	return
}

func (self *Projector) WithRepository(v Repository) *Projector {
	self.repo = v
	return self
}

func (self *Projector) WithMonitor(monitor *monitor_archiver.Monitor) *Projector {
	self.monitor = monitor
	return self
}

// Window exposes the dedup window, mutated only by Project on the single
// active cycle.
func (self *Projector) Window() *DedupWindow {
	return self.window
}

// Project applies a time ordered batch. A failing handler does not abort
// the batch: the error is logged, the transaction is still marked
// processed and the loop moves on. Forward progress is preferred over
// guaranteed delivery here.
func (self *Projector) Project(ctx context.Context, txs []NormalizedTransaction) {
	for i := range txs {
		tx := &txs[i]

		if !self.window.IsNovel(tx) {
			if self.monitor != nil {
				self.monitor.Report.Archiver.State.TransactionsDeduplicated.Inc()
			}
			continue
		}

		err := self.processTransaction(ctx, tx)
		if err != nil {
			self.log.WithError(err).WithField("txHash", tx.TxHash).
				Error("Failed to apply transaction, marking processed anyway")
			if self.monitor != nil {
				self.monitor.Report.Archiver.Errors.HandlerErrors.Inc()
			}
		}

		self.window.MarkProcessed(tx)
		if self.monitor != nil {
			self.monitor.Report.Archiver.State.TransactionsProcessed.Inc()
			if hwm, ok := self.window.LatestTimestampMs(); ok {
				self.monitor.Report.Archiver.State.LastProcessedTimestampMs.Store(hwm)
			}
		}
	}
}

func (self *Projector) processTransaction(ctx context.Context, tx *NormalizedTransaction) (err error) {
	call, ok := DecodeCallData(tx.Data)
	if !ok {
		// Not a relevant call
		if self.monitor != nil {
			self.monitor.Report.Archiver.Errors.DecodeErrors.Inc()
		}
		return nil
	}

	switch call.Kind {
	case CallCreateChallenge:
		return self.applyCreateChallenge(ctx, tx, &call)
	case CallJoinChallenge:
		return self.applyJoinChallenge(ctx, tx)
	case CallSubmitWorkout:
		return self.applySubmitWorkout(ctx, tx, &call)
	case CallCloseChallenge:
		return self.applyCloseChallenge(ctx, tx)
	case CallUnknown:
		if self.monitor != nil {
			self.monitor.Report.Archiver.State.CallsIgnored.Inc()
		}
		return nil
	default:
		return fmt.Errorf("unhandled call kind: %d", call.Kind)
	}
}

func (self *Projector) applyCreateChallenge(ctx context.Context, tx *NormalizedTransaction, call *DecodedCall) (err error) {
	if len(call.Args) < 2 {
		self.log.WithField("txHash", tx.TxHash).Warn("createChallenge without start/end arguments, skipping")
		return nil
	}

	start, okStart := parseHexArg(call.Args[0])
	end, okEnd := parseHexArg(call.Args[1])
	if !okStart || !okEnd {
		self.log.WithField("txHash", tx.TxHash).Warn("createChallenge with unparseable start/end, skipping")
		return nil
	}

	// Replay guard: the challenge is keyed by this very hash
	existing, err := self.repo.FindChallenge(ctx, tx.TxHash)
	if err != nil {
		return
	}
	if existing != nil {
		self.log.WithField("txHash", tx.TxHash).Debug("Challenge already recorded, skipping")
		return nil
	}

	// A new challenge supersedes whatever is currently active
	active, err := self.repo.FindActiveChallenge(ctx)
	if err != nil {
		return
	}
	if active != nil {
		active.Active = false
		active.LastUpdatedTxHash = tx.TxHash
		err = self.repo.SaveChallenge(ctx, active)
		if err != nil {
			return
		}
	}

	challenge := &model.Challenge{
		CreatedTxHash:     tx.TxHash,
		Creator:           tx.Sender,
		StartTimestamp:    saturateInt64(start),
		EndTimestamp:      saturateInt64(end),
		RewardBudget:      hexArgOrZero(call.Args, 2),
		RewardPerPoint:    hexArgOrZero(call.Args, 3),
		Active:            true,
		LastUpdatedTxHash: tx.TxHash,
		OpenedAt:          txTimestamp(tx),
	}

	err = self.repo.SaveChallenge(ctx, challenge)
	if err != nil {
		return
	}

	self.log.WithField("txHash", tx.TxHash).WithField("creator", tx.Sender).Info("Challenge created")
	if self.monitor != nil {
		self.monitor.Report.Archiver.State.ChallengesCreated.Inc()
	}
	return
}

func (self *Projector) applyCloseChallenge(ctx context.Context, tx *NormalizedTransaction) (err error) {
	active, err := self.repo.FindActiveChallenge(ctx)
	if err != nil {
		return
	}
	if active == nil {
		self.log.WithField("txHash", tx.TxHash).Warn("closeChallenge without an active challenge, skipping")
		return nil
	}

	// Replay guard
	if active.LastUpdatedTxHash == tx.TxHash {
		self.log.WithField("txHash", tx.TxHash).Debug("Challenge already closed by this transaction, skipping")
		return nil
	}

	active.Active = false
	active.ClosedTxHash = sql.NullString{String: tx.TxHash, Valid: true}
	active.LastUpdatedTxHash = tx.TxHash
	active.ClosedAt = txTimestamp(tx)

	err = self.repo.SaveChallenge(ctx, active)
	if err != nil {
		return
	}

	self.log.WithField("txHash", tx.TxHash).WithField("challengeId", active.CreatedTxHash).Info("Challenge closed")
	if self.monitor != nil {
		self.monitor.Report.Archiver.State.ChallengesClosed.Inc()
	}
	return
}

func (self *Projector) applyJoinChallenge(ctx context.Context, tx *NormalizedTransaction) (err error) {
	if tx.Sender == "" {
		self.log.WithField("txHash", tx.TxHash).Warn("joinChallenge without a sender, skipping")
		return nil
	}

	active, err := self.repo.FindActiveChallenge(ctx)
	if err != nil {
		return
	}
	if active == nil {
		self.log.WithField("txHash", tx.TxHash).Warn("joinChallenge without an active challenge, skipping")
		return nil
	}

	participant, err := self.repo.FindParticipant(ctx, active.CreatedTxHash, tx.Sender)
	if err != nil {
		return
	}

	// Replay guard
	if participant != nil && participant.JoinTxHash == tx.TxHash {
		self.log.WithField("txHash", tx.TxHash).Debug("Participant already joined by this transaction, skipping")
		return nil
	}

	if participant == nil {
		participant = &model.ChallengeParticipant{
			ChallengeId: active.CreatedTxHash,
			Address:     tx.Sender,
			Score:       "0",
		}
	}

	// Pre-existing score and update tracking fields are preserved
	participant.JoinTxHash = tx.TxHash
	participant.JoinedAt = txTimestamp(tx)

	err = self.repo.SaveParticipant(ctx, participant)
	if err != nil {
		return
	}

	self.log.WithField("txHash", tx.TxHash).WithField("address", tx.Sender).Info("Participant joined")
	if self.monitor != nil {
		self.monitor.Report.Archiver.State.ParticipantsJoined.Inc()
	}
	return
}

func (self *Projector) applySubmitWorkout(ctx context.Context, tx *NormalizedTransaction, call *DecodedCall) (err error) {
	if tx.Sender == "" {
		self.log.WithField("txHash", tx.TxHash).Warn("submitWorkout without a sender, skipping")
		return nil
	}

	active, err := self.repo.FindActiveChallenge(ctx)
	if err != nil {
		return
	}
	if active == nil {
		self.log.WithField("txHash", tx.TxHash).Warn("submitWorkout without an active challenge, skipping")
		return nil
	}

	if len(call.Args) < 1 {
		self.log.WithField("txHash", tx.TxHash).Warn("submitWorkout without a points argument, skipping")
		return nil
	}
	points, ok := parseHexArg(call.Args[0])
	if !ok {
		self.log.WithField("txHash", tx.TxHash).Warn("submitWorkout with unparseable points, skipping")
		return nil
	}

	participant, err := self.repo.FindParticipant(ctx, active.CreatedTxHash, tx.Sender)
	if err != nil {
		return
	}

	// Replay guard
	if participant != nil && participant.LastUpdateTxHash.Valid && participant.LastUpdateTxHash.String == tx.TxHash {
		self.log.WithField("txHash", tx.TxHash).Debug("Workout already recorded by this transaction, skipping")
		return nil
	}

	// A workout without a prior explicit join still creates the
	// participant, starting from a zero score
	if participant == nil {
		participant = &model.ChallengeParticipant{
			ChallengeId: active.CreatedTxHash,
			Address:     tx.Sender,
			Score:       "0",
		}
	}

	score, err := parseScore(participant.Score)
	if err != nil {
		return
	}

	participant.Score = score.Add(score, points).String()
	participant.LastUpdateTxHash = sql.NullString{String: tx.TxHash, Valid: true}
	participant.LastScoreChangeAt = txTimestamp(tx)

	err = self.repo.SaveParticipant(ctx, participant)
	if err != nil {
		return
	}

	self.log.WithField("txHash", tx.TxHash).
		WithField("address", tx.Sender).
		WithField("points", points.String()).
		Info("Workout recorded")
	if self.monitor != nil {
		self.monitor.Report.Archiver.State.WorkoutsRecorded.Inc()
	}
	return
}

func hexArgOrZero(args []string, index int) string {
	if index >= len(args) {
		return "0"
	}
	n, ok := parseHexArg(args[index])
	if !ok {
		return "0"
	}
	return n.String()
}

func parseScore(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("corrupted score value: %q", s)
	}
	return n, nil
}

func txTimestamp(tx *NormalizedTransaction) sql.NullInt64 {
	if !tx.HasTimestamp {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: tx.TimestampMs, Valid: true}
}
