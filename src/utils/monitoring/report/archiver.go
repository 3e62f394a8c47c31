package report

import (
	"go.uber.org/atomic"
)

type ArchiverErrors struct {
	FetchErrors       atomic.Uint64 `json:"fetch"`
	NormalizerDropped atomic.Uint64 `json:"normalizer_dropped"`
	DecodeErrors      atomic.Uint64 `json:"decode"`
	HandlerErrors     atomic.Uint64 `json:"handler"`
}

type ArchiverState struct {
	CyclesFinished           atomic.Uint64 `json:"cycles_finished"`
	CyclesSkipped            atomic.Uint64 `json:"cycles_skipped"`
	TransactionsFetched      atomic.Uint64 `json:"transactions_fetched"`
	TransactionsProcessed    atomic.Uint64 `json:"transactions_processed"`
	TransactionsDeduplicated atomic.Uint64 `json:"transactions_deduplicated"`
	CallsIgnored             atomic.Uint64 `json:"calls_ignored"`
	ChallengesCreated        atomic.Uint64 `json:"challenges_created"`
	ChallengesClosed         atomic.Uint64 `json:"challenges_closed"`
	ParticipantsJoined       atomic.Uint64 `json:"participants_joined"`
	WorkoutsRecorded         atomic.Uint64 `json:"workouts_recorded"`

	AverageTransactionsProcessedPerMinute atomic.Float64 `json:"average_transactions_processed_per_minute"`

	// High-water-mark of the dedup window, unix milliseconds
	LastProcessedTimestampMs atomic.Int64 `json:"last_processed_timestamp_ms"`

	// Unix seconds of the last finished cycle, successful or not
	LastCycleTimestamp atomic.Int64 `json:"last_cycle_timestamp"`
}

type ArchiverReport struct {
	State  ArchiverState  `json:"state"`
	Errors ArchiverErrors `json:"errors"`
}
