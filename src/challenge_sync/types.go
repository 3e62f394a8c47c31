package challenge_sync

import (
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
)

// NormalizedTransaction is the canonical form of one gateway transaction record.
// Immutable once constructed.
type NormalizedTransaction struct {
	TxHash   string
	Sender   string
	Receiver string

	// Base64 encoded call data, may be empty
	Data string

	TimestampMs  int64
	HasTimestamp bool

	// Original record, kept for diagnostics only
	Raw multiversx.RawTransaction
}

// Timestamp used for ordering and the dedup gate.
// Transactions without a timestamp sort first.
func (self *NormalizedTransaction) OrderingTimestamp() int64 {
	if !self.HasTimestamp {
		return 0
	}
	return self.TimestampMs
}
