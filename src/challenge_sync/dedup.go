package challenge_sync

import (
	"github.com/gammazero/deque"
)

// DedupWindow remembers recently processed transaction hashes plus
// a high-water-mark timestamp. The window lives only as long as the
// process, correctness across restarts relies on handler idempotency.
type DedupWindow struct {
	capacity int

	// FIFO of hashes, oldest in front. Membership checks go through seen.
	order *deque.Deque[string]
	seen  map[string]struct{}

	// Largest timestamp among all processed transactions.
	// Second line of defense once a hash ages out of the bounded set.
	latestTimestampMs int64
	hasLatest         bool
}

const defaultDedupCapacity = 500

func NewDedupWindow(capacity int) (self *DedupWindow) {
	if capacity <= 0 {
		capacity = defaultDedupCapacity
	}
	self = new(DedupWindow)
	self.capacity = capacity
	self.order = deque.New[string](capacity)
	self.seen = make(map[string]struct{}, capacity)
	return
}

// IsNovel reports whether the transaction should reach the effect handlers
func (self *DedupWindow) IsNovel(tx *NormalizedTransaction) bool {
	if _, ok := self.seen[tx.TxHash]; ok {
		return false
	}
	if self.hasLatest && tx.OrderingTimestamp() < self.latestTimestampMs {
		return false
	}
	return true
}

// MarkProcessed records the transaction, evicting the oldest hash
// once the capacity is exceeded. Called whether or not the handler
// succeeded.
func (self *DedupWindow) MarkProcessed(tx *NormalizedTransaction) {
	if _, ok := self.seen[tx.TxHash]; !ok {
		self.order.PushBack(tx.TxHash)
		self.seen[tx.TxHash] = struct{}{}

		if self.order.Len() > self.capacity {
			evicted := self.order.PopFront()
			delete(self.seen, evicted)
		}
	}

	if tx.HasTimestamp && (!self.hasLatest || tx.TimestampMs > self.latestTimestampMs) {
		self.latestTimestampMs = tx.TimestampMs
		self.hasLatest = true
	}
}

// LatestTimestampMs returns the high-water-mark, if any transaction
// with a timestamp has been processed yet.
func (self *DedupWindow) LatestTimestampMs() (int64, bool) {
	return self.latestTimestampMs, self.hasLatest
}

// Len returns the number of hashes currently remembered
func (self *DedupWindow) Len() int {
	return self.order.Len()
}
