package challenge_sync

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestDedupTestSuite(t *testing.T) {
	suite.Run(t, new(DedupTestSuite))
}

type DedupTestSuite struct {
	suite.Suite

	window *DedupWindow
}

func (s *DedupTestSuite) SetupTest() {
	s.window = NewDedupWindow(500)
}

func stampedTx(hash string, timestampMs int64) *NormalizedTransaction {
	return &NormalizedTransaction{
		TxHash:       hash,
		TimestampMs:  timestampMs,
		HasTimestamp: true,
	}
}

func (s *DedupTestSuite) TestFreshTransactionIsNovel() {
	assert.True(s.T(), s.window.IsNovel(stampedTx("a", 100)))
}

func (s *DedupTestSuite) TestProcessedHashIsNotNovel() {
	tx := stampedTx("a", 100)
	s.window.MarkProcessed(tx)
	assert.False(s.T(), s.window.IsNovel(tx))
}

func (s *DedupTestSuite) TestOlderTimestampIsNotNovel() {
	s.window.MarkProcessed(stampedTx("a", 100))
	assert.False(s.T(), s.window.IsNovel(stampedTx("b", 99)))
	assert.True(s.T(), s.window.IsNovel(stampedTx("c", 100)))
	assert.True(s.T(), s.window.IsNovel(stampedTx("d", 101)))
}

func (s *DedupTestSuite) TestMissingTimestampOrdersBeforeWatermark() {
	missing := &NormalizedTransaction{TxHash: "a"}
	assert.True(s.T(), s.window.IsNovel(missing))
	s.window.MarkProcessed(missing)

	_, hasLatest := s.window.LatestTimestampMs()
	assert.False(s.T(), hasLatest)

	s.window.MarkProcessed(stampedTx("b", 100))
	assert.False(s.T(), s.window.IsNovel(&NormalizedTransaction{TxHash: "c"}))
}

func (s *DedupTestSuite) TestWatermarkNeverDecreases() {
	s.window.MarkProcessed(stampedTx("a", 100))
	s.window.MarkProcessed(stampedTx("b", 50))

	latest, hasLatest := s.window.LatestTimestampMs()
	assert.True(s.T(), hasLatest)
	assert.Equal(s.T(), int64(100), latest)
}

func (s *DedupTestSuite) TestReprocessingDoesNotGrowWindow() {
	tx := stampedTx("a", 100)
	s.window.MarkProcessed(tx)
	s.window.MarkProcessed(tx)
	assert.Equal(s.T(), 1, s.window.Len())
}

func (s *DedupTestSuite) TestEvictedHashStillBlockedByWatermark() {
	for i := 0; i < 501; i++ {
		s.window.MarkProcessed(stampedTx(fmt.Sprintf("tx-%d", i), int64(i)))
	}
	assert.Equal(s.T(), 500, s.window.Len())

	// tx-0 aged out of the membership set, the watermark still rejects it
	evicted := stampedTx("tx-0", 0)
	assert.False(s.T(), s.window.IsNovel(evicted))

	// tx-1 is still in the set
	assert.False(s.T(), s.window.IsNovel(stampedTx("tx-1", 1)))
}

func (s *DedupTestSuite) TestZeroCapacityFallsBackToDefault() {
	window := NewDedupWindow(0)
	window.MarkProcessed(stampedTx("a", 100))
	assert.Equal(s.T(), 1, window.Len())
	assert.False(s.T(), window.IsNovel(stampedTx("a", 100)))
}
