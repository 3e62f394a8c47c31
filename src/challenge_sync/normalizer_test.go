package challenge_sync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
)

func TestNormalizerTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerTestSuite))
}

type NormalizerTestSuite struct {
	suite.Suite
}

func (s *NormalizerTestSuite) TestNormalizesCanonicalRecord() {
	tx, ok := Normalize(multiversx.RawTransaction{
		"txHash":      "abc",
		"sender":      "erd1sender",
		"receiver":    "erd1contract",
		"data":        "Y3JlYXRlQ2hhbGxlbmdl",
		"timestampMs": float64(1700000000000),
	})
	assert.True(s.T(), ok)
	assert.Equal(s.T(), "abc", tx.TxHash)
	assert.Equal(s.T(), "erd1sender", tx.Sender)
	assert.Equal(s.T(), "erd1contract", tx.Receiver)
	assert.Equal(s.T(), "Y3JlYXRlQ2hhbGxlbmdl", tx.Data)
	assert.True(s.T(), tx.HasTimestamp)
	assert.Equal(s.T(), int64(1700000000000), tx.TimestampMs)
}

func (s *NormalizerTestSuite) TestHashAliasOrder() {
	tx, ok := Normalize(multiversx.RawTransaction{
		"hash":       "from-hash",
		"identifier": "from-identifier",
	})
	assert.True(s.T(), ok)
	assert.Equal(s.T(), "from-hash", tx.TxHash)

	tx, ok = Normalize(multiversx.RawTransaction{"_id": "mongo-id"})
	assert.True(s.T(), ok)
	assert.Equal(s.T(), "mongo-id", tx.TxHash)
}

func (s *NormalizerTestSuite) TestDropsRecordWithoutHash() {
	_, ok := Normalize(multiversx.RawTransaction{"sender": "erd1sender"})
	assert.False(s.T(), ok)

	_, ok = Normalize(multiversx.RawTransaction{"txHash": ""})
	assert.False(s.T(), ok)

	_, ok = Normalize(multiversx.RawTransaction{"txHash": 12345})
	assert.False(s.T(), ok)
}

func (s *NormalizerTestSuite) TestSecondTimestampsScaleToMilliseconds() {
	tx, ok := Normalize(multiversx.RawTransaction{
		"txHash":    "abc",
		"timestamp": float64(1700000000),
	})
	assert.True(s.T(), ok)
	assert.True(s.T(), tx.HasTimestamp)
	assert.Equal(s.T(), int64(1700000000000), tx.TimestampMs)
}

func (s *NormalizerTestSuite) TestMillisecondFieldWinsOverSeconds() {
	tx, ok := Normalize(multiversx.RawTransaction{
		"txHash":       "abc",
		"timestamp_ms": "1700000000500",
		"timestamp":    float64(1700000000),
	})
	assert.True(s.T(), ok)
	assert.Equal(s.T(), int64(1700000000500), tx.TimestampMs)
}

func (s *NormalizerTestSuite) TestTimestampRepresentations() {
	for _, value := range []interface{}{
		float64(1700000000),
		int64(1700000000),
		1700000000,
		json.Number("1700000000"),
		"1700000000",
	} {
		tx, ok := Normalize(multiversx.RawTransaction{
			"txHash":    "abc",
			"timestamp": value,
		})
		assert.True(s.T(), ok)
		assert.Equal(s.T(), int64(1700000000000), tx.TimestampMs)
	}
}

func (s *NormalizerTestSuite) TestMissingTimestampOrdersFirst() {
	tx, ok := Normalize(multiversx.RawTransaction{
		"txHash":    "abc",
		"timestamp": "not-a-number",
	})
	assert.True(s.T(), ok)
	assert.False(s.T(), tx.HasTimestamp)
	assert.Equal(s.T(), int64(0), tx.OrderingTimestamp())
}
