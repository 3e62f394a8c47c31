package challenge_sync

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
)

func TestFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(FetcherTestSuite))
}

type FetcherTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *FetcherTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *FetcherTestSuite) newFetcher(gatewayUrl string) *Fetcher {
	conf := &config.Config{
		Challenge: config.Challenge{
			ContractAddress: "erd1contract",
			FetchSize:       25,
		},
		Gateway: config.Gateway{
			Url:               gatewayUrl,
			RequestTimeout:    time.Second * 5,
			RequestsPerSecond: 100,
		},
	}
	return NewFetcher(conf).WithClient(multiversx.NewClient(conf))
}

func gatewayStub(t *testing.T, status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/erd1contract/transactions", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("size"))
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "true", r.URL.Query().Get("withScResults"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func (s *FetcherTestSuite) TestSortsAscendingAndFilters() {
	// Newest first, one foreign receiver, one record without a hash,
	// one record without a timestamp, mixed hash and timestamp aliases
	server := gatewayStub(s.T(), http.StatusOK, `[
		{"txHash": "c", "receiver": "erd1contract", "timestamp": 300},
		{"hash": "b", "receiver": "ERD1CONTRACT", "timestampMs": 200000},
		{"txHash": "other", "receiver": "erd1somebody", "timestamp": 250},
		{"receiver": "erd1contract", "timestamp": 150},
		{"txHash": "a", "receiver": "erd1contract"}
	]`)
	defer server.Close()

	out, err := s.newFetcher(server.URL).Fetch(s.ctx)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), out, 3)

	assert.Equal(s.T(), "a", out[0].TxHash)
	assert.False(s.T(), out[0].HasTimestamp)
	assert.Equal(s.T(), "b", out[1].TxHash)
	assert.Equal(s.T(), int64(200000), out[1].TimestampMs)
	assert.Equal(s.T(), "c", out[2].TxHash)
	assert.Equal(s.T(), int64(300000), out[2].TimestampMs)
}

func (s *FetcherTestSuite) TestEmptyBatch() {
	server := gatewayStub(s.T(), http.StatusOK, `[]`)
	defer server.Close()

	out, err := s.newFetcher(server.URL).Fetch(s.ctx)
	assert.NoError(s.T(), err)
	assert.Empty(s.T(), out)
}

func (s *FetcherTestSuite) TestUpstreamErrorSurfacesAsFetchError() {
	server := gatewayStub(s.T(), http.StatusBadGateway, `{"error": "shard unavailable"}`)
	defer server.Close()

	_, err := s.newFetcher(server.URL).Fetch(s.ctx)
	assert.Error(s.T(), err)

	var fetchErr *multiversx.FetchError
	assert.True(s.T(), errors.As(err, &fetchErr))
	assert.Equal(s.T(), http.StatusBadGateway, fetchErr.StatusCode)
	assert.Contains(s.T(), fetchErr.Body, "shard unavailable")
}

func (s *FetcherTestSuite) TestMalformedPayloadSurfacesAsFetchError() {
	server := gatewayStub(s.T(), http.StatusOK, `{"not": "an array"}`)
	defer server.Close()

	_, err := s.newFetcher(server.URL).Fetch(s.ctx)
	assert.Error(s.T(), err)

	var fetchErr *multiversx.FetchError
	assert.True(s.T(), errors.As(err, &fetchErr))
}
