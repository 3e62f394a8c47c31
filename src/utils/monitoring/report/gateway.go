package report

import (
	"go.uber.org/atomic"
)

type GatewayErrors struct {
	UpstreamErrors atomic.Uint64 `json:"upstream"`
}

type GatewayState struct {
	CacheHits            atomic.Uint64 `json:"cache_hits"`
	CacheMisses          atomic.Uint64 `json:"cache_misses"`
	TransactionsReturned atomic.Uint64 `json:"transactions_returned"`
}

type GatewayReport struct {
	State  GatewayState  `json:"state"`
	Errors GatewayErrors `json:"errors"`
}
