package config

import (
	"time"

	"github.com/spf13/viper"
)

type Gateway struct {
	// Base URL of the ledger gateway API
	Url string

	// Timeout of a single gateway request
	RequestTimeout time.Duration

	// Rate limit for outgoing gateway requests
	RequestsPerSecond float64

	// How long listed transactions are served from the cache
	ListingCacheTtl time.Duration

	// How many transactions the listing endpoint returns
	ListingSize int
}

func setGatewayDefaults() {
	viper.SetDefault("Gateway.Url", "https://api.multiversx.com")
	viper.SetDefault("Gateway.RequestTimeout", "30s")
	viper.SetDefault("Gateway.RequestsPerSecond", "5")
	viper.SetDefault("Gateway.ListingCacheTtl", "10s")
	viper.SetDefault("Gateway.ListingSize", "25")
}
