package config

import (
	"time"

	"github.com/spf13/viper"
)

type Challenge struct {
	// Address of the watched fitness challenge smart contract
	ContractAddress string

	// How many of the most recent transactions are downloaded per cycle
	FetchSize int

	// Time between ingestion cycles. Non-positive value disables the repeating timer.
	PollIntervalMs int64

	// Max number of transaction hashes remembered by the dedup window
	DedupCapacity int
}

func (self *Challenge) PollInterval() time.Duration {
	return time.Duration(self.PollIntervalMs) * time.Millisecond
}

func setChallengeDefaults() {
	viper.SetDefault("Challenge.ContractAddress", "")
	viper.SetDefault("Challenge.FetchSize", "25")
	viper.SetDefault("Challenge.PollIntervalMs", "30000")
	viper.SetDefault("Challenge.DedupCapacity", "500")
}
