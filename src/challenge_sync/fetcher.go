package challenge_sync

import (
	"context"
	"sort"
	"strings"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"
	monitor_archiver "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/archiver"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"

	"github.com/sirupsen/logrus"
)

// Fetcher downloads the watched contract's most recent transactions and
// normalizes them into chronological order. The gateway returns newest
// first, the projector needs oldest first.
type Fetcher struct {
	config  *config.Config
	log     *logrus.Entry
	client  *multiversx.Client
	monitor *monitor_archiver.Monitor
}

func NewFetcher(config *config.Config) (self *Fetcher) {
	self = new(Fetcher)
	self.config = config
	self.log = logger.NewSublogger("fetcher")
	return
}

func (self *Fetcher) WithClient(v *multiversx.Client) *Fetcher {
	self.client = v
	return self
}

func (self *Fetcher) WithMonitor(monitor *monitor_archiver.Monitor) *Fetcher {
	self.monitor = monitor
	return self
}

// Fetch returns the contract's transactions sorted ascending by timestamp.
// Gateway failures surface as *multiversx.FetchError and abort the cycle,
// the next scheduled cycle retries naturally.
func (self *Fetcher) Fetch(ctx context.Context) (out []NormalizedTransaction, err error) {
	contract := self.config.Challenge.ContractAddress

	raw, err := self.client.GetAccountTransactions(ctx, contract, self.config.Challenge.FetchSize)
	if err != nil {
		return
	}

	if self.monitor != nil {
		self.monitor.Report.Archiver.State.TransactionsFetched.Add(uint64(len(raw)))
	}

	for _, record := range raw {
		tx, ok := Normalize(record)
		if !ok {
			self.log.WithField("record", record).Warn("Dropping transaction without a hash")
			if self.monitor != nil {
				self.monitor.Report.Archiver.Errors.NormalizerDropped.Inc()
			}
			continue
		}

		// Only calls made against the watched contract matter
		if !strings.EqualFold(tx.Receiver, contract) {
			continue
		}

		out = append(out, tx)
	}

	// Ascending order, so effects are applied in chronological sequence.
	// Transactions without a timestamp sort first.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderingTimestamp() < out[j].OrderingTimestamp()
	})

	return
}
