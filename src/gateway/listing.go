package gateway

import (
	"context"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"
	monitor_gateway "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/gateway"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const listingCacheKey = "recent_transactions"

// Listing is a cache-or-fetch wrapper over the gateway's transaction
// history. Responses are shared between callers for a short TTL so the
// upstream is not hammered by the read API.
type Listing struct {
	config  *config.Config
	log     *logrus.Entry
	client  *multiversx.Client
	cache   *cache.Cache
	monitor *monitor_gateway.Monitor
}

func NewListing(config *config.Config) (self *Listing) {
	self = new(Listing)
	self.config = config
	self.log = logger.NewSublogger("listing")
	self.cache = cache.New(config.Gateway.ListingCacheTtl, 2*config.Gateway.ListingCacheTtl)
	return
}

func (self *Listing) WithClient(v *multiversx.Client) *Listing {
	self.client = v
	return self
}

func (self *Listing) WithMonitor(monitor *monitor_gateway.Monitor) *Listing {
	self.monitor = monitor
	return self
}

func (self *Listing) Get(ctx context.Context) (out []multiversx.RawTransaction, err error) {
	if cached, ok := self.cache.Get(listingCacheKey); ok {
		if self.monitor != nil {
			self.monitor.Report.Gateway.State.CacheHits.Inc()
		}
		return cached.([]multiversx.RawTransaction), nil
	}

	if self.monitor != nil {
		self.monitor.Report.Gateway.State.CacheMisses.Inc()
	}

	out, err = self.client.GetAccountTransactions(ctx,
		self.config.Challenge.ContractAddress,
		self.config.Gateway.ListingSize)
	if err != nil {
		if self.monitor != nil {
			self.monitor.Report.Gateway.Errors.UpstreamErrors.Inc()
		}
		return
	}

	self.cache.SetDefault(listingCacheKey, out)
	return
}
