package monitor_gateway

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	// Run
	UpForSeconds *prometheus.Desc

	// Errors
	UpstreamErrors *prometheus.Desc

	// State
	CacheHits            *prometheus.Desc
	CacheMisses          *prometheus.Desc
	TransactionsReturned *prometheus.Desc
}

func NewCollector() *Collector {
	return &Collector{
		UpForSeconds: prometheus.NewDesc("up_for_seconds", "", nil, nil),

		// Errors
		UpstreamErrors: prometheus.NewDesc("gateway_upstream_errors", "", nil, nil),

		// State
		CacheHits:            prometheus.NewDesc("gateway_cache_hits", "", nil, nil),
		CacheMisses:          prometheus.NewDesc("gateway_cache_misses", "", nil, nil),
		TransactionsReturned: prometheus.NewDesc("gateway_transactions_returned", "", nil, nil),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	// Run
	ch <- self.UpForSeconds

	// Errors
	ch <- self.UpstreamErrors

	// State
	ch <- self.CacheHits
	ch <- self.CacheMisses
	ch <- self.TransactionsReturned
}

// Collect implements required collect function for all promehteus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	// Run
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(self.monitor.Report.Run.State.UpForSeconds.Load()))

	// Errors
	ch <- prometheus.MustNewConstMetric(self.UpstreamErrors, prometheus.CounterValue, float64(self.monitor.Report.Gateway.Errors.UpstreamErrors.Load()))

	// State
	ch <- prometheus.MustNewConstMetric(self.CacheHits, prometheus.CounterValue, float64(self.monitor.Report.Gateway.State.CacheHits.Load()))
	ch <- prometheus.MustNewConstMetric(self.CacheMisses, prometheus.CounterValue, float64(self.monitor.Report.Gateway.State.CacheMisses.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransactionsReturned, prometheus.CounterValue, float64(self.monitor.Report.Gateway.State.TransactionsReturned.Load()))
}
