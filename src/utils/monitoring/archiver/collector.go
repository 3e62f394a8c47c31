package monitor_archiver

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	// Run
	UpForSeconds *prometheus.Desc

	// Errors
	FetchErrors       *prometheus.Desc
	NormalizerDropped *prometheus.Desc
	DecodeErrors      *prometheus.Desc
	HandlerErrors     *prometheus.Desc

	// State
	CyclesFinished           *prometheus.Desc
	CyclesSkipped            *prometheus.Desc
	TransactionsFetched      *prometheus.Desc
	TransactionsProcessed    *prometheus.Desc
	TransactionsDeduplicated *prometheus.Desc
	CallsIgnored             *prometheus.Desc
	ChallengesCreated        *prometheus.Desc
	ChallengesClosed         *prometheus.Desc
	ParticipantsJoined       *prometheus.Desc
	WorkoutsRecorded         *prometheus.Desc
	LastProcessedTimestampMs *prometheus.Desc
	LastCycleTimestamp       *prometheus.Desc
}

func NewCollector() *Collector {
	return &Collector{
		UpForSeconds: prometheus.NewDesc("up_for_seconds", "", nil, nil),

		// Errors
		FetchErrors:       prometheus.NewDesc("archiver_fetch_errors", "", nil, nil),
		NormalizerDropped: prometheus.NewDesc("archiver_normalizer_dropped", "", nil, nil),
		DecodeErrors:      prometheus.NewDesc("archiver_decode_errors", "", nil, nil),
		HandlerErrors:     prometheus.NewDesc("archiver_handler_errors", "", nil, nil),

		// State
		CyclesFinished:           prometheus.NewDesc("archiver_cycles_finished", "", nil, nil),
		CyclesSkipped:            prometheus.NewDesc("archiver_cycles_skipped", "", nil, nil),
		TransactionsFetched:      prometheus.NewDesc("archiver_transactions_fetched", "", nil, nil),
		TransactionsProcessed:    prometheus.NewDesc("archiver_transactions_processed", "", nil, nil),
		TransactionsDeduplicated: prometheus.NewDesc("archiver_transactions_deduplicated", "", nil, nil),
		CallsIgnored:             prometheus.NewDesc("archiver_calls_ignored", "", nil, nil),
		ChallengesCreated:        prometheus.NewDesc("archiver_challenges_created", "", nil, nil),
		ChallengesClosed:         prometheus.NewDesc("archiver_challenges_closed", "", nil, nil),
		ParticipantsJoined:       prometheus.NewDesc("archiver_participants_joined", "", nil, nil),
		WorkoutsRecorded:         prometheus.NewDesc("archiver_workouts_recorded", "", nil, nil),
		LastProcessedTimestampMs: prometheus.NewDesc("archiver_last_processed_timestamp_ms", "", nil, nil),
		LastCycleTimestamp:       prometheus.NewDesc("archiver_last_cycle_timestamp", "", nil, nil),
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
	ch <- self.FetchErrors
	ch <- self.NormalizerDropped
	ch <- self.DecodeErrors
	ch <- self.HandlerErrors

	// State
	ch <- self.CyclesFinished
	ch <- self.CyclesSkipped
	ch <- self.TransactionsFetched
	ch <- self.TransactionsProcessed
	ch <- self.TransactionsDeduplicated
	ch <- self.CallsIgnored
	ch <- self.ChallengesCreated
	ch <- self.ChallengesClosed
	ch <- self.ParticipantsJoined
	ch <- self.WorkoutsRecorded
	ch <- self.LastProcessedTimestampMs
	ch <- self.LastCycleTimestamp
}

// Collect implements required collect function for all promehteus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	// Run
	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(self.monitor.Report.Run.State.UpForSeconds.Load()))

	// Errors
	ch <- prometheus.MustNewConstMetric(self.FetchErrors, prometheus.CounterValue, float64(self.monitor.Report.Archiver.Errors.FetchErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.NormalizerDropped, prometheus.CounterValue, float64(self.monitor.Report.Archiver.Errors.NormalizerDropped.Load()))
	ch <- prometheus.MustNewConstMetric(self.DecodeErrors, prometheus.CounterValue, float64(self.monitor.Report.Archiver.Errors.DecodeErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.HandlerErrors, prometheus.CounterValue, float64(self.monitor.Report.Archiver.Errors.HandlerErrors.Load()))

	// State
	ch <- prometheus.MustNewConstMetric(self.CyclesFinished, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.CyclesFinished.Load()))
	ch <- prometheus.MustNewConstMetric(self.CyclesSkipped, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.CyclesSkipped.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransactionsFetched, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.TransactionsFetched.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransactionsProcessed, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.TransactionsProcessed.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransactionsDeduplicated, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.TransactionsDeduplicated.Load()))
	ch <- prometheus.MustNewConstMetric(self.CallsIgnored, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.CallsIgnored.Load()))
	ch <- prometheus.MustNewConstMetric(self.ChallengesCreated, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.ChallengesCreated.Load()))
	ch <- prometheus.MustNewConstMetric(self.ChallengesClosed, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.ChallengesClosed.Load()))
	ch <- prometheus.MustNewConstMetric(self.ParticipantsJoined, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.ParticipantsJoined.Load()))
	ch <- prometheus.MustNewConstMetric(self.WorkoutsRecorded, prometheus.CounterValue, float64(self.monitor.Report.Archiver.State.WorkoutsRecorded.Load()))
	ch <- prometheus.MustNewConstMetric(self.LastProcessedTimestampMs, prometheus.GaugeValue, float64(self.monitor.Report.Archiver.State.LastProcessedTimestampMs.Load()))
	ch <- prometheus.MustNewConstMetric(self.LastCycleTimestamp, prometheus.GaugeValue, float64(self.monitor.Report.Archiver.State.LastCycleTimestamp.Load()))
}
