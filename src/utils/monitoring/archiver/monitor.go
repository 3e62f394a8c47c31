package monitor_archiver

import (
	"math"
	"net/http"
	"time"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/report"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/task"

	"github.com/gammazero/deque"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Stores and computes monitor counters
type Monitor struct {
	*task.Task

	Report report.Report

	historySize int

	collector *Collector

	// Transaction processing speed
	TransactionCounts *deque.Deque[uint64]
}

func NewMonitor(config *config.Config) (self *Monitor) {
	self = new(Monitor)

	self.Report = report.Report{
		Run:      &report.RunReport{},
		Archiver: &report.ArchiverReport{},
	}

	self.Report.Run.State.StartTimestamp.Store(time.Now().Unix())

	self.collector = NewCollector().WithMonitor(self)

	self.Task = task.NewTask(config, "monitor").
		WithPeriodicSubtaskFunc(time.Minute, self.monitorUptime).
		WithPeriodicSubtaskFunc(time.Minute, self.monitorTransactions)
	return
}

func (self *Monitor) WithMaxHistorySize(maxHistorySize int) *Monitor {
	self.historySize = maxHistorySize
	self.TransactionCounts = deque.New[uint64](self.historySize)
	return self
}

func (self *Monitor) GetReport() *report.Report {
	return &self.Report
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}

func (self *Monitor) monitorUptime() (err error) {
	self.Report.Run.State.UpForSeconds.Store(time.Now().Unix() - self.Report.Run.State.StartTimestamp.Load())
	return
}

// Measure transaction processing speed
func (self *Monitor) monitorTransactions() (err error) {
	loaded := self.Report.Archiver.State.TransactionsProcessed.Load()
	if loaded == 0 {
		// Neglect the first 0
		return
	}

	self.TransactionCounts.PushBack(loaded)
	if self.TransactionCounts.Len() > self.historySize {
		self.TransactionCounts.PopFront()
	}
	value := float64(self.TransactionCounts.Back()-self.TransactionCounts.Front()) / float64(self.TransactionCounts.Len())
	self.Report.Archiver.State.AverageTransactionsProcessedPerMinute.Store(round(value))
	return
}

func (self *Monitor) IsOK() bool {
	now := time.Now().Unix()
	if now-self.Report.Run.State.StartTimestamp.Load() < 300 {
		return true
	}

	if self.Config == nil || self.Config.Challenge.PollIntervalMs <= 0 {
		// One-shot mode, there is no cycle cadence to check
		return true
	}

	// Cycles should keep finishing while polling is on
	stale := 5 * self.Config.Challenge.PollInterval()
	last := self.Report.Archiver.State.LastCycleTimestamp.Load()
	return time.Since(time.Unix(last, 0)) < stale
}

func (self *Monitor) OnGet(c *gin.Context) {
	status := http.StatusOK
	if !self.IsOK() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, &self.Report)
}
