package challenge_sync

import (
	"context"
	"time"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	monitor_archiver "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/archiver"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/task"

	"go.uber.org/atomic"
)

// Scheduler drives ingestion cycles: one synchronous cycle at startup,
// then one per tick. Cycles are serialized, a tick that fires while a
// cycle is still running is skipped.
type Scheduler struct {
	*task.Task

	interval time.Duration
	cycling  *atomic.Bool
	cycle    func(ctx context.Context) error
	monitor  *monitor_archiver.Monitor
}

func NewScheduler(config *config.Config) (self *Scheduler) {
	self = new(Scheduler)
	self.interval = config.Challenge.PollInterval()
	self.cycling = atomic.NewBool(false)
	self.Task = task.NewTask(config, "scheduler").
		WithSubtaskFunc(self.run)
	return
}

func (self *Scheduler) WithCycle(f func(ctx context.Context) error) *Scheduler {
	self.cycle = f
	return self
}

func (self *Scheduler) WithMonitor(monitor *monitor_archiver.Monitor) *Scheduler {
	self.monitor = monitor
	return self
}

func (self *Scheduler) run() (err error) {
	// Startup cycle runs before the repeating timer is armed
	self.RunOnce()

	if self.interval <= 0 {
		self.Log.Info("Polling disabled, finished after the startup cycle")
		return nil
	}

	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()

	for {
		select {
		case <-self.StopChannel:
			// An in-flight cycle is not cancelled, only future fires
			self.Log.Debug("Scheduler stopped")
			return nil
		case <-ticker.C:
			self.RunOnce()
		}
	}
}

// RunOnce runs a single fetch+project cycle unless one is already in
// flight, in which case the fire is a no-op.
func (self *Scheduler) RunOnce() (ran bool) {
	if !self.cycling.CompareAndSwap(false, true) {
		self.Log.Debug("Cycle already in progress, skipping this fire")
		if self.monitor != nil {
			self.monitor.Report.Archiver.State.CyclesSkipped.Inc()
		}
		return false
	}
	defer self.cycling.Store(false)

	err := self.cycle(self.Ctx)
	if err != nil {
		// Recoverable, the next scheduled cycle retries naturally
		self.Log.WithError(err).Error("Ingestion cycle failed")
	}

	if self.monitor != nil {
		self.monitor.Report.Archiver.State.CyclesFinished.Inc()
		self.monitor.Report.Archiver.State.LastCycleTimestamp.Store(time.Now().Unix())
	}
	return true
}
