package challenge_sync

import (
	"context"

	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/model"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring"
	monitor_archiver "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/archiver"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Main class that orchestrates the archiver.
// Wires the gateway client, the fetch+project pipeline and monitoring.
func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)
	self.Task = task.NewTask(config, "challenge_sync")

	// The contract address has no default, fail fast before anything starts
	err = config.Validate()
	if err != nil {
		self.Log.WithError(err).Error("Invalid configuration")
		return
	}

	// SQL database
	db, err := model.NewConnection(self.Ctx, config, "challenge_sync")
	if err != nil {
		return
	}

	// Monitoring
	monitor := monitor_archiver.NewMonitor(config).
		WithMaxHistorySize(30)
	server := monitoring.NewServer(config).
		WithMonitor(monitor)

	// Gateway client
	client := multiversx.NewClient(config)

	// Downloads and normalizes the contract's transactions
	fetcher := NewFetcher(config).
		WithClient(client).
		WithMonitor(monitor)

	// Applies decoded calls against the database
	projector := NewProjector(config).
		WithRepository(NewStore(db)).
		WithMonitor(monitor)

	// One cycle: fetch, then project, sequentially
	scheduler := NewScheduler(config).
		WithMonitor(monitor).
		WithCycle(func(ctx context.Context) error {
			txs, err := fetcher.Fetch(ctx)
			if err != nil {
				monitor.Report.Archiver.Errors.FetchErrors.Inc()
				return err
			}
			projector.Project(ctx, txs)
			return nil
		})

	// Setup everything, will start upon calling Controller.Start()
	self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(server.Task).
		WithSubtask(scheduler.Task)
	return
}
