package gateway

import (
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/config"
	monitor_gateway "github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/monitoring/gateway"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/multiversx"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/task"
)

type Controller struct {
	*task.Task
}

// Orchestrates the read-only transaction listing API
func NewController(config *config.Config) (self *Controller, err error) {
	self = new(Controller)
	self.Task = task.NewTask(config, "gateway")

	err = config.Validate()
	if err != nil {
		self.Log.WithError(err).Error("Invalid configuration")
		return
	}

	monitor := monitor_gateway.NewMonitor(config)

	client := multiversx.NewClient(config)

	server := NewServer(config).
		WithClient(client).
		WithMonitor(monitor)

	self.Task.
		WithSubtask(monitor.Task).
		WithSubtask(server.Task)
	return
}
