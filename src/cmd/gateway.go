package cmd

import (
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/gateway"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(gatewayCmd)
}

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Serve the read-only transaction listing API",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		controller, err := gateway.NewController(conf)
		if err != nil {
			return
		}

		err = controller.Start()
		if err != nil {
			return
		}

		<-applicationCtx.Done()

		controller.StopWait()

		return
	},
	PostRunE: func(cmd *cobra.Command, args []string) (err error) {
		log := logger.NewSublogger("gateway-cmd")
		log.Debug("Finished gateway command")
		return
	},
}
