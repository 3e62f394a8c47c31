package cmd

import (
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/challenge_sync"
	"github.com/matthriscu/Blockchain-Fitness-ArchivingService/src/utils/logger"

	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(archiveCmd)
}

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Poll the ledger gateway and project challenge state into the database",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		controller, err := challenge_sync.NewController(conf)
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
		log := logger.NewSublogger("archive-cmd")
		log.Debug("Finished archive command")
		return
	},
}
