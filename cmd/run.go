package cmd

import (
	"taskloop/internal/service"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var (
		interpreter  string
		script       string
		workDir      string
		label        string
		interval     time.Duration
		historyDepth int
		statusPort   int
	)

	var command = &cobra.Command{
		Use:   "run",
		Short: "Run the configured task on a fixed cadence until killed",
		RunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			return service.Run(service.Config{
				Interpreter:  interpreter,
				Script:       script,
				WorkDir:      workDir,
				Label:        label,
				Interval:     interval,
				HistoryDepth: historyDepth,
				StatusPort:   statusPort,
			})
		},
	}

	command.Flags().StringVar(&interpreter, "interpreter", "", "Interpreter for the task script (default \"python\")")
	command.Flags().StringVar(&script, "script", "", "Path to the task script to invoke each cycle")
	command.Flags().StringVar(&workDir, "workdir", "", "Working directory for the task (default: the script's directory)")
	command.Flags().StringVar(&label, "label", "", "Label used in the per-cycle log lines")
	command.Flags().DurationVar(&interval, "interval", 0, "Delay between invocations, e.g. 6h or 10s (required unless Task_Interval is set)")
	command.Flags().IntVar(&historyDepth, "history", 0, "Number of recent runs kept in memory")
	command.Flags().IntVarP(&statusPort, "status-port", "p", 0, "Port for the HTTP status endpoint (0 disables it)")

	return command
}
