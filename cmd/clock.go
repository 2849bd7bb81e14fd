package cmd

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/clock"
)

// clockCmd represents the clock command
var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Print the time every second until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		once, _ := cmd.Flags().GetBool("once")
		if once {
			fmt.Fprintln(cmd.OutOrStdout(), clock.Format(time.Now()))
			return nil
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return clock.Run(ctx, cmd.OutOrStdout(), time.Second)
	},
}

func init() {
	rootCmd.AddCommand(clockCmd)
	clockCmd.Flags().Bool("once", false, "Print the time once and exit")
}
