package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/evaluation"
	"github.com/sw33tLie/svcbook/internal/pages"
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Rate a service you received",
	RunE: func(cmd *cobra.Command, args []string) error {
		service, _ := cmd.Flags().GetString("service")
		rating, _ := cmd.Flags().GetInt("rating")
		feedback, _ := cmd.Flags().GetString("feedback")

		app, closer, err := openPage(cmd.Context(), pages.Evaluation)
		if err != nil {
			return err
		}
		defer closer.Close()

		msg, err := app.Evaluation(evaluation.Evaluation{
			Service:  strings.TrimSpace(service),
			Rating:   rating,
			Feedback: strings.TrimSpace(feedback),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringP("service", "s", "", "Service you received")
	evaluateCmd.Flags().IntP("rating", "r", 0, "Rating from 1 to 5")
	evaluateCmd.Flags().StringP("feedback", "f", "", "Your feedback")
}
