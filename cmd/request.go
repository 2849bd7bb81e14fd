package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/pages"
	"github.com/sw33tLie/svcbook/internal/requests"
	"github.com/sw33tLie/svcbook/internal/view"
)

// requestCmd represents the request command
var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Ask a provider for a service",
}

var requestSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send a new service request",
	Long: `Send a new service request. The due date must be at least 5 days away and the
description at least 100 characters long. Requests are not stored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, _ := cmd.Flags().GetString("service")
		name, _ := cmd.Flags().GetString("name")
		due, _ := cmd.Flags().GetString("due")
		description, _ := cmd.Flags().GetString("description")

		app, closer, err := openPage(cmd.Context(), pages.NewRequest)
		if err != nil {
			return err
		}
		defer closer.Close()

		list, err := app.Requests.Submit(requests.ServiceRequest{
			Service:     strings.TrimSpace(service),
			Name:        strings.TrimSpace(name),
			DueDate:     strings.TrimSpace(due),
			Description: strings.TrimSpace(description),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Your request has been sent.")
		fmt.Fprintln(cmd.OutOrStdout())
		return view.Requests(cmd.OutOrStdout(), list)
	},
}

func init() {
	rootCmd.AddCommand(requestCmd)
	requestCmd.AddCommand(requestSubmitCmd)

	requestSubmitCmd.Flags().StringP("service", "s", "", "Requested service")
	requestSubmitCmd.Flags().StringP("name", "n", "", "Your full name (first and last)")
	requestSubmitCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	requestSubmitCmd.Flags().StringP("description", "d", "", "What you need, at least 100 characters")
}
