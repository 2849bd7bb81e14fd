package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/join"
	"github.com/sw33tLie/svcbook/internal/pages"
)

// joinCmd represents the join command
var joinCmd = &cobra.Command{
	Use:   "join",
	Short: "Apply to join the team",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		dob, _ := cmd.Flags().GetString("dob")
		photo, _ := cmd.Flags().GetString("photo")
		ctx := cmd.Context()

		application := join.Application{
			FullName: strings.TrimSpace(name),
			DOB:      strings.TrimSpace(dob),
		}
		if photo != "" {
			img, err := mediaReader().ReadFile(ctx, photo)
			if err != nil {
				return err
			}
			application.PhotoType = img.MIME
		}

		app, closer, err := openPage(ctx, pages.Join)
		if err != nil {
			return err
		}
		defer closer.Close()

		msg, err := app.Join(application)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)

	joinCmd.Flags().StringP("name", "n", "", "Your full name")
	joinCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	joinCmd.Flags().String("photo", "", "Photo of yourself (JPEG, PNG, ...)")
}
