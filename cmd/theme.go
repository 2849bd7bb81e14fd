package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/pages"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [toggle | set light|dark]",
	Short: "Show or change the site theme",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, closer, err := openPage(ctx, pages.Home)
		if err != nil {
			return err
		}
		defer closer.Close()

		var current string
		switch {
		case len(args) == 0:
			current, err = app.Theme.Current(ctx)
		case args[0] == "toggle" && len(args) == 1:
			current, err = app.Theme.Toggle(ctx)
		case args[0] == "set" && len(args) == 2:
			current = args[1]
			err = app.Theme.Set(ctx, current)
		default:
			return fmt.Errorf("usage: %s", cmd.Use)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), current)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
