package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/pages"
	"github.com/sw33tLie/svcbook/internal/view"
)

// bookmarksCmd represents the bookmarks command
var bookmarksCmd = &cobra.Command{
	Use:   "bookmarks",
	Short: "Save services for later",
}

var bookmarksToggleCmd = &cobra.Command{
	Use:   "toggle NAME",
	Short: "Bookmark a service, or remove its bookmark",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, closer, err := openPage(ctx, pages.Services)
		if err != nil {
			return err
		}
		defer closer.Close()

		services, err := app.Catalog.List(ctx)
		if err != nil {
			return err
		}
		// Stale bookmarks can still be removed after their service is gone.
		if _, ok := catalog.Find(services, args[0]); !ok {
			if saved, err := app.Bookmarks.IsSaved(ctx, args[0]); err != nil {
				return err
			} else if !saved {
				return fmt.Errorf("no service named %q in the catalog", args[0])
			}
		}

		saved, err := app.Bookmarks.Toggle(ctx, args[0])
		if err != nil {
			return err
		}
		if saved {
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from bookmarks\n", args[0])
		}
		return nil
	},
}

var bookmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the bookmarked services",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, closer, err := openPage(ctx, pages.Bookmarks)
		if err != nil {
			return err
		}
		defer closer.Close()

		services, err := app.Catalog.List(ctx)
		if err != nil {
			return err
		}
		saved, err := app.Bookmarks.Filter(ctx, services)
		if err != nil {
			return err
		}
		return view.Services(cmd.OutOrStdout(), saved, "You have no bookmarked services yet.")
	},
}

func init() {
	rootCmd.AddCommand(bookmarksCmd)
	bookmarksCmd.AddCommand(bookmarksToggleCmd)
	bookmarksCmd.AddCommand(bookmarksListCmd)
}
