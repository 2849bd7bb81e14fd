package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/pages"
	"github.com/sw33tLie/svcbook/internal/utils"
	"github.com/sw33tLie/svcbook/internal/view"
	"github.com/sw33tLie/svcbook/pkg/ordering"
)

// servicesCmd represents the services command
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List, add and import the services in the catalog",
}

var servicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog",
	Long: `Print the catalog in the requested order. The default order is random and
changes on every call. With --html the provider dashboard is written to FILE instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sortFlag, _ := cmd.Flags().GetString("sort")
		htmlFile, _ := cmd.Flags().GetString("html")
		ctx := cmd.Context()

		page := pages.Services
		if htmlFile != "" {
			page = pages.Provider
		}
		app, closer, err := openPage(ctx, page)
		if err != nil {
			return err
		}
		defer closer.Close()

		if htmlFile != "" {
			services, err := app.Catalog.List(ctx)
			if err != nil {
				return err
			}
			theme, err := app.Theme.Current(ctx)
			if err != nil {
				return err
			}
			f, err := os.Create(htmlFile)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := view.ProviderPage(f, services, theme); err != nil {
				return err
			}
			utils.Log.Infof("Wrote %d services to %s", len(services), htmlFile)
			return nil
		}

		mode := ordering.ParseMode(sortFlag)
		if string(mode) != strings.ToLower(strings.TrimSpace(sortFlag)) {
			utils.Log.Warnf("Unknown sort mode %q, using %s", sortFlag, mode)
		}
		services, err := app.Catalog.Ordered(ctx, mode)
		if err != nil {
			return err
		}
		return view.Services(cmd.OutOrStdout(), services, view.NoServices)
	},
}

var servicesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a service to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		price, _ := cmd.Flags().GetString("price")
		description, _ := cmd.Flags().GetString("description")
		imageRef, _ := cmd.Flags().GetString("image")
		ctx := cmd.Context()

		image, err := resolveImage(ctx, imageRef)
		if err != nil {
			return err
		}

		app, closer, err := openPage(ctx, pages.AddService)
		if err != nil {
			return err
		}
		defer closer.Close()

		entry := catalog.ServiceEntry{
			Name:        strings.TrimSpace(name),
			Price:       strings.TrimSpace(price),
			Description: strings.TrimSpace(description),
			Image:       image,
		}
		renderOnChange(app, cmd.OutOrStdout())
		if _, err := app.Catalog.Add(ctx, entry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s has been successfully added!\n", entry.Name)
		return nil
	},
}

var servicesImportCmd = &cobra.Command{
	Use:   "import PAGE.html",
	Short: "Add every valid service card found in an HTML services page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		app, closer, err := openPage(ctx, pages.AddService)
		if err != nil {
			return err
		}
		defer closer.Close()

		res, err := app.Catalog.ImportPage(ctx, f)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d services from %s\n", len(res.Added), args[0])
		for _, r := range res.Rejected {
			fmt.Fprintf(out, "Skipped %q: %s\n", r.Card.Name, r.Err.Error())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(servicesCmd)
	servicesCmd.AddCommand(servicesListCmd)
	servicesCmd.AddCommand(servicesAddCmd)
	servicesCmd.AddCommand(servicesImportCmd)

	servicesListCmd.Flags().StringP("sort", "s", string(ordering.Random), "Sort order. Available: "+modeList())
	servicesListCmd.Flags().String("html", "", "Write the provider dashboard page to this file")

	servicesAddCmd.Flags().StringP("name", "n", "", "Service name")
	servicesAddCmd.Flags().StringP("price", "p", "", "Price in SR")
	servicesAddCmd.Flags().StringP("description", "d", "", "Service description")
	servicesAddCmd.Flags().StringP("image", "i", "", "Image file path, or an http(s) or data URL")
}

func modeList() string {
	modes := make([]string, len(ordering.Modes))
	for i, m := range ordering.Modes {
		modes[i] = string(m)
	}
	return strings.Join(modes, ", ")
}
