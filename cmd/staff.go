package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sw33tLie/svcbook/internal/pages"
	"github.com/sw33tLie/svcbook/internal/staff"
	"github.com/sw33tLie/svcbook/internal/view"
	"github.com/sw33tLie/svcbook/pkg/collection"
)

// staffCmd represents the staff command
var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage the staff roster",
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the staff roster with the indices used by delete",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, closer, err := openPage(ctx, pages.ManageStaff)
		if err != nil {
			return err
		}
		defer closer.Close()

		members, err := app.Staff.List(ctx)
		if err != nil {
			return err
		}
		return view.Staff(cmd.OutOrStdout(), members)
	},
}

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a staff member",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		get := func(name string) string {
			v, _ := flags.GetString(name)
			return strings.TrimSpace(v)
		}

		photo, err := resolveImage(ctx, get("photo"))
		if err != nil {
			return err
		}

		app, closer, err := openPage(ctx, pages.ManageStaff)
		if err != nil {
			return err
		}
		defer closer.Close()

		entry := staff.StaffEntry{
			Name:      get("name"),
			Image:     photo,
			DOB:       get("dob"),
			Email:     get("email"),
			Expertise: get("expertise"),
			Skills:    get("skills"),
			Education: get("education"),
		}
		renderOnChange(app, cmd.OutOrStdout())
		if _, err := app.Staff.Add(ctx, entry); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s has been successfully added!\n", entry.Name)
		return nil
	},
}

var staffDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the staff members at the given indices",
	RunE: func(cmd *cobra.Command, args []string) error {
		indices, _ := cmd.Flags().GetIntSlice("index")
		yes, _ := cmd.Flags().GetBool("yes")
		ctx := cmd.Context()

		if len(indices) == 0 {
			return fmt.Errorf("please select at least one staff member: %w", collection.ErrEmptySelection)
		}
		if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Are you sure you want to delete selected staff members?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing deleted.")
			return nil
		}

		app, closer, err := openPage(ctx, pages.ManageStaff)
		if err != nil {
			return err
		}
		defer closer.Close()

		renderOnChange(app, cmd.OutOrStdout())
		_, err = app.Staff.Delete(ctx, indices...)
		return err
	},
}

// confirm asks a yes/no question and reports whether the answer was yes.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	rootCmd.AddCommand(staffCmd)
	staffCmd.AddCommand(staffListCmd)
	staffCmd.AddCommand(staffAddCmd)
	staffCmd.AddCommand(staffDeleteCmd)

	staffAddCmd.Flags().StringP("name", "n", "", "Full name")
	staffAddCmd.Flags().String("photo", "", "Photo file path, or an http(s) or data URL")
	staffAddCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	staffAddCmd.Flags().StringP("email", "e", "", "Email address")
	staffAddCmd.Flags().String("expertise", "", "Area of expertise")
	staffAddCmd.Flags().String("skills", "", "Skills")
	staffAddCmd.Flags().String("education", "", "Education")

	staffDeleteCmd.Flags().IntSliceP("index", "i", nil, "Index of a member to delete, as printed by staff list (repeatable)")
	staffDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
