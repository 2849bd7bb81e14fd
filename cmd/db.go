package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/sw33tLie/svcbook/internal/bookmarks"
	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/staff"
	"github.com/sw33tLie/svcbook/internal/theme"
	"github.com/sw33tLie/svcbook/pkg/kv"
)

// knownKeys are the keys svcbook itself writes.
var knownKeys = []string{theme.Key, catalog.CollectionName, staff.CollectionName, bookmarks.CollectionName}

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and repair the underlying key-value store",
}

var inspectCmd = &cobra.Command{
	Use:   "inspect KEY",
	Short: "Print the raw value stored under KEY",
	Long: `Print the raw value stored under KEY. With --path only the matching part of a
JSON value is printed, using gjson path syntax (for example "#.name").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("path")
		ctx := cmd.Context()

		store, closer, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		raw, err := store.KV().Get(ctx, args[0])
		if errors.Is(err, kv.ErrNotFound) {
			return fmt.Errorf("nothing stored under %q", args[0])
		}
		if err != nil {
			return err
		}

		out, err := inspectValue(raw, path)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// inspectValue applies a gjson path to raw. An empty path returns raw.
func inspectValue(raw, path string) (string, error) {
	if path == "" {
		return raw, nil
	}
	if !gjson.Valid(raw) {
		return "", errors.New("stored value is not valid JSON")
	}
	res := gjson.Get(raw, path)
	if !res.Exists() {
		return "", fmt.Errorf("path %q matched nothing", path)
	}
	return res.String(), nil
}

var removeCmd = &cobra.Command{
	Use:   "remove KEY",
	Short: "Delete KEY from the store (collections fall back to their defaults)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, closer, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		if err := store.KV().Remove(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	},
}

type keyLister interface {
	Keys(ctx context.Context) ([]kv.KeyInfo, error)
}

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints the size and entry count of every stored key.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, closer, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer closer.Close()

		keys := knownKeys
		if l, ok := store.KV().(keyLister); ok {
			infos, err := l.Keys(ctx)
			if err != nil {
				return err
			}
			keys = keys[:0:0]
			for _, info := range infos {
				keys = append(keys, info.Key)
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "KEY\tENTRIES\tSIZE\t")

		var totalSize uint64
		found := 0
		for _, key := range keys {
			raw, err := store.KV().Get(ctx, key)
			if errors.Is(err, kv.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			found++
			totalSize += uint64(len(raw))
			fmt.Fprintf(w, "%s\t%s\t%s\t\n", key, entryCount(raw), humanize.Bytes(uint64(len(raw))))
		}
		if found == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing stored yet.")
			return nil
		}

		fmt.Fprintln(w, " \t \t \t")
		fmt.Fprintf(w, "TOTAL\t%d keys\t%s\t\n", found, humanize.Bytes(totalSize))

		return w.Flush()
	},
}

// entryCount reports the length of a JSON array value, "-" for anything else.
func entryCount(raw string) string {
	if !gjson.Valid(raw) {
		return "-"
	}
	res := gjson.Parse(raw)
	if !res.IsArray() {
		return "-"
	}
	return fmt.Sprint(res.Get("#").Int())
}

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive sqlite3 shell on the SQLite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := storeConfig()
		if err != nil {
			return err
		}
		if !strings.EqualFold(cfg.Backend, "sqlite") {
			return fmt.Errorf("db shell needs the sqlite backend, not %q", cfg.Backend)
		}

		if _, err := os.Stat(cfg.Path); os.IsNotExist(err) {
			return fmt.Errorf("database file not found: %s", cfg.Path)
		}

		// Check if sqlite3 is in PATH
		sqlitePath, err := exec.LookPath("sqlite3")
		if err != nil {
			return fmt.Errorf("sqlite3 command not found in your PATH. Please install it to use the db shell")
		}

		fmt.Println("--> Starting interactive shell on table kv... (Ctrl+D to exit)")

		c := exec.Command(sqlitePath, cfg.Path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr

		return c.Run()
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(inspectCmd)
	dbCmd.AddCommand(removeCmd)
	dbCmd.AddCommand(statsCmd)
	dbCmd.AddCommand(shellCmd)

	inspectCmd.Flags().StringP("path", "p", "", "gjson path to extract from a JSON value")
}
