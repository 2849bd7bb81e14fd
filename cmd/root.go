package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sw33tLie/svcbook/internal/utils"
	"github.com/sw33tLie/svcbook/pkg/validate"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "svcbook",
	Short: "Browse, book and manage salon services from the command line.",
	Long: `svcbook keeps a provider's service catalog, staff roster, bookmarks and theme
in a key-value store (a JSON file by default, or SQLite, Redis or NATS JetStream)
and lets customers send requests, evaluations and job applications.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

// userMessage turns a rule violation into the notice the form would show.
// Anything else is printed as is.
func userMessage(err error) string {
	var verr *validate.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	return "Error: " + err.Error()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.svcbook.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().String("backend", "", "Storage backend. Available: file, memory, sqlite, redis, nats (default from config: file)")
	rootCmd.PersistentFlags().String("store-path", "", "Path of the file or SQLite store (default from config: ~/.svcbook/store.json)")

	viper.BindPFlag("store.backend", rootCmd.PersistentFlags().Lookup("backend"))
	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store-path"))
}

func setDefaults() {
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", "~/.svcbook/store.json")
	viper.SetDefault("store.quota", 0)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.prefix", "svcbook:")
	viper.SetDefault("nats.url", "nats://127.0.0.1:4222")
	viper.SetDefault("nats.bucket", "svcbook")
	viper.SetDefault("media.max_bytes", 5<<20)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".svcbook")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix("svcbook")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
	utils.Log.Debugf("Using config file: %s", viper.ConfigFileUsed())
}
