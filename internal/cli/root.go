// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/mealdb/internal/appconfig"
	"github.com/mwiater/mealdb/internal/logging"
	"github.com/mwiater/mealdb/internal/mealdb"
	"github.com/mwiater/mealdb/mcp/tools"
)

var (
	cfgFile       string
	envFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "mealdb",
	Short:         "Serve TheMealDB recipe API as MCP tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initConfig()
		if err := loadEnvFile(envFile); err != nil {
			return err
		}
		if err := ensureConfigLoaded(); err != nil {
			return err
		}

		var cfg appconfig.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("unmarshal config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		cfg.ConfigPath = viper.ConfigFileUsed()
		currentConfig = &cfg

		if err := logging.Init(currentConfig.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.SetDebug(currentConfig.Debug)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		logging.LogEvent("mealdb: %v", err)
		_ = logging.Close()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading MEALDB_* variables")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("baseURL", appconfig.DefaultBaseURL, "MealDB API root")
	rootCmd.PersistentFlags().Int("timeout", 0, "HTTP timeout in seconds (0 = none)")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file (stderr only when empty)")
	rootCmd.PersistentFlags().String("transport", appconfig.TransportStdio, "serve transport: stdio, framed, or http")
	rootCmd.PersistentFlags().String("httpAddr", appconfig.DefaultHTTPAddr, "listen address for the http transport")

	for _, name := range []string{"debug", "baseURL", "timeout", "logFile", "transport", "httpAddr"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig points viper at the config file and MEALDB_* env vars.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("MEALDB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// ensureConfigLoaded reads the config and sets safe defaults.
func ensureConfigLoaded() error {
	viper.SetDefault("baseURL", appconfig.DefaultBaseURL)
	viper.SetDefault("transport", appconfig.TransportStdio)
	viper.SetDefault("httpAddr", appconfig.DefaultHTTPAddr)
	viper.SetDefault("serverName", appconfig.DefaultServerName)
	viper.SetDefault("serverVersion", appconfig.DefaultServerVersion)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// No file: fine, we'll use defaults/flags
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

// loadEnvFile loads a dotenv file without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}

// newDispatcher wires the HTTP collaborator into a dispatcher from the current config.
func newDispatcher() *tools.Dispatcher {
	client := mealdb.NewClientFromConfig(*GetConfig())
	logging.LogDebug("mealdb client: baseURL=%s timeout=%s", client.BaseURL(), GetConfig().RequestTimeout())
	return tools.NewDispatcher(client)
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
