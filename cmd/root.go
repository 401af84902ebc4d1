package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appcatalog "github.com/zjrosen/gofcat/internal/application/catalog"
	"github.com/zjrosen/gofcat/internal/config"
	"github.com/zjrosen/gofcat/internal/log"
	"github.com/zjrosen/gofcat/internal/templates"
)

// skipCatalogAnnotation marks commands that must work without a loadable
// catalog or a valid config (e.g. to repair the config file).
const skipCatalogAnnotation = "skip_catalog"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	// configErr is a config file that exists but could not be read or decoded.
	configErr error

	// catalogService is built once per process in setup and shared by every command.
	catalogService *appcatalog.CatalogService
	logCleanup     func()
)

var rootCmd = &cobra.Command{
	Use:   "gofcat",
	Short: "Browse the Gang-of-Four design pattern catalog",
	Long: `gofcat indexes the 23 Gang-of-Four design patterns by category
(Creational, Structural, Behavioral) and shows their summaries and write-ups.

Extra patterns can be added in ~/.gofcat/catalog/<dir>/catalog.yaml.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gofcat/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs (path from GOFCAT_LOG, default debug.log)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("catalog.load_user", defaults.Catalog.LoadUser)
	viper.SetDefault("catalog.user_dir", defaults.Catalog.UserDir)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.width", defaults.Output.Width)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.render_cache_ttl", defaults.UI.RenderCacheTTL)
	viper.SetDefault("ui.render_cache_file", defaults.UI.RenderCacheFile)
	configErr = nil

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .gofcat/config.yaml (current directory)
		// 2. ~/.config/gofcat/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(userConfigDir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	// A missing config file in the lookup paths is fine - defaults apply
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}

	cfg = config.Defaults()
	if err := viper.Unmarshal(&cfg); err != nil && configErr == nil {
		configErr = fmt.Errorf("decoding config: %w", err)
	}
}

const localConfigPath = ".gofcat/config.yaml"

// userConfigDir returns ~/.config/gofcat.
func userConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gofcat")
}

// setup initializes logging and builds the catalog once, before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	if debugFlag || os.Getenv("GOFCAT_DEBUG") != "" {
		logPath := os.Getenv("GOFCAT_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		logCleanup = cleanup
		log.Info(log.CatCLI, "gofcat starting", "version", version, "command", cmd.CommandPath(), "config", viper.ConfigFileUsed())
	}

	if cmd.Annotations[skipCatalogAnnotation] == "true" {
		return nil
	}

	if configErr != nil {
		log.ErrorErr(log.CatConfig, "Failed to load config", configErr, "config", viper.ConfigFileUsed())
		return configErr
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	svc, err := appcatalog.NewCatalogService(templates.CatalogFS(), cfg.UserCatalogDir())
	if err != nil {
		log.ErrorErr(log.CatCatalog, "Failed to build catalog", err)
		return err
	}
	catalogService = svc
	return nil
}

// closeLog closes the debug log opened by setup, whether or not the command failed.
func closeLog() {
	if logCleanup != nil {
		logCleanup()
		logCleanup = nil
	}
}

// Execute runs the root command
func Execute() error {
	defer closeLog()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
