package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gofcat/internal/config"
)

var configInitForce bool

var configInitCmd = &cobra.Command{
	Use:   "config:init [path]",
	Short: "Write a default config file",
	Long: `Write a commented default config file.

Without a path the file is written to ~/.config/gofcat/config.yaml.`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipCatalogAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return err
	},
}

var configSetCmd = &cobra.Command{
	Use:   "config:set <key> <value>",
	Short: "Change one setting in the config file",
	Long: `Change one setting, keeping comments in the config file intact.

The file used is --config, else the config file that was loaded, else
~/.config/gofcat/config.yaml.

Examples:
  gofcat config:set output.format json
  gofcat config:set ui.markdown_style light`,
	Args:        cobra.ExactArgs(2),
	Annotations: map[string]string{skipCatalogAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.ConfigFileUsed()
		if path == "" {
			path = defaultConfigPath()
		}

		if err := config.SaveSetting(path, args[0], args[1]); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "set %s = %s in %s\n", args[0], args[1], path)
		return err
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configSetCmd)
}

// defaultConfigPath returns ~/.config/gofcat/config.yaml.
func defaultConfigPath() string {
	return filepath.Join(userConfigDir(), "config.yaml")
}
