package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gofcat/internal/domain/catalog"
	"github.com/zjrosen/gofcat/internal/presentation"
)

var showFormat string

var catalogShowCmd = &cobra.Command{
	Use:     "catalog:show <name>",
	Aliases: []string{"show"},
	Short:   "Show one pattern",
	Long: `Show the category, summary and worked example of one pattern.

Names are matched exactly and case-sensitively.

Examples:
  gofcat catalog:show Singleton
  gofcat show "Factory Method" --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(showFormat)
		if err != nil {
			return err
		}

		entry, err := catalogService.FindByName(args[0])
		if err != nil {
			return notFoundHint(err)
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout(), cfg.Output.Width)
		return formatter.FormatEntry(presentation.FromDomainEntry(entry), format)
	},
}

func init() {
	catalogShowCmd.Flags().StringVarP(&showFormat, "format", "f", "", "Output format: text or json (default from config)")
	rootCmd.AddCommand(catalogShowCmd)
}

// notFoundHint adds a pointer to catalog:list to NotFound errors.
func notFoundHint(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("%w (names are case-sensitive; run 'gofcat catalog:list')", err)
	}
	return err
}
