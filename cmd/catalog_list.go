package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/gofcat/internal/domain/catalog"
	"github.com/zjrosen/gofcat/internal/presentation"
)

var (
	listCategory string
	listFormat   string
)

var catalogListCmd = &cobra.Command{
	Use:     "catalog:list",
	Aliases: []string{"list", "ls"},
	Short:   "List catalog patterns",
	Long: `List the patterns in the catalog, grouped in category order
(Creational, Structural, Behavioral).

Use --category to show a single category.

Examples:
  # List every pattern
  gofcat catalog:list

  # Only structural patterns
  gofcat catalog:list --category structural
  gofcat list -g structural

  # Machine-readable output
  gofcat catalog:list --format json | jq '.[].name'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(listFormat)
		if err != nil {
			return err
		}

		var entries []*catalog.Entry
		if listCategory != "" {
			category, err := catalog.ParseCategory(listCategory)
			if err != nil {
				return err
			}
			entries = catalogService.ListByCategory(category)
		} else {
			entries = catalogService.All()
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout(), cfg.Output.Width)
		return formatter.FormatEntries(presentation.FromDomainEntries(entries), format)
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&listCategory, "category", "g", "", "Only list one category (creational, structural, behavioral)")
	catalogListCmd.Flags().StringVarP(&listFormat, "format", "f", "", "Output format: table, json, or text (default from config)")
	rootCmd.AddCommand(catalogListCmd)
}
