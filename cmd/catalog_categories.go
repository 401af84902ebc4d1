package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/gofcat/internal/presentation"
)

var categoriesFormat string

var catalogCategoriesCmd = &cobra.Command{
	Use:     "catalog:categories",
	Aliases: []string{"categories"},
	Short:   "Show the catalog overview by category",
	Long: `Show each category with its pattern count and pattern names.

Examples:
  gofcat catalog:categories
  gofcat categories --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveFormat(categoriesFormat)
		if err != nil {
			return err
		}

		dtos := presentation.FromCategorySummaries(catalogService.Summaries(), catalogService)
		formatter := presentation.NewFormatter(cmd.OutOrStdout(), cfg.Output.Width)
		return formatter.FormatCategories(dtos, format)
	},
}

func init() {
	catalogCategoriesCmd.Flags().StringVarP(&categoriesFormat, "format", "f", "", "Output format: table, json, or text (default from config)")
	rootCmd.AddCommand(catalogCategoriesCmd)
}
