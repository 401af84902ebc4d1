package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gofcat/internal/cachemanager"
	"github.com/zjrosen/gofcat/internal/log"
	"github.com/zjrosen/gofcat/internal/ui/markdown"
)

var docRaw bool

var catalogDocCmd = &cobra.Command{
	Use:     "catalog:doc <name>...",
	Aliases: []string{"doc"},
	Short:   "Read pattern write-ups",
	Long: `Render the write-up of one or more patterns for the terminal.

Patterns without a write-up get a short page built from their summary.
Rendered pages are kept in ui.render_cache_file for ui.render_cache_ttl,
so repeated runs skip rendering. Use --raw to print the Markdown source instead.

Examples:
  gofcat catalog:doc Decorator
  gofcat doc Proxy Facade
  gofcat doc Builder --raw > builder.md`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if docRaw {
			for _, name := range args {
				doc, err := catalogService.Document(name)
				if err != nil {
					return notFoundHint(err)
				}
				if _, err := fmt.Fprint(out, doc); err != nil {
					return err
				}
			}
			return nil
		}

		renderer, err := markdown.New(cfg.UI.MarkdownStyle, cfg.Output.Width)
		if err != nil {
			return fmt.Errorf("creating markdown renderer: %w", err)
		}
		cache := cachemanager.NewInMemoryCacheManager[string, string]("write-ups", cfg.UI.RenderCacheTTL, cachemanager.DefaultCleanupInterval)
		if cachePath := cfg.RenderCachePath(); cachePath != "" {
			if err := cache.LoadFile(cachePath); err != nil {
				log.Warn(log.CatCache, "Ignoring unreadable render cache", "path", cachePath, "error", err)
			}
			defer func() {
				if err := cache.SaveFile(cachePath); err != nil {
					log.Warn(log.CatCache, "Failed to save render cache", "path", cachePath, "error", err)
				}
			}()
		}
		docs := markdown.NewCachedRenderer(renderer, catalogService, cache, cfg.UI.RenderCacheTTL)

		for _, name := range args {
			rendered, err := docs.RenderDocument(cmd.Context(), name)
			if err != nil {
				return notFoundHint(err)
			}
			if _, err := fmt.Fprint(out, rendered); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	catalogDocCmd.Flags().BoolVar(&docRaw, "raw", false, "Print the Markdown source without rendering")
	rootCmd.AddCommand(catalogDocCmd)
}
