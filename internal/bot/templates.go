package bot

import (
	"fmt"
	"os"

	"github.com/edgard/jinjadialog/internal/config"
	"github.com/edgard/jinjadialog/internal/jinja"
)

// TemplateOptions translates the templates section into environment options.
// Telegram filters are always registered. When a catalog file is configured,
// names found in it resolve to its templates and every other identifier is
// treated as inline source.
func TemplateOptions(cfg config.TemplatesConfig) ([]jinja.Option, error) {
	opts := []jinja.Option{
		jinja.WithAutoescape(cfg.Autoescape),
		jinja.WithTrimBlocks(cfg.TrimBlocks),
		jinja.WithLStripBlocks(cfg.LStripBlocks),
		jinja.WithStrictUndefined(cfg.StrictUndefined),
		jinja.WithAsync(cfg.Async),
		jinja.WithFilters(jinja.TelegramFilters()),
	}

	if cfg.Catalog == "" {
		return opts, nil
	}

	f, err := os.Open(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to open template catalog: %w", err)
	}
	defer f.Close()

	catalog, err := jinja.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load template catalog %s: %w", cfg.Catalog, err)
	}

	return append(opts, jinja.WithLoader(jinja.NewMapLoader(catalog, jinja.LiteralLoader{}))), nil
}
