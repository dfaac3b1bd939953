package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/edgard/jinjadialog/internal/bot"
	"github.com/edgard/jinjadialog/internal/config"
	"github.com/edgard/jinjadialog/internal/dialog"
	"github.com/edgard/jinjadialog/internal/jinja"
	"github.com/edgard/jinjadialog/internal/logger"
)

// renderBot identifies the environment the render command attaches.
type renderBot struct{ name string }

type renderFlags struct {
	template        string
	set             []string
	noAutoescape    bool
	noTrimBlocks    bool
	async           bool
	strictUndefined bool
	catalog         string
	verbose         bool
}

func newRenderCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a template with the bot template environment",
		Example: `  bot render --template 'Hello {{ name }}!' --set name=World
  bot render --catalog templates.yaml --template welcome --set user_name=Ann`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := parseAssignments(flags.set)
			if err != nil {
				return err
			}

			log := logger.New(cmd.ErrOrStderr(), "warn", false)
			if flags.verbose {
				log = logger.New(cmd.ErrOrStderr(), "debug", false)
			}

			opts, err := bot.TemplateOptions(config.TemplatesConfig{
				Autoescape:      !flags.noAutoescape,
				TrimBlocks:      !flags.noTrimBlocks,
				LStripBlocks:    !flags.noTrimBlocks,
				StrictUndefined: flags.strictUndefined,
				Async:           flags.async,
				Catalog:         flags.catalog,
			})
			if err != nil {
				return err
			}

			registry := jinja.NewRegistry(log, nil)
			id := &renderBot{name: "cli"}
			if _, err := registry.Setup(id, opts...); err != nil {
				return err
			}

			out, err := jinja.NewText(registry, flags.template, nil).
				RenderText(cmd.Context(), data, dialog.Data{dialog.BotKey: id})
			if err != nil {
				return fmt.Errorf("render failed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.template, "template", "t", "", "template source, or a template name when --catalog is set")
	f.StringArrayVar(&flags.set, "set", nil, "template variable as key=value, value parsed as YAML (repeatable)")
	f.BoolVar(&flags.noAutoescape, "no-autoescape", false, "disable HTML autoescaping")
	f.BoolVar(&flags.noTrimBlocks, "no-trim-blocks", false, "keep whitespace around block tags")
	f.BoolVar(&flags.async, "async", false, "render on a separate goroutine")
	f.BoolVar(&flags.strictUndefined, "strict", false, "fail on undefined variables")
	f.StringVar(&flags.catalog, "catalog", "", "YAML file of named templates")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "log environment lookups")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

// parseAssignments turns key=value pairs into template data. Values are
// decoded as YAML scalars, so numbers and booleans keep their type.
func parseAssignments(pairs []string) (map[string]any, error) {
	data := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}

		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		if value == nil {
			value = raw
		}
		data[key] = value
	}
	return data, nil
}
