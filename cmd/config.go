package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twiced-technology-gmbh/ttd/internal/clierr"
	"github.com/twiced-technology-gmbh/ttd/internal/config"
	"github.com/twiced-technology-gmbh/ttd/internal/filter"
	"github.com/twiced-technology-gmbh/ttd/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify settings",
		Long:  `View all settings, get a specific key, or set a writable value.`,
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runConfigShow(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get KEY",
		Short: "Get a setting",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigGet(cmd, args[0])
		},
	}, &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting",
		Args:  exactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(cmd, args[0], args[1])
		},
	})
	return cmd
}

// configAccessor describes how to get and set a settings key.
type configAccessor struct {
	get      func(*config.Config) any
	set      func(*config.Config, string) error
	writable bool
}

func configAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"version": {
			get: func(c *config.Config) any { return c.Version },
		},
		"data_file": {
			get: func(c *config.Config) any { return c.DataFile },
			set: func(c *config.Config, v string) error {
				c.DataFile = strings.TrimSpace(v)
				return nil
			},
			writable: true,
		},
		"output": {
			get: func(c *config.Config) any { return c.Output },
			set: func(c *config.Config, v string) error {
				c.Output = strings.ToLower(strings.TrimSpace(v))
				return nil // validation checks the allowed formats
			},
			writable: true,
		},
		"greeting": {
			get: func(c *config.Config) any { return c.ShowGreeting() },
			set: func(c *config.Config, v string) error {
				b, err := parseBoolSetting("greeting", v)
				if err != nil {
					return err
				}
				c.SetGreeting(b)
				return nil
			},
			writable: true,
		},
		"default_filter": {
			get: func(c *config.Config) any { return c.DefaultFilter },
			set: func(c *config.Config, v string) error {
				sel, ok := filter.LookupSelector(v)
				if !ok {
					names := make([]string, 0, len(filter.Selectors()))
					for _, s := range filter.Selectors() {
						names = append(names, string(s))
					}
					return clierr.Newf(clierr.InvalidInput,
						"invalid default_filter %q; allowed: %s", v, strings.Join(names, ", "))
				}
				c.DefaultFilter = string(sel)
				return nil
			},
			writable: true,
		},
		"strict_exit": {
			get: func(c *config.Config) any { return c.StrictExit },
			set: func(c *config.Config, v string) error {
				b, err := parseBoolSetting("strict_exit", v)
				if err != nil {
					return err
				}
				c.StrictExit = b
				return nil
			},
			writable: true,
		},
	}
}

// allConfigKeys returns settings keys in display order.
func allConfigKeys() []string {
	return []string{
		"version",
		"data_file",
		"output",
		"greeting",
		"default_filter",
		"strict_exit",
	}
}

func parseBoolSetting(key, v string) (bool, error) {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, clierr.Newf(clierr.InvalidInput, "invalid %s %q: must be true or false", key, v)
	}
	return b, nil
}

func (a *app) runConfigShow(cmd *cobra.Command) error {
	accessors := configAccessors()
	w := cmd.OutOrStdout()

	if a.outputFormat() == output.FormatJSON {
		m := make(map[string]any, len(accessors))
		for _, key := range allConfigKeys() {
			m[key] = accessors[key].get(a.cfg)
		}
		return output.JSON(w, m)
	}

	for _, key := range allConfigKeys() {
		fmt.Fprintf(w, "%-16s %v\n", key, formatConfigValue(accessors[key].get(a.cfg)))
	}
	return nil
}

func (a *app) runConfigGet(cmd *cobra.Command, key string) error {
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key)
	}

	val := acc.get(a.cfg)
	if a.outputFormat() == output.FormatJSON {
		return output.JSON(cmd.OutOrStdout(), val)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatConfigValue(val))
	return nil
}

func (a *app) runConfigSet(cmd *cobra.Command, key, value string) error {
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key)
	}
	if !acc.writable {
		return clierr.Newf(clierr.InvalidInput, "config key %q is read-only", key)
	}

	// Reload so environment overrides applied to a.cfg are not persisted.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := acc.set(cfg, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalid) {
			return clierr.Wrap(clierr.InvalidInput, err, "invalid value")
		}
		return err
	}
	if err := cfg.Save(); err != nil {
		return clierr.Wrap(clierr.IOError, err, "saving settings")
	}

	w := cmd.OutOrStdout()
	if a.outputFormat() == output.FormatJSON {
		return output.JSON(w, map[string]any{"key": key, "value": acc.get(cfg)})
	}
	output.Messagef(w, "Set %s = %v", key, formatConfigValue(acc.get(cfg)))
	return nil
}

func formatConfigValue(val any) string {
	if s, ok := val.(string); ok && s == "" {
		return "--"
	}
	return fmt.Sprintf("%v", val)
}
