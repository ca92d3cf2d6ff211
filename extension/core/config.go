// config.go implements the "ffind config" command.
//
// Config cascades like git: local config (.ffind/config.yaml) takes
// precedence over global (~/.ffind/config.yaml). --local forces the local
// file even if it doesn't exist yet.

package core

import (
	"fmt"
	"slices"

	"github.com/jpl-au/ffind/cmd"
	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/config"
	"github.com/jpl-au/ffind/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  ffind config                              # show config
  ffind config search.threads               # show one value
  ffind config search.threads 8             # set a value
  ffind config search.exclude ".git,target" # replace the exclude list
  ffind config --unset search.threads       # back to the default

Configuration locations:
  Global: ~/.ffind/config.yaml
  Local:  .ffind/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.ffind/config.yaml)")
	c.Flags().Bool(extension.FlagUnset, false, "Remove the key so its default applies")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)
	unset, _ := c.Flags().GetBool(extension.FlagUnset)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	if unset {
		if len(args) != 1 {
			return cmd.PrintJSONError(fmt.Errorf("--unset takes exactly one key"))
		}
		return unsetKey(cfg, args[0], scopeName)
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Detail("scope", scopeName).Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		keys := config.ValidKeys()
		slices.Sort(keys)
		for _, k := range keys {
			if cfg.IsSet(k) {
				fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
			} else {
				fmt.Fprintf(cmd.Out(), "%s: %s (default)\n", k, all[k])
			}
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		l := log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scopeName)
		if err := cfg.Set(args[0], args[1]); err != nil {
			l.Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}
		saveErr := cfg.Save()
		l.Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}

func unsetKey(cfg *config.Config, key, scopeName string) error {
	l := log.Event("core:config", "unset").Detail("key", key).Detail("scope", scopeName)
	if err := cfg.Unset(key); err != nil {
		l.Write(err)
		return cmd.PrintJSONError(fmt.Errorf("config unset %q: %w", key, err))
	}
	err := cfg.Save()
	l.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config save: %w", err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"key": key, "scope": scopeName})
	}
	fmt.Fprintf(cmd.Out(), "%s unset (%s)\n", key, scopeName)
	return nil
}
