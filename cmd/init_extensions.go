/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command
// registration.
//
// Extensions register during init() but are not initialised until a
// command runs. Config is loaded once and shared with every extension
// through the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/ffind/extension"
	"github.com/jpl-au/ffind/internal/config"
)

// standaloneCommands lists commands that bypass extension initialisation.
var standaloneCommands map[string]bool

var (
	initOnce sync.Once
	initErr  error
)

// initExtensions loads config and injects it into extensions.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		ctx := extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(ctx); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		standaloneCommands = extension.StandaloneCommands()
	})
}
