// context.go defines the Context handed to extensions during Init.
//
// Extensions receive Context during Init(), not at construction, because
// they register from init() before flags are parsed and config is loaded.

package extension

import "github.com/jpl-au/ffind/internal/config"

// Context provides extensions controlled access to shared state.
type Context interface {
	// Config returns the merged user configuration.
	Config() *config.Config
}

type extContext struct {
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config) Context {
	return &extContext{cfg: cfg}
}

// Config returns the loaded configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}
