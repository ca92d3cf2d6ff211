// Package all imports all built-in ffind extensions.
// Import this package to register every command.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/ffind/extension/core"
	_ "github.com/jpl-au/ffind/extension/search"
)
