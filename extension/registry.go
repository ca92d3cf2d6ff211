// registry.go holds the process-wide extension registry. Extensions
// self-register during init(), before main() runs.
//
// Register panics on a duplicate name, following database/sql.Register:
// a clash is a programming error visible on the first run. Registration
// order is kept so commands list the same way every time.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension to the registry. Called from init() functions.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// StandaloneCommands returns the names of every command declared by a
// Standalone extension.
func StandaloneCommands() map[string]bool {
	cmds := make(map[string]bool)
	for _, ext := range All() {
		if s, ok := ext.(Standalone); ok {
			for _, name := range s.StandaloneCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}
