// Package theme provides named color palettes for the vitrine screens.
// Built-in themes are registered at init; custom themes load from TOML files
// in the config directory.
package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme is the color palette consumed by screens via lipgloss.
type Theme struct {
	Name string

	// Base colors (hex, e.g. "#1e1e1e").
	Background string
	Foreground string
	Dim        string
	Accent     string

	// Screen chrome.
	Border      string
	BorderFocus string
	Title       string

	// Catalog semantics.
	Price      string
	InStock    string
	OutOfStock string
	Err        string

	// Search and help.
	SearchHighlight string
	HelpKey         string
	HelpDesc        string
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	registerBuiltins()
}

// Register adds or replaces a theme under its lowercased name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// Get returns a named theme, falling back to "default" if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Has reports whether a theme with the given name is registered.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all registered theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
