package catalog

import "context"

// Source supplies the product catalog. Implementations: Client (HTTP with
// disk cache) and FixtureSource (bundled YAML, no network).
type Source interface {
	// Name identifies the source in logs and the status screen.
	Name() string

	// Fetch returns the current catalog. Implementations honor ctx for
	// cancellation and deadlines.
	Fetch(ctx context.Context) (*Catalog, error)
}
