package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixtureData []byte

// fixtureFile mirrors the YAML layout of the bundled catalog.
type fixtureFile struct {
	Products []fixtureProduct `yaml:"products"`
}

type fixtureProduct struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	PriceCents  int64    `yaml:"price_cents"`
	Currency    string   `yaml:"currency"`
	Tags        []string `yaml:"tags"`
	ImageURL    string   `yaml:"image_url"`
	InStock     bool     `yaml:"in_stock"`
}

// FixtureSource serves the catalog bundled into the binary. It is used with
// -use-mocks and in tests; no network or cache involved.
type FixtureSource struct {
	catalog *Catalog
}

// NewFixtureSource parses the embedded fixture catalog.
func NewFixtureSource() (*FixtureSource, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(fixtureData, &file); err != nil {
		return nil, fmt.Errorf("catalog: parse fixtures: %w", err)
	}

	cat := &Catalog{UpdatedAt: time.Now()}
	for _, fp := range file.Products {
		cat.Products = append(cat.Products, Product{
			ID:          fp.ID,
			Title:       fp.Title,
			Description: fp.Description,
			PriceCents:  fp.PriceCents,
			Currency:    fp.Currency,
			Tags:        fp.Tags,
			ImageURL:    fp.ImageURL,
			InStock:     fp.InStock,
		})
	}
	return &FixtureSource{catalog: cat}, nil
}

// Name implements Source.
func (s *FixtureSource) Name() string {
	return "fixtures"
}

// Fetch implements Source. It never fails and ignores ctx beyond the
// interface contract.
func (s *FixtureSource) Fetch(_ context.Context) (*Catalog, error) {
	return s.catalog, nil
}
