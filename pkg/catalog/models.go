// Package catalog defines the product data model and the sources that
// provide it: an HTTP client backed by the disk cache, and a fixture source
// for offline use. The models are plain JSON records; screens consume them
// through the helper methods.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Product is a single catalog item.
type Product struct {
	// ID is the stable product identifier (e.g. "P1").
	ID string `json:"id"`

	// Title is the display name.
	Title string `json:"title"`

	// Description is the long-form text shown on the details screen.
	Description string `json:"description"`

	// PriceCents is the unit price in minor currency units.
	PriceCents int64 `json:"price_cents"`

	// Currency is the ISO 4217 code, e.g. "EUR".
	Currency string `json:"currency"`

	// Tags are free-form labels used by search.
	Tags []string `json:"tags,omitempty"`

	// ImageURL points at a preview image, if the product has one.
	ImageURL string `json:"image_url,omitempty"`

	// InStock reports current availability.
	InStock bool `json:"in_stock"`
}

// DisplayPrice renders the price for the UI, e.g. "42.00 EUR".
func (p Product) DisplayPrice() string {
	cur := p.Currency
	if cur == "" {
		cur = "EUR"
	}
	return fmt.Sprintf("%d.%02d %s", p.PriceCents/100, p.PriceCents%100, cur)
}

// Matches reports whether the product matches a search query. Matching is
// case-insensitive substring search across ID, title, description, and tags.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.ID), q) ||
		strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Catalog is the full product listing returned by a source.
type Catalog struct {
	// UpdatedAt is when the source last refreshed the listing.
	UpdatedAt time.Time `json:"updated_at"`

	// Products is the listing, in source order.
	Products []Product `json:"products"`
}

// FindByID returns the product with the given ID, or false if absent.
func (c *Catalog) FindByID(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Search returns products matching query, sorted by title. An empty query
// returns everything.
func (c *Catalog) Search(query string) []Product {
	var out []Product
	for _, p := range c.Products {
		if p.Matches(query) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.Products)
}
