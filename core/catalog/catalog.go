// Package catalog holds the product catalog. Products are fixed at
// startup and never mutated, so the catalog is safe for concurrent reads.
package catalog

import "sort"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Specs       Specs   `json:"specs"`
	Image       string  `json:"image"`
	Color       string  `json:"color"`
	IsNew       bool    `json:"isNew,omitempty"`
}

type Specs struct {
	Screen    string `json:"screen"`
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	Camera    string `json:"camera"`
	Battery   string `json:"battery"`
}

type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog over the given products, keeping their order.
func New(products []Product) *Catalog {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &Catalog{
		products: products,
		byID:     byID,
	}
}

// List returns the products, restricted to one brand when brand is not empty.
func (c *Catalog) List(brand string) []Product {
	if brand == "" {
		out := make([]Product, len(c.products))
		copy(out, c.products)
		return out
	}

	var out []Product
	for _, p := range c.products {
		if p.Brand == brand {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the product with the given id.
func (c *Catalog) Find(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Brands returns the distinct brands in the catalog, sorted.
func (c *Catalog) Brands() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	sort.Strings(out)
	return out
}
