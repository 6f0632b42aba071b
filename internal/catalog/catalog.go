package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront/internal/models"
)

// Catalog is the static product list, loaded once at startup and treated as
// immutable for the process lifetime.
type Catalog struct {
	products []models.Product
}

func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &Catalog{products: products}, nil
}

func (c *Catalog) Products() []models.Product { return c.products }

// FindProduct returns nil when the id is unknown. A cart may reference
// products that were removed from the catalog, so nil is a normal result.
func (c *Catalog) FindProduct(productID int) *models.Product {
	for i := range c.products {
		if c.products[i].ID == productID {
			return &c.products[i]
		}
	}
	return nil
}

func (c *Catalog) FindVariant(p *models.Product, variantID *int) *models.Variant {
	if p == nil || variantID == nil {
		return nil
	}
	for i := range p.Variants {
		if p.Variants[i].ID == *variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
