package memory

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"lumiere-backend/internal/domain"
	"lumiere-backend/pkg/utils"
)

// Catalog is the startup snapshot shape: a single JSON document holding both
// collections.
type Catalog struct {
	Products   []domain.Product  `json:"products"`
	Categories []domain.Category `json:"categories"`
}

// LoadCatalog reads the catalog snapshot from path. Records missing a slug
// get one generated from their name, so lookups by slug always have a target.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	for i := range catalog.Products {
		p := &catalog.Products[i]
		if p.Slug == "" {
			p.Slug = utils.GenerateSlug(p.Name)
		}
		if p.CategoryName == "" {
			p.CategoryName = p.Category.Name
		}
	}
	for i := range catalog.Categories {
		c := &catalog.Categories[i]
		if c.Slug == "" {
			c.Slug = utils.GenerateSlug(c.Name)
		}
	}

	return &catalog, nil
}
