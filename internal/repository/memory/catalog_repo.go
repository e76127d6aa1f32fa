package memory

import (
	"sort"
	"strings"

	"lumiere-backend/internal/domain"
)

// CatalogRepository serves queries from an immutable in-process snapshot of
// products and categories. The snapshot is supplied whole at construction and
// never mutated afterwards.
type CatalogRepository struct {
	products   []domain.Product
	categories []domain.Category
}

func NewCatalogRepository(products []domain.Product, categories []domain.Category) *CatalogRepository {
	return &CatalogRepository{
		products:   products,
		categories: categories,
	}
}

// GetProducts applies the filter conjunctively, sorts if requested, and
// returns the requested page plus the total filtered count. A page beyond the
// last yields an empty slice with the total intact.
func (r *CatalogRepository) GetProducts(filter domain.ProductFilter) ([]domain.Product, int64) {
	filtered := r.filter(filter)

	if filter.Sort != "" {
		sortProducts(filtered, filter.Sort)
	}

	total := int64(len(filtered))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 12
	}

	start := (page - 1) * limit
	if start >= len(filtered) {
		return []domain.Product{}, total
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total
}

func (r *CatalogRepository) filter(filter domain.ProductFilter) []domain.Product {
	filtered := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Category != "" && !matchesCategory(p, filter.Category) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.IsNew && !p.IsNew {
			continue
		}
		if filter.Search != "" && !matchesSearch(p, filter.Search) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// matchesCategory treats slug, id, and case-insensitive name as alternative
// forms identifying the same category; slug is checked first, then id, then
// name. Matching runs against the product's denormalized category.
func matchesCategory(p domain.Product, category string) bool {
	return p.Category.Slug == category ||
		p.Category.ID == category ||
		strings.EqualFold(p.Category.Name, category)
}

// matchesSearch matches if any of name, description, tags, or the
// denormalized category name contains the query, case-insensitively.
func matchesSearch(p domain.Product, search string) bool {
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.CategoryName), q)
}

// sortProducts reorders in place. Stable sorts keep the input order for equal
// keys, so identical input always yields identical output. "newest" is a
// stable partition on IsNew (the model carries no creation timestamp).
func sortProducts(products []domain.Product, mode string) {
	switch mode {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case domain.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}

// GetFeatured returns featured products in catalog order, truncated to limit.
func (r *CatalogRepository) GetFeatured(limit int) []domain.Product {
	return r.collectFlagged(limit, func(p domain.Product) bool { return p.IsFeatured })
}

// GetNewArrivals returns new products in catalog order, truncated to limit.
func (r *CatalogRepository) GetNewArrivals(limit int) []domain.Product {
	return r.collectFlagged(limit, func(p domain.Product) bool { return p.IsNew })
}

func (r *CatalogRepository) collectFlagged(limit int, match func(domain.Product) bool) []domain.Product {
	if limit < 1 {
		limit = 8
	}
	out := make([]domain.Product, 0, limit)
	for _, p := range r.products {
		if !match(p) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (r *CatalogRepository) GetProductByID(id string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *CatalogRepository) GetProductBySlug(slug string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].Slug == slug {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

// GetCategories returns the categories with ProductCount recomputed as the
// number of active products whose category slug matches.
func (r *CatalogRepository) GetCategories() []domain.Category {
	counts := make(map[string]int, len(r.categories))
	for _, p := range r.products {
		if p.IsActive {
			counts[p.Category.Slug]++
		}
	}

	out := make([]domain.Category, len(r.categories))
	for i, c := range r.categories {
		c.ProductCount = counts[c.Slug]
		out[i] = c
	}
	return out
}

// GetCategory resolves a category by id or slug.
func (r *CatalogRepository) GetCategory(idOrSlug string) (*domain.Category, error) {
	for _, c := range r.GetCategories() {
		if c.ID == idOrSlug || c.Slug == idOrSlug {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}
