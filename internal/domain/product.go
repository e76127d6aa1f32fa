package domain

// --- Catalog Models ---

// CategoryRef is the denormalized category carried on every product.
// Category identity is stable for the lifetime of the catalog snapshot.
type CategoryRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Product struct {
	ID             string      `json:"_id"`
	Name           string      `json:"name"`
	Slug           string      `json:"slug"`
	Description    string      `json:"description"`
	Price          float64     `json:"price"`
	CompareAtPrice *float64    `json:"compareAtPrice,omitempty"`
	Category       CategoryRef `json:"category"`
	CategoryName   string      `json:"categoryName"`
	Image          string      `json:"image"`
	Images         []string    `json:"images"`
	Stock          int         `json:"stock"`
	IsNew          bool        `json:"isNew"`
	IsFeatured     bool        `json:"isFeatured"`
	IsActive       bool        `json:"isActive"`
	Rating         float64     `json:"rating"` // 0-5
	NumReviews     int         `json:"numReviews"`
	Tags           []string    `json:"tags"`
}

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	HeroImage   string `json:"heroImage,omitempty"`
	// ProductCount is derived: count of active products in this category,
	// recomputed on demand, never stored.
	ProductCount int `json:"productCount"`
}

// Sort modes accepted by ProductFilter.Sort
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
	SortRating    = "rating"
)

var SortModes = []string{
	SortPriceAsc,
	SortPriceDesc,
	SortNewest,
	SortRating,
}

// ProductFilter describes one catalog query. Filter kinds combine
// conjunctively; within Category, slug / id / case-insensitive name are
// alternative ways to identify the same category.
type ProductFilter struct {
	Category string   // matched against slug, id, or case-insensitive name
	MinPrice *float64 // inclusive
	MaxPrice *float64 // inclusive
	IsNew    bool
	Search   string // case-insensitive, matches name/description/tags/category name
	Sort     string
	Page     int // 1-based, defaults to 1
	Limit    int // defaults per config
}

// CatalogRepository reads the immutable catalog snapshot.
type CatalogRepository interface {
	GetProducts(filter ProductFilter) ([]Product, int64)
	GetFeatured(limit int) []Product
	GetNewArrivals(limit int) []Product
	GetProductByID(id string) (*Product, error)
	GetProductBySlug(slug string) (*Product, error)
	GetCategories() []Category
	GetCategory(idOrSlug string) (*Category, error)
}
