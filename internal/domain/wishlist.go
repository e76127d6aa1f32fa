package domain

// WishlistItem is one saved product. The wishlist has set semantics keyed by
// ProductID: at most one entry per product.
type WishlistItem struct {
	ID        string  `json:"_id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Category  string  `json:"category"`
}

// WishlistStore persists the wishlist collection. Load returns an empty
// collection when the stored content is absent or unreadable.
type WishlistStore interface {
	Load() []WishlistItem
	Save(items []WishlistItem) error
}
