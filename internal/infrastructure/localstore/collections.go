package localstore

import "lumiere-backend/internal/domain"

// Storage keys, one per collection. They match the original storefront's
// local storage keys so existing data carries over.
const (
	cartKey     = "lumiere-cart"
	wishlistKey = "lumiere-wishlist"
)

type cartStore struct {
	store *Store
}

// NewCartStore returns the durable store for the cart's line items.
func NewCartStore(s *Store) domain.CartStore {
	return &cartStore{store: s}
}

func (c *cartStore) Load() []domain.CartItem {
	return Load[domain.CartItem](c.store, cartKey)
}

func (c *cartStore) Save(items []domain.CartItem) error {
	return Save(c.store, cartKey, items)
}

type wishlistStore struct {
	store *Store
}

// NewWishlistStore returns the durable store for the wishlist entries.
func NewWishlistStore(s *Store) domain.WishlistStore {
	return &wishlistStore{store: s}
}

func (w *wishlistStore) Load() []domain.WishlistItem {
	return Load[domain.WishlistItem](w.store, wishlistKey)
}

func (w *wishlistStore) Save(items []domain.WishlistItem) error {
	return Save(w.store, wishlistKey, items)
}
