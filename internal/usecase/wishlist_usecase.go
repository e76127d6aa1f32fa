package usecase

import (
	"sync"

	"lumiere-backend/internal/domain"
	"lumiere-backend/pkg/logger"
	"lumiere-backend/pkg/utils"
)

// WishlistUsecase owns the wishlist collection. Entries have set semantics
// keyed by product id: adding an already-saved product is an idempotent no-op.
type WishlistUsecase struct {
	catalog  domain.CatalogRepository
	store    domain.WishlistStore
	notifier domain.Notifier

	mu    sync.Mutex
	items []domain.WishlistItem
}

func NewWishlistUsecase(catalog domain.CatalogRepository, store domain.WishlistStore, notifier domain.Notifier) *WishlistUsecase {
	return &WishlistUsecase{
		catalog:  catalog,
		store:    store,
		notifier: notifier,
		items:    store.Load(),
	}
}

// Items returns a snapshot of the saved entries.
func (u *WishlistUsecase) Items() []domain.WishlistItem {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

// AddToWishlist appends an entry with a snapshot of the product. An unknown
// product is signaled and leaves the wishlist untouched; an already-present
// product emits an informational notice and mutates nothing.
func (u *WishlistUsecase) AddToWishlist(productID string) ([]domain.WishlistItem, error) {
	product, err := u.catalog.GetProductByID(productID)
	if err != nil {
		u.notifier.Error("Product not found")
		u.mu.Lock()
		defer u.mu.Unlock()
		return u.snapshot(), err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.contains(productID) {
		u.notifier.Info("Already in wishlist")
		return u.snapshot(), nil
	}

	u.items = append(u.items, domain.WishlistItem{
		ID:        utils.GenerateUUID(),
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Price:     product.Price,
		Category:  product.CategoryName,
	})

	u.persist()
	u.notifier.Success("Added to wishlist")
	return u.snapshot(), nil
}

// RemoveFromWishlist drops the entry for the product; unknown ids are a
// silent no-op.
func (u *WishlistUsecase) RemoveFromWishlist(productID string) []domain.WishlistItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.items {
		if u.items[i].ProductID != productID {
			continue
		}
		u.items = append(u.items[:i], u.items[i+1:]...)
		u.persist()
		u.notifier.Success("Removed from wishlist")
		break
	}
	return u.snapshot()
}

// IsInWishlist reports membership by product id.
func (u *WishlistUsecase) IsInWishlist(productID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.contains(productID)
}

// ClearWishlist empties the collection unconditionally.
func (u *WishlistUsecase) ClearWishlist() []domain.WishlistItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = []domain.WishlistItem{}
	u.persist()
	u.notifier.Success("Wishlist cleared")
	return u.snapshot()
}

// Refresh reloads from the durable store, discarding in-memory state.
func (u *WishlistUsecase) Refresh() []domain.WishlistItem {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = u.store.Load()
	return u.snapshot()
}

func (u *WishlistUsecase) persist() {
	if err := u.store.Save(u.items); err != nil {
		logger.Warn().Err(err).Msg("failed to persist wishlist")
	}
}

func (u *WishlistUsecase) snapshot() []domain.WishlistItem {
	items := make([]domain.WishlistItem, len(u.items))
	copy(items, u.items)
	return items
}

func (u *WishlistUsecase) contains(productID string) bool {
	for i := range u.items {
		if u.items[i].ProductID == productID {
			return true
		}
	}
	return false
}
