package usecase

import (
	"fmt"
	"sync"

	"lumiere-backend/internal/domain"
	"lumiere-backend/pkg/logger"
	"lumiere-backend/pkg/utils"
)

// CartUsecase owns the cart's line-item collection. It is the sole writer of
// record: every mutation goes through it, is persisted synchronously, and
// returns a fresh snapshot with totals recomputed from the full collection.
type CartUsecase struct {
	catalog     domain.CatalogRepository
	store       domain.CartStore
	notifier    domain.Notifier
	maxQuantity int

	mu    sync.Mutex
	items []domain.CartItem
}

// NewCartUsecase loads the durable collection into memory. A missing or
// corrupt store entry yields an empty cart.
func NewCartUsecase(catalog domain.CatalogRepository, store domain.CartStore, notifier domain.Notifier, maxQuantity int) *CartUsecase {
	return &CartUsecase{
		catalog:     catalog,
		store:       store,
		notifier:    notifier,
		maxQuantity: maxQuantity,
		items:       store.Load(),
	}
}

// Cart returns a snapshot of the current state.
func (u *CartUsecase) Cart() domain.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshot()
}

// AddToCart resolves the product, then either increments the existing line's
// quantity or appends a new line carrying a price/name/image snapshot taken
// now. Later catalog changes do not affect existing lines.
func (u *CartUsecase) AddToCart(productID string, quantity int) (domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	product, err := u.catalog.GetProductByID(productID)
	if err != nil {
		u.notifier.Error("Product not found")
		u.mu.Lock()
		defer u.mu.Unlock()
		return u.snapshot(), err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if i := u.indexOfProduct(productID); i >= 0 {
		next := u.items[i].Quantity + quantity
		if next > u.maxQuantity {
			u.notifier.Error(fmt.Sprintf("Quantity limit of %d reached", u.maxQuantity))
			return u.snapshot(), nil
		}
		u.items[i].Quantity = next
	} else {
		if quantity > u.maxQuantity {
			u.notifier.Error(fmt.Sprintf("Quantity limit of %d reached", u.maxQuantity))
			return u.snapshot(), nil
		}
		u.items = append(u.items, domain.CartItem{
			ID:        utils.GenerateUUID(),
			ProductID: product.ID,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	u.persist()
	u.notifier.Success("Added to cart")
	return u.snapshot(), nil
}

// UpdateQuantity overwrites a line's quantity. A non-positive quantity is a
// removal request, not an error; an unknown id is a silent no-op.
func (u *CartUsecase) UpdateQuantity(itemID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return u.RemoveFromCart(itemID)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.items {
		if u.items[i].ID != itemID {
			continue
		}
		if quantity > u.maxQuantity {
			u.notifier.Error(fmt.Sprintf("Quantity limit of %d reached", u.maxQuantity))
			return u.snapshot()
		}
		u.items[i].Quantity = quantity
		u.persist()
		break
	}
	return u.snapshot()
}

// RemoveFromCart drops the matching line; an unknown id is a silent no-op.
func (u *CartUsecase) RemoveFromCart(itemID string) domain.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := range u.items {
		if u.items[i].ID != itemID {
			continue
		}
		u.items = append(u.items[:i], u.items[i+1:]...)
		u.persist()
		u.notifier.Success("Item removed from cart")
		break
	}
	return u.snapshot()
}

// ClearCart empties the collection unconditionally.
func (u *CartUsecase) ClearCart() domain.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = []domain.CartItem{}
	u.persist()
	u.notifier.Success("Cart cleared")
	return u.snapshot()
}

// RefreshCart discards the in-memory state in favor of whatever was last
// durably written. Last-writer-wins; no merge.
func (u *CartUsecase) RefreshCart() domain.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.items = u.store.Load()
	return u.snapshot()
}

// persist writes the full collection. The store is best-effort: a failed
// write is logged, in-memory state stays authoritative.
func (u *CartUsecase) persist() {
	if err := u.store.Save(u.items); err != nil {
		logger.Warn().Err(err).Msg("failed to persist cart")
	}
}

// snapshot copies the items and recomputes totals from scratch. Callers must
// hold the mutex.
func (u *CartUsecase) snapshot() domain.Cart {
	items := make([]domain.CartItem, len(u.items))
	copy(items, u.items)

	cart := domain.Cart{Items: items}
	for _, item := range items {
		cart.TotalItems += item.Quantity
		cart.TotalPrice += item.Price * float64(item.Quantity)
	}
	return cart
}

func (u *CartUsecase) indexOfProduct(productID string) int {
	for i := range u.items {
		if u.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
