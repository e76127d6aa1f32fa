package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/internal/domain"
)

func newCartUsecase(store *fakeCartStore, notifier *recorderNotifier) *CartUsecase {
	return NewCartUsecase(testCatalog(), store, notifier, 1000)
}

func TestAddToCart(t *testing.T) {
	t.Run("MergesDuplicateAdditions", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		_, err := uc.AddToCart("p1", 2)
		require.NoError(t, err)
		cart, err := uc.AddToCart("p1", 3)
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, 5, cart.TotalItems)
		assert.Equal(t, 50.0, cart.TotalPrice)
	})

	t.Run("OneLinePerDistinctProduct", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		uc.AddToCart("p1", 1)
		uc.AddToCart("p2", 1)
		cart, err := uc.AddToCart("p1", 1)
		require.NoError(t, err)

		require.Len(t, cart.Items, 2)
		assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
		// Line ids are synthetic, distinct from product ids
		assert.NotEqual(t, cart.Items[0].ID, cart.Items[0].ProductID)
	})

	t.Run("SnapshotsProductAtAddTime", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		cart, err := uc.AddToCart("p2", 1)
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Evening Clutch", cart.Items[0].Name)
		assert.Equal(t, "/clutch.jpg", cart.Items[0].Image)
		assert.Equal(t, 20.0, cart.Items[0].Price)
	})

	t.Run("UnknownProductDoesNotMutate", func(t *testing.T) {
		notifier := &recorderNotifier{}
		store := &fakeCartStore{}
		uc := newCartUsecase(store, notifier)

		cart, err := uc.AddToCart("ghost", 1)

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Empty(t, cart.Items)
		assert.Zero(t, store.saves)
		assert.Equal(t, []string{"Product not found"}, notifier.errors)
	})

	t.Run("NonPositiveQuantityDefaultsToOne", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		cart, err := uc.AddToCart("p1", 0)
		require.NoError(t, err)
		assert.Equal(t, 1, cart.TotalItems)
	})

	t.Run("QuantityCapRejectsWithoutMutation", func(t *testing.T) {
		notifier := &recorderNotifier{}
		uc := NewCartUsecase(testCatalog(), &fakeCartStore{}, notifier, 5)

		uc.AddToCart("p1", 4)
		cart, err := uc.AddToCart("p1", 2)

		require.NoError(t, err)
		assert.Equal(t, 4, cart.TotalItems)
		assert.Len(t, notifier.errors, 1)
	})

	t.Run("EmitsSuccessNotification", func(t *testing.T) {
		notifier := &recorderNotifier{}
		uc := newCartUsecase(&fakeCartStore{}, notifier)

		uc.AddToCart("p1", 1)
		assert.Equal(t, []string{"Added to cart"}, notifier.successes)
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("OverwritesInPlace", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		cart, _ := uc.AddToCart("p1", 2)
		itemID := cart.Items[0].ID

		cart = uc.UpdateQuantity(itemID, 7)
		assert.Equal(t, 7, cart.TotalItems)
		assert.Equal(t, 70.0, cart.TotalPrice)
	})

	t.Run("NonPositiveQuantityRemovesLine", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		cart, _ := uc.AddToCart("p1", 3)
		before := cart.TotalItems
		itemID := cart.Items[0].ID

		cart = uc.UpdateQuantity(itemID, 0)
		assert.Empty(t, cart.Items)
		assert.Equal(t, before-3, cart.TotalItems)
	})

	t.Run("UnknownLineIsSilentNoOp", func(t *testing.T) {
		store := &fakeCartStore{}
		uc := newCartUsecase(store, &recorderNotifier{})

		uc.AddToCart("p1", 2)
		savesBefore := store.saves

		cart := uc.UpdateQuantity("no-such-line", 9)
		assert.Equal(t, 2, cart.TotalItems)
		assert.Equal(t, savesBefore, store.saves)
	})
}

func TestRemoveFromCart(t *testing.T) {
	t.Run("RemoveIsIdempotent", func(t *testing.T) {
		uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

		cart, _ := uc.AddToCart("p1", 1)
		itemID := cart.Items[0].ID

		once := uc.RemoveFromCart(itemID)
		twice := uc.RemoveFromCart(itemID)

		assert.Equal(t, once, twice)
		assert.Empty(t, twice.Items)
	})
}

func TestClearCart(t *testing.T) {
	uc := newCartUsecase(&fakeCartStore{}, &recorderNotifier{})

	uc.AddToCart("p1", 2)
	uc.AddToCart("p2", 1)

	cart := uc.ClearCart()
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartPersistence(t *testing.T) {
	t.Run("PersistsAfterEveryMutation", func(t *testing.T) {
		store := &fakeCartStore{}
		uc := newCartUsecase(store, &recorderNotifier{})

		cart, _ := uc.AddToCart("p1", 2)
		assert.Equal(t, 1, store.saves)

		uc.UpdateQuantity(cart.Items[0].ID, 5)
		assert.Equal(t, 2, store.saves)

		uc.RemoveFromCart(cart.Items[0].ID)
		assert.Equal(t, 3, store.saves)

		uc.ClearCart()
		assert.Equal(t, 4, store.saves)
	})

	t.Run("LoadsDurableStateAtConstruction", func(t *testing.T) {
		store := &fakeCartStore{items: []domain.CartItem{
			{ID: "line-1", ProductID: "p1", Price: 10, Quantity: 4},
		}}

		uc := newCartUsecase(store, &recorderNotifier{})
		cart := uc.Cart()

		assert.Equal(t, 4, cart.TotalItems)
		assert.Equal(t, 40.0, cart.TotalPrice)
	})

	t.Run("RefreshIsLastWriterWins", func(t *testing.T) {
		store := &fakeCartStore{}
		uc := newCartUsecase(store, &recorderNotifier{})

		uc.AddToCart("p1", 2)

		// Another writer replaces the durable value; refresh discards
		// our in-memory state, no merge.
		store.items = []domain.CartItem{
			{ID: "line-x", ProductID: "p2", Price: 20, Quantity: 1},
		}

		cart := uc.RefreshCart()
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "p2", cart.Items[0].ProductID)
		assert.Equal(t, 20.0, cart.TotalPrice)
	})
}
