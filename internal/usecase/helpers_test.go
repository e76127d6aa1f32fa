package usecase

import (
	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/repository/memory"
)

// P1 costs 10 and is new, P2 costs 20 and is not.
func testCatalog() domain.CatalogRepository {
	handbags := domain.CategoryRef{ID: "cat-1", Name: "Handbags", Slug: "handbags"}
	return memory.NewCatalogRepository([]domain.Product{
		{
			ID: "p1", Name: "Leather Tote", Slug: "leather-tote",
			Price: 10, Image: "/tote.jpg",
			Category: handbags, CategoryName: "Handbags",
			IsNew: true, IsActive: true,
		},
		{
			ID: "p2", Name: "Evening Clutch", Slug: "evening-clutch",
			Price: 20, Image: "/clutch.jpg",
			Category: handbags, CategoryName: "Handbags",
			IsActive: true,
		},
	}, []domain.Category{
		{ID: "cat-1", Name: "Handbags", Slug: "handbags"},
	})
}

type fakeCartStore struct {
	items []domain.CartItem
	saves int
}

func (s *fakeCartStore) Load() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *fakeCartStore) Save(items []domain.CartItem) error {
	s.items = make([]domain.CartItem, len(items))
	copy(s.items, items)
	s.saves++
	return nil
}

type fakeWishlistStore struct {
	items []domain.WishlistItem
	saves int
}

func (s *fakeWishlistStore) Load() []domain.WishlistItem {
	out := make([]domain.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *fakeWishlistStore) Save(items []domain.WishlistItem) error {
	s.items = make([]domain.WishlistItem, len(items))
	copy(s.items, items)
	s.saves++
	return nil
}

// recorderNotifier captures emitted notifications by kind.
type recorderNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *recorderNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recorderNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }
func (n *recorderNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }
