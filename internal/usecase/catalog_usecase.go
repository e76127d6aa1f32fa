package usecase

import (
	"fmt"

	"lumiere-backend/config"
	"lumiere-backend/internal/domain"
	"lumiere-backend/pkg/cache"
)

type CatalogUsecase struct {
	repo  domain.CatalogRepository
	cache cache.CacheService
	cfg   *config.Config
}

func NewCatalogUsecase(repo domain.CatalogRepository, cache cache.CacheService, cfg *config.Config) *CatalogUsecase {
	return &CatalogUsecase{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
	}
}

// ListProducts runs a catalog query and derives pagination metadata.
// Page defaults to 1 and limit to the configured page size.
func (u *CatalogUsecase) ListProducts(filter domain.ProductFilter) ([]domain.Product, domain.Pagination) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = u.cfg.DefaultPageSize
	}

	products, total := u.repo.GetProducts(filter)

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))

	pagination := domain.Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}

	return products, pagination
}

// SearchProducts is a convenience query over the search filter alone.
func (u *CatalogUsecase) SearchProducts(query string, page, limit int) ([]domain.Product, domain.Pagination) {
	return u.ListProducts(domain.ProductFilter{
		Search: query,
		Page:   page,
		Limit:  limit,
	})
}

// GetFeaturedProducts returns featured items in catalog order, no pagination.
func (u *CatalogUsecase) GetFeaturedProducts(limit int) []domain.Product {
	if limit < 1 {
		limit = u.cfg.FeaturedLimit
	}
	return u.repo.GetFeatured(limit)
}

// GetNewArrivals returns new items in catalog order, no pagination.
func (u *CatalogUsecase) GetNewArrivals(limit int) []domain.Product {
	if limit < 1 {
		limit = u.cfg.FeaturedLimit
	}
	return u.repo.GetNewArrivals(limit)
}

func (u *CatalogUsecase) GetProductByID(id string) (*domain.Product, error) {
	return u.repo.GetProductByID(id)
}

func (u *CatalogUsecase) GetProductDetails(slug string) (*domain.Product, error) {
	key := fmt.Sprintf("product:slug:%s", slug)
	if val, found := u.cache.Get(key); found {
		return val.(*domain.Product), nil
	}

	product, err := u.repo.GetProductBySlug(slug)
	if err != nil {
		return nil, err
	}
	u.cache.Set(key, product, u.cfg.CacheProductTTL)

	return product, nil
}

// GetCategories returns all categories with derived product counts. The
// counts only change when the catalog snapshot does, so they cache well.
func (u *CatalogUsecase) GetCategories() []domain.Category {
	key := "category:list:all"
	if val, found := u.cache.Get(key); found {
		return val.([]domain.Category)
	}

	cats := u.repo.GetCategories()
	u.cache.Set(key, cats, u.cfg.CacheCategoryTTL)
	return cats
}

func (u *CatalogUsecase) GetCategory(idOrSlug string) (*domain.Category, error) {
	return u.repo.GetCategory(idOrSlug)
}
