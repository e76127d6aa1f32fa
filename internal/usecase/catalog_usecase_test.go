package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere-backend/config"
	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/infrastructure/cache"
)

func newCatalogUsecase() *CatalogUsecase {
	cfg := &config.Config{
		CacheCategoryTTL: time.Minute,
		CacheProductTTL:  time.Minute,
		DefaultPageSize:  12,
		FeaturedLimit:    8,
	}
	return NewCatalogUsecase(testCatalog(), cache.NewMemoryCache(time.Minute, time.Minute), cfg)
}

func TestListProducts(t *testing.T) {
	uc := newCatalogUsecase()

	t.Run("DefaultsPageAndLimit", func(t *testing.T) {
		_, pagination := uc.ListProducts(domain.ProductFilter{})
		assert.Equal(t, 1, pagination.Page)
		assert.Equal(t, 12, pagination.Limit)
	})

	t.Run("PagesIsCeilOfTotalOverLimit", func(t *testing.T) {
		for limit := 1; limit <= 4; limit++ {
			products, pagination := uc.ListProducts(domain.ProductFilter{Limit: limit})
			wantPages := int((pagination.Total + int64(limit) - 1) / int64(limit))
			assert.Equal(t, wantPages, pagination.Pages)
			assert.LessOrEqual(t, len(products), limit)
		}
	})

	t.Run("BeyondLastPageKeepsTotals", func(t *testing.T) {
		products, pagination := uc.ListProducts(domain.ProductFilter{Page: 99, Limit: 1})
		assert.Empty(t, products)
		assert.EqualValues(t, 2, pagination.Total)
		assert.Equal(t, 2, pagination.Pages)
	})

	t.Run("NewArrivalsFilter", func(t *testing.T) {
		products, _ := uc.ListProducts(domain.ProductFilter{IsNew: true})
		require.Len(t, products, 1)
		assert.Equal(t, "p1", products[0].ID)
	})
}

func TestGetProductDetails(t *testing.T) {
	uc := newCatalogUsecase()

	t.Run("CachesBySlug", func(t *testing.T) {
		first, err := uc.GetProductDetails("leather-tote")
		require.NoError(t, err)

		second, err := uc.GetProductDetails("leather-tote")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := uc.GetProductDetails("missing")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestGetCategoriesCached(t *testing.T) {
	uc := newCatalogUsecase()

	cats := uc.GetCategories()
	require.Len(t, cats, 1)
	assert.Equal(t, 2, cats[0].ProductCount)

	// Second read comes from cache and must agree.
	assert.Equal(t, cats, uc.GetCategories())
}
