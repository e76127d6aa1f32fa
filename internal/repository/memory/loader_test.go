package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	t.Run("BackfillsSlugsAndCategoryNames", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"products": [
				{
					"_id": "p1",
					"name": "Baroque Pearl Necklace",
					"price": 210,
					"category": {"_id": "cat-2", "name": "Jewelry", "slug": "jewelry"},
					"isActive": true
				}
			],
			"categories": [
				{"_id": "cat-2", "name": "Fine Jewelry"}
			]
		}`), 0o644))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)

		require.Len(t, catalog.Products, 1)
		assert.Equal(t, "baroque-pearl-necklace", catalog.Products[0].Slug)
		assert.Equal(t, "Jewelry", catalog.Products[0].CategoryName)

		require.Len(t, catalog.Categories, 1)
		assert.Equal(t, "fine-jewelry", catalog.Categories[0].Slug)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("MalformedContent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))

		_, err := LoadCatalog(path)
		assert.Error(t, err)
	})
}
