package v1

import (
	"net/http"
	"strconv"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/usecase"
	"lumiere-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.ProductFilter{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Sort:     query.Get("sort"),
		Page:     utils.ParseInt(query.Get("page"), 0),
		Limit:    utils.ParseInt(query.Get("limit"), 0),
	}

	if val := query.Get("minPrice"); val != "" {
		if min, err := strconv.ParseFloat(val, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if val := query.Get("maxPrice"); val != "" {
		if max, err := strconv.ParseFloat(val, 64); err == nil {
			filter.MaxPrice = &max
		}
	}
	if val := query.Get("isNew"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			filter.IsNew = b
		}
	}

	products, pagination := h.catalogUC.ListProducts(filter)

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success:    true,
		Data:       products,
		Pagination: pagination,
	})
}

func (h *CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 0)
	products := h.catalogUC.GetFeaturedProducts(limit)

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: products})
}

func (h *CatalogHandler) GetNewArrivals(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 0)
	products := h.catalogUC.GetNewArrivals(limit)

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: products})
}

func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	products, pagination := h.catalogUC.SearchProducts(
		query.Get("q"),
		utils.ParseInt(query.Get("page"), 0),
		utils.ParseInt(query.Get("limit"), 0),
	)

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success:    true,
		Data:       products,
		Pagination: pagination,
	})
}

func (h *CatalogHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Product ID required")
		return
	}

	product, err := h.catalogUC.GetProductByID(id)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: product})
}

func (h *CatalogHandler) GetProductDetails(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		utils.WriteError(w, http.StatusBadRequest, "Slug required")
		return
	}

	product, err := h.catalogUC.GetProductDetails(slug)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: product})
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cats := h.catalogUC.GetCategories()
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: cats})
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	idOrSlug := r.PathValue("idOrSlug")

	category, err := h.catalogUC.GetCategory(idOrSlug)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: category})
}
