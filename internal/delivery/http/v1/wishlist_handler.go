package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/usecase"
	"lumiere-backend/pkg/utils"
)

type WishlistHandler struct {
	wishlistUC *usecase.WishlistUsecase
}

func NewWishlistHandler(uc *usecase.WishlistUsecase) *WishlistHandler {
	return &WishlistHandler{wishlistUC: uc}
}

func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: h.wishlistUC.Items()})
}

type WishlistRequest struct {
	ProductID string `json:"productId"`
}

func (h *WishlistHandler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "productId required")
		return
	}

	items, err := h.wishlistUC.AddToWishlist(req.ProductID)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Added to wishlist",
		Data:    items,
	})
}

func (h *WishlistHandler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")

	items := h.wishlistUC.RemoveFromWishlist(productID)
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Removed from wishlist",
		Data:    items,
	})
}

func (h *WishlistHandler) CheckWishlist(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Data:    map[string]bool{"inWishlist": h.wishlistUC.IsInWishlist(productID)},
	})
}

func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	items := h.wishlistUC.ClearWishlist()
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Wishlist cleared",
		Data:    items,
	})
}
