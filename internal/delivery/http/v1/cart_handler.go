package v1

import (
	"net/http"

	"github.com/goccy/go-json"

	"lumiere-backend/internal/domain"
	"lumiere-backend/internal/usecase"
	"lumiere-backend/pkg/utils"
)

type CartHandler struct {
	cartUC *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{cartUC: uc}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: h.cartUC.Cart()})
}

type AddToCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ProductID == "" {
		utils.WriteError(w, http.StatusBadRequest, "productId required")
		return
	}

	cart, err := h.cartUC.AddToCart(req.ProductID, req.Quantity)
	if err != nil {
		utils.WriteError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Added to cart",
		Data:    cart,
	})
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cart := h.cartUC.UpdateQuantity(itemID, req.Quantity)
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: cart})
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	cart := h.cartUC.RemoveFromCart(itemID)
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cart,
	})
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartUC.ClearCart()
	utils.WriteJSON(w, http.StatusOK, domain.Response{
		Success: true,
		Message: "Cart cleared",
		Data:    cart,
	})
}

func (h *CartHandler) RefreshCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cartUC.RefreshCart()
	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true, Data: cart})
}
