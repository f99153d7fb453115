package transport

import (
	"net/http"
	"strconv"

	"funky-fusion/internal/cart"
	"funky-fusion/internal/catalog"
	"funky-fusion/internal/domain"
	"funky-fusion/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddItemRequest asks for a product to be added to the cart. Quantity is
// intentionally absent: a new entry always starts at 1 and repeat adds
// increment it.
type AddItemRequest struct {
	ProductID int `json:"productId" validate:"required"`
}

// UpdateQuantityRequest sets an entry's quantity. The gte=1 floor is the
// caller-side contract; the cart store itself only clamps the ceiling.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CartResponse is the cart read model with derived totals.
type CartResponse struct {
	Items        []domain.CartItem `json:"items"`
	Subtotal     int               `json:"subtotal"`
	DeliveryCost int               `json:"deliveryCost"`
	Total        int               `json:"total"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cart   *cart.Store
	logger *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartStore *cart.Store, logger *zap.Logger) *CartHandler {
	return &CartHandler{cart: cartStore, logger: logger}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{id}", h.UpdateQuantity)
		r.Delete("/items/{id}", h.RemoveItem)
	})
}

func (h *CartHandler) respondWithCart(w http.ResponseWriter, statusCode int) {
	middleware.RespondWithJSON(w, statusCode, CartResponse{
		Items:        h.cart.Items(),
		Subtotal:     h.cart.Subtotal(),
		DeliveryCost: h.cart.DeliveryFee(),
		Total:        h.cart.Total(),
	})
}

// GetCart returns the cart contents and derived totals
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.respondWithCart(w, http.StatusOK)
}

// AddItem puts a catalog product in the cart, snapshotting its name, price,
// image and stock ceiling at add time
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, ok := catalog.ProductByID(req.ProductID)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	item := domain.CartItem{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Image: product.Image,
		Stock: product.Stock,
	}

	if err := h.cart.Add(r.Context(), item); err != nil {
		h.logger.Error("Failed to add to cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondWithCart(w, http.StatusOK)
}

// UpdateQuantity sets the quantity of a cart entry, clamped to its stock
// ceiling; an id not in the cart is a no-op
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req UpdateQuantityRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update quantity validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), id, req.Quantity); err != nil {
		h.logger.Error("Failed to update cart quantity", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondWithCart(w, http.StatusOK)
}

// RemoveItem deletes a cart entry; removing an absent id is a no-op
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.cart.Remove(r.Context(), id); err != nil {
		h.logger.Error("Failed to remove from cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondWithCart(w, http.StatusOK)
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.logger.Error("Failed to clear cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondWithCart(w, http.StatusOK)
}
