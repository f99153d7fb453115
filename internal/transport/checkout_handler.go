package transport

import (
	"errors"
	"net/http"

	"funky-fusion/internal/checkout"
	"funky-fusion/internal/domain"
	"funky-fusion/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PlaceOrderRequest is the shipping form submitted at checkout. Field-level
// format rules are enforced by the checkout service, which reports them per
// field; the transport layer only decodes.
type PlaceOrderRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// ConfirmationResponse wraps the completed order for the confirmation view.
type ConfirmationResponse struct {
	Order domain.Order `json:"order"`
}

// CheckoutHandler handles HTTP requests for order placement
type CheckoutHandler struct {
	checkout *checkout.Service
	logger   *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkout.Service, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkoutService, logger: logger}
}

// RegisterRoutes registers all checkout routes
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/checkout", h.PlaceOrder)
	r.Get("/api/checkout/confirmation", h.Confirmation)
}

// PlaceOrder validates the shipping form and turns the cart into an order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	form := domain.ShippingDetails{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
	}

	order, err := h.checkout.PlaceOrder(r.Context(), form)
	if err != nil {
		var validationErr *checkout.ValidationError
		if errors.As(err, &validationErr) {
			middleware.RespondWithFieldErrors(w, validationErr.Fields)
			return
		}
		if errors.Is(err, checkout.ErrEmptyCart) {
			middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
			return
		}

		h.logger.Error("Checkout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusCreated, ConfirmationResponse{Order: order})
}

// Confirmation returns the most recently completed order; when none exists
// the frontend redirects home
func (h *CheckoutHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	order, err := h.checkout.LastOrder(r.Context())
	if err != nil {
		middleware.RespondWithErrorDetails(w, http.StatusNotFound, "no completed order",
			map[string]interface{}{"redirect": "/"})
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, ConfirmationResponse{Order: order})
}
