package transport

import (
	"net/http"

	"funky-fusion/internal/account"
	"funky-fusion/internal/domain"
	"funky-fusion/internal/middleware"
	"funky-fusion/internal/validation"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupRequest represents the signup request payload
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// SessionResponse is returned on login and signup: the stripped user profile
// plus the rebuilt order history.
type SessionResponse struct {
	User   domain.User    `json:"user"`
	Orders []domain.Order `json:"orders"`
}

// AccountHandler handles HTTP requests for session and profile operations
type AccountHandler struct {
	account *account.Store
	logger  *zap.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountStore *account.Store, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{account: accountStore, logger: logger}
}

// RegisterRoutes registers all account routes. The rate limiter guards the
// credential-bearing routes only.
func (h *AccountHandler) RegisterRoutes(r chi.Router, rateLimiter func(http.Handler) http.Handler) {
	r.Route("/api/account", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if rateLimiter != nil {
				r.Use(rateLimiter)
			}
			r.Post("/login", h.Login)
			r.Post("/signup", h.Signup)
		})

		r.Post("/logout", h.Logout)
		r.Get("/profile", h.GetProfile)
		r.Put("/profile", h.UpdateProfile)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{orderNumber}", h.GetOrder)
	})
}

// Login authenticates the session. A wrong email or password yields a single
// top-level 401 message and the session state is left untouched.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Login validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to login")
		return
	}
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	user, _ := h.account.CurrentUser()
	middleware.RespondWithJSON(w, http.StatusOK, SessionResponse{
		User:   user,
		Orders: h.account.Orders(),
	})
}

// Signup registers a new user and logs them in
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Signup validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if !validation.Name(req.Name) {
		fields["name"] = "Name should not contain numbers"
	}
	if !validation.Email(req.Email) {
		fields["email"] = "Please enter a valid email address"
	}
	if !validation.Password(req.Password) {
		fields["password"] = "Password must be at least 8 characters"
	}
	if !validation.PasswordMatch(req.Password, req.ConfirmPassword) {
		fields["confirmPassword"] = "Passwords do not match"
	}
	if len(fields) > 0 {
		middleware.RespondWithFieldErrors(w, fields)
		return
	}

	ok, err := h.account.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Signup failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to sign up")
		return
	}
	if !ok {
		middleware.RespondWithError(w, http.StatusConflict, "an account with this email already exists")
		return
	}

	user, _ := h.account.CurrentUser()
	h.logger.Info("User registered", zap.String("user_id", user.ID))
	middleware.RespondWithJSON(w, http.StatusCreated, SessionResponse{
		User:   user,
		Orders: h.account.Orders(),
	})
}

// Logout clears the session
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.account.Logout(r.Context()); err != nil {
		h.logger.Error("Logout failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to logout")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out successfully"})
}

// GetProfile returns the authenticated user's profile
func (h *AccountHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.account.CurrentUser()
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// UpdateProfile merges a partial profile update into the session user and
// the users table
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProfilePatch
	if err := middleware.DecodeAndValidate(r, &patch); err != nil {
		h.logger.Debug("Profile update decode failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := map[string]string{}
	if patch.Name != nil && !validation.Name(*patch.Name) {
		fields["name"] = "Name should not contain numbers"
	}
	if patch.Phone != nil && *patch.Phone != "" && !validation.Phone(*patch.Phone) {
		fields["phone"] = "Phone number should only contain numbers"
	}
	if len(fields) > 0 {
		middleware.RespondWithFieldErrors(w, fields)
		return
	}

	ok, err := h.account.UpdateProfile(r.Context(), patch)
	if err != nil {
		h.logger.Error("Profile update failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	user, _ := h.account.CurrentUser()
	middleware.RespondWithJSON(w, http.StatusOK, user)
}

// ListOrders returns the authenticated user's order history
func (h *AccountHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.account.CurrentUser(); !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, h.account.Orders())
}

// GetOrder returns one order from the history by its public order number;
// an unknown number is the frontend's order-not-found page
func (h *AccountHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.account.CurrentUser(); !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	order, ok := h.account.OrderByNumber(chi.URLParam(r, "orderNumber"))
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "order not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, order)
}
