package transport

import (
	"net/http"
	"strconv"

	"funky-fusion/internal/catalog"
	"funky-fusion/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CategoryResponse is the payload for a category page: its products plus the
// human-readable label. An empty product list is a valid "coming soon" page,
// not an error.
type CategoryResponse struct {
	Category    string      `json:"category"`
	DisplayName string      `json:"displayName"`
	Products    interface{} `json:"products"`
}

// SearchResponse is the payload for a product search.
type SearchResponse struct {
	Query   string      `json:"query"`
	Results interface{} `json:"results"`
}

// CatalogHandler serves the static product catalog.
type CatalogHandler struct {
	logger *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

// RegisterRoutes registers all catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/products", h.ListProducts)
	r.Get("/api/products/{id}", h.GetProduct)
	r.Get("/api/categories/{category}", h.GetCategory)
	r.Get("/api/search", h.Search)
}

// ListProducts returns the whole catalog
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, catalog.AllProducts())
}

// GetProduct returns a single product by id; an unknown id is a 404 that the
// frontend renders as its not-found page
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetCategory returns the products in a category together with its display
// name
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	middleware.RespondWithJSON(w, http.StatusOK, CategoryResponse{
		Category:    category,
		DisplayName: catalog.CategoryDisplayName(category),
		Products:    catalog.ProductsByCategory(category),
	})
}

// Search returns products matching the q query parameter
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	middleware.RespondWithJSON(w, http.StatusOK, SearchResponse{
		Query:   query,
		Results: catalog.Search(query),
	})
}
