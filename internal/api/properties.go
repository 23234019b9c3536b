package api

import (
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
	"github.com/shunichi-ikebuchi/property-backoffice/pkg/models"
)

// PropertiesHandler handles property directory endpoints.
type PropertiesHandler struct {
	store *store.Store
}

// NewPropertiesHandler creates a new PropertiesHandler.
func NewPropertiesHandler(s *store.Store) *PropertiesHandler {
	return &PropertiesHandler{store: s}
}

// List handles GET /api/properties.
// @Summary List properties
// @Tags properties
// @Produce json
// @Success 200 {array} models.Property
// @Failure 500 {object} ErrorResponse
// @Router /properties [get]
func (h *PropertiesHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.store.ListProperties(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to list properties")
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

// Create handles POST /api/properties.
// @Summary Register a property
// @Tags properties
// @Accept json
// @Produce json
// @Param request body models.CreatePropertyRequest true "Property"
// @Success 201 {object} models.Property
// @Failure 400 {object} ErrorResponse
// @Router /properties [post]
func (h *PropertiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePropertyRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	property, err := h.store.CreateProperty(r.Context(), &req)
	if err != nil {
		writeStoreError(w, r, err, "", "Failed to create property")
		return
	}
	writeJSON(w, http.StatusCreated, property)
}

// Get handles GET /api/properties/{propertyId}.
func (h *PropertiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.store.GetProperty(r.Context(), propertyID(r))
	if err != nil {
		writeStoreError(w, r, err, "Property not found", "Failed to get property")
		return
	}
	writeJSON(w, http.StatusOK, property)
}
