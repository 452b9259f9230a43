package handlers

import (
	"net/http"

	"github.com/platewise/v1/internal/domain/pantry"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// PantryHandlers handles pantry inventory requests
type PantryHandlers struct {
	pantryService inbound.PantryService
	logger        *zap.Logger
}

// NewPantryHandlers creates a new pantry handlers instance
func NewPantryHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryHandlers {
	return &PantryHandlers{
		pantryService: pantryService,
		logger:        logger.Named("pantry-handlers"),
	}
}

type addItemRequest struct {
	Name      string          `json:"name"`
	Quantity  float64         `json:"quantity"`
	Unit      string          `json:"unit"`
	Category  pantry.Category `json:"category"`
	Notes     string          `json:"notes"`
	ExpiresAt *string         `json:"expires_at"`
}

type updateItemRequest struct {
	Name      *string          `json:"name"`
	Quantity  *float64         `json:"quantity"`
	Unit      *string          `json:"unit"`
	Category  *pantry.Category `json:"category"`
	Notes     *string          `json:"notes"`
	ExpiresAt *string          `json:"expires_at"`
}

// Add handles POST /api/v1/pantry
func (h *PantryHandlers) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.pantryService.AddItem(r.Context(), inbound.AddItemCommand{
		OwnerID:   userID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Category:  req.Category,
		Notes:     req.Notes,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dto)
}

// Get handles GET /api/v1/pantry/{id}
func (h *PantryHandlers) Get(w http.ResponseWriter, r *http.Request) {
	itemID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.pantryService.GetItemByID(r.Context(), itemID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// Update handles PUT /api/v1/pantry/{id}
func (h *PantryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	itemID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.pantryService.UpdateItem(r.Context(), inbound.UpdateItemCommand{
		ItemID:    itemID,
		UserID:    userID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Category:  req.Category,
		Notes:     req.Notes,
		ExpiresAt: req.ExpiresAt,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// Remove handles DELETE /api/v1/pantry/{id}
func (h *PantryHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	itemID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.pantryService.RemoveItem(r.Context(), itemID, userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/v1/pantry
func (h *PantryHandlers) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	items, err := h.pantryService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}

// ListExpired handles GET /api/v1/pantry/expired
func (h *PantryHandlers) ListExpired(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	items, err := h.pantryService.ListExpired(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"items": items,
		"total": len(items),
	})
}
