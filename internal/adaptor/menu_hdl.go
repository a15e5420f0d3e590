package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-delivery/internal/dto/request"
	"campus-delivery/internal/usecase"
	"campus-delivery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// MenuHandler exposes the vendor's own menu management.
type MenuHandler struct {
	service usecase.MenuService
	log     *zap.Logger
}

func NewMenuHandler(service usecase.MenuService, log *zap.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		log:     log.With(zap.String("handler", "menu")),
	}
}

// ListOwnItems handles GET /api/vendor/menu (vendor only)
func (h *MenuHandler) ListOwnItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.ListOwnItems(r.Context(), userID)
	if err != nil {
		respondServiceError(h.log, w, err, "list menu items")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// CreateItem handles POST /api/vendor/menu (vendor only)
func (h *MenuHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.CreateItem(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create menu item")
		return
	}

	utils.ResponseCreated(w, "success", item)
}

// UpdateItem handles PUT /api/vendor/menu/{id} (vendor only)
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item ID", nil)
		return
	}

	var req request.MenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	item, err := h.service.UpdateItem(r.Context(), userID, itemID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update menu item")
		return
	}

	utils.ResponseSuccess(w, "success", item)
}

// SetAvailability handles PUT /api/vendor/menu/{id}/availability (vendor only)
func (h *MenuHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item ID", nil)
		return
	}

	var req struct {
		Available bool `json:"available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetItemAvailability(r.Context(), userID, itemID, req.Available); err != nil {
		respondServiceError(h.log, w, err, "set item availability")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// DeleteItem handles DELETE /api/vendor/menu/{id} (vendor only)
func (h *MenuHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	itemID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid menu item ID", nil)
		return
	}

	if err := h.service.DeleteItem(r.Context(), userID, itemID); err != nil {
		respondServiceError(h.log, w, err, "delete menu item")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
