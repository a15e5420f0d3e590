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

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// ListStorefront handles GET /api/vendors (protected)
func (h *VendorHandler) ListStorefront(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListStorefront(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "list storefront")
		return
	}

	utils.ResponseSuccess(w, "success", vendors)
}

// GetVendorMenu handles GET /api/vendors/{id}/menu (protected)
func (h *VendorHandler) GetVendorMenu(w http.ResponseWriter, r *http.Request) {
	vendorID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	menu, err := h.service.GetVendorMenu(r.Context(), vendorID)
	if err != nil {
		respondServiceError(h.log, w, err, "get vendor menu")
		return
	}

	utils.ResponseSuccess(w, "success", menu)
}

// ==================== VENDOR SELF SERVICE ====================

// GetOwnVendor handles GET /api/vendor/profile (vendor only)
func (h *VendorHandler) GetOwnVendor(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	vendor, err := h.service.GetOwnVendor(r.Context(), userID)
	if err != nil {
		respondServiceError(h.log, w, err, "get own vendor")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}

// UpdateOwnProfile handles PUT /api/vendor/profile (vendor only)
func (h *VendorHandler) UpdateOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateVendorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendor, err := h.service.UpdateOwnProfile(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "update vendor profile")
		return
	}

	utils.ResponseSuccess(w, "success", vendor)
}

// SetOnline handles PUT /api/vendor/online (vendor only)
func (h *VendorHandler) SetOnline(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetOnline(r.Context(), userID, req.Online); err != nil {
		respondServiceError(h.log, w, err, "set vendor online")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN METHODS ====================

// CreateVendor handles POST /api/admin/vendors (admin only)
func (h *VendorHandler) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	vendor, err := h.service.CreateVendor(r.Context(), &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create vendor")
		return
	}

	utils.ResponseCreated(w, "success", vendor)
}

// ListAllVendors handles GET /api/admin/vendors (admin only)
func (h *VendorHandler) ListAllVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListAllVendors(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "list vendors")
		return
	}

	utils.ResponseSuccess(w, "success", vendors)
}

// SetVendorActive handles PUT /api/admin/vendors/{id}/active (admin only)
func (h *VendorHandler) SetVendorActive(w http.ResponseWriter, r *http.Request) {
	vendorID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid vendor ID", nil)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetVendorActive(r.Context(), vendorID, req.Active); err != nil {
		respondServiceError(h.log, w, err, "set vendor active")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
