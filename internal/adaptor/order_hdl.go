package adaptor

import (
	"encoding/json"
	"net/http"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/dto/request"
	"campus-delivery/internal/usecase"
	"campus-delivery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// PlaceOrder handles POST /api/orders (student only)
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "place order")
		return
	}

	utils.ResponseCreated(w, "success", order)
}

// TrackOrder handles GET /api/orders/track/{orderNumber} (protected, any role)
func (h *OrderHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := principal(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		utils.ResponseBadRequest(w, "Order number is required", nil)
		return
	}

	order, err := h.service.TrackOrder(r.Context(), userID, role, orderNumber)
	if err != nil {
		respondServiceError(h.log, w, err, "track order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// ListUserOrders handles GET /api/user/orders (student only)
func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	orders, err := h.service.ListUserOrders(r.Context(), userID, req)
	if err != nil {
		respondServiceError(h.log, w, err, "list user orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// CancelOrder handles PUT /api/orders/{id}/cancel (protected, any role)
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := principal(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	order, err := h.service.CancelOrder(r.Context(), userID, role, orderID)
	if err != nil {
		respondServiceError(h.log, w, err, "cancel order")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// ==================== VENDOR METHODS ====================

// ListVendorOrders handles GET /api/vendor/orders (vendor only)
func (h *OrderHandler) ListVendorOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	orders, err := h.service.ListVendorOrders(r.Context(), userID, req)
	if err != nil {
		respondServiceError(h.log, w, err, "list vendor orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// AdvanceStatus handles PUT /api/vendor/orders/{id}/status (vendor only)
func (h *OrderHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	orderID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.AdvanceStatus(r.Context(), userID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(h.log, w, err, "advance order status")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// ==================== ADMIN METHODS ====================

// ListRecentOrders handles GET /api/admin/orders (admin only)
func (h *OrderHandler) ListRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 20)

	orders, err := h.service.ListRecentOrders(r.Context(), limit)
	if err != nil {
		respondServiceError(h.log, w, err, "list recent orders")
		return
	}

	utils.ResponseSuccess(w, "success", orders)
}

// AdminSetStatus handles PUT /api/admin/orders/{id}/status (admin only)
func (h *OrderHandler) AdminSetStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := utils.ParseUUID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	order, err := h.service.AdminSetStatus(r.Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(h.log, w, err, "set order status")
		return
	}

	utils.ResponseSuccess(w, "success", order)
}

// principal pulls the caller's identity and role out of the request context.
func principal(r *http.Request) (userID uuid.UUID, role entity.UserRole, ok bool) {
	userID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		return
	}

	roleStr, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return
	}

	return userID, entity.UserRole(roleStr), true
}
