package wire

import (
	"campus-delivery/internal/adaptor"
	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/data/repository"
	"campus-delivery/pkg/middleware"
	"campus-delivery/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STUDENT ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleStudent))

		// POST /api/orders - Checkout the client-held cart
		r.Post("/api/orders", orderHandler.PlaceOrder)

		// GET /api/user/orders - Own order history
		r.Get("/api/user/orders", orderHandler.ListUserOrders)
	})

	// ==================== SHARED ROUTES (authorization in the service) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/orders/track/{orderNumber} - Track by order number
		r.Get("/api/orders/track/{orderNumber}", orderHandler.TrackOrder)

		// PUT /api/orders/{id}/cancel - Role-specific cancellation
		r.Put("/api/orders/{id}/cancel", orderHandler.CancelOrder)
	})

	// ==================== VENDOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleVendor))

		// GET /api/vendor/orders - Incoming orders for own vendor
		r.Get("/api/vendor/orders", orderHandler.ListVendorOrders)

		// PUT /api/vendor/orders/{id}/status - Advance one step or cancel
		r.Put("/api/vendor/orders/{id}/status", orderHandler.AdvanceStatus)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleAdmin))

		// GET /api/admin/orders - Most recent orders across the platform
		r.Get("/", orderHandler.ListRecentOrders)

		// PUT /api/admin/orders/{id}/status - Force a non-terminal order's state
		r.Put("/{id}/status", orderHandler.AdminSetStatus)
	})
}
