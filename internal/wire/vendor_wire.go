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

func wireVendor(
	r chi.Router,
	vendorHandler *adaptor.VendorHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STOREFRONT (any authenticated user) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/vendors - Listed vendors, best rated first
		r.Get("/api/vendors", vendorHandler.ListStorefront)

		// GET /api/vendors/{id}/menu - One vendor with its orderable items
		r.Get("/api/vendors/{id}/menu", vendorHandler.GetVendorMenu)
	})

	// ==================== VENDOR SELF SERVICE ====================
	r.Route("/api/vendor/profile", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleVendor))

		// GET /api/vendor/profile - Own listing
		r.Get("/", vendorHandler.GetOwnVendor)

		// PUT /api/vendor/profile - Update own listing
		r.Put("/", vendorHandler.UpdateOwnProfile)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleVendor))

		// PUT /api/vendor/online - Toggle order acceptance
		r.Put("/api/vendor/online", vendorHandler.SetOnline)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/vendors", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleAdmin))

		// POST /api/admin/vendors - Provision owner account plus listing
		r.Post("/", vendorHandler.CreateVendor)

		// GET /api/admin/vendors - All listings, including delisted
		r.Get("/", vendorHandler.ListAllVendors)

		// PUT /api/admin/vendors/{id}/active - List or delist a vendor
		r.Put("/{id}/active", vendorHandler.SetVendorActive)
	})
}
