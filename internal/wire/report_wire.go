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

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleAdmin))

		// GET /api/admin/dashboard - Platform counters
		r.Get("/api/admin/dashboard", reportHandler.AdminDashboard)
	})

	// ==================== VENDOR ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleVendor))

		// GET /api/vendor/analytics - Revenue and sales for own vendor
		r.Get("/api/vendor/analytics", reportHandler.VendorAnalytics)
	})
}
