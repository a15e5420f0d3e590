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

func wireMenu(
	r chi.Router,
	menuHandler *adaptor.MenuHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== VENDOR ROUTES ====================
	r.Route("/api/vendor/menu", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleVendor))

		// GET /api/vendor/menu - Full own menu, unavailable items included
		r.Get("/", menuHandler.ListOwnItems)

		// POST /api/vendor/menu - Add an item
		r.Post("/", menuHandler.CreateItem)

		// PUT /api/vendor/menu/{id} - Edit an item
		r.Put("/{id}", menuHandler.UpdateItem)

		// PUT /api/vendor/menu/{id}/availability - Toggle availability
		r.Put("/{id}/availability", menuHandler.SetAvailability)

		// DELETE /api/vendor/menu/{id} - Remove an item
		r.Delete("/{id}", menuHandler.DeleteItem)
	})
}
