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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/profile - Own profile
		r.Get("/api/profile", userHandler.GetProfile)

		// PUT /api/profile - Update own profile
		r.Put("/api/profile", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Role(log, entity.RoleAdmin))

		// GET /api/admin/users - Paginated user list
		r.Get("/", userHandler.GetAllUsers)

		// PUT /api/admin/users/{id}/active - Enable or disable an account
		r.Put("/{id}/active", userHandler.SetUserActive)

		// DELETE /api/admin/users/{id} - Soft delete an account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
