package repository

import (
	"campus-delivery/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Vendor   VendorRepository
	MenuItem MenuItemRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Vendor:   NewVendorRepository(db, log),
		MenuItem: NewMenuItemRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
