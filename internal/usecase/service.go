package usecase

import (
	"campus-delivery/internal/data/repository"
	"campus-delivery/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	User   UserService
	Vendor VendorService
	Menu   MenuService
	Order  OrderService
	Report ReportService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		User:   NewUserService(repo.User, log),
		Vendor: NewVendorService(repo, log),
		Menu:   NewMenuService(repo, log),
		Order:  NewOrderService(repo, config, log),
		Report: NewReportService(repo, log),
	}
}
