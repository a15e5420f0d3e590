package adaptor

import (
	"errors"
	"net/http"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/usecase"
	"campus-delivery/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	User   *UserHandler
	Vendor *VendorHandler
	Menu   *MenuHandler
	Order  *OrderHandler
	Report *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		User:   NewUserHandler(service.User, log),
		Vendor: NewVendorHandler(service.Vendor, log),
		Menu:   NewMenuHandler(service.Menu, log),
		Order:  NewOrderHandler(service.Order, log),
		Report: NewReportHandler(service.Report, log),
	}
}

// respondServiceError maps the domain error taxonomy to HTTP status codes.
// Unknown errors become an opaque 500 so internals never leak to clients.
func respondServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidationFailed),
		errors.Is(err, entity.ErrMalformedCart),
		errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrVendorClosed):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrUnauthenticated),
		errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - unauthenticated", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrUnauthorized),
		errors.Is(err, entity.ErrAccountDisabled):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, entity.ErrEmailTaken),
		errors.Is(err, entity.ErrInvalidTransition),
		errors.Is(err, entity.ErrDuplicateOrderNumber):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
