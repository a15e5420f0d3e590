package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/data/repository"
	"campus-delivery/internal/dto/request"
	"campus-delivery/internal/dto/response"
	"campus-delivery/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MenuService is the vendor-side menu management surface. Every operation is
// scoped through the caller's own vendor listing; items of other vendors are
// reported as not found.
type MenuService interface {
	ListOwnItems(ctx context.Context, ownerUserID uuid.UUID) ([]response.MenuItemResponse, error)
	CreateItem(ctx context.Context, ownerUserID uuid.UUID, req *request.MenuItemRequest) (*response.MenuItemResponse, error)
	UpdateItem(ctx context.Context, ownerUserID, itemID uuid.UUID, req *request.MenuItemRequest) (*response.MenuItemResponse, error)
	SetItemAvailability(ctx context.Context, ownerUserID, itemID uuid.UUID, available bool) error
	DeleteItem(ctx context.Context, ownerUserID, itemID uuid.UUID) error
}

type menuService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMenuService(repo *repository.Repository, log *zap.Logger) MenuService {
	return &menuService{
		repo: repo,
		log:  log,
	}
}

func (s *menuService) ListOwnItems(ctx context.Context, ownerUserID uuid.UUID) ([]response.MenuItemResponse, error) {
	vendor, err := s.ownVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.MenuItem.FindByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to list menu items",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	data := make([]response.MenuItemResponse, len(items))
	for i, item := range items {
		data[i] = response.MenuItemToResponse(item)
	}

	return data, nil
}

func (s *menuService) CreateItem(ctx context.Context, ownerUserID uuid.UUID, req *request.MenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create menu item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	vendor, err := s.ownVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.MenuItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		VendorID:        vendor.ID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Category:        entity.MenuCategory(req.Category),
		IsVeg:           req.IsVeg,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
	}

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.log.Error("Failed to create menu item",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("create menu item: %w", err)
	}

	s.log.Info("Menu item created",
		zap.String("menu_item_id", item.ID.String()),
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("name", item.Name))

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) UpdateItem(ctx context.Context, ownerUserID, itemID uuid.UUID, req *request.MenuItemRequest) (*response.MenuItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update menu item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	item, err := s.ownItem(ctx, ownerUserID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = entity.MenuCategory(req.Category)
	item.IsVeg = req.IsVeg
	item.IsAvailable = req.IsAvailable
	item.PreparationTime = req.PreparationTime
	item.UpdatedAt = time.Now()

	if err := s.repo.MenuItem.Update(ctx, item); err != nil {
		s.log.Error("Failed to update menu item",
			zap.Error(err), zap.String("menu_item_id", itemID.String()))
		return nil, fmt.Errorf("update menu item: %w", err)
	}

	resp := response.MenuItemToResponse(item)
	return &resp, nil
}

func (s *menuService) SetItemAvailability(ctx context.Context, ownerUserID, itemID uuid.UUID, available bool) error {
	item, err := s.ownItem(ctx, ownerUserID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.MenuItem.SetAvailability(ctx, item.ID, available); err != nil {
		s.log.Error("Failed to set item availability",
			zap.Error(err), zap.String("menu_item_id", itemID.String()))
		return fmt.Errorf("set item availability: %w", err)
	}

	s.log.Info("Menu item availability changed",
		zap.String("menu_item_id", itemID.String()),
		zap.Bool("available", available))
	return nil
}

func (s *menuService) DeleteItem(ctx context.Context, ownerUserID, itemID uuid.UUID) error {
	item, err := s.ownItem(ctx, ownerUserID, itemID)
	if err != nil {
		return err
	}

	if err := s.repo.MenuItem.Delete(ctx, item.ID); err != nil {
		s.log.Error("Failed to delete menu item",
			zap.Error(err), zap.String("menu_item_id", itemID.String()))
		return fmt.Errorf("delete menu item: %w", err)
	}

	s.log.Info("Menu item deleted", zap.String("menu_item_id", itemID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *menuService) ownVendor(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.repo.Vendor.FindByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		s.log.Error("Failed to resolve own vendor",
			zap.Error(err), zap.String("owner_user_id", ownerUserID.String()))
		return nil, fmt.Errorf("resolve vendor: %w", err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("resolve vendor: %w", entity.ErrNotFound)
	}

	return vendor, nil
}

// ownItem loads the item and checks it belongs to the caller's vendor.
func (s *menuService) ownItem(ctx context.Context, ownerUserID, itemID uuid.UUID) (*entity.MenuItem, error) {
	vendor, err := s.ownVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.MenuItem.FindByID(ctx, itemID)
	if err != nil {
		s.log.Error("Failed to load menu item",
			zap.Error(err), zap.String("menu_item_id", itemID.String()))
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	if item == nil || item.VendorID != vendor.ID {
		return nil, fmt.Errorf("find menu item: %w", entity.ErrNotFound)
	}

	return item, nil
}
