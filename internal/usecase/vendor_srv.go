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

const defaultDeliveryTime = "20-30 min"

type VendorService interface {
	// Storefront (student facing)
	ListStorefront(ctx context.Context) ([]response.VendorResponse, error)
	GetVendorMenu(ctx context.Context, vendorID uuid.UUID) (*response.VendorMenuResponse, error)

	// Vendor self service
	GetOwnVendor(ctx context.Context, ownerUserID uuid.UUID) (*response.VendorResponse, error)
	UpdateOwnProfile(ctx context.Context, ownerUserID uuid.UUID, req *request.UpdateVendorProfileRequest) (*response.VendorResponse, error)
	SetOnline(ctx context.Context, ownerUserID uuid.UUID, online bool) error

	// Admin operations
	CreateVendor(ctx context.Context, req *request.CreateVendorRequest) (*response.VendorResponse, error)
	ListAllVendors(ctx context.Context) ([]response.VendorResponse, error)
	SetVendorActive(ctx context.Context, vendorID uuid.UUID, active bool) error
}

type vendorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVendorService(repo *repository.Repository, log *zap.Logger) VendorService {
	return &vendorService{
		repo: repo,
		log:  log,
	}
}

// ListStorefront returns listed vendors, best rated first. Offline vendors
// stay visible so buyers can browse; checkout rejects them.
func (s *vendorService) ListStorefront(ctx context.Context) ([]response.VendorResponse, error) {
	vendors, err := s.repo.Vendor.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list storefront vendors", zap.Error(err))
		return nil, fmt.Errorf("list storefront: %w", err)
	}

	data := make([]response.VendorResponse, len(vendors))
	for i, vendor := range vendors {
		data[i] = response.VendorToResponse(vendor)
	}

	return data, nil
}

func (s *vendorService) GetVendorMenu(ctx context.Context, vendorID uuid.UUID) (*response.VendorMenuResponse, error) {
	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to load vendor", zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, fmt.Errorf("get vendor menu: %w", err)
	}
	if vendor == nil || !vendor.IsActive {
		return nil, fmt.Errorf("get vendor menu: %w", entity.ErrNotFound)
	}

	items, err := s.repo.MenuItem.FindAvailableByVendorID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to load vendor menu", zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, fmt.Errorf("get vendor menu: %w", err)
	}

	itemResponses := make([]response.MenuItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = response.MenuItemToResponse(item)
	}

	return &response.VendorMenuResponse{
		Vendor: response.VendorToResponse(vendor),
		Items:  itemResponses,
	}, nil
}

func (s *vendorService) GetOwnVendor(ctx context.Context, ownerUserID uuid.UUID) (*response.VendorResponse, error) {
	vendor, err := s.findOwnVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) UpdateOwnProfile(ctx context.Context, ownerUserID uuid.UUID, req *request.UpdateVendorProfileRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	vendor, err := s.findOwnVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	vendor.Name = req.Name
	vendor.Description = req.Description
	vendor.Cuisine = entity.Cuisine(req.Cuisine)
	vendor.IsOnline = req.IsOnline
	if req.DeliveryTime != "" {
		vendor.DeliveryTime = req.DeliveryTime
	}
	vendor.UpdatedAt = time.Now()

	if err := s.repo.Vendor.Update(ctx, vendor); err != nil {
		s.log.Error("Failed to update vendor profile",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("update vendor profile: %w", err)
	}

	s.log.Info("Vendor profile updated", zap.String("vendor_id", vendor.ID.String()))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) SetOnline(ctx context.Context, ownerUserID uuid.UUID, online bool) error {
	vendor, err := s.findOwnVendor(ctx, ownerUserID)
	if err != nil {
		return err
	}

	if err := s.repo.Vendor.SetOnline(ctx, vendor.ID, online); err != nil {
		s.log.Error("Failed to set vendor online flag",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return fmt.Errorf("set vendor online: %w", err)
	}

	s.log.Info("Vendor online flag changed",
		zap.String("vendor_id", vendor.ID.String()),
		zap.Bool("online", online))
	return nil
}

// CreateVendor provisions the owner account and the listing together.
func (s *vendorService) CreateVendor(ctx context.Context, req *request.CreateVendorRequest) (*response.VendorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vendor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	existingUser, err := s.repo.User.FindByEmail(ctx, req.OwnerEmail)
	if err != nil {
		s.log.Error("Failed to check owner email", zap.Error(err), zap.String("email", req.OwnerEmail))
		return nil, fmt.Errorf("create vendor: check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("create vendor: %w", entity.ErrEmailTaken)
	}

	hashedPassword, err := utils.HashPassword(req.OwnerPassword)
	if err != nil {
		s.log.Error("Failed to hash owner password", zap.Error(err))
		return nil, fmt.Errorf("create vendor: hash password: %w", err)
	}

	now := time.Now()
	owner := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.OwnerName,
		Email:        req.OwnerEmail,
		PasswordHash: hashedPassword,
		Mobile:       req.OwnerMobile,
		Role:         entity.RoleVendor,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, owner); err != nil {
		s.log.Error("Failed to create vendor owner", zap.Error(err), zap.String("email", req.OwnerEmail))
		return nil, fmt.Errorf("create vendor: %w", err)
	}

	deliveryTime := req.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = defaultDeliveryTime
	}

	vendor := &entity.Vendor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerUserID:  owner.ID,
		Name:         req.VendorName,
		Description:  req.Description,
		Cuisine:      entity.Cuisine(req.Cuisine),
		DeliveryTime: deliveryTime,
		IsActive:     true,
		IsOnline:     false,
	}

	if err := s.repo.Vendor.Create(ctx, vendor); err != nil {
		s.log.Error("Failed to create vendor listing",
			zap.Error(err),
			zap.String("owner_user_id", owner.ID.String()))
		return nil, fmt.Errorf("create vendor: %w", err)
	}

	s.log.Info("Vendor created",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("owner_user_id", owner.ID.String()),
		zap.String("name", vendor.Name))

	resp := response.VendorToResponse(vendor)
	return &resp, nil
}

func (s *vendorService) ListAllVendors(ctx context.Context) ([]response.VendorResponse, error) {
	vendors, err := s.repo.Vendor.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list vendors", zap.Error(err))
		return nil, fmt.Errorf("list vendors: %w", err)
	}

	data := make([]response.VendorResponse, len(vendors))
	for i, vendor := range vendors {
		data[i] = response.VendorToResponse(vendor)
	}

	return data, nil
}

func (s *vendorService) SetVendorActive(ctx context.Context, vendorID uuid.UUID, active bool) error {
	if err := s.repo.Vendor.SetActive(ctx, vendorID, active); err != nil {
		s.log.Error("Failed to set vendor active flag",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
			zap.Bool("active", active))
		return fmt.Errorf("set vendor active: %w", err)
	}

	s.log.Info("Vendor active flag changed",
		zap.String("vendor_id", vendorID.String()),
		zap.Bool("active", active))
	return nil
}

// findOwnVendor resolves the listing owned by the calling vendor user.
func (s *vendorService) findOwnVendor(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error) {
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
