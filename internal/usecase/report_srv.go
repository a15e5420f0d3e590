package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/data/repository"
	"campus-delivery/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const topItemsLimit = 5

type ReportService interface {
	AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	VendorAnalytics(ctx context.Context, ownerUserID uuid.UUID) (*response.VendorAnalyticsResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log,
	}
}

// AdminDashboard gathers the platform counters. "Today" is the server's
// local calendar day.
func (s *reportService) AdminDashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	activeVendors, err := s.repo.Vendor.CountActive(ctx)
	if err != nil {
		s.log.Error("Failed to count active vendors", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	todaysOrders, err := s.repo.Order.CountPlacedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to count today's orders", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	todaysGMV, err := s.repo.Order.SumTotalBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.log.Error("Failed to sum today's order totals", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	online, err := s.repo.Vendor.CountByOnline(ctx, true)
	if err != nil {
		s.log.Error("Failed to count online vendors", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	offline, err := s.repo.Vendor.CountByOnline(ctx, false)
	if err != nil {
		s.log.Error("Failed to count offline vendors", zap.Error(err))
		return nil, fmt.Errorf("admin dashboard: %w", err)
	}

	return &response.AdminDashboardResponse{
		TotalUsers:     totalUsers,
		ActiveVendors:  activeVendors,
		TodaysOrders:   todaysOrders,
		TodaysGMV:      todaysGMV,
		OnlineVendors:  online,
		OfflineVendors: offline,
	}, nil
}

// VendorAnalytics reports revenue and sales for the caller's own vendor.
// Revenue counts delivered orders only.
func (s *reportService) VendorAnalytics(ctx context.Context, ownerUserID uuid.UUID) (*response.VendorAnalyticsResponse, error) {
	vendor, err := s.repo.Vendor.FindByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		s.log.Error("Failed to resolve own vendor",
			zap.Error(err), zap.String("owner_user_id", ownerUserID.String()))
		return nil, fmt.Errorf("vendor analytics: %w", err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("vendor analytics: %w", entity.ErrNotFound)
	}

	revenue, err := s.repo.Order.SumVendorRevenue(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to sum vendor revenue",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("vendor analytics: %w", err)
	}

	totalOrders, err := s.repo.Order.CountByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to count vendor orders",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("vendor analytics: %w", err)
	}

	customers, err := s.repo.Order.CountDistinctCustomers(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to count distinct customers",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("vendor analytics: %w", err)
	}

	topItems, err := s.repo.Order.TopItemsByVendor(ctx, vendor.ID, topItemsLimit)
	if err != nil {
		s.log.Error("Failed to load top items",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("vendor analytics: %w", err)
	}

	items := make([]response.TopItemResponse, len(topItems))
	for i, item := range topItems {
		items[i] = response.TopItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			Revenue:  item.Revenue,
		}
	}

	return &response.VendorAnalyticsResponse{
		TotalRevenue:    revenue,
		TotalOrders:     totalOrders,
		AverageRating:   vendor.Rating,
		UniqueCustomers: customers,
		TopItems:        items,
	}, nil
}
