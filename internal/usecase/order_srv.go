package usecase

import (
	"context"
	"encoding/json"
	"errors"
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

// orderNumberAttempts bounds retries when a generated order number collides
// with the unique index.
const orderNumberAttempts = 3

type OrderService interface {
	// Checkout (student facing)
	PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.OrderResponse, error)
	TrackOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderNumber string) (*response.OrderResponse, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)

	// Fulfilment (vendor facing)
	ListVendorOrders(ctx context.Context, ownerUserID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	AdvanceStatus(ctx context.Context, ownerUserID, orderID uuid.UUID, status entity.OrderStatus) (*response.OrderResponse, error)

	// Shared
	CancelOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderID uuid.UUID) (*response.OrderResponse, error)

	// Admin
	ListRecentOrders(ctx context.Context, limit int) ([]response.OrderResponse, error)
	AdminSetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*response.OrderResponse, error)
}

type orderService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, config *utils.Config, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// PlaceOrder turns a client-held cart into a persisted order. Every monetary
// figure is re-derived server side: line prices come from the live menu rows,
// never from the submitted cart.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, req *request.PlaceOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate the envelope
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	// 2. Decode the cart payload
	var cart request.CartPayload
	if err := json.Unmarshal([]byte(req.CartData), &cart); err != nil {
		s.log.Warn("Malformed cart data", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("decode cart: %w", entity.ErrMalformedCart)
	}

	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("place order: %w", entity.ErrEmptyCart)
	}

	if errs := utils.ValidateStruct(&cart); len(errs) > 0 {
		s.log.Warn("Invalid cart payload", zap.Any("errors", errs), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidationFailed, utils.FormatValidationErrors(errs))
	}

	// 3. Resolve the vendor and check it accepts orders
	vendorID, err := utils.ParseUUID(cart.VendorID)
	if err != nil {
		return nil, fmt.Errorf("parse vendor id: %w", entity.ErrMalformedCart)
	}

	vendor, err := s.repo.Vendor.FindByID(ctx, vendorID)
	if err != nil {
		s.log.Error("Failed to load vendor for checkout",
			zap.Error(err), zap.String("vendor_id", vendorID.String()))
		return nil, fmt.Errorf("place order: %w", err)
	}
	if vendor == nil {
		return nil, fmt.Errorf("place order: vendor: %w", entity.ErrNotFound)
	}
	if !vendor.AcceptsOrders() {
		return nil, fmt.Errorf("place order: %w", entity.ErrVendorClosed)
	}

	// 4. Load the buyer for address/phone fallback
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load buyer", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("place order: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("place order: %w", entity.ErrUnauthenticated)
	}

	address := req.DeliveryAddress
	if address == "" {
		address = user.Address
	}
	phone := req.Phone
	if phone == "" {
		phone = user.Mobile
	}

	// 5. Snapshot the lines from the live menu
	now := time.Now()
	orderID := uuid.New()

	var subtotal float64
	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		menuItemID, err := utils.ParseUUID(line.ID)
		if err != nil {
			return nil, fmt.Errorf("parse item id: %w", entity.ErrMalformedCart)
		}

		menuItem, err := s.repo.MenuItem.FindByID(ctx, menuItemID)
		if err != nil {
			s.log.Error("Failed to load menu item for checkout",
				zap.Error(err), zap.String("menu_item_id", menuItemID.String()))
			return nil, fmt.Errorf("place order: %w", err)
		}
		if menuItem == nil || menuItem.VendorID != vendor.ID {
			return nil, fmt.Errorf("item %s not on this menu: %w", line.ID, entity.ErrMalformedCart)
		}
		if !menuItem.IsAvailable {
			return nil, fmt.Errorf("item %s is unavailable: %w", menuItem.Name, entity.ErrMalformedCart)
		}

		lineTotal := menuItem.Price * float64(line.Quantity)
		subtotal += lineTotal

		items = append(items, entity.OrderItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:    orderID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   line.Quantity,
			Total:      lineTotal,
		})
	}

	deliveryFee := s.config.Order.DeliveryFee
	tax := 0.0
	total := subtotal + deliveryFee + tax

	estimated := vendor.DeliveryTime
	if estimated == "" {
		estimated = s.config.Order.EstimatedDelivery
	}

	payment := entity.PaymentCOD
	if req.PaymentMethod != "" {
		payment = entity.PaymentMethod(req.PaymentMethod)
	}

	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        orderID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber:       utils.GenerateOrderNumber(),
		UserID:            userID,
		VendorID:          vendor.ID,
		Items:             items,
		Status:            entity.OrderStatusPlaced,
		DeliveryAddress:   address,
		Phone:             phone,
		Subtotal:          subtotal,
		DeliveryFee:       deliveryFee,
		Tax:               tax,
		Total:             total,
		PaymentMethod:     payment,
		EstimatedDelivery: estimated,
		Notes:             req.Notes,
	}

	// 6. Persist, regenerating the number on a collision
	for attempt := 1; ; attempt++ {
		err = s.repo.Order.Create(ctx, order)
		if err == nil {
			break
		}
		if errors.Is(err, entity.ErrDuplicateOrderNumber) && attempt < orderNumberAttempts {
			s.log.Warn("Order number collision, regenerating",
				zap.String("order_number", order.OrderNumber),
				zap.Int("attempt", attempt))
			order.OrderNumber = utils.GenerateOrderNumber()
			continue
		}
		s.log.Error("Failed to create order",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.log.Info("Order placed",
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID.String()),
		zap.String("vendor_id", vendor.ID.String()),
		zap.Float64("total", total))

	resp := response.OrderToResponse(order, vendor.Name)
	return &resp, nil
}

func (s *orderService) TrackOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderNumber string) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_number", orderNumber))
		return nil, fmt.Errorf("track order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("track order %s: %w", orderNumber, entity.ErrNotFound)
	}

	if err := s.authorizeOrderAccess(ctx, userID, role, order); err != nil {
		return nil, err
	}

	return s.toResponse(ctx, order)
}

func (s *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindByUserID(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("list user orders: %w", err)
	}

	total, err := s.repo.Order.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user orders", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	data, err := s.toResponses(ctx, orders)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(data, page.Page, page.Limit(), total), nil
}

func (s *orderService) ListVendorOrders(ctx context.Context, ownerUserID uuid.UUID, page *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	vendor, err := s.ownVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	orders, err := s.repo.Order.FindByVendorID(ctx, vendor.ID, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list vendor orders",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("list vendor orders: %w", err)
	}

	total, err := s.repo.Order.CountByVendorID(ctx, vendor.ID)
	if err != nil {
		s.log.Error("Failed to count vendor orders",
			zap.Error(err), zap.String("vendor_id", vendor.ID.String()))
		return nil, fmt.Errorf("count vendor orders: %w", err)
	}

	data := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		data[i] = response.OrderToResponse(order, vendor.Name)
	}

	return response.NewPaginatedResponse(data, page.Page, page.Limit(), total), nil
}

// AdvanceStatus moves an order one step forward, or cancels it. Only the
// vendor that owns the order may call this.
func (s *orderService) AdvanceStatus(ctx context.Context, ownerUserID, orderID uuid.UUID, status entity.OrderStatus) (*response.OrderResponse, error) {
	vendor, err := s.ownVendor(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("advance status: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("advance status: %w", entity.ErrNotFound)
	}

	if order.VendorID != vendor.ID {
		s.log.Warn("Vendor tried to update a foreign order",
			zap.String("vendor_id", vendor.ID.String()),
			zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("advance status: %w", entity.ErrUnauthorized)
	}

	if !entity.ValidStatus(status) || !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("advance status %s -> %s: %w",
			order.Status, status, entity.ErrInvalidTransition)
	}

	if err := s.repo.Order.UpdateStatus(ctx, order.ID, status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("advance status: %w", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_number", order.OrderNumber),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))

	order.Status = status
	order.UpdatedAt = time.Now()

	resp := response.OrderToResponse(order, vendor.Name)
	return &resp, nil
}

// CancelOrder applies role-specific cancellation rules: buyers may cancel
// their own orders while still PLACED, vendors and admins any non-terminal
// order in their scope.
func (s *orderService) CancelOrder(ctx context.Context, userID uuid.UUID, role entity.UserRole, orderID uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("cancel order: %w", entity.ErrNotFound)
	}

	switch role {
	case entity.RoleStudent:
		if order.UserID != userID {
			return nil, fmt.Errorf("cancel order: %w", entity.ErrUnauthorized)
		}
		if order.Status != entity.OrderStatusPlaced {
			return nil, fmt.Errorf("cancel order in %s: %w", order.Status, entity.ErrInvalidTransition)
		}
	case entity.RoleVendor:
		vendor, err := s.ownVendor(ctx, userID)
		if err != nil {
			return nil, err
		}
		if order.VendorID != vendor.ID {
			return nil, fmt.Errorf("cancel order: %w", entity.ErrUnauthorized)
		}
		if order.Status.IsTerminal() {
			return nil, fmt.Errorf("cancel order in %s: %w", order.Status, entity.ErrInvalidTransition)
		}
	case entity.RoleAdmin:
		if order.Status.IsTerminal() {
			return nil, fmt.Errorf("cancel order in %s: %w", order.Status, entity.ErrInvalidTransition)
		}
	default:
		return nil, fmt.Errorf("cancel order: %w", entity.ErrUnauthorized)
	}

	if err := s.repo.Order.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
		s.log.Error("Failed to cancel order",
			zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	s.log.Info("Order cancelled",
		zap.String("order_number", order.OrderNumber),
		zap.String("by_role", string(role)))

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()

	return s.toResponse(ctx, order)
}

func (s *orderService) ListRecentOrders(ctx context.Context, limit int) ([]response.OrderResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	orders, err := s.repo.Order.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list recent orders", zap.Error(err))
		return nil, fmt.Errorf("list recent orders: %w", err)
	}

	return s.toResponses(ctx, orders)
}

// AdminSetStatus forces an order into the given state. Terminal orders stay
// frozen even for admins; everything else may jump steps.
func (s *orderService) AdminSetStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*response.OrderResponse, error) {
	if !entity.ValidStatus(status) || status == entity.OrderStatusCart {
		return nil, fmt.Errorf("set status %s: %w", status, entity.ErrInvalidTransition)
	}

	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("set status: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("set status: %w", entity.ErrNotFound)
	}

	if order.Status.IsTerminal() {
		return nil, fmt.Errorf("set status on %s order: %w", order.Status, entity.ErrInvalidTransition)
	}

	if err := s.repo.Order.UpdateStatus(ctx, order.ID, status); err != nil {
		s.log.Error("Failed to force order status",
			zap.Error(err), zap.String("order_id", orderID.String()))
		return nil, fmt.Errorf("set status: %w", err)
	}

	s.log.Info("Order status forced",
		zap.String("order_number", order.OrderNumber),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))

	order.Status = status
	order.UpdatedAt = time.Now()

	return s.toResponse(ctx, order)
}

// ==================== HELPER METHODS ====================

func (s *orderService) ownVendor(ctx context.Context, ownerUserID uuid.UUID) (*entity.Vendor, error) {
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

func (s *orderService) authorizeOrderAccess(ctx context.Context, userID uuid.UUID, role entity.UserRole, order *entity.Order) error {
	switch role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleStudent:
		if order.UserID == userID {
			return nil
		}
	case entity.RoleVendor:
		vendor, err := s.ownVendor(ctx, userID)
		if err != nil {
			return err
		}
		if order.VendorID == vendor.ID {
			return nil
		}
	}

	s.log.Warn("Order access denied",
		zap.String("user_id", userID.String()),
		zap.String("role", string(role)),
		zap.String("order_id", order.ID.String()))
	return fmt.Errorf("order access: %w", entity.ErrUnauthorized)
}

// toResponse enriches one order with its vendor name.
func (s *orderService) toResponse(ctx context.Context, order *entity.Order) (*response.OrderResponse, error) {
	vendorName := ""
	vendor, err := s.repo.Vendor.FindByID(ctx, order.VendorID)
	if err != nil {
		s.log.Warn("Failed to resolve vendor name",
			zap.Error(err), zap.String("vendor_id", order.VendorID.String()))
	} else if vendor != nil {
		vendorName = vendor.Name
	}

	resp := response.OrderToResponse(order, vendorName)
	return &resp, nil
}

// toResponses enriches a batch, resolving each vendor name once.
func (s *orderService) toResponses(ctx context.Context, orders []*entity.Order) ([]response.OrderResponse, error) {
	names := make(map[uuid.UUID]string)
	data := make([]response.OrderResponse, len(orders))

	for i, order := range orders {
		name, ok := names[order.VendorID]
		if !ok {
			vendor, err := s.repo.Vendor.FindByID(ctx, order.VendorID)
			if err != nil {
				s.log.Warn("Failed to resolve vendor name",
					zap.Error(err), zap.String("vendor_id", order.VendorID.String()))
			} else if vendor != nil {
				name = vendor.Name
			}
			names[order.VendorID] = name
		}
		data[i] = response.OrderToResponse(order, name)
	}

	return data, nil
}
