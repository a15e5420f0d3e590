package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"campus-delivery/internal/data/entity"
	"campus-delivery/internal/data/repository"
	"campus-delivery/internal/dto/request"
	"campus-delivery/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== STUB REPOSITORIES ====================

type stubUserRepo struct {
	repository.UserRepository
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return s.users[id], nil
}

type stubVendorRepo struct {
	repository.VendorRepository
	vendors map[uuid.UUID]*entity.Vendor
}

func (s *stubVendorRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return s.vendors[id], nil
}

func (s *stubVendorRepo) FindByOwnerUserID(_ context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	for _, v := range s.vendors {
		if v.OwnerUserID == ownerID {
			return v, nil
		}
	}
	return nil, nil
}

type stubMenuRepo struct {
	repository.MenuItemRepository
	items map[uuid.UUID]*entity.MenuItem
}

func (s *stubMenuRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return s.items[id], nil
}

type stubOrderRepo struct {
	repository.OrderRepository
	orders         map[uuid.UUID]*entity.Order
	createFailures int
	createAttempts int
}

func (s *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	s.createAttempts++
	if s.createFailures > 0 {
		s.createFailures--
		return fmt.Errorf("create order %s: %w", order.OrderNumber, entity.ErrDuplicateOrderNumber)
	}
	s.orders[order.ID] = order
	return nil
}

func (s *stubOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	return s.orders[id], nil
}

func (s *stubOrderRepo) FindByOrderNumber(_ context.Context, number string) (*entity.Order, error) {
	for _, o := range s.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	order, ok := s.orders[orderID]
	if !ok {
		return fmt.Errorf("update order status: %w", entity.ErrNotFound)
	}
	order.Status = status
	return nil
}

// ==================== FIXTURE ====================

func testConfig() *utils.Config {
	return &utils.Config{
		Order: utils.OrderConfig{
			DeliveryFee:       20,
			EstimatedDelivery: "20-30 min",
		},
		Session: utils.SessionConfig{
			ExpiryHours: 24,
		},
	}
}

type orderFixture struct {
	svc    OrderService
	orders *stubOrderRepo

	buyer       *entity.User
	otherBuyer  *entity.User
	vendorOwner *entity.User
	otherOwner  *entity.User
	admin       *entity.User

	vendor      *entity.Vendor
	otherVendor *entity.Vendor
	cappuccino  *entity.MenuItem
	croissant   *entity.MenuItem
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	f := &orderFixture{
		buyer: &entity.User{
			Base:    entity.Base{ID: uuid.New()},
			Name:    "Asha",
			Mobile:  "9876543210",
			Address: "Hostel B, Room 214",
			Role:    entity.RoleStudent,
		},
		otherBuyer: &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: entity.RoleStudent,
		},
		vendorOwner: &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: entity.RoleVendor,
		},
		otherOwner: &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: entity.RoleVendor,
		},
		admin: &entity.User{
			Base: entity.Base{ID: uuid.New()},
			Role: entity.RoleAdmin,
		},
	}

	f.vendor = &entity.Vendor{
		Base:         entity.Base{ID: uuid.New()},
		OwnerUserID:  f.vendorOwner.ID,
		Name:         "Campus Brew",
		DeliveryTime: "15-20 min",
		IsActive:     true,
		IsOnline:     true,
	}
	f.otherVendor = &entity.Vendor{
		Base:        entity.Base{ID: uuid.New()},
		OwnerUserID: f.otherOwner.ID,
		Name:        "Night Canteen",
		IsActive:    true,
		IsOnline:    true,
	}

	f.cappuccino = &entity.MenuItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     f.vendor.ID,
		Name:         "Cappuccino",
		Price:        120,
		IsAvailable:  true,
	}
	f.croissant = &entity.MenuItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     f.vendor.ID,
		Name:         "Croissant",
		Price:        80,
		IsAvailable:  true,
	}

	repo := &repository.Repository{
		User: &stubUserRepo{users: map[uuid.UUID]*entity.User{
			f.buyer.ID:       f.buyer,
			f.otherBuyer.ID:  f.otherBuyer,
			f.vendorOwner.ID: f.vendorOwner,
			f.otherOwner.ID:  f.otherOwner,
			f.admin.ID:       f.admin,
		}},
		Vendor: &stubVendorRepo{vendors: map[uuid.UUID]*entity.Vendor{
			f.vendor.ID:      f.vendor,
			f.otherVendor.ID: f.otherVendor,
		}},
		MenuItem: &stubMenuRepo{items: map[uuid.UUID]*entity.MenuItem{
			f.cappuccino.ID: f.cappuccino,
			f.croissant.ID:  f.croissant,
		}},
		Order: &stubOrderRepo{orders: map[uuid.UUID]*entity.Order{}},
	}
	f.orders = repo.Order.(*stubOrderRepo)

	f.svc = NewOrderService(repo, testConfig(), zap.NewNop())

	return f
}

func (f *orderFixture) cartData(t *testing.T, lines ...request.CartLine) string {
	t.Helper()

	payload := request.CartPayload{
		VendorID: f.vendor.ID.String(),
		Items:    lines,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func line(item *entity.MenuItem, qty int) request.CartLine {
	return request.CartLine{
		ID:       item.ID.String(),
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
		Total:    item.Price * float64(qty),
	}
}

// ==================== PLACE ORDER ====================

func TestPlaceOrderComputesTotals(t *testing.T) {
	f := newOrderFixture(t)

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, 2)),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPlaced, resp.Status)
	assert.Equal(t, 240.0, resp.Subtotal)
	assert.Equal(t, 20.0, resp.DeliveryFee)
	assert.Equal(t, 0.0, resp.Tax)
	assert.Equal(t, 260.0, resp.Total)
	assert.Equal(t, entity.PaymentCOD, resp.PaymentMethod)
	assert.Equal(t, "Campus Brew", resp.VendorName)
	assert.Equal(t, "15-20 min", resp.EstimatedDelivery)
	assert.Contains(t, resp.OrderNumber, "ORD")

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Cappuccino", resp.Items[0].Name)
	assert.Equal(t, 120.0, resp.Items[0].Price)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 240.0, resp.Items[0].Total)
}

func TestPlaceOrderIgnoresClientTotals(t *testing.T) {
	f := newOrderFixture(t)

	// Cart claims everything costs one rupee
	payload := request.CartPayload{
		VendorID: f.vendor.ID.String(),
		Items: []request.CartLine{{
			ID:       f.cappuccino.ID.String(),
			Name:     "Cappuccino",
			Price:    1,
			Quantity: 2,
			Total:    1,
		}},
		Subtotal: 1,
		Total:    1,
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: string(data),
	})
	require.NoError(t, err)

	assert.Equal(t, 240.0, resp.Subtotal)
	assert.Equal(t, 260.0, resp.Total)
	assert.Equal(t, 120.0, resp.Items[0].Price)
}

func TestPlaceOrderProfileFallback(t *testing.T) {
	f := newOrderFixture(t)

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.croissant, 1)),
	})
	require.NoError(t, err)

	assert.Equal(t, "Hostel B, Room 214", resp.DeliveryAddress)
	assert.Equal(t, "9876543210", resp.Phone)
}

func TestPlaceOrderExplicitAddressWins(t *testing.T) {
	f := newOrderFixture(t)

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData:        f.cartData(t, line(f.croissant, 1)),
		DeliveryAddress: "Library steps",
		Phone:           "9123456789",
	})
	require.NoError(t, err)

	assert.Equal(t, "Library steps", resp.DeliveryAddress)
	assert.Equal(t, "9123456789", resp.Phone)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t),
	})
	assert.ErrorIs(t, err, entity.ErrEmptyCart)
}

func TestPlaceOrderMalformedCartData(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: "{not json",
	})
	assert.ErrorIs(t, err, entity.ErrMalformedCart)
}

func TestPlaceOrderRejectsBadQuantity(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, -1)),
	})
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
}

func TestPlaceOrderRejectsForeignItem(t *testing.T) {
	f := newOrderFixture(t)

	// Item belongs to another vendor's menu
	foreign := &entity.MenuItem{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		VendorID:     f.otherVendor.ID,
		Name:         "Maggi",
		Price:        40,
		IsAvailable:  true,
	}

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(foreign, 1)),
	})
	assert.ErrorIs(t, err, entity.ErrMalformedCart)
}

func TestPlaceOrderVendorClosed(t *testing.T) {
	f := newOrderFixture(t)
	f.vendor.IsOnline = false

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, 1)),
	})
	assert.ErrorIs(t, err, entity.ErrVendorClosed)
}

func TestPlaceOrderRetriesOnNumberCollision(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.createFailures = 1

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, 1)),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, f.orders.createAttempts)
	assert.Contains(t, resp.OrderNumber, "ORD")
}

func TestPlaceOrderGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newOrderFixture(t)
	f.orders.createFailures = orderNumberAttempts

	_, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, 1)),
	})
	assert.ErrorIs(t, err, entity.ErrDuplicateOrderNumber)
	assert.Equal(t, orderNumberAttempts, f.orders.createAttempts)
}

// ==================== STATUS ENGINE ====================

func (f *orderFixture) placeOrder(t *testing.T) uuid.UUID {
	t.Helper()

	resp, err := f.svc.PlaceOrder(context.Background(), f.buyer.ID, &request.PlaceOrderRequest{
		CartData: f.cartData(t, line(f.cappuccino, 2)),
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	return id
}

func TestAdvanceStatusHappyPath(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	for _, status := range []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusPreparing,
		entity.OrderStatusReady,
		entity.OrderStatusDelivered,
	} {
		resp, err := f.svc.AdvanceStatus(context.Background(), f.vendorOwner.ID, orderID, status)
		require.NoError(t, err, "advance to %s", status)
		assert.Equal(t, status, resp.Status)
	}
}

func TestAdvanceStatusNoSkipping(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	_, err := f.svc.AdvanceStatus(context.Background(), f.vendorOwner.ID, orderID, entity.OrderStatusReady)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestAdvanceStatusForeignVendor(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	_, err := f.svc.AdvanceStatus(context.Background(), f.otherOwner.ID, orderID, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestAdvanceStatusTerminalFrozen(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	f.orders.orders[orderID].Status = entity.OrderStatusDelivered

	_, err := f.svc.AdvanceStatus(context.Background(), f.vendorOwner.ID, orderID, entity.OrderStatusCancelled)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

// ==================== CANCELLATION ====================

func TestCancelOrderBuyerWhilePlaced(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	resp, err := f.svc.CancelOrder(context.Background(), f.buyer.ID, entity.RoleStudent, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
}

func TestCancelOrderBuyerTooLate(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	f.orders.orders[orderID].Status = entity.OrderStatusPreparing

	_, err := f.svc.CancelOrder(context.Background(), f.buyer.ID, entity.RoleStudent, orderID)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestCancelOrderForeignBuyer(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	_, err := f.svc.CancelOrder(context.Background(), f.otherBuyer.ID, entity.RoleStudent, orderID)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestCancelOrderVendorBeforeTerminal(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	f.orders.orders[orderID].Status = entity.OrderStatusPreparing

	resp, err := f.svc.CancelOrder(context.Background(), f.vendorOwner.ID, entity.RoleVendor, orderID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
}

func TestCancelOrderAdminDeliveredFrozen(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	f.orders.orders[orderID].Status = entity.OrderStatusDelivered

	_, err := f.svc.CancelOrder(context.Background(), f.admin.ID, entity.RoleAdmin, orderID)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

// ==================== ADMIN OVERRIDE ====================

func TestAdminSetStatusSkipsSteps(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	resp, err := f.svc.AdminSetStatus(context.Background(), orderID, entity.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, resp.Status)
}

func TestAdminSetStatusTerminalFrozen(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	f.orders.orders[orderID].Status = entity.OrderStatusCancelled

	_, err := f.svc.AdminSetStatus(context.Background(), orderID, entity.OrderStatusPlaced)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestAdminSetStatusRejectsCart(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)

	_, err := f.svc.AdminSetStatus(context.Background(), orderID, entity.OrderStatusCart)
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

// ==================== TRACKING ====================

func TestTrackOrderAccess(t *testing.T) {
	f := newOrderFixture(t)
	orderID := f.placeOrder(t)
	number := f.orders.orders[orderID].OrderNumber

	// Buyer sees own order
	resp, err := f.svc.TrackOrder(context.Background(), f.buyer.ID, entity.RoleStudent, number)
	require.NoError(t, err)
	assert.Equal(t, number, resp.OrderNumber)

	// Owning vendor sees it too
	_, err = f.svc.TrackOrder(context.Background(), f.vendorOwner.ID, entity.RoleVendor, number)
	assert.NoError(t, err)

	// Admin sees everything
	_, err = f.svc.TrackOrder(context.Background(), f.admin.ID, entity.RoleAdmin, number)
	assert.NoError(t, err)

	// Another student is locked out
	_, err = f.svc.TrackOrder(context.Background(), f.otherBuyer.ID, entity.RoleStudent, number)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	// Another vendor is locked out
	_, err = f.svc.TrackOrder(context.Background(), f.otherOwner.ID, entity.RoleVendor, number)
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestTrackOrderUnknownNumber(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.TrackOrder(context.Background(), f.buyer.ID, entity.RoleStudent, "ORD000")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
