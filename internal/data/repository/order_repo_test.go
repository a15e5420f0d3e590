package repository

import (
	"context"
	"testing"
	"time"

	"campus-delivery/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOrderRepoMock(t *testing.T) (OrderRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewOrderRepository(mock, zap.NewNop()), mock
}

func sampleOrder() *entity.Order {
	now := time.Now()
	orderID := uuid.New()

	return &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        orderID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber: "ORD17000000000000042",
		UserID:      uuid.New(),
		VendorID:    uuid.New(),
		Items: []entity.OrderItem{{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			OrderID:    orderID,
			MenuItemID: uuid.New(),
			Name:       "Cappuccino",
			Price:      120,
			Quantity:   2,
			Total:      240,
		}},
		Status:            entity.OrderStatusPlaced,
		DeliveryAddress:   "Hostel B, Room 214",
		Phone:             "9876543210",
		Subtotal:          240,
		DeliveryFee:       20,
		Tax:               0,
		Total:             260,
		PaymentMethod:     entity.PaymentCOD,
		EstimatedDelivery: "20-30 min",
	}
}

func TestOrderRepositoryCreate(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(
			order.ID, order.OrderNumber, order.UserID, order.VendorID,
			order.Status, order.DeliveryAddress, order.Phone,
			order.Subtotal, order.DeliveryFee, order.Tax, order.Total,
			order.PaymentMethod, order.EstimatedDelivery, order.Notes,
			order.CreatedAt, order.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			order.Items[0].ID, order.Items[0].OrderID, order.Items[0].MenuItemID,
			order.Items[0].Name, order.Items[0].Price, order.Items[0].Quantity,
			order.Items[0].Total, order.Items[0].CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.Create(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateDuplicateNumber(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(
			order.ID, order.OrderNumber, order.UserID, order.VendorID,
			order.Status, order.DeliveryAddress, order.Phone,
			order.Subtotal, order.DeliveryFee, order.Tax, order.Total,
			order.PaymentMethod, order.EstimatedDelivery, order.Notes,
			order.CreatedAt, order.UpdatedAt,
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), order)
	assert.ErrorIs(t, err, entity.ErrDuplicateOrderNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateRollsBackOnItemFailure(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	order := sampleOrder()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(
			order.ID, order.OrderNumber, order.UserID, order.VendorID,
			order.Status, order.DeliveryAddress, order.Phone,
			order.Subtotal, order.DeliveryFee, order.Tax, order.Total,
			order.PaymentMethod, order.EstimatedDelivery, order.Notes,
			order.CreatedAt, order.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			order.Items[0].ID, order.Items[0].OrderID, order.Items[0].MenuItemID,
			order.Items[0].Name, order.Items[0].Price, order.Items[0].Quantity,
			order.Items[0].Total, order.Items[0].CreatedAt,
		).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), order)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	orderID := uuid.New()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(orderID, entity.OrderStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), orderID, entity.OrderStatusConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryUpdateStatusNotFound(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	orderID := uuid.New()

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(orderID, entity.OrderStatusConfirmed).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), orderID, entity.OrderStatusConfirmed)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestOrderRepositoryFindByOrderNumber(t *testing.T) {
	repo, mock := newOrderRepoMock(t)
	order := sampleOrder()

	orderRows := pgxmock.NewRows([]string{
		"id", "order_number", "user_id", "vendor_id", "status",
		"delivery_address", "phone", "subtotal", "delivery_fee", "tax",
		"total", "payment_method", "estimated_delivery", "notes",
		"created_at", "updated_at",
	}).AddRow(
		order.ID, order.OrderNumber, order.UserID, order.VendorID, order.Status,
		order.DeliveryAddress, order.Phone, order.Subtotal, order.DeliveryFee, order.Tax,
		order.Total, order.PaymentMethod, order.EstimatedDelivery, order.Notes,
		order.CreatedAt, order.UpdatedAt,
	)

	itemRows := pgxmock.NewRows([]string{
		"id", "order_id", "menu_item_id", "name", "price", "quantity", "total", "created_at",
	}).AddRow(
		order.Items[0].ID, order.Items[0].OrderID, order.Items[0].MenuItemID,
		order.Items[0].Name, order.Items[0].Price, order.Items[0].Quantity,
		order.Items[0].Total, order.Items[0].CreatedAt,
	)

	mock.ExpectQuery("FROM orders").
		WithArgs(order.OrderNumber).
		WillReturnRows(orderRows)
	mock.ExpectQuery("FROM order_items").
		WithArgs(order.ID).
		WillReturnRows(itemRows)

	found, err := repo.FindByOrderNumber(context.Background(), order.OrderNumber)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, order.OrderNumber, found.OrderNumber)
	assert.Equal(t, entity.OrderStatusPlaced, found.Status)
	assert.Equal(t, 260.0, found.Total)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Cappuccino", found.Items[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryFindByOrderNumberMissing(t *testing.T) {
	repo, mock := newOrderRepoMock(t)

	mock.ExpectQuery("FROM orders").
		WithArgs("ORD000").
		WillReturnError(pgx.ErrNoRows)

	found, err := repo.FindByOrderNumber(context.Background(), "ORD000")
	require.NoError(t, err)
	assert.Nil(t, found)
}
