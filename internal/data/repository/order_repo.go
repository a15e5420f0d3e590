package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-delivery/internal/data/entity"
	"campus-delivery/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ItemSales is one row of the vendor top-items aggregate.
type ItemSales struct {
	Name     string
	Quantity int64
	Revenue  float64
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error

	// Dashboard aggregates
	CountPlacedBetween(ctx context.Context, from, to time.Time) (int64, error)
	SumTotalBetween(ctx context.Context, from, to time.Time) (float64, error)
	SumVendorRevenue(ctx context.Context, vendorID uuid.UUID) (float64, error)
	CountDistinctCustomers(ctx context.Context, vendorID uuid.UUID) (int64, error)
	TopItemsByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]ItemSales, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

const orderColumns = `id, order_number, user_id, vendor_id, status, delivery_address, phone,
	       subtotal, delivery_fee, tax, total, payment_method, estimated_delivery, notes,
	       created_at, updated_at`

// Create persists the order and its lines in one transaction. A collision on
// the orders_order_number_key constraint comes back as ErrDuplicateOrderNumber
// so the caller can regenerate and retry.
func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order tx: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, order_number, user_id, vendor_id, status, delivery_address,
		                    phone, subtotal, delivery_fee, tax, total, payment_method,
		                    estimated_delivery, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.OrderNumber,
		order.UserID,
		order.VendorID,
		order.Status,
		order.DeliveryAddress,
		order.Phone,
		order.Subtotal,
		order.DeliveryFee,
		order.Tax,
		order.Total,
		order.PaymentMethod,
		order.EstimatedDelivery,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("create order %s: %w", order.OrderNumber, entity.ErrDuplicateOrderNumber)
		}
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, menu_item_id, name, price, quantity, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, item := range order.Items {
		_, err := tx.Exec(ctx, itemQuery,
			item.ID,
			item.OrderID,
			item.MenuItemID,
			item.Name,
			item.Price,
			item.Quantity,
			item.Total,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.String("order_number", order.OrderNumber),
				zap.String("item_name", item.Name),
			)
			return fmt.Errorf("create order item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return fmt.Errorf("commit order %s: %w", order.OrderNumber, err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	order, err := r.scanOrder(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE order_number = $1
	`

	order, err := r.scanOrder(r.db.QueryRow(ctx, query, orderNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by number",
			zap.Error(err),
			zap.String("order_number", orderNumber),
		)
		return nil, fmt.Errorf("find order by number %s: %w", orderNumber, err)
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// FindByUserID returns the buyer's order history, drafts excluded
func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND status <> 'CART'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryOrders(ctx, query, userID, limit, offset)
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1 AND status <> 'CART'`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE vendor_id = $1 AND status <> 'CART'
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryOrders(ctx, query, vendorID, limit, offset)
}

func (r *orderRepository) CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE vendor_id = $1 AND status <> 'CART'`

	var count int64
	if err := r.db.QueryRow(ctx, query, vendorID).Scan(&count); err != nil {
		r.log.Error("Failed to count orders by vendor",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count orders for vendor %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status <> 'CART'
		ORDER BY created_at DESC
		LIMIT $1
	`

	return r.queryOrders(ctx, query, limit)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, orderID, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status to %s: %w", orderID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update order %s status: %w", orderID.String(), entity.ErrNotFound)
	}

	return nil
}

// ==================== AGGREGATES ====================

func (r *orderRepository) CountPlacedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2 AND status <> 'CART'
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		r.log.Error("Failed to count orders in window", zap.Error(err))
		return 0, fmt.Errorf("count orders between %s and %s: %w", from, to, err)
	}

	return count, nil
}

func (r *orderRepository) SumTotalBetween(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at >= $1 AND created_at < $2 AND status <> 'CART'
	`

	var sum float64
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&sum); err != nil {
		r.log.Error("Failed to sum order totals in window", zap.Error(err))
		return 0, fmt.Errorf("sum order totals between %s and %s: %w", from, to, err)
	}

	return sum, nil
}

// SumVendorRevenue counts only delivered orders
func (r *orderRepository) SumVendorRevenue(ctx context.Context, vendorID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM orders
		WHERE vendor_id = $1 AND status = 'DELIVERED'
	`

	var sum float64
	if err := r.db.QueryRow(ctx, query, vendorID).Scan(&sum); err != nil {
		r.log.Error("Failed to sum vendor revenue",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("sum revenue for vendor %s: %w", vendorID.String(), err)
	}

	return sum, nil
}

func (r *orderRepository) CountDistinctCustomers(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM orders
		WHERE vendor_id = $1 AND status <> 'CART'
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, vendorID).Scan(&count); err != nil {
		r.log.Error("Failed to count distinct customers",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count customers for vendor %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *orderRepository) TopItemsByVendor(ctx context.Context, vendorID uuid.UUID, limit int) ([]ItemSales, error) {
	query := `
		SELECT oi.name, SUM(oi.quantity) AS qty, SUM(oi.total) AS revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.vendor_id = $1 AND o.status = 'DELIVERED'
		GROUP BY oi.name
		ORDER BY qty DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, vendorID, limit)
	if err != nil {
		r.log.Error("Failed to query top items",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return nil, fmt.Errorf("top items for vendor %s: %w", vendorID.String(), err)
	}
	defer rows.Close()

	var items []ItemSales
	for rows.Next() {
		var item ItemSales
		if err := rows.Scan(&item.Name, &item.Quantity, &item.Revenue); err != nil {
			r.log.Error("Failed to scan top item row", zap.Error(err))
			return nil, fmt.Errorf("scan top item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate top item rows: %w", err)
	}

	return items, nil
}

// ==================== HELPERS ====================

func (r *orderRepository) scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.OrderNumber,
		&order.UserID,
		&order.VendorID,
		&order.Status,
		&order.DeliveryAddress,
		&order.Phone,
		&order.Subtotal,
		&order.DeliveryFee,
		&order.Tax,
		&order.Total,
		&order.PaymentMethod,
		&order.EstimatedDelivery,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query orders", zap.Error(err))
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	for _, order := range orders {
		if err := r.loadItems(ctx, order); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, order *entity.Order) error {
	query := `
		SELECT id, order_id, menu_item_id, name, price, quantity, total, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, order.ID)
	if err != nil {
		r.log.Error("Failed to load order items",
			zap.Error(err),
			zap.String("order_id", order.ID.String()),
		)
		return fmt.Errorf("load items for order %s: %w", order.ID.String(), err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Total,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return fmt.Errorf("iterate order item rows: %w", err)
	}

	order.Items = items
	return nil
}
