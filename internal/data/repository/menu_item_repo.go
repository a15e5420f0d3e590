package repository

import (
	"context"
	"fmt"

	"campus-delivery/internal/data/entity"
	"campus-delivery/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.MenuItem, error)
	FindAvailableByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.MenuItem, error)
	CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type menuItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuItemRepository(db database.PgxIface, log *zap.Logger) MenuItemRepository {
	return &menuItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "menu_item")),
	}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, vendor_id, name, description, price, category,
		                        is_veg, is_available, preparation_time, rating,
		                        created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		item.ID,
		item.VendorID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.IsVeg,
		item.IsAvailable,
		item.PreparationTime,
		item.Rating,
		item.CreatedAt,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create menu item",
			zap.Error(err),
			zap.String("name", item.Name),
			zap.String("vendor_id", item.VendorID.String()),
		)
		return fmt.Errorf("create menu item %s: %w", item.Name, err)
	}

	return nil
}

func (r *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, vendor_id, name, description, price, category,
		       is_veg, is_available, preparation_time, rating, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	var item entity.MenuItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.VendorID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.IsVeg,
		&item.IsAvailable,
		&item.PreparationTime,
		&item.Rating,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find menu item by ID",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return nil, fmt.Errorf("find menu item by ID %s: %w", id.String(), err)
	}

	return &item, nil
}

func (r *menuItemRepository) FindByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, vendor_id, name, description, price, category,
		       is_veg, is_available, preparation_time, rating, created_at, updated_at
		FROM menu_items
		WHERE vendor_id = $1
		ORDER BY created_at DESC
	`

	return r.queryItems(ctx, query, vendorID)
}

func (r *menuItemRepository) FindAvailableByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, vendor_id, name, description, price, category,
		       is_veg, is_available, preparation_time, rating, created_at, updated_at
		FROM menu_items
		WHERE vendor_id = $1 AND is_available = TRUE
		ORDER BY category, name
	`

	return r.queryItems(ctx, query, vendorID)
}

func (r *menuItemRepository) queryItems(ctx context.Context, query string, args ...any) ([]*entity.MenuItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query menu items", zap.Error(err))
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.IsVeg,
			&item.IsAvailable,
			&item.PreparationTime,
			&item.Rating,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menu item rows: %w", err)
	}

	return items, nil
}

func (r *menuItemRepository) CountByVendorID(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM menu_items WHERE vendor_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, vendorID).Scan(&count); err != nil {
		r.log.Error("Failed to count menu items",
			zap.Error(err),
			zap.String("vendor_id", vendorID.String()),
		)
		return 0, fmt.Errorf("count menu items for vendor %s: %w", vendorID.String(), err)
	}

	return count, nil
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category = $5,
		    is_veg = $6, is_available = $7, preparation_time = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.Category,
		item.IsVeg,
		item.IsAvailable,
		item.PreparationTime,
		item.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update menu item",
			zap.Error(err),
			zap.String("menu_item_id", item.ID.String()),
		)
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update menu item %s: %w", item.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *menuItemRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	query := `UPDATE menu_items SET is_available = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, available)
	if err != nil {
		r.log.Error("Failed to set menu item availability",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
			zap.Bool("available", available),
		)
		return fmt.Errorf("set menu item %s availability: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set menu item %s availability: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM menu_items WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete menu item",
			zap.Error(err),
			zap.String("menu_item_id", id.String()),
		)
		return fmt.Errorf("delete menu item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete menu item %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}
