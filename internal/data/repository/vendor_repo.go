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

type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByOwnerUserID(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error)
	FindAll(ctx context.Context) ([]*entity.Vendor, error)
	FindActive(ctx context.Context) ([]*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	SetOnline(ctx context.Context, id uuid.UUID, online bool) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// Dashboard aggregates
	CountActive(ctx context.Context) (int64, error)
	CountByOnline(ctx context.Context, online bool) (int64, error)
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

const vendorColumns = `id, owner_user_id, name, description, cuisine, rating,
	       delivery_time, is_active, is_online, created_at, updated_at, deleted_at`

func (r *vendorRepository) scanVendor(row pgx.Row) (*entity.Vendor, error) {
	var vendor entity.Vendor
	err := row.Scan(
		&vendor.ID,
		&vendor.OwnerUserID,
		&vendor.Name,
		&vendor.Description,
		&vendor.Cuisine,
		&vendor.Rating,
		&vendor.DeliveryTime,
		&vendor.IsActive,
		&vendor.IsOnline,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
		&vendor.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, owner_user_id, name, description, cuisine, rating,
		                     delivery_time, is_active, is_online, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.OwnerUserID,
		vendor.Name,
		vendor.Description,
		vendor.Cuisine,
		vendor.Rating,
		vendor.DeliveryTime,
		vendor.IsActive,
		vendor.IsOnline,
		vendor.CreatedAt,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vendor",
			zap.Error(err),
			zap.String("name", vendor.Name),
			zap.String("owner_user_id", vendor.OwnerUserID.String()),
		)
		return fmt.Errorf("create vendor %s: %w", vendor.Name, err)
	}

	return nil
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE id = $1 AND deleted_at IS NULL
	`

	vendor, err := r.scanVendor(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by ID",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
		)
		return nil, fmt.Errorf("find vendor by ID %s: %w", id.String(), err)
	}

	return vendor, nil
}

func (r *vendorRepository) FindByOwnerUserID(ctx context.Context, ownerID uuid.UUID) (*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE owner_user_id = $1 AND deleted_at IS NULL
	`

	vendor, err := r.scanVendor(r.db.QueryRow(ctx, query, ownerID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by owner",
			zap.Error(err),
			zap.String("owner_user_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find vendor by owner %s: %w", ownerID.String(), err)
	}

	return vendor, nil
}

func (r *vendorRepository) FindAll(ctx context.Context) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	return r.queryVendors(ctx, query)
}

// FindActive returns listed vendors for the storefront, best rated first
func (r *vendorRepository) FindActive(ctx context.Context) ([]*entity.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE is_active = TRUE AND deleted_at IS NULL
		ORDER BY rating DESC
	`

	return r.queryVendors(ctx, query)
}

func (r *vendorRepository) queryVendors(ctx context.Context, query string, args ...any) ([]*entity.Vendor, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query vendors", zap.Error(err))
		return nil, fmt.Errorf("query vendors: %w", err)
	}
	defer rows.Close()

	var vendors []*entity.Vendor
	for rows.Next() {
		vendor, err := r.scanVendor(rows)
		if err != nil {
			r.log.Error("Failed to scan vendor row", zap.Error(err))
			return nil, fmt.Errorf("scan vendor row: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate vendor rows: %w", err)
	}

	return vendors, nil
}

func (r *vendorRepository) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, description = $3, cuisine = $4, rating = $5,
		    delivery_time = $6, is_active = $7, is_online = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		vendor.ID,
		vendor.Name,
		vendor.Description,
		vendor.Cuisine,
		vendor.Rating,
		vendor.DeliveryTime,
		vendor.IsActive,
		vendor.IsOnline,
		vendor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vendor",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID.String()),
		)
		return fmt.Errorf("update vendor %s: %w", vendor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update vendor %s: %w", vendor.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *vendorRepository) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	query := `UPDATE vendors SET is_online = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, online)
	if err != nil {
		r.log.Error("Failed to set vendor online flag",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
			zap.Bool("online", online),
		)
		return fmt.Errorf("set vendor %s online=%t: %w", id.String(), online, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set vendor %s online: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *vendorRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	query := `UPDATE vendors SET is_active = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, active)
	if err != nil {
		r.log.Error("Failed to set vendor active flag",
			zap.Error(err),
			zap.String("vendor_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("set vendor %s active=%t: %w", id.String(), active, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set vendor %s active: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *vendorRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM vendors WHERE is_active = TRUE AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count active vendors", zap.Error(err))
		return 0, fmt.Errorf("count active vendors: %w", err)
	}

	return count, nil
}

func (r *vendorRepository) CountByOnline(ctx context.Context, online bool) (int64, error) {
	query := `SELECT COUNT(*) FROM vendors WHERE is_online = $1 AND deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query, online).Scan(&count); err != nil {
		r.log.Error("Failed to count vendors by online flag", zap.Error(err))
		return 0, fmt.Errorf("count vendors online=%t: %w", online, err)
	}

	return count, nil
}
