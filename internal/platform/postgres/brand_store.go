package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// BrandStore implements store.BrandStore over PostgreSQL.
type BrandStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBrandStore creates a PostgreSQL implementation of store.BrandStore.
func NewBrandStore(db store.DBTX, logger *slog.Logger) *BrandStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrandStore{
		db:     db,
		logger: logger.With(slog.String("component", "brand_store")),
	}
}

var _ store.BrandStore = (*BrandStore)(nil)

const brandColumns = "id, name, description, is_active, created_at, updated_at"

// Create implements store.BrandStore.Create.
func (s *BrandStore) Create(ctx context.Context, brand *domain.Brand) error {
	query := `
		INSERT INTO brands (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		brand.Name,
		nullableString(brand.Description),
		brand.IsActive,
	).Scan(&brand.ID, &brand.CreatedAt, &brand.UpdatedAt)
	if err != nil {
		return mapError(err, store.ErrBrandNotFound)
	}

	s.logger.Debug("brand created", "brand_id", brand.ID, "name", brand.Name)
	return nil
}

// GetByID implements store.BrandStore.GetByID.
func (s *BrandStore) GetByID(ctx context.Context, id int64) (*domain.Brand, error) {
	query := fmt.Sprintf("SELECT %s FROM brands WHERE id = $1", brandColumns)

	var b domain.Brand
	var description sql.NullString
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, store.ErrBrandNotFound)
	}
	b.Description = description.String
	return &b, nil
}

// List implements store.BrandStore.List.
func (s *BrandStore) List(ctx context.Context, params store.BrandListParams) ([]domain.Brand, int64, error) {
	var conds []string
	var args []any

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM brands %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM brands %s ORDER BY id OFFSET $%d LIMIT $%d",
		brandColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Offset, params.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		var description sql.NullString
		if err := rows.Scan(
			&b.ID, &b.Name, &description, &b.IsActive, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan brand row: %w", err)
		}
		b.Description = description.String
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate brand rows: %w", err)
	}

	return brands, total, nil
}

// ExistsByID implements store.BrandStore.ExistsByID.
func (s *BrandStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM brands WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check brand existence: %w", err)
	}
	return exists, nil
}

// ExistsByName implements store.BrandStore.ExistsByName.
func (s *BrandStore) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM brands WHERE name = $1 AND id != $2)",
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check brand name existence: %w", err)
	}
	return exists, nil
}

// HasCars implements store.BrandStore.HasCars.
func (s *BrandStore) HasCars(ctx context.Context, brandID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM cars WHERE brand_id = $1)", brandID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check brand cars: %w", err)
	}
	return exists, nil
}

// Update implements store.BrandStore.Update.
func (s *BrandStore) Update(ctx context.Context, brand *domain.Brand) error {
	query := `
		UPDATE brands
		SET name = $1, description = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4`

	result, err := s.db.ExecContext(ctx, query,
		brand.Name,
		nullableString(brand.Description),
		brand.IsActive,
		brand.ID,
	)
	if err != nil {
		return mapError(err, store.ErrBrandNotFound)
	}

	return checkRowsAffected(result, store.ErrBrandNotFound)
}

// Delete implements store.BrandStore.Delete. The handler blocks deletion
// while cars reference the brand; the FK restriction is the backstop.
func (s *BrandStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM brands WHERE id = $1", id)
	if err != nil {
		return mapError(err, store.ErrBrandNotFound)
	}

	if err := checkRowsAffected(result, store.ErrBrandNotFound); err != nil {
		return err
	}

	s.logger.Debug("brand deleted", "brand_id", id)
	return nil
}

// nullableString maps an empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
