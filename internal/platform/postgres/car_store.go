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

// CarStore implements store.CarStore over PostgreSQL. Reads join brands and
// users so every car comes back with its brand and owner embedded.
type CarStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCarStore creates a PostgreSQL implementation of store.CarStore.
func NewCarStore(db store.DBTX, logger *slog.Logger) *CarStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CarStore{
		db:     db,
		logger: logger.With(slog.String("component", "car_store")),
	}
}

var _ store.CarStore = (*CarStore)(nil)

const carDetailColumns = `
	c.id, c.car_type, c.model, c.factory_year, c.model_year, c.color,
	c.fuel_type, c.transmission, c.condition, c.status, c.mileage, c.plate,
	c.price, c.description, c.brand_id, c.owner_id, c.created_at, c.updated_at,
	b.id, b.name, b.description, b.is_active, b.created_at, b.updated_at,
	u.id, u.username, u.full_name, u.email, u.role, u.is_active, u.created_at, u.updated_at`

const carDetailFrom = `
	FROM cars c
	JOIN brands b ON b.id = c.brand_id
	JOIN users u ON u.id = c.owner_id`

// Create implements store.CarStore.Create.
func (s *CarStore) Create(ctx context.Context, car *domain.Car) error {
	query := `
		INSERT INTO cars (
			car_type, model, factory_year, model_year, color, fuel_type,
			transmission, condition, status, mileage, plate, price,
			description, brand_id, owner_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		car.CarType, car.Model, car.FactoryYear, car.ModelYear, car.Color,
		car.FuelType, car.Transmission, car.Condition, car.Status, car.Mileage,
		car.Plate, car.Price, nullableString(car.Description),
		car.BrandID, car.OwnerID,
	).Scan(&car.ID, &car.CreatedAt, &car.UpdatedAt)
	if err != nil {
		return mapError(err, store.ErrCarNotFound)
	}

	s.logger.Debug("car created", "car_id", car.ID, "plate", car.Plate, "owner_id", car.OwnerID)
	return nil
}

// GetByID implements store.CarStore.GetByID.
func (s *CarStore) GetByID(ctx context.Context, id int64) (*domain.CarDetail, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE c.id = $1", carDetailColumns, carDetailFrom)

	detail, err := scanCarDetail(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err, store.ErrCarNotFound)
	}
	return detail, nil
}

// List implements store.CarStore.List. The total is counted over the
// filtered query before pagination is applied.
func (s *CarStore) List(ctx context.Context, params store.CarListParams) ([]domain.CarDetail, int64, error) {
	var conds []string
	var args []any

	addCond := func(expr string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(c.model ILIKE $%d OR c.color ILIKE $%d OR c.plate ILIKE $%d)", n, n, n))
	}
	if params.CarType != "" {
		addCond("c.car_type = $%d", params.CarType)
	}
	if params.Color != "" {
		addCond("c.color = $%d", params.Color)
	}
	if params.FuelType != "" {
		addCond("c.fuel_type = $%d", params.FuelType)
	}
	if params.Transmission != "" {
		addCond("c.transmission = $%d", params.Transmission)
	}
	if params.Condition != "" {
		addCond("c.condition = $%d", params.Condition)
	}
	if params.Status != "" {
		addCond("c.status = $%d", params.Status)
	}
	if params.BrandID != 0 {
		addCond("c.brand_id = $%d", params.BrandID)
	}
	if params.OwnerID != 0 {
		addCond("c.owner_id = $%d", params.OwnerID)
	}
	if params.MinYear != 0 {
		addCond("c.model_year >= $%d", params.MinYear)
	}
	if params.MaxYear != 0 {
		addCond("c.model_year <= $%d", params.MaxYear)
	}
	if params.MinPrice != nil {
		addCond("c.price >= $%d", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		addCond("c.price <= $%d", *params.MaxPrice)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM cars c %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s %s %s ORDER BY c.id OFFSET $%d LIMIT $%d",
		carDetailColumns, carDetailFrom, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Offset, params.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cars []domain.CarDetail
	for rows.Next() {
		detail, err := scanCarDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan car row: %w", err)
		}
		cars = append(cars, *detail)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate car rows: %w", err)
	}

	return cars, total, nil
}

// ExistsByPlate implements store.CarStore.ExistsByPlate.
func (s *CarStore) ExistsByPlate(ctx context.Context, plate string, excludeID int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM cars WHERE plate = $1 AND id != $2)",
		plate, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check plate existence: %w", err)
	}
	return exists, nil
}

// Update implements store.CarStore.Update.
func (s *CarStore) Update(ctx context.Context, car *domain.Car) error {
	query := `
		UPDATE cars
		SET car_type = $1, model = $2, factory_year = $3, model_year = $4,
		    color = $5, fuel_type = $6, transmission = $7, condition = $8,
		    status = $9, mileage = $10, plate = $11, price = $12,
		    description = $13, brand_id = $14, owner_id = $15, updated_at = NOW()
		WHERE id = $16`

	result, err := s.db.ExecContext(ctx, query,
		car.CarType, car.Model, car.FactoryYear, car.ModelYear, car.Color,
		car.FuelType, car.Transmission, car.Condition, car.Status, car.Mileage,
		car.Plate, car.Price, nullableString(car.Description),
		car.BrandID, car.OwnerID, car.ID,
	)
	if err != nil {
		return mapError(err, store.ErrCarNotFound)
	}

	return checkRowsAffected(result, store.ErrCarNotFound)
}

// UpdateStatus implements store.CarStore.UpdateStatus.
func (s *CarStore) UpdateStatus(ctx context.Context, id int64, status domain.CarStatus) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE cars SET status = $1, updated_at = NOW() WHERE id = $2",
		status, id,
	)
	if err != nil {
		return mapError(err, store.ErrCarNotFound)
	}

	return checkRowsAffected(result, store.ErrCarNotFound)
}

// Delete implements store.CarStore.Delete.
func (s *CarStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return mapError(err, store.ErrCarNotFound)
	}

	if err := checkRowsAffected(result, store.ErrCarNotFound); err != nil {
		return err
	}

	s.logger.Debug("car deleted", "car_id", id)
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCarDetail(row rowScanner) (*domain.CarDetail, error) {
	var d domain.CarDetail
	var carDescription, brandDescription sql.NullString

	err := row.Scan(
		&d.Car.ID, &d.Car.CarType, &d.Car.Model, &d.Car.FactoryYear,
		&d.Car.ModelYear, &d.Car.Color, &d.Car.FuelType, &d.Car.Transmission,
		&d.Car.Condition, &d.Car.Status, &d.Car.Mileage, &d.Car.Plate,
		&d.Car.Price, &carDescription, &d.Car.BrandID, &d.Car.OwnerID,
		&d.Car.CreatedAt, &d.Car.UpdatedAt,
		&d.Brand.ID, &d.Brand.Name, &brandDescription, &d.Brand.IsActive,
		&d.Brand.CreatedAt, &d.Brand.UpdatedAt,
		&d.Owner.ID, &d.Owner.Username, &d.Owner.FullName, &d.Owner.Email,
		&d.Owner.Role, &d.Owner.IsActive, &d.Owner.CreatedAt, &d.Owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Car.Description = carDescription.String
	d.Brand.Description = brandDescription.String
	return &d, nil
}
