package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/store"
)

// UserStore implements store.UserStore over PostgreSQL.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a PostgreSQL implementation of store.UserStore. The
// db handle may be a pooled connection or a transaction.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

const userColumns = "id, username, full_name, email, password, role, is_active, created_at, updated_at"

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (username, full_name, email, password, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := s.db.QueryRowContext(ctx, query,
		user.Username,
		user.FullName,
		user.Email,
		user.HashedPassword,
		user.Role,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return mapError(err, store.ErrUserNotFound)
	}

	s.logger.Debug("user created", "user_id", user.ID, "username", user.Username)
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getBy(ctx, "id = $1", id)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getBy(ctx, "email = $1", email)
}

func (s *UserStore) getBy(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s", userColumns, where)

	var u domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.FullName, &u.Email, &u.HashedPassword,
		&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, store.ErrUserNotFound)
	}
	return &u, nil
}

// List implements store.UserStore.List. The total is counted over the
// filtered query before pagination is applied.
func (s *UserStore) List(ctx context.Context, params store.UserListParams) ([]domain.User, int64, error) {
	where := ""
	args := []any{}
	if params.Search != "" {
		where = "WHERE username ILIKE $1 OR full_name ILIKE $1 OR email ILIKE $1"
		args = append(args, "%"+params.Search+"%")
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM users %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM users %s ORDER BY id OFFSET $%d LIMIT $%d",
		userColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, params.Offset, params.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Username, &u.FullName, &u.Email, &u.HashedPassword,
			&u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, total, nil
}

// ExistsByID implements store.UserStore.ExistsByID.
func (s *UserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)", id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// ExistsByUsername implements store.UserStore.ExistsByUsername.
func (s *UserStore) ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error) {
	return s.existsBy(ctx, "username", username, excludeID)
}

// ExistsByEmail implements store.UserStore.ExistsByEmail.
func (s *UserStore) ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error) {
	return s.existsBy(ctx, "email", email, excludeID)
}

func (s *UserStore) existsBy(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM users WHERE %s = $1 AND id != $2)", column)

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s existence: %w", column, err)
	}
	return exists, nil
}

// ExistsAdmin implements store.UserStore.ExistsAdmin.
func (s *UserStore) ExistsAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)", domain.RoleAdmin,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return exists, nil
}

// Update implements store.UserStore.Update.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $1, full_name = $2, email = $3, password = $4,
		    role = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7`

	result, err := s.db.ExecContext(ctx, query,
		user.Username,
		user.FullName,
		user.Email,
		user.HashedPassword,
		user.Role,
		user.IsActive,
		user.ID,
	)
	if err != nil {
		return mapError(err, store.ErrUserNotFound)
	}

	return checkRowsAffected(result, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete. Cars are not cascade-deleted;
// the FK restriction surfaces as ErrReferenced.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return mapError(err, store.ErrUserNotFound)
	}

	if err := checkRowsAffected(result, store.ErrUserNotFound); err != nil {
		return err
	}

	s.logger.Debug("user deleted", "user_id", id)
	return nil
}
