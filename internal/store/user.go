package store

import (
	"context"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

// UserListParams filters and paginates a user listing. Search matches
// username, full name or email, case-insensitively.
type UserListParams struct {
	Offset int
	Limit  int
	Search string
}

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user. The caller is responsible for validation and
	// password hashing; uniqueness races surface as ErrUsernameExists or
	// ErrEmailExists. On success the user's ID and timestamps are populated.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id. Returns ErrUserNotFound if absent.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if
	// absent. Emails are stored lowercased, so lookups are exact matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a page of users plus the total count over the filtered
	// (pre-pagination) query.
	List(ctx context.Context, params UserListParams) ([]domain.User, int64, error)

	// ExistsByID reports whether a user with the given id exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByUsername reports whether another user already holds the
	// username. excludeID, when non-zero, leaves that row out of the check
	// so updates do not collide with themselves.
	ExistsByUsername(ctx context.Context, username string, excludeID int64) (bool, error)

	// ExistsByEmail is the email counterpart of ExistsByUsername.
	ExistsByEmail(ctx context.Context, email string, excludeID int64) (bool, error)

	// ExistsAdmin reports whether any admin account exists. Used by the
	// startup seed.
	ExistsAdmin(ctx context.Context) (bool, error)

	// Update persists the full user row. Returns ErrUserNotFound if the
	// user does not exist, or a duplicate error on a uniqueness race.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user. Returns ErrUserNotFound if absent, or
	// ErrReferenced if the user still owns cars.
	Delete(ctx context.Context, id int64) error
}
