package auth

import "github.com/andreluoliveira82/car-api/internal/domain"

// RequireAdmin fails with a ForbiddenError unless the authenticated user
// holds the admin role.
func RequireAdmin(user *domain.User) error {
	if user == nil || !user.IsAdmin() {
		return domain.NewForbiddenError("Acesso restrito a administradores.")
	}
	return nil
}

// VerifyCarOwnership fails with a ForbiddenError unless the authenticated
// user is the car's owner. Admin bypass is decided by the caller, not here.
func VerifyCarOwnership(user *domain.User, carOwnerID int64) error {
	if user == nil || user.ID != carOwnerID {
		return domain.NewForbiddenError("Not enough permissions to access this car")
	}
	return nil
}
