package services

import (
	"context"

	apperrors "nexustech/errors"
	"nexustech/models"
)

// Directory is the slice of the user store the role gate needs.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// CheckRole loads the caller's current role from dir and checks it against
// the allowed set. An unknown user or a role outside the set is Forbidden.
// With no roles given any known user passes.
func CheckRole(ctx context.Context, dir Directory, email string, roles ...models.Role) (models.Role, error) {
	user, err := dir.FindByEmail(ctx, email)
	if err != nil {
		if apperrors.HasCode(err, apperrors.ErrCodeUserNotFound) {
			return "", apperrors.Forbidden("Forbidden access")
		}
		return "", err
	}

	if len(roles) == 0 {
		return user.Role, nil
	}
	for _, r := range roles {
		if user.Role == r {
			return user.Role, nil
		}
	}
	return "", apperrors.Forbidden("Forbidden access")
}
