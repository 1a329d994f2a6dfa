package services

import (
	"context"
	"strconv"
	"strings"

	apperrors "nexustech/errors"
)

type EmployeeRefKind int

const (
	EmployeeRefByID EmployeeRefKind = iota
	EmployeeRefByEmail
)

// EmployeeRef is a path slug parsed once: an email when it contains "@",
// a numeric user id otherwise.
type EmployeeRef struct {
	Kind  EmployeeRefKind
	ID    uint
	Email string
}

func ParseEmployeeRef(slug string) (EmployeeRef, error) {
	slug = strings.TrimSpace(slug)
	if strings.Contains(slug, "@") {
		return EmployeeRef{Kind: EmployeeRefByEmail, Email: normalizeEmail(slug)}, nil
	}

	id, err := strconv.ParseUint(slug, 10, 64)
	if err != nil || id == 0 {
		return EmployeeRef{}, apperrors.Validation("Invalid employee id")
	}
	return EmployeeRef{Kind: EmployeeRefByID, ID: uint(id)}, nil
}

// Resolve returns the user id the reference points at.
func (r EmployeeRef) Resolve(ctx context.Context, dir Directory) (uint, error) {
	if r.Kind == EmployeeRefByID {
		return r.ID, nil
	}
	user, err := dir.FindByEmail(ctx, r.Email)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}
