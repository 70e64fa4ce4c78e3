package aggregates

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-backend/internal/platform/apierr"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const (
	MsgDuplicate      = "An object with these values already exists."
	MsgMissingRelated = "Referenced object does not exist."
)

// MapError maps infrastructure failures into request-scoped error codes.
// Constraint violations become validation errors with a fixed message; driver
// text stays on Cause. Delete-time reference conflicts are ReferenceGuard's.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierr.New(apierr.CodeNotFound, op, "Not found.", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apierr.Internal(op, err)
	case IsUniqueViolation(err):
		return constraintError(op, MsgDuplicate, err)
	case IsForeignKeyViolation(err):
		return constraintError(op, MsgMissingRelated, err)
	}
	return apierr.Internal(op, err)
}

func constraintError(op, msg string, cause error) error {
	e := apierr.Invalid(op, apierr.NonFieldErrors, msg)
	e.Cause = cause
	return e
}

func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "duplicate key")
}

func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}
