package postgres

import (
	"context"
	"database/sql/driver"
	"net"

	domainerrors "macrolog/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateNotNullViolation    = "23502"
	sqlStateCheckViolation      = "23514"
	sqlStateAdminShutdown       = "57P01"
	sqlStateCannotConnectNow    = "57P03"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == sqlStateUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == sqlStateForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == sqlStateNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == sqlStateCheckViolation
}

// isConnectionError reports failures to reach the server, as opposed to
// errors returned by a healthy server for a bad statement.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	code := pgErrorCode(err)
	// Class 08 is connection exception.
	if len(code) == 5 && code[:2] == "08" {
		return true
	}

	return code == sqlStateAdminShutdown || code == sqlStateCannotConnectNow
}

// translateError maps a driver error to an AppError. Constraint violations are
// the caller's responsibility; everything else is unavailable or opaque.
func translateError(err error, details string) error {
	if isConnectionError(err) {
		return domainerrors.NewStoreUnavailableError(err)
	}

	if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) || isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
