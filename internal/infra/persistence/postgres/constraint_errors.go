package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking.
// Only the constraint classes the repositories map to domain errors are
// covered: unique violations (duplicate state tokens, the one-session-per-user
// index) and not-null violations (incomplete attempt/session rows).

func isUniqueConstraintViolation(err error) bool {
	// GORM translates PostgreSQL unique_violation into its own sentinel.
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotNullConstraintViolation(err error) bool {
	// GORM has no sentinel for not_null_violation, so match on the message.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
