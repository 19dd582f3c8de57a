package postgres

import (
	"strings"

	"unifeast/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a duplicate key, whether or not GORM translated it.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}
