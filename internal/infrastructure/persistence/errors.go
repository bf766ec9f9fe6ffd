package persistence

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// pgUniqueViolation is the SQLSTATE Postgres reports for unique index violations
const pgUniqueViolation = "23505"

// uniqueRule maps a unique index to the domain error it represents.
// Column is the "table.column" text SQLite puts in its error message.
type uniqueRule struct {
	Constraint string
	Column     string
	Err        error
}

// translateUniqueViolation converts a storage-level unique violation into the
// matching domain error. Errors that match no rule are returned unchanged.
func translateUniqueViolation(err error, rules ...uniqueRule) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return matchConstraint(err, pgErr.ConstraintName, rules)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return matchConstraint(err, pqErr.Constraint, rules)
	}

	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") {
		for _, rule := range rules {
			if rule.Column != "" && strings.Contains(msg, rule.Column) {
				return rule.Err
			}
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) && len(rules) == 1 {
		return rules[0].Err
	}
	return err
}

func matchConstraint(err error, constraint string, rules []uniqueRule) error {
	for _, rule := range rules {
		if rule.Constraint == constraint {
			return rule.Err
		}
	}
	return err
}

// IsUniqueViolation reports whether err is any unique index violation
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
