package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateKeyError(t *testing.T) {
	uniqueViolation := &pgconn.PgError{Code: "23505", ConstraintName: "enrollments_pkey"}

	assert.True(t, IsDuplicateKeyError(uniqueViolation))
	assert.True(t, IsDuplicateKeyError(fmt.Errorf("insert failed: %w", uniqueViolation)))
	assert.False(t, IsDuplicateKeyError(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsDuplicateKeyError(errors.New("not a pg error")))
	assert.False(t, IsDuplicateKeyError(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	emailViolation := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	assert.True(t, IsDuplicateConstraintError(emailViolation, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(emailViolation, "enrollments_pkey"))
	assert.False(t, IsDuplicateConstraintError(&pgconn.PgError{Code: "23503", ConstraintName: "users_email_key"}, "users_email_key"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	fkViolation := &pgconn.PgError{Code: "23503", ConstraintName: "enrollments_user_id_fkey"}

	assert.True(t, IsForeignKeyViolation(fkViolation))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("insert failed: %w", fkViolation)))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(errors.New("not a pg error")))
}
