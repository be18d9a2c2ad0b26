package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
	"go.mongodb.org/mongo-driver/mongo"
)

const uniqueViolation = "23505"

// IsDuplicateKeyError checks if the error is a PostgreSQL unique violation error.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return IsDuplicateKeyError(err) && errors.As(err, &pgErr) && pgErr.ConstraintName == constraintName
}

// IsDuplicateDocumentError checks if a MongoDB write failed on a duplicate key.
func IsDuplicateDocumentError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
