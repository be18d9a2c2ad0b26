package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsAreDistinguishable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"connection", NewConnectionError("postgres unreachable", cause), ErrConnection},
		{"query", NewQueryError("select failed", cause), ErrQuery},
		{"validation", NewValidationError("Age should be 18 or older"), ErrValidationFailed},
		{"duplicate", NewDuplicateKeyError("Student with ID G001 already exists"), ErrDuplicateKey},
		{"integrity", ErrLecturerTeachesModule, ErrIntegrityViolation},
		{"not found", ErrLecturerNotFound, ErrResourceNotFound},
	}

	kinds := []error{ErrConnection, ErrQuery, ErrValidationFailed, ErrDuplicateKey, ErrIntegrityViolation, ErrResourceNotFound}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range kinds {
				assert.Equal(t, k == tt.kind, errors.Is(tt.err, k), "kind %v", k)
			}
		})
	}
}

func TestCustomErrorKeepsCause(t *testing.T) {
	cause := errors.New("socket closed")
	err := fmt.Errorf("listing students: %w", NewQueryError("error querying students", cause))

	assert.ErrorIs(t, err, ErrQuery)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "error querying students", Message(err))
	assert.Contains(t, err.Error(), "socket closed")
}

func TestPackageErrorsMatchWhenWrapped(t *testing.T) {
	err := fmt.Errorf("delete L001: %w", NewResourceNotFoundError("lecturer not found"))

	assert.ErrorIs(t, err, ErrLecturerNotFound)
	assert.NotErrorIs(t, err, ErrStudentNotFound)
}

func TestViolations(t *testing.T) {
	err := fmt.Errorf("create: %w", NewValidationError("a", "b"))

	assert.Equal(t, []string{"a", "b"}, Violations(err))
	assert.Equal(t, "a", Message(err))
	assert.Nil(t, Violations(ErrQuery))
}
