package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/records/internal/app/models/dto"
	"github.com/yigit/records/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serveError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"validation", apperrors.NewValidationError("Age should be 18 or older"), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"duplicate", apperrors.NewDuplicateKeyError("Student with ID G001 already exists"), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Student with ID G001 already exists"},
		{"integrity", apperrors.ErrLecturerTeachesModule, http.StatusConflict, dto.ErrorCodeResourceInUse, "lecturer teaches modules"},
		{"not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "student not found"},
		{"query", apperrors.NewQueryError("relational query failed", errors.New("password=secret")), http.StatusInternalServerError, dto.ErrorCodeDatabaseError, "Database error"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestHandleAPIErrorCarriesViolations(t *testing.T) {
	_, body := serveError(t, apperrors.NewValidationError("Student ID must be 4 characters", "Age should be 18 or older"))
	assert.Equal(t, []string{"Student ID must be 4 characters", "Age should be 18 or older"}, body.Error.Violations)
}

func TestHandleAPIErrorSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		severity dto.ErrorSeverity
	}{
		{"validation", apperrors.NewValidationError("Age should be 18 or older"), dto.ErrorSeverityWarning},
		{"not found", apperrors.ErrLecturerNotFound, dto.ErrorSeverityInfo},
		{"query", apperrors.NewQueryError("relational query failed", errors.New("syntax")), dto.ErrorSeverityError},
		{"connection", apperrors.NewConnectionError("failed to ping PostgreSQL", errors.New("refused")), dto.ErrorSeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := serveError(t, tt.err)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.severity, body.Error.Severity)
			if tt.severity == dto.ErrorSeverityCritical {
				assert.Equal(t, http.StatusInternalServerError, status)
				assert.Equal(t, dto.ErrorCodeDatabaseError, body.Error.Code)
			}
		})
	}
}

func TestHandleAPIErrorHidesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, apperrors.NewConnectionError("failed to ping MongoDB", errors.New("mongodb://admin:hunter2@db")))
	assert.NotContains(t, rec.Body.String(), "hunter2")
}
