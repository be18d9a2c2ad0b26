package services

//go:generate mockgen -source=student_service.go -destination=mocks/student_service_mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetStudent(ctx context.Context, id string) (*models.Student, error)
	CreateStudent(ctx context.Context, id, name string, age int) (*models.Student, error)
	UpdateStudent(ctx context.Context, id, name string, age int) (*models.Student, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	logger   zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, lgr zerolog.Logger) StudentService {
	return &studentServiceImpl{
		students: students,
		logger:   lgr.With().Str("service", "student").Logger(),
	}
}

// ListStudents returns every student ordered by identifier
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// GetStudent returns one student or a not-found error
func (s *studentServiceImpl) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// CreateStudent validates every field, rejects a taken identifier and only
// then inserts.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, id, name string, age int) (*models.Student, error) {
	if violations := validation.ValidateStudentCreate(id, name, age); len(violations) > 0 {
		s.logger.Debug().Str("studentID", id).Strs("violations", violations).Msg("Rejected student create")
		return nil, apperrors.NewValidationError(violations...)
	}

	exists, err := s.students.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error checking student ID: %w", err)
	}
	if exists {
		s.logger.Info().Str("studentID", id).Msg("Rejected student create with existing ID")
		return nil, duplicateStudent(id)
	}

	student := &models.Student{ID: id, Name: name, Age: age}
	if err := s.students.Create(ctx, student); err != nil {
		// A concurrent create can still win between the check and the insert;
		// the repository reports that as a duplicate key too.
		return nil, err
	}

	s.logger.Info().Str("studentID", id).Msg("Student created")
	return student, nil
}

// UpdateStudent validates the mutable fields and rewrites the record.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id, name string, age int) (*models.Student, error) {
	if violation := validation.ValidateStudentUpdate(name, age); violation != "" {
		s.logger.Debug().Str("studentID", id).Str("violation", violation).Msg("Rejected student update")
		return nil, apperrors.NewValidationError(violation)
	}

	student := &models.Student{ID: id, Name: name, Age: age}
	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", id).Msg("Student updated")
	return student, nil
}

func duplicateStudent(id string) error {
	return apperrors.NewDuplicateKeyError(fmt.Sprintf("Student with ID %s already exists", id))
}
