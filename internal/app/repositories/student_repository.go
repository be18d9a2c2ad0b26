package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/db"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/dberrors"
)

const (
	studentTable      = "student"
	studentPrimaryKey = "student_pkey"
)

var studentColumns = []string{"sid", "name", "age"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db     db.Querier
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(q db.Querier, lgr zerolog.Logger) *StudentRepository {
	return &StudentRepository{
		db:     q,
		sb:     db.StatementBuilder(),
		logger: lgr,
	}
}

// ListStudents retrieves all students ordered by identifier
func (r *StudentRepository) ListStudents(ctx context.Context) ([]models.Student, error) {
	stmt := r.sb.Select(studentColumns...).
		From(studentTable).
		OrderBy("sid ASC")

	students, err := db.Collect[models.Student](ctx, r.db, stmt)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error listing students")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// GetByID retrieves a student by identifier
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	stmt := r.sb.Select(studentColumns...).
		From(studentTable).
		Where(squirrel.Eq{"sid": id}).
		Limit(1)

	var student models.Student
	err := r.db.QueryRow(ctx, stmt).Scan(&student.ID, &student.Name, &student.Age)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn().Str("studentID", id).Msg("Student not found")
			return nil, apperrors.ErrStudentNotFound
		}
		r.logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// ExistsByID checks if a student identifier is already taken
func (r *StudentRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	stmt := r.sb.Select("1").
		From(studentTable).
		Where(squirrel.Eq{"sid": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	var exists bool
	if err := r.db.QueryRow(ctx, stmt).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("studentID", id).Msg("Error checking student ID existence")
		return false, fmt.Errorf("error checking student ID existence: %w", err)
	}

	return exists, nil
}

// HasAny reports whether the student table holds at least one row.
func (r *StudentRepository) HasAny(ctx context.Context) (bool, error) {
	stmt := r.sb.Select("1").
		From(studentTable).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	var exists bool
	if err := r.db.QueryRow(ctx, stmt).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Msg("Error checking for existing students")
		return false, fmt.Errorf("error checking for existing students: %w", err)
	}
	return exists, nil
}

// Create inserts a new student. A primary key conflict is reported as a
// duplicate key.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	stmt := r.sb.Insert(studentTable).
		Columns(studentColumns...).
		Values(student.ID, student.Name, student.Age)

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentPrimaryKey) {
			r.logger.Warn().Str("studentID", student.ID).Msg("Attempted to create student with duplicate ID")
			return duplicateStudentError(student.ID)
		}
		r.logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	r.logger.Info().Str("studentID", student.ID).Msg("Student created successfully")
	return nil
}

// Update replaces the mutable fields of a student. Updating an identifier
// that does not exist is reported as not found.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	stmt := r.sb.Update(studentTable).
		SetMap(map[string]interface{}{
			"name": student.Name,
			"age":  student.Age,
		}).
		Where(squirrel.Eq{"sid": student.ID})

	tag, err := r.db.Exec(ctx, stmt)
	if err != nil {
		r.logger.Error().Err(err).Str("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

func duplicateStudentError(id string) error {
	return apperrors.NewDuplicateKeyError(fmt.Sprintf("Student with ID %s already exists", id))
}
