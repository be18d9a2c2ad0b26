package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/db"
	"github.com/yigit/records/internal/pkg/apperrors"
)

// LecturerRepository handles lecturer documents
type LecturerRepository struct {
	docs   db.DocumentStore
	logger zerolog.Logger
}

// NewLecturerRepository creates a new LecturerRepository
func NewLecturerRepository(docs db.DocumentStore, lgr zerolog.Logger) *LecturerRepository {
	return &LecturerRepository{docs: docs, logger: lgr}
}

// ListLecturers retrieves all lecturers ordered by identifier
func (r *LecturerRepository) ListLecturers(ctx context.Context) ([]models.Lecturer, error) {
	lecturers := []models.Lecturer{}
	if err := r.docs.FindAll(ctx, models.LecturerCollection, &lecturers); err != nil {
		return nil, fmt.Errorf("error listing lecturers: %w", err)
	}
	return lecturers, nil
}

// GetByID retrieves a lecturer by identifier
func (r *LecturerRepository) GetByID(ctx context.Context, id string) (*models.Lecturer, error) {
	var lecturer models.Lecturer
	if err := r.docs.FindByID(ctx, models.LecturerCollection, id, &lecturer); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			r.logger.Warn().Str("lecturerID", id).Msg("Lecturer not found")
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}
	return &lecturer, nil
}

// Create inserts a lecturer document.
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) error {
	if err := r.docs.InsertOne(ctx, models.LecturerCollection, lecturer); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			r.logger.Warn().Str("lecturerID", lecturer.ID).Msg("Attempted to create lecturer with duplicate ID")
			return apperrors.NewDuplicateKeyError(fmt.Sprintf("Lecturer with ID %s already exists", lecturer.ID))
		}
		return fmt.Errorf("error creating lecturer: %w", err)
	}
	return nil
}

// Delete removes a lecturer document and returns how many were removed.
func (r *LecturerRepository) Delete(ctx context.Context, id string) (int64, error) {
	n, err := r.docs.DeleteOne(ctx, models.LecturerCollection, id)
	if err != nil {
		return 0, fmt.Errorf("error deleting lecturer: %w", err)
	}
	r.logger.Info().Str("lecturerID", id).Int64("deleted", n).Msg("Lecturer delete executed")
	return n, nil
}
