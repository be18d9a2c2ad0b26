package services

//go:generate mockgen -source=lecturer_service.go -destination=mocks/lecturer_service_mocks.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/pkg/apperrors"
	"github.com/yigit/records/internal/pkg/metrics"
)

// Lecturer delete outcomes reported to metrics.
const (
	deleteOutcomeDeleted   = "deleted"
	deleteOutcomeBlocked   = "integrity_violation"
	deleteOutcomeNotFound  = "not_found"
	deleteOutcomeFailed    = "error"
	deleteOutcomeMalformed = "invalid"
)

// LecturerService defines the interface for lecturer-related operations
type LecturerService interface {
	ListLecturers(ctx context.Context) ([]models.Lecturer, error)
	GetLecturer(ctx context.Context, id string) (*models.Lecturer, error)
	DeleteLecturer(ctx context.Context, id string) (*models.LecturerDeletion, error)
}

// lecturerServiceImpl implements the LecturerService interface
type lecturerServiceImpl struct {
	lecturers LecturerStore
	modules   ModuleStore
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewLecturerService creates a new lecturer service instance. Lecturers live
// in the document store; modules referencing them live in the relational
// store.
func NewLecturerService(lecturers LecturerStore, modules ModuleStore, m *metrics.Metrics, lgr zerolog.Logger) LecturerService {
	return &lecturerServiceImpl{
		lecturers: lecturers,
		modules:   modules,
		metrics:   m,
		logger:    lgr.With().Str("service", "lecturer").Logger(),
	}
}

// ListLecturers returns every lecturer document ordered by identifier
func (s *lecturerServiceImpl) ListLecturers(ctx context.Context) ([]models.Lecturer, error) {
	lecturers, err := s.lecturers.ListLecturers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing lecturers: %w", err)
	}
	return lecturers, nil
}

// GetLecturer returns one lecturer or a not-found error
func (s *lecturerServiceImpl) GetLecturer(ctx context.Context, id string) (*models.Lecturer, error) {
	return s.lecturers.GetByID(ctx, id)
}

// DeleteLecturer removes a lecturer from the document store only when no
// module in the relational store still references it.
//
// The check and the delete are separate operations on separate stores. A
// module created for this lecturer in between is not detected and leaves a
// dangling reference.
func (s *lecturerServiceImpl) DeleteLecturer(ctx context.Context, id string) (*models.LecturerDeletion, error) {
	if strings.TrimSpace(id) == "" {
		s.metrics.IncLecturerDelete(deleteOutcomeMalformed)
		return nil, apperrors.NewValidationError("Lecturer ID is required")
	}

	log := s.logger.With().Str("lecturerID", id).Logger()

	teaches, err := s.modules.ExistsByLecturer(ctx, id)
	if err != nil {
		s.metrics.IncLecturerDelete(deleteOutcomeFailed)
		return nil, fmt.Errorf("error checking modules for lecturer: %w", err)
	}
	if teaches {
		s.metrics.IncLecturerDelete(deleteOutcomeBlocked)
		log.Info().Msg("Lecturer delete blocked, lecturer teaches modules")
		return nil, apperrors.ErrLecturerTeachesModule
	}

	deleted, err := s.lecturers.Delete(ctx, id)
	if err != nil {
		s.metrics.IncLecturerDelete(deleteOutcomeFailed)
		return nil, fmt.Errorf("error deleting lecturer: %w", err)
	}
	if deleted == 0 {
		s.metrics.IncLecturerDelete(deleteOutcomeNotFound)
		log.Info().Msg("Lecturer delete found no document")
		return nil, apperrors.ErrLecturerNotFound
	}

	s.metrics.IncLecturerDelete(deleteOutcomeDeleted)
	log.Info().Msg("Lecturer deleted")
	return &models.LecturerDeletion{LecturerID: id, DeletedCount: deleted}, nil
}
