package services

//go:generate mockgen -source=grade_service.go -destination=mocks/grade_service_mocks.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/yigit/records/internal/app/models"
)

// GradeService defines the read-only grade and module projections
type GradeService interface {
	ListGradeReport(ctx context.Context) ([]models.GradeReportEntry, error)
	ListModules(ctx context.Context) ([]models.Module, error)
}

// gradeServiceImpl implements the GradeService interface
type gradeServiceImpl struct {
	grades  GradeStore
	modules ModuleStore
}

// NewGradeService creates a new grade service instance
func NewGradeService(grades GradeStore, modules ModuleStore) GradeService {
	return &gradeServiceImpl{
		grades:  grades,
		modules: modules,
	}
}

// ListGradeReport returns every student with their module grades, ordered by
// student name then grade, with missing grades last.
func (s *gradeServiceImpl) ListGradeReport(ctx context.Context) ([]models.GradeReportEntry, error) {
	entries, err := s.grades.GradeReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing grade report: %w", err)
	}
	if entries == nil {
		entries = []models.GradeReportEntry{}
	}
	return entries, nil
}

// ListModules returns every module ordered by identifier
func (s *gradeServiceImpl) ListModules(ctx context.Context) ([]models.Module, error) {
	modules, err := s.modules.ListModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing modules: %w", err)
	}
	return modules, nil
}
