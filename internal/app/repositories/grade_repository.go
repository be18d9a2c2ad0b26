package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/db"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db     db.Querier
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(q db.Querier, lgr zerolog.Logger) *GradeRepository {
	return &GradeRepository{
		db:     q,
		sb:     db.StatementBuilder(),
		logger: lgr,
	}
}

// gradeReportQuery anchors on student so every student appears at least
// once. Missing grades sort after present ones for the same student; the
// trailing keys make ties deterministic.
func (r *GradeRepository) gradeReportQuery() squirrel.SelectBuilder {
	return r.sb.Select("s.name AS student_name", "m.name AS module_name", "g.grade").
		From("student s").
		LeftJoin("grade g ON s.sid = g.sid").
		LeftJoin("module m ON g.mid = m.mid").
		OrderBy("s.name ASC", "g.grade ASC NULLS LAST", "s.sid ASC", "m.name ASC NULLS LAST")
}

// GradeReport returns one entry per (student, grade), null-filled for
// students with no grades.
func (r *GradeRepository) GradeReport(ctx context.Context) ([]models.GradeReportEntry, error) {
	entries, err := db.Collect[models.GradeReportEntry](ctx, r.db, r.gradeReportQuery())
	if err != nil {
		r.logger.Error().Err(err).Msg("Error building grade report")
		return nil, fmt.Errorf("error building grade report: %w", err)
	}
	return entries, nil
}

// Create records a grade. Re-recording the same student/module pair keeps
// the existing mark.
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	stmt := r.sb.Insert("grade").
		Columns("sid", "mid", "grade").
		Values(grade.StudentID, grade.ModuleID, grade.Grade).
		Suffix("ON CONFLICT (sid, mid) DO NOTHING")

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		r.logger.Error().Err(err).Str("studentID", grade.StudentID).Str("moduleID", grade.ModuleID).Msg("Error creating grade")
		return fmt.Errorf("error creating grade: %w", err)
	}
	return nil
}
