package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/app/models"
	"github.com/yigit/records/internal/db"
)

// ModuleRepository handles module database operations
type ModuleRepository struct {
	db     db.Querier
	sb     squirrel.StatementBuilderType
	logger zerolog.Logger
}

// NewModuleRepository creates a new ModuleRepository
func NewModuleRepository(q db.Querier, lgr zerolog.Logger) *ModuleRepository {
	return &ModuleRepository{
		db:     q,
		sb:     db.StatementBuilder(),
		logger: lgr,
	}
}

// ListModules retrieves all modules ordered by identifier
func (r *ModuleRepository) ListModules(ctx context.Context) ([]models.Module, error) {
	stmt := r.sb.Select("mid", "name", "credits", "lecturer").
		From("module").
		OrderBy("mid ASC")

	modules, err := db.Collect[models.Module](ctx, r.db, stmt)
	if err != nil {
		r.logger.Error().Err(err).Msg("Error listing modules")
		return nil, fmt.Errorf("error listing modules: %w", err)
	}
	return modules, nil
}

// ExistsByLecturer reports whether any module references the lecturer.
func (r *ModuleRepository) ExistsByLecturer(ctx context.Context, lecturerID string) (bool, error) {
	stmt := r.sb.Select("1").
		From("module").
		Where(squirrel.Eq{"lecturer": lecturerID}).
		Limit(1).
		Prefix("SELECT EXISTS (").
		Suffix(")")

	var exists bool
	if err := r.db.QueryRow(ctx, stmt).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("lecturerID", lecturerID).Msg("Error checking modules taught by lecturer")
		return false, fmt.Errorf("error checking modules taught by lecturer: %w", err)
	}
	return exists, nil
}

// Create inserts a module.
func (r *ModuleRepository) Create(ctx context.Context, module *models.Module) error {
	stmt := r.sb.Insert("module").
		Columns("mid", "name", "credits", "lecturer").
		Values(module.ID, module.Name, module.Credits, module.LecturerID).
		Suffix("ON CONFLICT (mid) DO NOTHING")

	if _, err := r.db.Exec(ctx, stmt); err != nil {
		r.logger.Error().Err(err).Str("moduleID", module.ID).Msg("Error creating module")
		return fmt.Errorf("error creating module: %w", err)
	}
	return nil
}
