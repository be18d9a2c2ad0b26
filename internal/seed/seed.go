package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/records/internal/app/models"
	appRepos "github.com/yigit/records/internal/app/repositories"
	"github.com/yigit/records/internal/pkg/apperrors"
)

// Default records loaded into empty stores.
var (
	defaultStudents = []appModels.Student{
		{ID: "G001", Name: "Sean Smith", Age: 32},
		{ID: "G002", Name: "Alice L'Estrange", Age: 22},
		{ID: "G003", Name: "Tom Riddle", Age: 27},
		{ID: "G004", Name: "Ciara Byrne", Age: 19},
	}

	defaultLecturers = []appModels.Lecturer{
		{ID: "L001", Name: "Tim Berners", Did: 301},
		{ID: "L002", Name: "Mary Collins", Did: 301},
		{ID: "L003", Name: "John Murphy", Did: 302},
	}

	defaultModules = []appModels.Module{
		{ID: "M100", Name: "Databases", Credits: 5, LecturerID: "L001"},
		{ID: "M101", Name: "Web Development", Credits: 10, LecturerID: "L001"},
		{ID: "M102", Name: "Networking", Credits: 5, LecturerID: "L002"},
	}

	defaultGrades = []appModels.Grade{
		{StudentID: "G001", ModuleID: "M100", Grade: 75},
		{StudentID: "G001", ModuleID: "M102", Grade: 58},
		{StudentID: "G002", ModuleID: "M100", Grade: 81},
		{StudentID: "G003", ModuleID: "M101", Grade: 40},
	}
)

// CreateDefaultData loads a small sample data set into whichever store is
// still empty. A store that already holds records is left alone, so rows
// removed through the API stay removed across restarts. Lecturer L003
// teaches nothing and can be deleted.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (students, lecturers, modules, grades)...")

	finalErr := errors.Join(
		seedRelational(ctx, repos, lgr),
		seedLecturers(ctx, repos, lgr),
	)
	if finalErr == nil {
		lgr.Info().Msg("Default data is in place")
	}
	return finalErr
}

// seedRelational fills students, modules and grades when no student exists.
func seedRelational(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	populated, err := repos.StudentRepository.HasAny(ctx)
	if err != nil {
		return err
	}
	if populated {
		lgr.Info().Msg("Relational store already populated, skipping default students, modules and grades")
		return nil
	}

	var finalErr error
	for i := range defaultStudents {
		s := defaultStudents[i]
		if err := repos.StudentRepository.Create(ctx, &s); err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
			lgr.Error().Err(err).Str("studentID", s.ID).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultModules {
		m := defaultModules[i]
		if err := repos.ModuleRepository.Create(ctx, &m); err != nil {
			lgr.Error().Err(err).Str("moduleID", m.ID).Msg("Error creating default module")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for i := range defaultGrades {
		g := defaultGrades[i]
		if err := repos.GradeRepository.Create(ctx, &g); err != nil {
			lgr.Error().Err(err).Str("studentID", g.StudentID).Str("moduleID", g.ModuleID).Msg("Error creating default grade")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}

// seedLecturers fills the lecturer collection when it holds no documents.
func seedLecturers(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	existing, err := repos.LecturerRepository.ListLecturers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Int("lecturers", len(existing)).Msg("Lecturer collection already populated, skipping default lecturers")
		return nil
	}

	var finalErr error
	for i := range defaultLecturers {
		l := defaultLecturers[i]
		if err := repos.LecturerRepository.Create(ctx, &l); err != nil && !errors.Is(err, apperrors.ErrDuplicateKey) {
			lgr.Error().Err(err).Str("lecturerID", l.ID).Msg("Error creating default lecturer")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
