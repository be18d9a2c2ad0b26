package services

//go:generate mockgen -source=interfaces.go -destination=mocks/store_mocks.go -package=mocks

import (
	"context"

	"github.com/yigit/records/internal/app/models"
)

// StudentStore is the relational student repository used by StudentService.
type StudentStore interface {
	ListStudents(ctx context.Context) ([]models.Student, error)
	GetByID(ctx context.Context, id string) (*models.Student, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
}

// ModuleStore is the relational module repository.
type ModuleStore interface {
	ListModules(ctx context.Context) ([]models.Module, error)
	ExistsByLecturer(ctx context.Context, lecturerID string) (bool, error)
}

// GradeStore is the relational grade repository.
type GradeStore interface {
	GradeReport(ctx context.Context) ([]models.GradeReportEntry, error)
}

// LecturerStore is the document lecturer repository.
type LecturerStore interface {
	ListLecturers(ctx context.Context) ([]models.Lecturer, error)
	GetByID(ctx context.Context, id string) (*models.Lecturer, error)
	Delete(ctx context.Context, id string) (int64, error)
}
