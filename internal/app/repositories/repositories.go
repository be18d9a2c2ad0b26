package repositories

import (
	"github.com/rs/zerolog"
	"github.com/yigit/records/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository  *StudentRepository
	ModuleRepository   *ModuleRepository
	GradeRepository    *GradeRepository
	LecturerRepository *LecturerRepository
}

// NewRepositories wires the relational repositories to q and the lecturer
// repository to the document store. Every repository logs through lgr.
func NewRepositories(q db.Querier, docs db.DocumentStore, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		StudentRepository:  NewStudentRepository(q, lgr),
		ModuleRepository:   NewModuleRepository(q, lgr),
		GradeRepository:    NewGradeRepository(q, lgr),
		LecturerRepository: NewLecturerRepository(docs, lgr),
	}
}
