package dto

// CreateStudentRequest carries a new student record. Field rules are applied
// by the record validator, so all violations are reported together.
type CreateStudentRequest struct {
	ID   string `json:"sid" example:"G001"`
	Name string `json:"name" example:"Sean Smith"`
	Age  int    `json:"age" example:"32"`
}

// UpdateStudentRequest carries the mutable fields of a student. The
// identifier comes from the path.
type UpdateStudentRequest struct {
	Name string `json:"name" example:"Sean Smith"`
	Age  int    `json:"age" example:"33"`
}

// LecturerDeletedResponse acknowledges a removed lecturer
type LecturerDeletedResponse struct {
	LecturerID   string `json:"lecturerId" example:"L001"`
	Name         string `json:"name,omitempty" example:"Mary Collins"`
	DeletedCount int64  `json:"deletedCount" example:"1"`
}
