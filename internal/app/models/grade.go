package models

// Grade links a student to a module with the awarded mark.
type Grade struct {
	StudentID string `json:"sid" db:"sid"`
	ModuleID  string `json:"mid" db:"mid"`
	Grade     int    `json:"grade" db:"grade"`
}

// GradeReportEntry is one row of the grade report. Students without grades
// appear once with ModuleName and Grade left nil.
type GradeReportEntry struct {
	StudentName string  `json:"studentName" db:"student_name"`
	ModuleName  *string `json:"moduleName" db:"module_name"`
	Grade       *int    `json:"grade" db:"grade"`
}
