package models

// Module defines a taught module based on the 'module' table.
// LecturerID references a lecturer document in the document store; neither
// engine enforces that reference.
type Module struct {
	ID         string `json:"mid" db:"mid" example:"G00101"`
	Name       string `json:"name" db:"name" example:"Databases"`
	Credits    int    `json:"credits" db:"credits" example:"5"`
	LecturerID string `json:"lecturer" db:"lecturer" example:"L003"`
}
