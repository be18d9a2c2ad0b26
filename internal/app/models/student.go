package models

// Student defines the student model based on the 'student' table.
// ID is a fixed-length code and never changes after creation.
type Student struct {
	ID   string `json:"sid" db:"sid" example:"G001"`
	Name string `json:"name" db:"name" example:"Sean Smith"`
	Age  int    `json:"age" db:"age" example:"32"`
}
