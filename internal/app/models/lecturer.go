package models

// LecturerCollection is the document collection holding lecturers.
const LecturerCollection = "lecturers"

// Lecturer is stored as a document keyed by its string identifier.
type Lecturer struct {
	ID   string `json:"_id" bson:"_id" example:"L001"`
	Name string `json:"name" bson:"name" example:"Mary Collins"`
	Did  int    `json:"did" bson:"did" example:"201"` // Department number
}

// LecturerDeletion acknowledges a lecturer removed from the document store.
type LecturerDeletion struct {
	LecturerID   string `json:"lecturerId"`
	DeletedCount int64  `json:"deletedCount"`
}
