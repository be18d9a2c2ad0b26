package services

// Services defined in this package:
// - StudentService: student listing, create and update workflows
// - LecturerService: lecturer listing and the cross-store guarded delete
// - GradeService: grade report and module listing
//
// Services depend on the store interfaces in interfaces.go, never on
// connection handles, so tests substitute mocks for both stores.
