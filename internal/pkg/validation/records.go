package validation

// User-facing violation messages for student mutations.
const (
	MsgStudentIDLength = "Student ID must be 4 characters"
	MsgNameTooShort    = "Name should be a minimum of 2 characters"
	MsgNameTooLong     = "Name should be a maximum of 200 characters"
	MsgAgeTooLow       = "Age should be 18 or older"
)

func validStudentID(id string) bool {
	return NewStringValidation(id).WithExactLength(StudentIDLength).Validate()
}

// nameViolation returns the message for the first broken name rule, or "".
func nameViolation(name string) string {
	if !NewStringValidation(name).WithMinLength(NameMinLength).Validate() {
		return MsgNameTooShort
	}
	if !NewStringValidation(name).WithMaxLength(NameMaxLength).Validate() {
		return MsgNameTooLong
	}
	return ""
}

func validAge(age int) bool {
	return NewNumericValidation(age).WithMin(StudentMinAge).Validate()
}

// ValidateStudentCreate checks every rule for a new student and reports all
// violations, in field order. An empty result means the input is valid.
func ValidateStudentCreate(id, name string, age int) []string {
	violations := []string{}
	if !validStudentID(id) {
		violations = append(violations, MsgStudentIDLength)
	}
	if msg := nameViolation(name); msg != "" {
		violations = append(violations, msg)
	}
	if !validAge(age) {
		violations = append(violations, MsgAgeTooLow)
	}
	return violations
}

// ValidateStudentUpdate checks the mutable fields of a student and returns the
// first violation, or "" when valid. The identifier is immutable and is not
// re-checked.
func ValidateStudentUpdate(name string, age int) string {
	if msg := nameViolation(name); msg != "" {
		return msg
	}
	if !validAge(age) {
		return MsgAgeTooLow
	}
	return ""
}
