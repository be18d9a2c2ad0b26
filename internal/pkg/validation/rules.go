package validation

import "unicode/utf8"

// Validation rule constants
var (
	// Student identifier length - fixed
	StudentIDLength = 4

	// Name validation length bounds, the upper one matching student.name
	NameMinLength = 2
	NameMaxLength = 200

	// Minimum student age
	StudentMinAge = 18
)

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	ExactLen int
	Required bool
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithExactLength requires the value to be exactly n characters long
func (v *StringValidation) WithExactLength(n int) *StringValidation {
	v.ExactLen = n
	return v
}

// Validate performs validation. Lengths are counted in characters, not bytes.
func (v *StringValidation) Validate() bool {
	// Check if required
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	length := utf8.RuneCountInString(v.Value)

	if v.ExactLen > 0 && length != v.ExactLen {
		return false
	}

	// Check min length
	if v.MinLen > 0 && length < v.MinLen {
		return false
	}

	// Check max length
	if v.MaxLen > 0 && length > v.MaxLen {
		return false
	}

	return true
}

// Numeric validation
type NumericValidation struct {
	Value  int
	Min    int
	hasMin bool
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{
		Value: value,
	}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	v.hasMin = true
	return v
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	// Check min value
	if v.hasMin && v.Value < v.Min {
		return false
	}

	return true
}
