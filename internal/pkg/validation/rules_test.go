package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	optional := &StringValidation{Value: "", MinLen: 3}
	assert.True(t, optional.Validate())
	assert.True(t, NewStringValidation("abcd").WithExactLength(4).Validate())
	assert.False(t, NewStringValidation("abc").WithExactLength(4).Validate())
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(5).Validate())
	assert.True(t, NewStringValidation("abcde").WithMaxLength(5).Validate())
	assert.True(t, NewStringValidation(strings.Repeat("é", 5)).WithMaxLength(5).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(0).Validate())
	assert.False(t, NewNumericValidation(-1).WithMin(0).Validate())
	assert.True(t, NewNumericValidation(0).WithMin(0).Validate())
}
