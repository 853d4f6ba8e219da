package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidator(t *testing.T) {
	v := EnumValidator("ACTIVE", "CLOSED")
	assert.NoError(t, v("ACTIVE"))
	assert.Error(t, v("active"))
	assert.Error(t, v(""))
}

func TestStateCodeValidator(t *testing.T) {
	v := StateCodeValidator()
	assert.NoError(t, v("CA"))
	assert.NoError(t, v(""))
	assert.Error(t, v("ca"))
	assert.Error(t, v("Cal"))
	assert.Error(t, v("C"))
}
