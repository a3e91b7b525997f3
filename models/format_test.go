package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatHeight(t *testing.T) {
	h74 := 74
	h72 := 72
	h59 := 59
	zero := 0

	assert.Equal(t, `6'2"`, FormatHeight(&h74))
	assert.Equal(t, `6'0"`, FormatHeight(&h72))
	assert.Equal(t, `4'11"`, FormatHeight(&h59))
	assert.Equal(t, "N/A", FormatHeight(&zero))
	assert.Equal(t, "N/A", FormatHeight(nil))
}
