package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(416) 555-0187", FormatPhone("4165550187"))
	assert.Equal(t, "(416) 555-0187", FormatPhone("416-555-0187"))
	assert.Equal(t, "+1 (416) 555-0187", FormatPhone("14165550187"))
	assert.Equal(t, "+1 (416) 555-0187", FormatPhone("+1 416 555 0187"))

	// Non-NANP and short values pass through untouched
	assert.Equal(t, "555-0187", FormatPhone("555-0187"))
	assert.Equal(t, "+44 20 7946 0958", FormatPhone("+44 20 7946 0958"))
	assert.Equal(t, "", FormatPhone(""))
}
