package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	assert.Contains(t, FormatPhone("11999998888"), "99999-8888")
	assert.Contains(t, FormatPhone("1133334444"), "3333-4444")
	assert.Equal(t, "", FormatPhone(""))
}
