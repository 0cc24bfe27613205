package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadSource(t *testing.T) {
	assert := assert.New(t)

	text := strings.Join([]string{
		"; countdown",
		"rb        ; read the start",
		"PB",
		"",
		"db",
		"fbj2 ; loop while B != 0",
	}, "\n")

	lines, err := ReadSource(strings.NewReader(text))
	assert.NoError(err)
	assert.Len(lines, 6)
	assert.Equal([]string{"RB", "PB", "DB", "FBJ2"}, Normalize(lines))
}
