package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type labeled struct {
	Index int
	X, Y  float64
}

func TestName(t *testing.T) {
	v := labeled{Index: 3, X: 1, Y: 2}
	name := Name(v)
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(labeled{Index: 3, X: 1, Y: 2}), "equal vertices share a name")

	assert.Equal(t, "Ø", Name(nil))
	var p *labeled
	assert.Equal(t, "Ø", Name(p))
}
