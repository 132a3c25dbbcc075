package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("undefined symbol 'x'", From("undefined symbol '%v'", "x"))
	assert.Equal("step 3", From("step %d", 3))
}

func TestNewPrinter_Fallback(t *testing.T) {
	assert := assert.New(t)

	p := NewPrinter()
	assert.Equal("state q0", p.Sprintf("state %v", "q0"))

	p = NewPrinter("en-GB", "fr-FR")
	assert.Equal("12 steps", p.Sprintf("%d steps", 12))
}
