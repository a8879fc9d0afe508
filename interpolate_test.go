package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerStringLiteralPlain(t *testing.T) {
	r := lowerStringLiteral(`"hello world"`)
	assert.Equal(t, `"hello world"`, r.Code)
	assert.Equal(t, TypeCharPtr, r.Type)
}

func TestLowerStringLiteralInterpolated(t *testing.T) {
	r := lowerStringLiteral(`"hello {name}!"`)
	assert.Equal(t, TypeCharPtr, r.Type)
	assert.Contains(t, r.Code, `asprintf(&str, "hello %s!", name)`)
}

func TestLowerStringLiteralMultipleInterpolations(t *testing.T) {
	r := lowerStringLiteral(`"{a} plus {b}"`)
	assert.Contains(t, r.Code, `asprintf(&str, "%s plus %s", a, b)`)
}

func TestLowerStringLiteralEscapedQuote(t *testing.T) {
	r := lowerStringLiteral(`"say \"hi\" to {name}"`)
	assert.Contains(t, r.Code, `\"hi\"`)
	assert.Contains(t, r.Code, "name)")
}
