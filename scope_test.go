package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeStackBindAndLookup(t *testing.T) {
	s := NewScopeStack()
	_, ok := s.Lookup("x")
	assert.False(t, ok)

	s.Bind("x", TypeInt)
	typ, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, TypeInt, typ)
}

func TestScopeStackInnerBindingShadowsOuter(t *testing.T) {
	s := NewScopeStack()
	s.Bind("x", TypeInt)

	s.Push()
	s.Bind("x", TypeCharPtr)
	typ, ok := s.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, TypeCharPtr, typ)
	s.Pop()

	typ, ok = s.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, TypeInt, typ)
}

func TestScopeStackPopDiscardsBindings(t *testing.T) {
	s := NewScopeStack()
	s.Push()
	s.Bind("y", TypeBool)
	s.Pop()

	_, ok := s.Lookup("y")
	assert.False(t, ok)
}
