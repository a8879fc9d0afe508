package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTypeCType(t *testing.T) {
	for _, test := range []struct {
		Name     string
		Type     StaticType
		Expected string
	}{
		{"Int", TypeInt, "int"},
		{"Bool", TypeBool, "bool"},
		{"CharPtr", TypeCharPtr, "char*"},
		{"Void", TypeVoid, "void"},
		{"Array", TypeArray, "Array"},
		{"Response", TypeResponsePtr, "Response*"},
		{"Struct", NewStructType("Counter"), "struct Counter*"},
		{"UnknownWidensToCharPtr", TypeUnknown, "char*"},
	} {
		t.Run(test.Name, func(t *testing.T) {
			assert.Equal(t, test.Expected, test.Type.CType())
		})
	}
}

func TestStaticTypeStringKeepsUnknownDistinct(t *testing.T) {
	assert.Equal(t, "unknown", TypeUnknown.String())
	assert.Equal(t, "char*", TypeCharPtr.String())
}

func TestStaticTypeEquality(t *testing.T) {
	assert.Equal(t, NewStructType("Foo"), NewStructType("Foo"))
	assert.NotEqual(t, NewStructType("Foo"), NewStructType("Bar"))
	assert.True(t, NewStructType("Foo").IsStruct())
	assert.False(t, TypeInt.IsStruct())
}
