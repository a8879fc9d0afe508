package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	prog, err := ParseProgram("t.hcs", []byte(src))
	require.NoError(t, err)
	return prog
}

func TestCollectFieldTypes(t *testing.T) {
	prog := mustParse(t, `class Box [
		func init() [
			self.count = 0
			self.label = "box"
			self.empty = null
		]
	]`)
	ct := Collect(prog)

	require.True(t, ct.Classes["Box"])
	assert.Equal(t, TypeInt, ct.Fields["Box"]["count"])
	assert.Equal(t, TypeCharPtr, ct.Fields["Box"]["label"])
	assert.Equal(t, TypeVoidPtr, ct.Fields["Box"]["empty"])
	assert.Equal(t, []string{"count", "label", "empty"}, ct.FieldOrder["Box"])
}

func TestCollectAddChainWidensToCharPtr(t *testing.T) {
	prog := mustParse(t, `class Greeting [
		func init(name) [
			self.text = "hi " + name
		]
	]`)
	ct := Collect(prog)
	assert.Equal(t, TypeCharPtr, ct.Fields["Greeting"]["text"])
}

func TestCollectIntAddChainStaysInt(t *testing.T) {
	prog := mustParse(t, `class Pair [
		func init() [
			self.sum = 1 + 2 + 3
		]
	]`)
	ct := Collect(prog)
	assert.Equal(t, TypeInt, ct.Fields["Pair"]["sum"])
}

func TestCollectBuiltinCallTypesField(t *testing.T) {
	prog := mustParse(t, `class Loader [
		func init(path) [
			self.contents = read_file(path)
			self.exists = file_exists(path)
		]
	]`)
	ct := Collect(prog)
	assert.Equal(t, TypeCharPtr, ct.Fields["Loader"]["contents"])
	assert.Equal(t, TypeBool, ct.Fields["Loader"]["exists"])
}

func TestCollectEmptyClassHasNoFields(t *testing.T) {
	prog := mustParse(t, `class Empty [
		func noop() [
			log "nothing"
		]
	]`)
	ct := Collect(prog)
	assert.True(t, ct.Classes["Empty"])
	assert.Empty(t, ct.FieldOrder["Empty"])
}

func TestCollectLastAssignmentWinsFieldType(t *testing.T) {
	prog := mustParse(t, `class Flip [
		func init() [
			self.value = 0
		]
		func toString() [
			self.value = "text"
		]
	]`)
	ct := Collect(prog)
	assert.Equal(t, TypeCharPtr, ct.Fields["Flip"]["value"])
	assert.Equal(t, []string{"value"}, ct.FieldOrder["Flip"])
}

func TestCollectNewExprField(t *testing.T) {
	prog := mustParse(t, `class Wrapper [
		func init() [
			self.inner = new Counter()
		]
	]`)
	ct := Collect(prog)
	assert.Equal(t, NewStructType("Counter"), ct.Fields["Wrapper"]["inner"])
}
