package hcsc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileToC(t *testing.T, src string) string {
	t.Helper()
	prog, err := ParseProgram("t.hcs", []byte(src))
	require.NoError(t, err)
	ct := Collect(prog)
	return Emit(prog, ct)
}

func TestEmitHelloHasMainWrapper(t *testing.T) {
	out := compileToC(t, `func main() [
		log "hello"
	]`)
	assert.Contains(t, out, "int hs_main(")
	assert.Contains(t, out, "int main(int argc, char** argv) {")
	assert.Contains(t, out, "return hs_main();")
	assert.Contains(t, out, `printf("%s\n", "hello");`)
}

func TestEmitStringBuildUsesAsprintf(t *testing.T) {
	out := compileToC(t, `func greet(name) [
		log "hi {name}"
	]`)
	assert.Contains(t, out, "asprintf(&str,")
}

func TestEmitClassWithFieldProducesStructAndConstructor(t *testing.T) {
	out := compileToC(t, `class Counter [
		func init() [
			self.count = 0
		]
		func bump() [
			self.count = self.count + 1
		]
	]`)
	assert.Contains(t, out, "typedef struct Counter {")
	assert.Contains(t, out, "int count;")
	assert.Contains(t, out, "struct Counter* Counter_new(void) {")
	assert.Contains(t, out, "void Counter_init(struct Counter* self) {")
	assert.Contains(t, out, "void Counter_bump(struct Counter* self) {")
	assert.Contains(t, out, "self->count = 0;")
}

func TestEmitEmptyClassGetsDummyField(t *testing.T) {
	out := compileToC(t, `class Marker [
		func ping() [
			log "ping"
		]
	]`)
	assert.Contains(t, out, "typedef struct Marker {")
	assert.Contains(t, out, "char dummy;")
}

func TestEmitBranchingEqualityUsesStrcmp(t *testing.T) {
	out := compileToC(t, `func check(a, b) [
		if a == b [
			log "equal"
		] else [
			log "different"
		]
	]`)
	assert.Contains(t, out, "strcmp(a, b) == 0")
}

func TestEmitArrayIterationLowersToCountedLoop(t *testing.T) {
	out := compileToC(t, `func walk(items) [
		for item in items [
			log "{item}"
		]
	]`)
	assert.Contains(t, out, "Array _arr_1 = items;")
	assert.Contains(t, out, "for (int _i_2 = 0; _i_2 < _arr_1.len; _i_2++) {")
	assert.Contains(t, out, "char* item = _arr_1.data[_i_2];")
}

func TestEmitMethodCallMangling(t *testing.T) {
	out := compileToC(t, `class Counter [
		func init() [
			self.count = 0
		]
		func bump() [
			self.count = self.count + 1
		]
	]
	func main() [
		c = new Counter()
		c.bump()
	]`)
	assert.Contains(t, out, "Counter_bump(c)")
}

func TestEmitUnknownReceiverMethodFallsBackToFreeFunction(t *testing.T) {
	out := compileToC(t, `func main(thing) [
		thing.poke()
	]`)
	assert.Contains(t, out, "poke(thing)")
}

func TestEmitAutomaticModeUsesArena(t *testing.T) {
	out := compileToC(t, `--- automatic ---
	func main() [
		p = allocate(16)
		return 0
	]`)
	assert.Contains(t, out, "hcs_arena_track(malloc(16))")
	assert.Contains(t, out, "hcs_arena_drain();")
}

func TestEmitIncludesPrelude(t *testing.T) {
	out := compileToC(t, `func main() [ return 0 ]`)
	assert.Contains(t, out, "typedef struct {\n    char** data;\n    int len;\n} Array;")
	assert.Contains(t, out, "#include <curl/curl.h>")
}

func TestEmitMainWithArgsBuildsArrayFromArgv(t *testing.T) {
	out := compileToC(t, `func main(args) [
		return args.length
	]`)
	assert.Contains(t, out, "int hs_main(Array args) {")
	assert.Contains(t, out, "Array args = { argv + 1, argc - 1 };")
	assert.Contains(t, out, "hs_main(args)")
	assert.Contains(t, out, "args.len")
}

func TestEmitMainWithoutArgsLeavesArgvUnused(t *testing.T) {
	out := compileToC(t, `func main() [ return 0 ]`)
	assert.Contains(t, out, "(void)argc;")
	assert.Contains(t, out, "(void)argv;")
	assert.Contains(t, out, "return hs_main();")
}

func TestEmitArrayLengthFieldAccess(t *testing.T) {
	out := compileToC(t, `func count(dir) [
		items = list_dir(dir)
		return items.length
	]`)
	assert.Contains(t, out, "items.len")
}

func TestEmitResponseStatusFieldAccess(t *testing.T) {
	out := compileToC(t, `func fetch(url) [
		r = curl_get(url)
		return r.status
	]`)
	assert.Contains(t, out, "r->status")
}

func TestEmitUnknownFieldFallsBackToCharPtr(t *testing.T) {
	out := compileToC(t, `func grab(thing) [
		return thing.whatever
	]`)
	assert.Contains(t, out, "thing->whatever")
}

func TestEmitArrayIndexAccessUsesDataSlot(t *testing.T) {
	out := compileToC(t, `func first(dir) [
		items = list_dir(dir)
		return items[0]
	]`)
	assert.Contains(t, out, "items.data[0]")
}

func TestEmitJsonIndexAccessReachesThroughItems(t *testing.T) {
	out := compileToC(t, `func first(raw) [
		j = json_parse(raw)
		return j[0]
	]`)
	assert.Contains(t, out, "j->items.data[0]")
}

func TestEmitManualModeDefinesDeferMacro(t *testing.T) {
	out := compileToC(t, `--- manual ---
	func main() [
		p = allocate(16)
		return 0
	]`)
	assert.Contains(t, out, "#define defer(stmt)")
	assert.Contains(t, out, "__attribute__((cleanup(")
}

func TestEmitAutomaticModeHasNoDeferMacro(t *testing.T) {
	out := compileToC(t, `--- automatic ---
	func main() [
		p = allocate(16)
		return 0
	]`)
	assert.NotContains(t, out, "#define defer(stmt)")
}

func TestEmitAddChainWithMixedTypesUsesAllStringFormat(t *testing.T) {
	out := compileToC(t, `func describe() [
		msg = "n=" + 5
	]`)
	assert.Contains(t, out, `asprintf(&str, "%s%s",`)
}
