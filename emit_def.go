package hcsc

import "strings"

// mangleFuncName applies the one free-standing name rewrite rule:
// a top-level function named "main" becomes hs_main so the compiler
// can synthesize its own C main() as the real entry point.
func mangleFuncName(name string) string {
	if name == "main" {
		return "hs_main"
	}
	return name
}

func returnCType(name string) string {
	if intReturningDefs[name] {
		return "int"
	}
	return "void"
}

// emitStructDef writes the `typedef struct ClassName { ... } ClassName;`
// for one class. A class with no fields at all still needs a non-empty
// struct body in C, hence the `char dummy;` fallback for a class none
// of whose methods sets a self.<field>.
func emitStructDef(w *outputWriter, class string, ct *ClassTable) {
	w.writeil("typedef struct " + class + " {")
	w.indent()
	fields := ct.FieldOrder[class]
	if len(fields) == 0 {
		w.writeil("char dummy;")
	} else {
		for _, f := range fields {
			w.writeil(ct.Fields[class][f].CType() + " " + f + ";")
		}
	}
	w.unindent()
	w.writeil("} " + class + ";")
}

// emitClassConstructor synthesizes `ClassName_new()`, the target of
// every `new ClassName()` atom (emitNew in emit_expr.go). It
// calloc's the struct so an unset field reads as zero/NULL rather
// than garbage, then returns the pointer.
func emitClassConstructor(w *outputWriter, class string) {
	w.writeil("struct " + class + "* " + class + "_new(void) {")
	w.indent()
	w.writeil("return (struct " + class + "*)calloc(1, sizeof(struct " + class + "));")
	w.unindent()
	w.writeil("}")
}

// emitMethod emits one method of a class: `Class_method(struct
// Class* self, ...params) { ... }`, the self parameter never
// appearing in the source-level parameter list.
func emitMethod(ct *ClassTable, w *outputWriter, class string, fn *FuncDef) {
	name := class + "_" + fn.Name
	params := make([]string, 0, len(fn.Params)+1)
	params = append(params, "struct "+class+"* self")
	for _, p := range fn.Params {
		params = append(params, "char* "+p)
	}

	w.writeil(returnCType(fn.Name) + " " + name + "(" + strings.Join(params, ", ") + ") {")
	w.indent()

	ctx := newEmitCtx(ct)
	ctx.selfClass = class
	for _, p := range fn.Params {
		ctx.scope.Bind(p, TypeCharPtr)
	}
	emitBody(ctx, w, fn.Body)

	w.unindent()
	w.writeil("}")
}

// emitFreeFunc emits one top-level function, applying the main ->
// hs_main rewrite and parameter typing (a parameter named `args`
// enters its body's scope as Array; every other bare parameter enters
// it as char*, matching the collector's untyped-param
// convention — the only types ever known up front are literals,
// builtins, and `new` expressions, so an unannotated parameter starts
// life as the widest concrete type the emitter has, char*).
func emitFreeFunc(ct *ClassTable, w *outputWriter, fn *FuncDef, autoMem bool) {
	name := mangleFuncName(fn.Name)
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		if p == "args" {
			params[i] = "Array " + p
		} else {
			params[i] = "char* " + p
		}
	}
	sig := strings.Join(params, ", ")

	w.writeil(returnCType(name) + " " + name + "(" + sig + ") {")
	w.indent()

	ctx := newEmitCtx(ct)
	ctx.autoMem = autoMem
	for _, p := range fn.Params {
		if p == "args" {
			ctx.scope.Bind(p, TypeArray)
		} else {
			ctx.scope.Bind(p, TypeCharPtr)
		}
	}
	emitBody(ctx, w, fn.Body)

	w.unindent()
	w.writeil("}")
}

// mainTakesArgs reports whether the top-level main function declares a
// single parameter named "args" — the one case where the synthesized
// C main() needs to build an Array and pass it through to hs_main.
func mainTakesArgs(fn *FuncDef) bool {
	return len(fn.Params) == 1 && fn.Params[0] == "args"
}

// findMain returns prog's top-level function literally named "main"
// (before mangling), or nil if the program declares none — the
// signal the emitter uses to decide whether to synthesize a real C
// main() wrapper at all, and whether that wrapper needs to build an
// Array of command-line arguments.
func findMain(prog *Program) *FuncDef {
	for _, d := range prog.Decls {
		if d.Func != nil && d.Func.Name == "main" {
			return d.Func
		}
	}
	return nil
}

// deferMacro is the manual-mode-only `defer(stmt)` helper: it binds
// stmt to a block-scoped variable whose cleanup attribute runs it when
// that variable goes out of scope, giving manual mode a scope-exit hook
// without automatic mode's arena.
const deferMacro = `#define HCS_CONCAT_(a, b) a##b
#define HCS_CONCAT(a, b) HCS_CONCAT_(a, b)
#define defer(stmt) \
    void HCS_CONCAT(_hcs_defer_fn_, __LINE__)(int* _hcs_defer_unused) { stmt; } \
    __attribute__((cleanup(HCS_CONCAT(_hcs_defer_fn_, __LINE__)))) int HCS_CONCAT(_hcs_defer_var_, __LINE__) = 0
`

// Emit lowers a parsed, collected program to a complete C
// translation unit: the fixed runtime prelude (plus the defer macro
// in manual mode), then every class struct, then each class's
// constructor and methods and each free function in source order,
// then (if the program defines a `main`) a synthesized C entry point.
func Emit(prog *Program, ct *ClassTable) string {
	w := newOutputWriter()
	w.writel(preludeC)

	autoMem := prog.Directive != nil && prog.Directive.Mode == "automatic"
	manualMem := prog.Directive != nil && prog.Directive.Mode == "manual"
	if manualMem {
		w.writel(deferMacro)
	}

	for _, d := range prog.Decls {
		if d.Class == nil {
			continue
		}
		emitStructDef(w, d.Class.Name, ct)
		w.writel("")
	}

	for _, d := range prog.Decls {
		switch {
		case d.Class != nil:
			emitClassConstructor(w, d.Class.Name)
			w.writel("")
			for _, m := range d.Class.Methods {
				emitMethod(ct, w, d.Class.Name, m)
				w.writel("")
			}
		case d.Func != nil:
			emitFreeFunc(ct, w, d.Func, autoMem)
			w.writel("")
		}
	}

	if main := findMain(prog); main != nil {
		emitMainWrapper(w, main, autoMem)
	}

	return w.String()
}

func emitMainWrapper(w *outputWriter, main *FuncDef, autoMem bool) {
	takesArgs := mainTakesArgs(main)

	w.writeil("int main(int argc, char** argv) {")
	w.indent()
	if takesArgs {
		w.writeil("Array args = { argv + 1, argc - 1 };")
	} else {
		w.writeil("(void)argc;")
		w.writeil("(void)argv;")
	}

	call := "hs_main()"
	if takesArgs {
		call = "hs_main(args)"
	}
	if autoMem {
		w.writeil("int _rc = " + call + ";")
		w.writeil("hcs_arena_drain();")
		w.writeil("return _rc;")
	} else {
		w.writeil("return " + call + ";")
	}
	w.unindent()
	w.writeil("}")
}
