package hcsc

import "strconv"

// exprResult pairs a C expression fragment with the static type the
// emitter derived for it — the bottom-up (code, type) pair every
// expression-emission function returns.
type exprResult struct {
	Code string
	Type StaticType
}

// emitCtx is threaded through every emit_*.go call for one function
// or method body: which class (if any) owns the current method, the
// live scope stack, and the class table from the collector pass.
type emitCtx struct {
	classes   *ClassTable
	scope     *ScopeStack
	selfClass string // "" outside a method body
	tmpSeq    int    // generates unique names for array-literal and for-loop helper vars
	autoMem   bool   // true under a "--- automatic ---" directive
}

// nextTemp returns a fresh name for a compiler-generated helper
// variable, unique within the current function or method body (each
// body gets its own emitCtx, so the sequence restarts per body).
func (c *emitCtx) nextTemp(prefix string) string {
	c.tmpSeq++
	return prefix + "_" + strconv.Itoa(c.tmpSeq)
}

func newEmitCtx(ct *ClassTable) *emitCtx {
	return &emitCtx{classes: ct, scope: NewScopeStack()}
}

// typeOf resolves the static type of an already-bound name: a scope
// binding first, then (inside a method) a field of selfClass, else
// unknown. This is the scope-and-self-aware counterpart to the
// collector's literal-only inferType.
func (c *emitCtx) typeOf(name string) StaticType {
	if t, ok := c.scope.Lookup(name); ok {
		return t
	}
	if c.selfClass != "" {
		if t, ok := c.classes.Fields[c.selfClass][name]; ok {
			return t
		}
	}
	return TypeUnknown
}
