package hcsc

// This file holds small pure helpers for picking apart the precedence
// chain in ast.go. Both the collector (classtable.go) and the emitter
// (emit_expr.go) need to ask the same structural questions — "is this
// really just a dotted-field reference?", "is this an add-chain with
// no boolean operators wrapping it?" — so the traversal lives once
// here instead of being duplicated in each pass.

// asAdd strips an Expr down to its AddExpr if nothing above add-level
// is actually in play: no "&&", no leading "!", no "==" / "<" / ">".
// Returns nil if any of those wrapping forms is present.
func asAdd(e *Expr) *AddExpr {
	if e == nil || e.Logic == nil {
		return nil
	}
	l := e.Logic
	if len(l.Rest) != 0 {
		return nil
	}
	t := l.Left
	if t.Not != nil {
		return nil
	}
	if t.Compare == nil || len(t.Compare.Ops) != 0 {
		return nil
	}
	return t.Compare.Left
}

// asPostfix strips an Expr down to a single PostfixExpr, i.e. an
// add-chain of exactly one term with no "+".
func asPostfix(e *Expr) *PostfixExpr {
	a := asAdd(e)
	if a == nil || len(a.Rest) != 0 {
		return nil
	}
	return a.Left
}

// dottedField reports whether e is exactly `<ident>.<field>` with no
// further trailers — the shape the collector looks for in
// `self.<field> = ...`.
func dottedField(e *Expr) (receiver, field string, ok bool) {
	p := asPostfix(e)
	if p == nil || p.Atom == nil || p.Atom.Ident == nil || len(p.Trailers) != 1 {
		return "", "", false
	}
	tr := p.Trailers[0]
	if tr.Dot == nil {
		return "", "", false
	}
	return *p.Atom.Ident, *tr.Dot, true
}

// bareIdent reports whether e is a single, trailer-free identifier.
func bareIdent(e *Expr) (string, bool) {
	p := asPostfix(e)
	if p == nil || p.Atom == nil || p.Atom.Ident == nil || len(p.Trailers) != 0 {
		return "", false
	}
	return *p.Atom.Ident, true
}

// callTrailer reports whether e is `<ident>(...)` with no further
// trailers after the call — a plain free-function or constructor-
// style call used as a value.
func callTrailer(e *Expr) (name string, args []*Expr, ok bool) {
	p := asPostfix(e)
	if p == nil || p.Atom == nil || p.Atom.Ident == nil || len(p.Trailers) != 1 {
		return "", nil, false
	}
	tr := p.Trailers[0]
	if tr.Call == nil {
		return "", nil, false
	}
	return *p.Atom.Ident, tr.Call.Args, true
}

// methodCallTrailer reports whether e is `<recv>.<method>(...)` —
// a dotted receiver immediately followed by a call, the shape that
// triggers Class_method mangling in the emitter.
func methodCallTrailer(e *Expr) (recv, method string, args []*Expr, ok bool) {
	p := asPostfix(e)
	if p == nil || p.Atom == nil || p.Atom.Ident == nil || len(p.Trailers) != 2 {
		return "", "", nil, false
	}
	dot, call := p.Trailers[0], p.Trailers[1]
	if dot.Dot == nil || call.Call == nil {
		return "", "", nil, false
	}
	return *p.Atom.Ident, *dot.Dot, call.Call.Args, true
}
