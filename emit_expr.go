package hcsc

import (
	"fmt"
	"strings"
)

// emitExpr is the bottom-up expression emitter: every call down this
// chain returns a (code, type) pair.
func emitExpr(ctx *emitCtx, e *Expr) exprResult {
	return emitLogic(ctx, e.Logic)
}

func emitLogic(ctx *emitCtx, l *LogicExpr) exprResult {
	cur := emitCompareTerm(ctx, l.Left)
	if len(l.Rest) == 0 {
		return cur
	}
	code := cur.Code
	for _, rest := range l.Rest {
		r := emitCompareTerm(ctx, rest)
		code = "(" + code + " && " + r.Code + ")"
	}
	return exprResult{Code: code, Type: TypeBool}
}

func emitCompareTerm(ctx *emitCtx, t *CompareTerm) exprResult {
	if t.Not != nil {
		r := emitAdd(ctx, t.Not.Right)
		return exprResult{Code: "!(" + r.Code + ")", Type: TypeBool}
	}
	return emitCompare(ctx, t.Compare)
}

func emitCompare(ctx *emitCtx, c *CompareExpr) exprResult {
	left := emitAdd(ctx, c.Left)
	if len(c.Ops) == 0 {
		return left
	}
	code := left.Code
	curType := left.Type
	for _, op := range c.Ops {
		right := emitAdd(ctx, op.Right)
		switch op.Op {
		case "==":
			if curType.kind == kindCharPtr || right.Type.kind == kindCharPtr {
				code = "(strcmp(" + code + ", " + right.Code + ") == 0)"
			} else {
				code = "(" + code + " == " + right.Code + ")"
			}
		default: // "<" or ">"
			code = "(" + code + " " + op.Op + " " + right.Code + ")"
		}
		curType = right.Type
	}
	return exprResult{Code: code, Type: TypeBool}
}

// emitAdd lowers the "+" chain. Once any operand in the chain is
// char*, the whole chain becomes an asprintf concatenation — matching
// the collector's inferAddChain widening rule exactly, so a field's
// declared type and its emitted expression never disagree.
func emitAdd(ctx *emitCtx, a *AddExpr) exprResult {
	terms := make([]*PostfixExpr, 0, len(a.Rest)+1)
	terms = append(terms, a.Left)
	terms = append(terms, a.Rest...)

	results := make([]exprResult, len(terms))
	for i, t := range terms {
		results[i] = emitPostfix(ctx, t)
	}
	if len(results) == 1 {
		return results[0]
	}

	anyCharPtr := false
	for _, r := range results {
		if r.Type.kind == kindCharPtr {
			anyCharPtr = true
			break
		}
	}
	if !anyCharPtr {
		code := results[0].Code
		for i := 1; i < len(results); i++ {
			code = "(" + code + " + " + results[i].Code + ")"
		}
		return exprResult{Code: code, Type: TypeInt}
	}

	var format strings.Builder
	args := make([]string, 0, len(results))
	for _, r := range results {
		format.WriteString("%s")
		args = append(args, r.Code)
	}
	code := fmt.Sprintf(`(char*)({ char *str = NULL; asprintf(&str, "%s", %s); str; })`,
		format.String(), strings.Join(args, ", "))
	return exprResult{Code: code, Type: TypeCharPtr}
}

func emitPostfix(ctx *emitCtx, p *PostfixExpr) exprResult {
	cur := emitAtom(ctx, p.Atom)
	atomIdent, atomIsIdent := "", false
	if p.Atom.Ident != nil {
		atomIdent, atomIsIdent = *p.Atom.Ident, true
	}

	i := 0
	for i < len(p.Trailers) {
		tr := p.Trailers[i]
		switch {
		case tr.Call != nil:
			args := emitArgs(ctx, tr.Call.Args)
			if i == 0 && atomIsIdent {
				cur = emitFreeCall(ctx, atomIdent, args)
			} else {
				cur = exprResult{Code: cur.Code + "(" + strings.Join(argCodes(args), ", ") + ")", Type: TypeUnknown}
			}
			i++
		case tr.Dot != nil && i+1 < len(p.Trailers) && p.Trailers[i+1].Call != nil:
			method := *tr.Dot
			args := emitArgs(ctx, p.Trailers[i+1].Call.Args)
			cur = emitMethodCall(ctx, cur, method, args)
			i += 2
		case tr.Dot != nil:
			cur = emitFieldAccess(ctx, cur, *tr.Dot)
			i++
		case tr.Index != nil:
			idx := emitExpr(ctx, tr.Index)
			cur = emitIndexAccess(cur, idx)
			i++
		}
	}
	return cur
}

// emitFieldAccess lowers receiver.field, dispatching on the
// receiver's static type: Array.length reads the struct's len member
// directly (no arrow, Array is never a pointer here), Response*.status
// reads the curl status code, a field tracked on a known class reads
// at its recorded type, and anything else falls back to an arrow
// access typed char* — the widest concrete type an unrecognized field
// could hold.
func emitFieldAccess(ctx *emitCtx, cur exprResult, field string) exprResult {
	switch {
	case cur.Type.kind == kindArray && field == "length":
		return exprResult{Code: cur.Code + ".len", Type: TypeInt}
	case cur.Type.kind == kindResponsePtr && field == "status":
		return exprResult{Code: cur.Code + "->status", Type: TypeInt}
	case cur.Type.IsStruct():
		if t, ok := ctx.classes.Fields[cur.Type.Class][field]; ok {
			return exprResult{Code: cur.Code + "->" + field, Type: t}
		}
		return exprResult{Code: cur.Code + "->" + field, Type: TypeCharPtr}
	default:
		return exprResult{Code: cur.Code + "->" + field, Type: TypeCharPtr}
	}
}

// emitIndexAccess lowers receiver[index]: an Array indexes its data
// pointer directly, a Json* reaches through its parsed items array,
// and any other receiver falls back to plain C subscripting typed
// unknown, since the emitter has no type information about it.
func emitIndexAccess(cur exprResult, idx exprResult) exprResult {
	switch cur.Type.kind {
	case kindArray:
		return exprResult{Code: cur.Code + ".data[" + idx.Code + "]", Type: TypeCharPtr}
	case kindJsonPtr:
		return exprResult{Code: cur.Code + "->items.data[" + idx.Code + "]", Type: TypeCharPtr}
	default:
		return exprResult{Code: cur.Code + "[" + idx.Code + "]", Type: TypeUnknown}
	}
}

func emitAtom(ctx *emitCtx, a *Atom) exprResult {
	switch {
	case a.Int != nil:
		return exprResult{Code: *a.Int, Type: TypeInt}
	case a.Str != nil:
		return lowerStringLiteral(*a.Str)
	case a.Null != nil:
		return exprResult{Code: "NULL", Type: TypeVoidPtr}
	case a.New != nil:
		return emitNew(ctx, a.New)
	case a.Array != nil:
		return emitArrayLit(ctx, a.Array)
	case a.Paren != nil:
		inner := emitExpr(ctx, a.Paren.Expr)
		return exprResult{Code: "(" + inner.Code + ")", Type: inner.Type}
	case a.Ident != nil:
		name := *a.Ident
		if name == "self" {
			return exprResult{Code: "self", Type: NewStructType(ctx.selfClass)}
		}
		return exprResult{Code: name, Type: ctx.typeOf(name)}
	}
	return exprResult{Code: "/* unreachable */", Type: TypeUnknown}
}

// emitNew lowers `new Foo()` to a call on a constructor helper that
// emit_def.go synthesizes once per class (Foo_new, calloc'd so every
// field starts zeroed, see emitClassConstructor).
func emitNew(ctx *emitCtx, n *NewExpr) exprResult {
	return exprResult{Code: n.Name + "_new()", Type: NewStructType(n.Name)}
}

func emitArrayLit(ctx *emitCtx, arr *ArrayLit) exprResult {
	elems := make([]string, len(arr.Args))
	for i, e := range arr.Args {
		elems[i] = emitExpr(ctx, e).Code
	}
	tmp := ctx.nextTemp("_arr_items")
	code := fmt.Sprintf("({ static char* %s[] = {%s}; (Array){ .data = %s, .len = %d }; })",
		tmp, strings.Join(elems, ", "), tmp, len(elems))
	return exprResult{Code: code, Type: TypeArray}
}

func emitArgs(ctx *emitCtx, args []*Expr) []exprResult {
	out := make([]exprResult, len(args))
	for i, a := range args {
		out[i] = emitExpr(ctx, a)
	}
	return out
}

func argCodes(args []exprResult) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a.Code
	}
	return out
}

// emitFreeCall lowers a bare `name(args...)` call. allocate/deallocate
// are special forms mapping straight to malloc/free; everything else
// is either a known builtin (typed via builtinReturnTypes) or a
// user-defined free function, whose return type defaults to unknown
// until it widens at its use site.
func emitFreeCall(ctx *emitCtx, name string, args []exprResult) exprResult {
	switch name {
	case "allocate":
		code := "malloc(" + strings.Join(argCodes(args), ", ") + ")"
		if ctx.autoMem {
			code = "hcs_arena_track(" + code + ")"
		}
		return exprResult{Code: code, Type: TypeVoidPtr}
	case "deallocate":
		if ctx.autoMem {
			// Automatic mode drains everything at hs_main exit;
			// an explicit deallocate here would double-free.
			return exprResult{Code: "(void)0", Type: TypeVoid}
		}
		return exprResult{Code: "free(" + strings.Join(argCodes(args), ", ") + ")", Type: TypeVoid}
	}
	return exprResult{Code: name + "(" + strings.Join(argCodes(args), ", ") + ")", Type: builtinReturnType(name)}
}

// emitMethodCall mangles `recv.method(args...)` to Class_method(recv,
// args...) when recv's static type resolves to a tracked class,
// falling back to the plain free-function form method(recv, args...)
// otherwise.
func emitMethodCall(ctx *emitCtx, recv exprResult, method string, args []exprResult) exprResult {
	allArgs := append([]string{recv.Code}, argCodes(args)...)
	if recv.Type.IsStruct() && ctx.classes.Classes[recv.Type.Class] {
		fn := recv.Type.Class + "_" + method
		return exprResult{Code: fn + "(" + strings.Join(allArgs, ", ") + ")", Type: TypeUnknown}
	}
	return exprResult{Code: method + "(" + strings.Join(allArgs, ", ") + ")", Type: builtinReturnType(method)}
}
