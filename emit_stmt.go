package hcsc

// emitBody emits every statement in body, in order, at the writer's
// current indent level.
func emitBody(ctx *emitCtx, w *outputWriter, body []*Stmt) {
	for _, s := range body {
		emitStmt(ctx, w, s)
	}
}

func emitStmt(ctx *emitCtx, w *outputWriter, s *Stmt) {
	switch {
	case s.Assign != nil:
		emitAssign(ctx, w, s.Assign)
	case s.Log != nil:
		emitLog(ctx, w, s.Log)
	case s.Return != nil:
		emitReturn(ctx, w, s.Return)
	case s.If != nil:
		emitIf(ctx, w, s.If)
	case s.For != nil:
		emitFor(ctx, w, s.For)
	case s.Expr != nil:
		r := emitExpr(ctx, s.Expr.Expr)
		w.writeil(r.Code + ";")
	}
}

// emitAssign lowers an assignment. A bare, never-before-seen
// identifier on the left declares a new C local, typed from the
// right-hand side exactly as the scope stack's "bind on first
// assignment" rule requires; a bare identifier already in scope is a
// plain reassignment; a dotted left-hand side is a struct field store.
func emitAssign(ctx *emitCtx, w *outputWriter, assign *Assignment) {
	right := emitExpr(ctx, assign.Right)

	if name, ok := bareIdent(assign.Left); ok {
		if _, exists := ctx.scope.Lookup(name); !exists {
			ctx.scope.Bind(name, right.Type)
			w.writeil(right.Type.CType() + " " + name + " = " + right.Code + ";")
		} else {
			w.writeil(name + " = " + right.Code + ";")
		}
		return
	}

	left := emitExpr(ctx, assign.Left)
	w.writeil(left.Code + " = " + right.Code + ";")
}

func emitLog(ctx *emitCtx, w *outputWriter, s *LogStmt) {
	msg := lowerStringLiteral(s.String)
	w.writeil(`printf("%s\n", ` + msg.Code + `);`)
}

func emitReturn(ctx *emitCtx, w *outputWriter, s *ReturnStmt) {
	if s.Value == nil {
		w.writeil("return;")
		return
	}
	r := emitExpr(ctx, s.Value)
	w.writeil("return " + r.Code + ";")
}

func emitIf(ctx *emitCtx, w *outputWriter, s *IfStmt) {
	cond := emitExpr(ctx, s.Cond)
	w.writeil("if (" + cond.Code + ") {")
	emitBlock(ctx, w, s.Body)
	w.writeil("}")

	for _, ei := range s.ElseIfs {
		c := emitExpr(ctx, ei.Cond)
		w.writeil("else if (" + c.Code + ") {")
		emitBlock(ctx, w, ei.Body)
		w.writeil("}")
	}

	if s.Else != nil {
		w.writeil("else {")
		emitBlock(ctx, w, s.Else.Body)
		w.writeil("}")
	}
}

// emitFor lowers `for x in coll [ ... ]` to a counted C loop over the
// Array's backing slice. The collection expression is evaluated once
// into a temporary so that an interpolation-heavy or otherwise
// side-effecting collection expression isn't re-evaluated once per
// count-check and once per element access.
func emitFor(ctx *emitCtx, w *outputWriter, s *ForStmt) {
	coll := emitExpr(ctx, s.Coll)
	arrTmp := ctx.nextTemp("_arr")
	w.writeil("Array " + arrTmp + " = " + coll.Code + ";")

	idx := ctx.nextTemp("_i")
	w.writeil("for (int " + idx + " = 0; " + idx + " < " + arrTmp + ".len; " + idx + "++) {")
	w.indent()
	ctx.scope.Push()
	ctx.scope.Bind(s.Var, TypeCharPtr)
	w.writeil("char* " + s.Var + " = " + arrTmp + ".data[" + idx + "];")
	emitBody(ctx, w, s.Body)
	ctx.scope.Pop()
	w.unindent()
	w.writeil("}")
}

func emitBlock(ctx *emitCtx, w *outputWriter, body []*Stmt) {
	w.indent()
	ctx.scope.Push()
	emitBody(ctx, w, body)
	ctx.scope.Pop()
	w.unindent()
}
