package hcsc

// ClassTable is the result of the collector pass: every class name
// seen, plus the static type of each field discovered by scanning
// `self.<field> = <expr>` assignments anywhere in that class's
// methods. Field order is preserved in FieldOrder so the emitter lays
// out the generated struct deterministically.
type ClassTable struct {
	Classes    map[string]bool
	Fields     map[string]map[string]StaticType
	FieldOrder map[string][]string
}

func newClassTable() *ClassTable {
	return &ClassTable{
		Classes:    map[string]bool{},
		Fields:     map[string]map[string]StaticType{},
		FieldOrder: map[string][]string{},
	}
}

// Collect runs the collector pass over a parsed program.
func Collect(prog *Program) *ClassTable {
	ct := newClassTable()
	for _, decl := range prog.Decls {
		if decl.Class == nil {
			continue
		}
		ct.Classes[decl.Class.Name] = true
		if _, ok := ct.Fields[decl.Class.Name]; !ok {
			ct.Fields[decl.Class.Name] = map[string]StaticType{}
		}
		for _, m := range decl.Class.Methods {
			ct.collectFieldsFromBody(decl.Class.Name, m.Body)
		}
	}
	return ct
}

func (ct *ClassTable) collectFieldsFromBody(class string, body []*Stmt) {
	for _, s := range body {
		switch {
		case s.Assign != nil:
			ct.collectAssign(class, s.Assign)
		case s.If != nil:
			ct.collectFieldsFromBody(class, s.If.Body)
			for _, ei := range s.If.ElseIfs {
				ct.collectFieldsFromBody(class, ei.Body)
			}
			if s.If.Else != nil {
				ct.collectFieldsFromBody(class, s.If.Else.Body)
			}
		case s.For != nil:
			ct.collectFieldsFromBody(class, s.For.Body)
		}
	}
}

func (ct *ClassTable) collectAssign(class string, assign *Assignment) {
	recv, field, ok := dottedField(assign.Left)
	if !ok || recv != "self" {
		return
	}
	t := ct.inferType(assign.Right)
	if _, seen := ct.Fields[class][field]; !seen {
		ct.FieldOrder[class] = append(ct.FieldOrder[class], field)
	}
	// Last assignment wins: a field reassigned to a different concrete
	// type later in the class's methods takes that later type, mirroring
	// how the field actually behaves at runtime.
	ct.Fields[class][field] = t
}

// inferType applies the collector's fixed literal/call/add-chain
// rules. It never consults a scope stack — bare identifiers and
// unresolved field reads stay unknown here; that resolution is the
// emitter's job once a ScopeStack exists.
func (ct *ClassTable) inferType(e *Expr) StaticType {
	a := asAdd(e)
	if a == nil {
		// Wrapped in "!", "&&" or a comparison: the result is boolean.
		return TypeBool
	}
	return ct.inferAddChain(a)
}

func (ct *ClassTable) inferAddChain(a *AddExpr) StaticType {
	terms := make([]*PostfixExpr, 0, len(a.Rest)+1)
	terms = append(terms, a.Left)
	terms = append(terms, a.Rest...)

	if len(terms) == 1 {
		return ct.inferPostfix(terms[0])
	}

	// Left-to-right widening: once any operand in the chain is
	// char*, the whole chain lowers to an asprintf concatenation and
	// so is char*. Otherwise the chain is a numeric sum and is int.
	for _, t := range terms {
		if ct.inferPostfix(t).kind == kindCharPtr {
			return TypeCharPtr
		}
	}
	return TypeInt
}

func (ct *ClassTable) inferPostfix(p *PostfixExpr) StaticType {
	if len(p.Trailers) == 0 {
		return ct.inferAtom(p.Atom)
	}
	if len(p.Trailers) == 1 && p.Trailers[0].Call != nil && p.Atom.Ident != nil {
		return builtinReturnType(*p.Atom.Ident)
	}
	return TypeUnknown
}

func (ct *ClassTable) inferAtom(a *Atom) StaticType {
	switch {
	case a.Int != nil:
		return TypeInt
	case a.Str != nil:
		return TypeCharPtr
	case a.Null != nil:
		return TypeVoidPtr
	case a.New != nil:
		return NewStructType(a.New.Name)
	case a.Array != nil:
		return TypeArray
	case a.Paren != nil:
		return ct.inferType(a.Paren.Expr)
	default:
		return TypeUnknown
	}
}
