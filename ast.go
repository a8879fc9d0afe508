package hcsc

import "github.com/alecthomas/participle/v2/lexer"

// The types below are the HCS parse tree. Each struct is one grammar
// production; its typed fields are the ordered children of that
// production. Keeping them as a Go sum-of-types instead of a single
// tagged-node struct lets classtable.go and the emit_*.go files
// dispatch with an exhaustive type switch, rather than reflecting on
// a string tag.

// Program is the root of every parse: an optional mode directive,
// any number of import statements, then any mix of class and
// function definitions in source order.
type Program struct {
	Pos       lexer.Position
	Directive *Directive `parser:"@@?"`
	Imports   []*ImportStmt `parser:"@@*"`
	Decls     []*Decl       `parser:"@@*"`
}

// Directive is the optional "--- manual ---" / "--- automatic ---"
// mode fence.
type Directive struct {
	Pos  lexer.Position
	Mode string `parser:"Dashes @('manual' | 'automatic') Dashes"`
}

// ImportStmt is `import <category:name>` or `import <category<mod:member>>`.
type ImportStmt struct {
	Pos      lexer.Position
	Category string       `parser:"'import' '<' @Ident"`
	Inner    *ImportInner `parser:"@@ '>'"`
}

type ImportInner struct {
	Pos    lexer.Position
	Colon  *ColonInner  `parser:"( @@"`
	Nested *NestedInner `parser:"| @@ )"`
}

type ColonInner struct {
	Pos  lexer.Position
	Name string `parser:"':' @Ident"`
}

type NestedInner struct {
	Pos    lexer.Position
	Module string `parser:"'<' @Ident"`
	Member string `parser:"':' @Ident '>'"`
}

// Decl is either a class or a function definition at the top level.
type Decl struct {
	Pos   lexer.Position
	Class *ClassDef `parser:"( @@"`
	Func  *FuncDef  `parser:"| @@ )"`
}

// ClassDef is `class Name [ func* ]`.
type ClassDef struct {
	Pos     lexer.Position
	Name    string     `parser:"'class' @Ident '['"`
	Methods []*FuncDef `parser:"@@* ']'"`
}

// FuncDef is `func name(p1, p2, ...) [ stmt* ]`. Parameters are bare
// untyped identifiers; the emitter assigns each a static type.
type FuncDef struct {
	Pos    lexer.Position
	Name   string  `parser:"'func' @Ident '('"`
	Params []string `parser:"( @Ident (',' @Ident)* )? ')' '['"`
	Body   []*Stmt  `parser:"@@* ']'"`
}

// Stmt is the union of every statement form.
type Stmt struct {
	Pos    lexer.Position
	Assign *Assignment `parser:"( @@"`
	Log    *LogStmt    `parser:"| @@"`
	Return *ReturnStmt `parser:"| @@"`
	If     *IfStmt     `parser:"| @@"`
	For    *ForStmt    `parser:"| @@"`
	Expr   *ExprStmt   `parser:"| @@ )"`
}

type Assignment struct {
	Pos   lexer.Position
	Left  *Expr `parser:"@@ '='"`
	Right *Expr `parser:"@@"`
}

type LogStmt struct {
	Pos    lexer.Position
	String string `parser:"'log' @String"`
}

type ReturnStmt struct {
	Pos   lexer.Position
	Value *Expr `parser:"'return' @@?"`
}

// ExprStmt is a call (or, permissively, any expression) used as a
// bare statement. The grammar only ever feeds it a call expression
// in well-formed HCS; the emitter never rejects a differently-shaped
// expression here, it just emits whatever fragment results followed
// by a semicolon.
type ExprStmt struct {
	Pos  lexer.Position
	Expr *Expr `parser:"@@"`
}

type IfStmt struct {
	Pos     lexer.Position
	Cond    *Expr          `parser:"'if' @@ '['"`
	Body    []*Stmt        `parser:"@@* ']'"`
	ElseIfs []*ElseIfPart  `parser:"@@*"`
	Else    *ElseBlockPart `parser:"@@?"`
}

type ElseIfPart struct {
	Pos  lexer.Position
	Cond *Expr   `parser:"'else' 'if' @@ '['"`
	Body []*Stmt `parser:"@@* ']'"`
}

type ElseBlockPart struct {
	Pos  lexer.Position
	Body []*Stmt `parser:"'else' '[' @@* ']'"`
}

type ForStmt struct {
	Pos  lexer.Position
	Var  string  `parser:"'for' @Ident 'in'"`
	Coll *Expr   `parser:"@@ '['"`
	Body []*Stmt `parser:"@@* ']'"`
}

// Expr is the entry point of the precedence chain: logic -> compare
// -> add -> postfix -> atom (low to high).
type Expr struct {
	Pos   lexer.Position
	Logic *LogicExpr `parser:"@@"`
}

type LogicExpr struct {
	Pos  lexer.Position
	Left *CompareTerm   `parser:"@@"`
	Rest []*CompareTerm `parser:"( '&&' @@ )*"`
}

// CompareTerm is either a leading "!" (not_expr, binds an add-level
// operand per the grammar) or an ordinary comparison chain.
type CompareTerm struct {
	Pos     lexer.Position
	Not     *NotExpr     `parser:"( @@"`
	Compare *CompareExpr `parser:"| @@ )"`
}

type NotExpr struct {
	Pos   lexer.Position
	Right *AddExpr `parser:"'!' @@"`
}

type CompareExpr struct {
	Pos  lexer.Position
	Left *AddExpr     `parser:"@@"`
	Ops  []*CompareOp `parser:"@@*"`
}

type CompareOp struct {
	Pos   lexer.Position
	Op    string   `parser:"@('==' | '<' | '>')"`
	Right *AddExpr `parser:"@@"`
}

type AddExpr struct {
	Pos  lexer.Position
	Left *PostfixExpr   `parser:"@@"`
	Rest []*PostfixExpr `parser:"( '+' @@ )*"`
}

type PostfixExpr struct {
	Pos      lexer.Position
	Atom     *Atom      `parser:"@@"`
	Trailers []*Trailer `parser:"@@*"`
}

// Trailer is one of the three postfix forms: .field, (args), [index].
type Trailer struct {
	Pos   lexer.Position
	Dot   *string   `parser:"( '.' @Ident"`
	Call  *CallArgs `parser:"| @@"`
	Index *Expr     `parser:"| '[' @@ ']' )"`
}

type CallArgs struct {
	Pos  lexer.Position
	Args []*Expr `parser:"'(' ( @@ (',' @@)* )? ')'"`
}

// Atom is the union of every atomic expression form.
type Atom struct {
	Pos    lexer.Position
	Int    *string    `parser:"( @Int"`
	Str    *string    `parser:"| @String"`
	Null   *string    `parser:"| @'null'"`
	New    *NewExpr   `parser:"| @@"`
	Array  *ArrayLit  `parser:"| @@"`
	Paren  *ParenExpr `parser:"| @@"`
	Ident  *string    `parser:"| @Ident )"`
}

type NewExpr struct {
	Pos  lexer.Position
	Name string `parser:"'new' @Ident '(' ')'"`
}

type ArrayLit struct {
	Pos  lexer.Position
	Args []*Expr `parser:"'[' ( @@ (',' @@)* )? ']'"`
}

type ParenExpr struct {
	Pos  lexer.Position
	Expr *Expr `parser:"'(' @@ ')'"`
}
