package hcsc

import "github.com/alecthomas/participle/v2/lexer"

// hcsLexer tokenizes HCS source. Rule order matters: participle's
// simple lexer tries rules in the order given and takes the first
// one that matches at the current cursor, so multi-character tokens
// that share a prefix with shorter ones (the directive fence "---",
// "&&", "==") must be listed before the single-character Punct
// catch-all.
var hcsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `@[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Dashes", Pattern: `---`},
	{Name: "AndAnd", Pattern: `&&`},
	{Name: "EqEq", Pattern: `==`},
	{Name: "Punct", Pattern: `[()\[\].,+<>=!:]`},
})
