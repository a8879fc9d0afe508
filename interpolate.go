package hcsc

import "strings"

// lowerStringLiteral takes a raw HCS string token (quotes included,
// e.g. `"hello {name}!"`) and lowers it to a C expression. A literal
// with no `{...}` section passes through unchanged as an ordinary C
// string constant; one with interpolation lowers to an asprintf
// statement expression: `{expr}` content is taken as a raw character
// scan (the first `}` ends it, escaped or not) and substituted verbatim into
// the argument list — it is never re-parsed or re-validated as HCS
// syntax.
func lowerStringLiteral(raw string) exprResult {
	inner := raw
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}

	if !strings.Contains(inner, "{") {
		return exprResult{Code: raw, Type: TypeCharPtr}
	}

	var format strings.Builder
	var args []string
	for i := 0; i < len(inner); {
		c := inner[i]
		switch {
		case c == '\\' && i+1 < len(inner):
			format.WriteByte(c)
			format.WriteByte(inner[i+1])
			i += 2
		case c == '{':
			j := i + 1
			for j < len(inner) && inner[j] != '}' {
				j++
			}
			args = append(args, inner[i+1:j])
			format.WriteString("%s")
			if j < len(inner) {
				j++
			}
			i = j
		default:
			format.WriteByte(c)
			i++
		}
	}

	argList := ""
	if len(args) > 0 {
		argList = ", " + strings.Join(args, ", ")
	}
	code := `(char*)({ char *str = NULL; asprintf(&str, "` + format.String() + `"` + argList + `); str; })`
	return exprResult{Code: code, Type: TypeCharPtr}
}
