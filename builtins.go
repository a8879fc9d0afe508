package hcsc

// builtinReturnTypes is the single source of truth for free-function
// call return types. Both the collector (while inferring class field
// types from method bodies) and the emitter (while typing a call
// expression) consult this table so the two passes never drift apart.
var builtinReturnTypes = map[string]StaticType{
	"read_file":            TypeCharPtr,
	"get_current_version":  TypeCharPtr,
	"get_remote_version":   TypeCharPtr,
	"replace":              TypeCharPtr,
	"get_cwd":              TypeCharPtr,
	"write_file":           TypeCharPtr,
	"read_input":           TypeCharPtr,
	"curl_get":             TypeResponsePtr,
	"json_parse":           TypeJsonPtr,
	"parse_hcl":            TypeHclPtr,
	"list_dir":             TypeArray,
	"file_exists":          TypeBool,
	"build":                TypeInt,
	"run":                  TypeInt,
	"install":              TypeInt,
	"remove":               TypeInt,
	"version_compare":      TypeInt,
}

// builtinReturnType looks up name in the signature table, returning
// TypeUnknown for anything not listed (including allocate/deallocate,
// which are handled as special forms rather than ordinary calls —
// see emitFreeCall).
func builtinReturnType(name string) StaticType {
	if t, ok := builtinReturnTypes[name]; ok {
		return t
	}
	return TypeUnknown
}

// ret type used for function/method definitions: only these names
// return int in the generated C; everything else returns void.
var intReturningDefs = map[string]bool{
	"hs_main":         true,
	"build":           true,
	"run":             true,
	"install":         true,
	"remove":          true,
	"version_compare": true,
}
