package hcsc

import "fmt"

// typeKind is the small, fixed set of C shapes the emitter reasons
// about. It never represents a user-declared annotation — HCS has
// none — only what the emitter inferred.
type typeKind int

const (
	kindUnknown typeKind = iota
	kindInt
	kindBool
	kindCharPtr
	kindVoid
	kindVoidPtr
	kindArray
	kindResponsePtr
	kindJsonPtr
	kindHclPtr
	kindStruct
)

// StaticType is a value type so it can be compared with == and used
// as a map key; the only variant that carries data is kindStruct,
// via Class.
type StaticType struct {
	kind  typeKind
	Class string // class name, only meaningful when kind == kindStruct
}

var (
	TypeUnknown     = StaticType{kind: kindUnknown}
	TypeInt         = StaticType{kind: kindInt}
	TypeBool        = StaticType{kind: kindBool}
	TypeCharPtr     = StaticType{kind: kindCharPtr}
	TypeVoid        = StaticType{kind: kindVoid}
	TypeVoidPtr     = StaticType{kind: kindVoidPtr}
	TypeArray       = StaticType{kind: kindArray}
	TypeResponsePtr = StaticType{kind: kindResponsePtr}
	TypeJsonPtr     = StaticType{kind: kindJsonPtr}
	TypeHclPtr      = StaticType{kind: kindHclPtr}
)

// NewStructType returns the StaticType for `struct <name>*`.
func NewStructType(name string) StaticType {
	return StaticType{kind: kindStruct, Class: name}
}

// IsStruct reports whether t is a `struct <Name>*` type.
func (t StaticType) IsStruct() bool { return t.kind == kindStruct }

// IsUnknown reports whether t is the bottom marker.
func (t StaticType) IsUnknown() bool { return t.kind == kindUnknown }

// CType renders the C spelling of the static type, e.g. "struct Foo*".
// unknown widens to char* wherever a concrete type is syntactically
// required — the emitter decides per-site whether that widening is
// legal, this method just has to produce *something* compilable.
func (t StaticType) CType() string {
	switch t.kind {
	case kindStruct:
		return fmt.Sprintf("struct %s*", t.Class)
	case kindInt:
		return "int"
	case kindBool:
		return "bool"
	case kindCharPtr:
		return "char*"
	case kindVoid:
		return "void"
	case kindVoidPtr:
		return "void*"
	case kindArray:
		return "Array"
	case kindResponsePtr:
		return "Response*"
	case kindJsonPtr:
		return "Json*"
	case kindHclPtr:
		return "Hcl*"
	default:
		return "char*"
	}
}

func (t StaticType) String() string {
	switch t.kind {
	case kindStruct:
		return fmt.Sprintf("struct %s*", t.Class)
	case kindUnknown:
		return "unknown"
	default:
		return t.CType()
	}
}
