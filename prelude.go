package hcsc

import _ "embed"

// preludeC is the fixed C runtime every compiled program is prefixed
// with: the Array/Response/Json/Hcl struct shapes and their built-in
// functions, embedded directly from its own .c file rather than
// generated from a Go string literal.
//
//go:embed runtime/prelude.c
var preludeC string
