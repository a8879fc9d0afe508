package hcsc

// scopeFrame is one lexical level: parameter bindings or the first
// assignment site of a bare identifier.
type scopeFrame map[string]StaticType

// ScopeStack is an ordered slice of frames, innermost last. Each
// function or method body gets a fresh stack; a frame is pushed on
// entry to each nested block (if/else branch, for body) and popped on
// exit. It never links to an outer frame by
// pointer the way a classic symbol-table chain would; Lookup just
// walks the slice backwards.
type ScopeStack struct {
	frames []scopeFrame
}

// NewScopeStack returns a stack with a single, empty top-level frame.
func NewScopeStack() *ScopeStack {
	return &ScopeStack{frames: []scopeFrame{{}}}
}

// Push opens a new innermost frame, typically on entry to a nested block.
func (s *ScopeStack) Push() {
	s.frames = append(s.frames, scopeFrame{})
}

// Pop discards the innermost frame.
func (s *ScopeStack) Pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

// Bind creates or overwrites name in the innermost frame. An
// identifier is only ever bound where it's first assigned; a bare
// `x = ...` with no existing binding anywhere on the stack creates it
// here, never in an enclosing frame.
func (s *ScopeStack) Bind(name string, t StaticType) {
	s.frames[len(s.frames)-1][name] = t
}

// Lookup walks the stack from innermost to outermost and returns the
// first binding found. ok is false for a name that was never bound
// (the caller then treats it as fresh, per Bind's contract).
func (s *ScopeStack) Lookup(name string) (StaticType, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if t, ok := s.frames[i][name]; ok {
			return t, true
		}
	}
	return TypeUnknown, false
}
