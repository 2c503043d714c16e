package fmtx

// Handler formats one parsed directive. It consumes its arguments from
// s.Args and emits output through s.Putchar, s.Puts, or s.Printf.
type Handler func(s *State)

// Registry maps specifier characters to handlers. Every formatting call
// resolves specifiers through exactly one Registry; the package-level
// entry points use a process-wide default, and callers that need isolated
// or concurrent-safe configuration create their own with [NewRegistry].
//
// A Registry is safe for concurrent formatting as long as nothing calls
// Install concurrently; installation is expected to happen during
// single-threaded setup.
type Registry struct {
	table [0x80]Handler
}

// NewRegistry returns a registry seeded with the built-in specifiers.
func NewRegistry() *Registry {
	r := &Registry{}

	r.table['d'] = convSigned
	r.table['i'] = convSigned

	r.table['u'] = convUnsigned
	r.table['x'] = convUnsigned
	r.table['X'] = convUnsigned
	r.table['o'] = convUnsigned
	r.table['b'] = convUnsigned

	if supportFloat {
		r.table['f'] = convFloat
		r.table['F'] = convFloat
		if supportExponential {
			r.table['e'] = convFloat
			r.table['E'] = convFloat
			r.table['g'] = convFloat
			r.table['G'] = convFloat
		}
	}

	r.table['c'] = convChar
	r.table['s'] = convString
	r.table['p'] = convPointer
	r.table['%'] = convPercent

	return r
}

// Install registers fn to handle %c directives, replacing any existing
// handler including built-ins. The character must be printable ASCII and
// must not be a digit or '%'; otherwise the call is a no-op. Installing
// over characters the parser already consumes (flags, '.', '*', or the
// size modifiers h l j t z) is not rejected, but the resulting behavior
// is unspecified.
func (r *Registry) Install(c byte, fn Handler) {
	if c <= ' ' || c > '~' || c == '%' || ('0' <= c && c <= '9') {
		return
	}
	r.table[c] = fn
}

// defaultRegistry backs the package-level entry points. It is mutated in
// place by the package-level Install and must therefore only be changed
// while no formatting call is in flight.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// entry points.
func Default() *Registry {
	return defaultRegistry
}

// Install registers fn on the process-wide default registry. See
// [Registry.Install] for the accepted characters, and the package
// documentation for the synchronization contract.
func Install(c byte, fn Handler) {
	defaultRegistry.Install(c, fn)
}
