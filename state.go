package fmtx

// Sink receives one output byte. All output of a formatting call flows
// through a single Sink; the C equivalent's opaque user pointer becomes
// whatever the closure captures. A nil Sink discards bytes but still
// counts them.
type Sink func(c byte)

// Flags is the flag set of one %-directive.
type Flags uint8

const (
	FlagZeroPad   Flags = 1 << iota // '0'
	FlagLeft                        // '-'
	FlagPlus                        // '+'
	FlagSpace                       // ' '
	FlagHash                        // '#'
	FlagPrecision                   // a precision was given, even ".0"
)

// Size is the argument size class of a directive, selected by the
// hh/h/l/ll/j/t/z modifiers. It controls how many bits of the consumed
// argument participate in the conversion.
type Size uint8

const (
	SizeChar     Size = iota // "hh"
	SizeShort                // "h"
	SizeDefault              // no modifier
	SizeLong                 // "l"
	SizeLongLong             // "ll"
)

// context is the shared bookkeeping of one top-level formatting call: the
// sink, the running emitted-byte counter, and the registry that resolves
// specifiers. Exactly one context exists per call; derived states and
// nested Printf calls all reference the same one, which is what keeps the
// counter consistent across sub-conversions.
type context struct {
	out Sink
	n   int
	reg *Registry
}

// State is the working record for a single %-directive. The driver fills
// the parsed fields and hands the State to the matched [Handler]; the
// handler consumes arguments from Args and emits through the sink methods.
// A State lives only as long as its directive.
type State struct {
	Flags     Flags
	Width     uint
	Precision uint
	Size      Size
	Specifier byte

	// Args is the shared argument cursor. Consuming from it advances the
	// position for every later directive of the same call.
	Args *Args

	ctx *context
}

// Putchar sends one byte to the sink and bumps the shared counter. The
// counter advances even when the sink is nil.
func (s *State) Putchar(c byte) {
	if s.ctx.out != nil {
		s.ctx.out(c)
	}
	s.ctx.n++
}

// Puts emits str byte by byte. No trailing newline is added.
func (s *State) Puts(str string) {
	for i := 0; i < len(str); i++ {
		s.Putchar(str[i])
	}
}

// Len reports how many bytes have been emitted since the beginning of the
// outermost call. Nested conversions share the counter, so a handler can
// measure its own output as a difference of two Len calls.
func (s *State) Len() int {
	return s.ctx.n
}

// Printf runs the format driver against the same sink, counter, and
// registry as s. Custom handlers use it to build composite output without
// breaking width bookkeeping.
func (s *State) Printf(format string, args ...any) {
	s.ctx.reg.run(s.ctx, format, &Args{list: args})
}

// deriveState builds the directive state for a sub-conversion. The child
// shares the parent's context and argument cursor; flags, width,
// precision, and specifier come from the overrides. The parent is not
// mutated.
func deriveState(parent *State, flags Flags, width, precision uint, specifier byte) *State {
	return &State{
		Flags:     flags,
		Width:     width,
		Precision: precision,
		Size:      SizeDefault,
		Specifier: specifier,
		Args:      parent.Args,
		ctx:       parent.ctx,
	}
}
