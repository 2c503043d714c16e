// Package fmtx is a reentrant, allocation-free printf core with a
// pluggable specifier registry.
//
// The package interprets C-style format strings and emits bytes through a
// caller-supplied [Sink], one byte at a time. Nothing in the core path
// allocates: digit accumulation happens in fixed-capacity stack buffers,
// and padding decisions are made from a running byte counter shared across
// a whole top-level call. That makes the core suitable for firmware-style
// targets (TinyGo, kernels, panic handlers) where the standard fmt package
// is too heavy or not available.
//
// # Entry Points
//
// [Emit] is the core call: it drives a format string against a [Sink] and
// returns the number of bytes produced. A nil Sink is valid and discards
// output, which turns Emit into a pure length counter. The remaining entry
// points are thin adapters over Emit:
//
//	n := fmtx.Emit(sink, "%08.3f", 3.14159)
//	s := fmtx.Sprintf("%#x", 48879)
//	b := fmtx.Appendf(dst, "%-10s|", "left")
//	n := fmtx.Fprintf(os.Stdout, "%d items\n", 3)
//	n := fmtx.Snprintf(buf, "%s", name) // truncates, always NUL-terminates
//
// There is no error path. A malformed directive never fails the call; it
// produces inline diagnostic text (for example %!(unknown specifier='y'))
// and scanning resumes with the next byte of the format string.
//
// # Format Grammar
//
// Each directive is %[flags][width][.precision][size]specifier:
//
//   - flags: any of "0 - + space #", in any order
//   - width: decimal digits, or * to consume one int argument (a negative
//     dynamic width means left-justify with the absolute value)
//   - precision: "." then digits, or ".*" (negative collapses to 0; a bare
//     "." means precision 0)
//   - size: one of "hh h l ll j t z", selecting the argument narrowing
//   - specifier: one byte, resolved through the [Registry]
//
// Built-in specifiers: d i (signed decimal), u (unsigned decimal), x X
// (hex), o (octal), b (binary), f F (fixed-point), e E (exponential),
// g G (adaptive), c (byte), s (string), p (pointer), and %% for a literal
// percent sign.
//
// # Custom Specifiers
//
// A [Handler] receives the parsed [State] for one directive and emits
// whatever it wants through the State's sink methods. Handlers consume
// their arguments from the typed cursor [State.Args]:
//
//	fmtx.Install('Q', func(s *fmtx.State) {
//		s.Puts("<<")
//		s.Printf("%s", s.Args.Str())
//		s.Puts(">>")
//	})
//
// [State.Printf] recurses into the driver with the same sink and counter,
// so composite handlers keep width bookkeeping consistent. The package-
// level [Install] mutates the process-wide default registry and is meant
// for single-threaded startup; for test isolation or per-caller
// configuration, build a private [Registry] with [NewRegistry] and use its
// method set instead.
//
// # Arguments
//
// Arguments are passed as ...any and consumed sequentially through a typed
// cursor rather than reflection-driven matching: each specifier reads
// exactly the arguments its grammar implies, and an unknown specifier
// reads none. An exhausted or type-mismatched read yields the zero value,
// never a panic.
//
// # Fidelity Notes
//
// Output is byte-for-byte compatible with the embedded C formatter this
// package descends from, including its documented quirks: the asymmetric
// float tie-rounding rule (1.5 and 2.5 both render as "2" at precision 0),
// the %g fixed-point fallback window of [1e-4, 1e6), the suppression of
// base prefixes on zero values, and the %!(exceeded ...) diagnostics when
// a conversion would overflow its fixed buffer or the %f magnitude
// ceiling. Width and length are measured in bytes; the formatter is not
// Unicode-aware.
package fmtx
