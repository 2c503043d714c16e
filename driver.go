package fmtx

import "io"

// run is the format driver: it scans format byte-wise, copies literal
// bytes to the sink, and parses each %-directive into a fresh State
// before dispatching it through the registry. Parse order is fixed:
// flags, width, precision, size, specifier.
func (r *Registry) run(ctx *context, format string, args *Args) {
	state := &State{Args: args, ctx: ctx}

	i := 0
	for i < len(format) {
		if format[i] != '%' {
			state.Putchar(format[i])
			i++
			continue
		}
		i++

		// flags, in any order, idempotent
		state.Flags = 0
	flags:
		for i < len(format) {
			switch format[i] {
			case '0':
				state.Flags |= FlagZeroPad
			case '-':
				state.Flags |= FlagLeft
			case '+':
				state.Flags |= FlagPlus
			case ' ':
				state.Flags |= FlagSpace
			case '#':
				state.Flags |= FlagHash
			default:
				break flags
			}
			i++
		}

		// width: digits, or '*' reading one int argument
		state.Width = 0
		if i < len(format) && isDigit(format[i]) {
			state.Width, i = atoi(format, i)
		} else if i < len(format) && format[i] == '*' {
			w := state.Args.Int()
			if w < 0 {
				// negative dynamic width reverses the padding
				state.Flags |= FlagLeft
				state.Width = uint(-w)
			} else {
				state.Width = uint(w)
			}
			i++
		}

		// precision: '.' alone means precision 0 with the flag set
		state.Precision = 0
		if i < len(format) && format[i] == '.' {
			state.Flags |= FlagPrecision
			i++
			if i < len(format) && isDigit(format[i]) {
				state.Precision, i = atoi(format, i)
			} else if i < len(format) && format[i] == '*' {
				if p := state.Args.Int(); p > 0 {
					state.Precision = uint(p)
				}
				i++
			}
		}

		// size class; j/t/z resolve against the platform widths
		state.Size = SizeDefault
		if i < len(format) {
			switch format[i] {
			case 'l':
				state.Size = SizeLong
				i++
				if i < len(format) && format[i] == 'l' {
					if supportLongLong {
						state.Size = SizeLongLong
					}
					i++
				}
			case 'h':
				state.Size = SizeShort
				i++
				if i < len(format) && format[i] == 'h' {
					state.Size = SizeChar
					i++
				}
			case 'j', 't', 'z':
				// intmax_t, ptrdiff_t, and size_t are all word-sized
				// here; pick the class whose width matches.
				if wordBits == 64 {
					state.Size = SizeLong
				} else {
					state.Size = SizeLongLong
				}
				i++
			}
		}

		// specifier; a trailing lone '%' parses as specifier byte 0 and
		// falls into the unknown-specifier diagnostic
		state.Specifier = 0
		if i < len(format) {
			state.Specifier = format[i]
			i++
		}
		if fn := r.lookup(state.Specifier); fn != nil {
			fn(state)
		} else {
			state.Puts("%!(unknown specifier=")
			putQuotedByte(state, state.Specifier)
			state.Putchar(')')
		}
	}
}

func (r *Registry) lookup(c byte) Handler {
	if c >= byte(len(r.table)) {
		return nil
	}
	return r.table[c]
}

// putQuotedByte emits c as a single-quoted, backslash-escaped character
// literal; non-printable bytes render as \xHH.
func putQuotedByte(s *State, c byte) {
	s.Putchar('\'')
	if ' ' <= c && c <= '~' {
		if c == '\'' || c == '\\' {
			s.Putchar('\\')
		}
		s.Putchar(c)
	} else {
		s.Putchar('\\')
		s.Putchar('x')
		s.Putchar(lowerHex[c>>4])
		s.Putchar(lowerHex[c&0xF])
	}
	s.Putchar('\'')
}

const lowerHex = "0123456789abcdef"

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }

// atoi reads a decimal literal from s starting at i and returns the value
// and the position after the last digit.
func atoi(s string, i int) (uint, int) {
	var n uint
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + uint(s[i]-'0')
		i++
	}
	return n, i
}

// Emit drives format against out and returns the number of bytes
// produced. A nil out discards output, making Emit a pure length counter.
func (r *Registry) Emit(out Sink, format string, args ...any) int {
	ctx := &context{out: out, reg: r}
	r.run(ctx, format, &Args{list: args})
	return ctx.n
}

// Fprintf formats to w and returns the number of bytes generated. Write
// errors are ignored; the formatter has no error path and the count
// always reflects generated bytes, not delivered ones.
func (r *Registry) Fprintf(w io.Writer, format string, args ...any) int {
	var one [1]byte
	return r.Emit(func(c byte) {
		one[0] = c
		_, _ = w.Write(one[:])
	}, format, args...)
}

// Sprintf formats to a new string.
func (r *Registry) Sprintf(format string, args ...any) string {
	return string(r.Appendf(nil, format, args...))
}

// Appendf formats and appends to dst, returning the extended slice.
func (r *Registry) Appendf(dst []byte, format string, args ...any) []byte {
	r.Emit(func(c byte) {
		dst = append(dst, c)
	}, format, args...)
	return dst
}

// Snprintf formats into buf, truncating at len(buf)-1 and always
// NUL-terminating within capacity. The return value is the count that
// would have been produced without truncation, so callers can detect a
// short buffer by comparing against len(buf).
func (r *Registry) Snprintf(buf []byte, format string, args ...any) int {
	n := 0
	total := r.Emit(func(c byte) {
		if n < len(buf)-1 {
			buf[n] = c
			n++
		}
	}, format, args...)
	if len(buf) > 0 {
		buf[n] = 0
	}
	return total
}

// Emit formats through the default registry. See [Registry.Emit].
func Emit(out Sink, format string, args ...any) int {
	return defaultRegistry.Emit(out, format, args...)
}

// Fprintf formats through the default registry. See [Registry.Fprintf].
func Fprintf(w io.Writer, format string, args ...any) int {
	return defaultRegistry.Fprintf(w, format, args...)
}

// Sprintf formats through the default registry. See [Registry.Sprintf].
func Sprintf(format string, args ...any) string {
	return defaultRegistry.Sprintf(format, args...)
}

// Appendf formats through the default registry. See [Registry.Appendf].
func Appendf(dst []byte, format string, args ...any) []byte {
	return defaultRegistry.Appendf(dst, format, args...)
}

// Snprintf formats through the default registry. See [Registry.Snprintf].
func Snprintf(buf []byte, format string, args ...any) int {
	return defaultRegistry.Snprintf(buf, format, args...)
}
