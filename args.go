package fmtx

import "reflect"

// Args is a typed, sequentially-consumed cursor over the argument list of
// one formatting call. Each specifier consumes exactly the arguments its
// grammar implies; an unknown specifier consumes none. Reads past the end
// of the list, or reads that cannot convert the next argument to the
// requested shape, yield the zero value rather than failing the call.
type Args struct {
	list []any
	idx  int
}

// Next consumes and returns the next raw argument. It reports false when
// the list is exhausted.
func (a *Args) Next() (any, bool) {
	if a.idx >= len(a.list) {
		return nil, false
	}
	v := a.list[a.idx]
	a.idx++
	return v, true
}

// Remaining reports how many arguments have not been consumed yet.
func (a *Args) Remaining() int {
	return len(a.list) - a.idx
}

// Int consumes the next argument as a signed integer. Unsigned values are
// reinterpreted, matching C varargs behavior.
func (a *Args) Int() int64 {
	v, ok := a.Next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case uintptr:
		return int64(n)
	}
	return 0
}

// Uint consumes the next argument as an unsigned integer. Signed values
// are reinterpreted two's-complement style.
func (a *Args) Uint() uint64 {
	v, ok := a.Next()
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	}
	return 0
}

// Float consumes the next argument as a float64. Integer arguments are
// widened for convenience.
func (a *Args) Float() float64 {
	v, ok := a.Next()
	if !ok {
		return 0
	}
	switch f := v.(type) {
	case float64:
		return f
	case float32:
		return float64(f)
	case int:
		return float64(f)
	case int32:
		return float64(f)
	case int64:
		return float64(f)
	case uint:
		return float64(f)
	case uint64:
		return float64(f)
	}
	return 0
}

// Str consumes the next argument as a string. []byte is accepted without
// copying semantics mattering here, since bytes are read one at a time.
func (a *Args) Str() string {
	v, ok := a.Next()
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	return ""
}

// Byte consumes the next argument as a single byte for %c. Runes and ints
// are truncated; a string contributes its first byte.
func (a *Args) Byte() byte {
	v, ok := a.Next()
	if !ok {
		return 0
	}
	switch c := v.(type) {
	case byte:
		return c
	case rune:
		return byte(c)
	case int:
		return byte(c)
	case string:
		if len(c) > 0 {
			return c[0]
		}
		return 0
	}
	return 0
}

// Pointer consumes the next argument as a pointer value for %p. Any
// pointer-shaped kind is accepted; non-pointers yield 0.
func (a *Args) Pointer() uintptr {
	v, ok := a.Next()
	if !ok || v == nil {
		return 0
	}
	if p, isUintptr := v.(uintptr); isUintptr {
		return p
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return rv.Pointer()
	}
	return 0
}
