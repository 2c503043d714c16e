package fmtx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(buf *[]byte) *State {
	ctx := &context{
		out: func(c byte) { *buf = append(*buf, c) },
		reg: defaultRegistry,
	}
	return &State{Size: SizeDefault, Args: &Args{}, ctx: ctx}
}

func TestPutQuotedByte(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		c    byte
		want string
	}{
		"printable":   {c: 'y', want: "'y'"},
		"space":       {c: ' ', want: "' '"},
		"tilde":       {c: '~', want: "'~'"},
		"quote":       {c: '\'', want: `'\''`},
		"backslash":   {c: '\\', want: `'\\'`},
		"nul":         {c: 0x00, want: `'\x00'`},
		"control":     {c: 0x1F, want: `'\x1f'`},
		"del":         {c: 0x7F, want: `'\x7f'`},
		"high byte":   {c: 0xAB, want: `'\xab'`},
		"all ones":    {c: 0xFF, want: `'\xff'`},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf []byte
			putQuotedByte(newTestState(&buf), tt.c)
			assert.Equal(t, tt.want, string(buf))
		})
	}
}

func TestDeriveState(t *testing.T) {
	t.Parallel()
	var buf []byte
	parent := newTestState(&buf)
	parent.Flags = FlagLeft
	parent.Width = 9
	parent.Precision = 3
	parent.Specifier = 'g'

	child := deriveState(parent, FlagZeroPad|FlagPlus, 4, 0, 'd')

	assert.Equal(t, FlagZeroPad|FlagPlus, child.Flags)
	assert.Equal(t, uint(4), child.Width)
	assert.Equal(t, uint(0), child.Precision)
	assert.Equal(t, byte('d'), child.Specifier)
	assert.Same(t, parent.ctx, child.ctx)
	assert.Same(t, parent.Args, child.Args)

	// the parent keeps its own parse results
	assert.Equal(t, FlagLeft, parent.Flags)
	assert.Equal(t, uint(9), parent.Width)
	assert.Equal(t, uint(3), parent.Precision)
	assert.Equal(t, byte('g'), parent.Specifier)
}

func TestConvBufFailsClosed(t *testing.T) {
	t.Parallel()
	var buf convBuf
	for i := 0; i < FTOABufferSize; i++ {
		require.True(t, buf.push('x'))
	}
	assert.False(t, buf.push('x'), "a full buffer must refuse further bytes")
	assert.Len(t, buf.bytes(), FTOABufferSize)
}

func TestAtoi(t *testing.T) {
	t.Parallel()

	n, i := atoi("123abc", 0)
	assert.Equal(t, uint(123), n)
	assert.Equal(t, 3, i)

	n, i = atoi("%42d", 1)
	assert.Equal(t, uint(42), n)
	assert.Equal(t, 3, i)

	n, i = atoi("abc", 0)
	assert.Equal(t, uint(0), n)
	assert.Equal(t, 0, i)
}

func TestArgsCursor(t *testing.T) {
	t.Parallel()

	t.Run("sequential consumption", func(t *testing.T) {
		t.Parallel()
		a := &Args{list: []any{1, "two", 3.0}}
		assert.Equal(t, 3, a.Remaining())

		v, ok := a.Next()
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, "two", a.Str())
		assert.Equal(t, 3.0, a.Float())
		assert.Equal(t, 0, a.Remaining())

		_, ok = a.Next()
		assert.False(t, ok)
	})

	t.Run("exhausted reads yield zero values", func(t *testing.T) {
		t.Parallel()
		a := &Args{}
		assert.Equal(t, int64(0), a.Int())
		assert.Equal(t, uint64(0), a.Uint())
		assert.Equal(t, 0.0, a.Float())
		assert.Equal(t, "", a.Str())
		assert.Equal(t, byte(0), a.Byte())
		assert.Equal(t, uintptr(0), a.Pointer())
	})

	t.Run("integer reinterpretation", func(t *testing.T) {
		t.Parallel()
		a := &Args{list: []any{uint64(1<<64 - 1), int64(-1)}}
		assert.Equal(t, int64(-1), a.Int(), "unsigned max reads as -1 signed")
		assert.Equal(t, uint64(1<<64-1), a.Uint(), "-1 reads as unsigned max")
	})

	t.Run("byte sources", func(t *testing.T) {
		t.Parallel()
		a := &Args{list: []any{byte('A'), 'B', int('C'), "Dog", ""}}
		assert.Equal(t, byte('A'), a.Byte())
		assert.Equal(t, byte('B'), a.Byte())
		assert.Equal(t, byte('C'), a.Byte())
		assert.Equal(t, byte('D'), a.Byte())
		assert.Equal(t, byte(0), a.Byte())
	})

	t.Run("pointer kinds", func(t *testing.T) {
		t.Parallel()
		v := 7
		ch := make(chan int)
		m := map[string]int{}
		a := &Args{list: []any{&v, ch, m, uintptr(0xBEEF), nil, "nope"}}
		assert.NotZero(t, a.Pointer())
		assert.NotZero(t, a.Pointer())
		assert.NotZero(t, a.Pointer())
		assert.Equal(t, uintptr(0xBEEF), a.Pointer())
		assert.Zero(t, a.Pointer())
		assert.Zero(t, a.Pointer())
	})
}

func TestRegistryLookupBounds(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	assert.Nil(t, r.lookup(0x80), "non-ASCII bytes never resolve")
	assert.Nil(t, r.lookup(0xFF))
	assert.NotNil(t, r.lookup('d'))
}
