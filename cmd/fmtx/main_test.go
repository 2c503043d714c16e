package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArg(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		raw  string
		want any
	}{
		"integer":               {raw: "42", want: int64(42)},
		"negative integer":      {raw: "-7", want: int64(-7)},
		"hex integer":           {raw: "0xff", want: int64(255)},
		"float":                 {raw: "3.14", want: 3.14},
		"scientific float":      {raw: "1e3", want: 1000.0},
		"plain string":          {raw: "hello", want: "hello"},
		"forced string":         {raw: "s:42", want: "42"},
		"forced int":            {raw: "d:-5", want: int64(-5)},
		"forced unsigned":       {raw: "u:18446744073709551615", want: uint64(1<<64 - 1)},
		"forced float":          {raw: "f:2", want: 2.0},
		"forced char":           {raw: "c:A", want: byte('A')},
		"forced empty char":     {raw: "c:", want: byte(0)},
		"unparseable forced":    {raw: "d:abc", want: "abc"},
		"unknown prefix is raw": {raw: "q:zzz", want: "q:zzz"},
		"colon alone is raw":    {raw: ":", want: ":"},
		"empty":                 {raw: "", want: ""},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseArg(tt.raw))
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("formats positional arguments", func(t *testing.T) {
		t.Parallel()
		var out, errb bytes.Buffer
		err := run([]string{"%s has %d items", "ada", "3"}, &out, &errb)
		require.NoError(t, err)
		assert.Equal(t, "ada has 3 items\n", out.String())
		assert.Empty(t, errb.String())
	})

	t.Run("count only", func(t *testing.T) {
		t.Parallel()
		var out, errb bytes.Buffer
		err := run([]string{"-n", "%05d", "42"}, &out, &errb)
		require.NoError(t, err)
		assert.Equal(t, "5\n", out.String())
	})

	t.Run("buffer truncates", func(t *testing.T) {
		t.Parallel()
		var out, errb bytes.Buffer
		err := run([]string{"--buffer", "6", "%s", "hello world"}, &out, &errb)
		require.NoError(t, err)
		assert.Equal(t, "hello\n", out.String())
		assert.Contains(t, errb.String(), "truncated: 11 bytes")
	})

	t.Run("forced string argument", func(t *testing.T) {
		t.Parallel()
		var out, errb bytes.Buffer
		err := run([]string{"%s", "s:42"}, &out, &errb)
		require.NoError(t, err)
		assert.Equal(t, "42\n", out.String())
	})

	t.Run("missing format is usage error", func(t *testing.T) {
		t.Parallel()
		var out, errb bytes.Buffer
		err := run(nil, &out, &errb)
		require.ErrorIs(t, err, errUsage)
		assert.Contains(t, errb.String(), "Usage: fmtx")
	})

	t.Run("output file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		var out, errb bytes.Buffer
		err := run([]string{"-o", path, "%x", "255"}, &out, &errb)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "ff\n", string(data))
		assert.Empty(t, out.String())
	})
}

func TestResolveOutput(t *testing.T) {
	t.Parallel()

	t.Run("empty path is the provided writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w, closer, err := resolveOutput("", &buf)
		require.NoError(t, err)
		assert.Equal(t, &buf, w)
		assert.Nil(t, closer)
	})

	t.Run("dash is the provided writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w, closer, err := resolveOutput("-", &buf)
		require.NoError(t, err)
		assert.Equal(t, &buf, w)
		assert.Nil(t, closer)
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "out.txt")
		w, closer, err := resolveOutput(path, nil)
		require.NoError(t, err)
		require.NotNil(t, closer)
		_, err = w.Write([]byte("x"))
		assert.NoError(t, err)
		require.NoError(t, closer.Close())
	})
}
