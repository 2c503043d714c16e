// Command fmtx renders a printf-style format string from the command
// line, using the fmtx formatting engine rather than the C library's
// printf, so output matches embedded firmware byte for byte.
//
// Usage:
//
//	fmtx [flags] FORMAT [ARG...]
//
// Each ARG is typed by inspection: a valid integer literal becomes an
// integer, a valid float literal becomes a float, anything else stays a
// string. A two-byte prefix forces the type: "d:" integer, "u:" unsigned,
// "f:" float, "c:" first byte, "s:" literal string (useful when the
// string itself looks numeric).
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bjaus/fmtx"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) && !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "fmtx: %v\n", err)
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func run(argv []string, stdout, stderr io.Writer) error {
	var (
		countOnly bool
		bufSize   int
		outPath   string
	)

	flags := pflag.NewFlagSet("fmtx", pflag.ContinueOnError)
	flags.BoolVarP(&countOnly, "count-only", "n", false, "Print the output length instead of the output")
	flags.IntVar(&bufSize, "buffer", 0, "Render through a fixed-size buffer, truncating like snprintf")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.SetInterspersed(false)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: fmtx [flags] FORMAT [ARG...]")
		fmt.Fprintln(stderr, "\nArguments are typed by inspection (integer, then float, then string).")
		fmt.Fprintln(stderr, "Prefix an argument with d: u: f: c: or s: to force its type.")
		fmt.Fprintln(stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := flags.Args()
	if len(rest) == 0 {
		flags.Usage()
		return fmt.Errorf("%w: missing FORMAT", errUsage)
	}
	format := rest[0]

	args := make([]any, 0, len(rest)-1)
	for _, raw := range rest[1:] {
		args = append(args, parseArg(raw))
	}

	writer, closeOut, err := resolveOutput(outPath, stdout)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	switch {
	case countOnly:
		fmt.Fprintln(writer, fmtx.Emit(nil, format, args...))
	case bufSize > 0:
		buf := make([]byte, bufSize)
		n := fmtx.Snprintf(buf, format, args...)
		fmt.Fprintln(writer, string(buf[:min(n, bufSize-1)]))
		if n >= bufSize {
			fmt.Fprintf(stderr, "truncated: %d bytes did not fit in %d\n", n, bufSize)
		}
	default:
		fmtx.Fprintf(writer, "%s\n", fmtx.Sprintf(format, args...))
	}
	return nil
}

// parseArg types one command-line argument. An explicit prefix wins;
// otherwise integer parsing is tried first, then float, and the raw
// string is the fallback.
func parseArg(raw string) any {
	if len(raw) >= 2 && raw[1] == ':' && strings.ContainsRune("dufcs", rune(raw[0])) {
		body := raw[2:]
		switch raw[0] {
		case 'd':
			v, err := strconv.ParseInt(body, 0, 64)
			if err == nil {
				return v
			}
		case 'u':
			v, err := strconv.ParseUint(body, 0, 64)
			if err == nil {
				return v
			}
		case 'f':
			v, err := strconv.ParseFloat(body, 64)
			if err == nil {
				return v
			}
		case 'c':
			if len(body) > 0 {
				return body[0]
			}
			return byte(0)
		case 's':
			return body
		}
		// an unparseable forced value degrades to its string form
		return body
	}

	if v, err := strconv.ParseInt(raw, 0, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return raw
}

func resolveOutput(path string, stdout io.Writer) (io.Writer, io.Closer, error) {
	if path == "" || path == "-" {
		return stdout, nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
