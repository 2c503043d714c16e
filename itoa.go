package fmtx

// ntoa renders an unsigned magnitude in the given base (2, 8, 10, or 16),
// honoring the directive's sign, prefix, padding, and precision rules.
// The digit count is computed up front by repeated division so the entire
// left padding can be emitted before the first digit, in a single pass.
// Hex digit case follows the specifier ('X' upper, anything else lower).
func ntoa(s *State, absval uint64, negative bool, base uint) {
	start := s.Len()

	var ndigits uint
	var div uint64
	if absval != 0 {
		ndigits = 1
		div = 1
		for absval/div >= uint64(base) {
			div *= uint64(base)
			ndigits++
		}
	}

	sign := 0
	if absval != 0 {
		if negative {
			sign = -1
		} else {
			sign = 1
		}
	}
	ntoaIntro(s, base, ndigits, sign)

	// digits, most significant first
	for i := uint(0); i < ndigits; i++ {
		digit := byte(absval / div)
		absval %= div
		div /= uint64(base)
		var c byte
		switch {
		case digit < 10:
			c = '0' + digit
		case isUpper(s.Specifier):
			c = 'A' + digit - 10
		default:
			c = 'a' + digit - 10
		}
		s.Putchar(c)
	}

	ntoaOutro(s, start)
}

// ntoaIntro emits everything that precedes the digits: leading spaces up
// to width, the sign or base prefix, and leading zeros for precision or
// zero-padding. sign is -1/0/+1 for negative/zero/positive magnitude; base
// prefixes are suppressed for zero values.
func ntoaIntro(s *State, base uint, ndigits uint, sign int) {
	var nextra uint
	switch base {
	case 2:
		if s.Flags&FlagHash != 0 && sign != 0 {
			nextra = 2 // "0b"
		}
	case 8:
		if s.Flags&FlagHash != 0 && sign != 0 {
			nextra = 1 // "0"
		}
	case 10:
		if s.Flags&(FlagPlus|FlagSpace) != 0 {
			nextra = 1 // "+" or " "
		} else if sign < 0 {
			nextra = 1 // "-"
		}
	case 16:
		if s.Flags&FlagHash != 0 && sign != 0 {
			nextra = 2 // "0x"
		}
	}

	if s.Flags&FlagPrecision != 0 {
		// a given precision suppresses the '0' flag
		s.Flags &^= FlagZeroPad
	}

	// leading spaces
	if s.Width != 0 && s.Flags&(FlagLeft|FlagZeroPad) == 0 {
		for i := max(s.Precision, ndigits) + nextra; i < s.Width; i++ {
			s.Putchar(' ')
		}
	}

	// sign or base prefix
	switch base {
	case 2:
		if s.Flags&FlagHash != 0 && sign != 0 {
			s.Putchar('0')
			s.Putchar('b')
		}
	case 8:
		if s.Flags&FlagHash != 0 && sign != 0 {
			s.Putchar('0')
		}
	case 10:
		if sign < 0 {
			s.Putchar('-')
		} else if s.Flags&FlagPlus != 0 {
			s.Putchar('+')
		} else if s.Flags&FlagSpace != 0 {
			s.Putchar(' ')
		}
	case 16:
		if s.Flags&FlagHash != 0 && sign != 0 {
			s.Putchar('0')
			s.Putchar(s.Specifier) // 'x' or 'X'
		}
	}

	// leading zeros
	if s.Flags&FlagPrecision != 0 {
		for i := ndigits; i < s.Precision; i++ {
			s.Putchar('0')
		}
	} else if s.Width != 0 && s.Flags&FlagLeft == 0 && s.Flags&FlagZeroPad != 0 {
		for i := ndigits + nextra; i < s.Width; i++ {
			s.Putchar('0')
		}
	} else if sign == 0 {
		// zero still gets one digit, unless a precision said otherwise
		s.Putchar('0')
	}
}

// ntoaOutro right-pads with spaces up to width when left-justified (the
// loop is a no-op otherwise, since the field is already at least width
// bytes wide).
func ntoaOutro(s *State, start int) {
	for l := uint(s.Len() - start); l < s.Width; l++ {
		s.Putchar(' ')
	}
}
