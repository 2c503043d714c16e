package fmtx

import "math"

// Built-in specifier handlers. Each consumes exactly the arguments its
// specifier implies and narrows them per the directive's size class
// before handing the magnitude to a converter.

func convSigned(s *State) {
	v := s.Args.Int()
	switch s.Size {
	case SizeChar:
		v = int64(int8(v))
	case SizeShort:
		v = int64(int16(v))
	}
	negative := v < 0
	// two's complement: -MinInt64 wraps to itself, and the uint64
	// conversion still yields the correct magnitude
	mag := uint64(v)
	if negative {
		mag = uint64(-v)
	}
	ntoa(s, mag, negative, 10)
}

func convUnsigned(s *State) {
	var base uint
	switch s.Specifier {
	case 'x', 'X':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	default: // 'u'
		base = 10
		s.Flags &^= FlagPlus | FlagSpace
	}

	v := s.Args.Uint()
	switch s.Size {
	case SizeChar:
		v = uint64(uint8(v))
	case SizeShort:
		v = uint64(uint16(v))
	}
	ntoa(s, v, false, base)
}

func convFloat(s *State) {
	value := s.Args.Float()
	switch s.Specifier {
	case 'f', 'F':
		// Finite values beyond the ceiling would print every whole
		// digit, possibly hundreds of bytes; refuse them with a
		// diagnostic. Infinities pass through to the special tokens.
		if (value > MaxFloat && value < math.MaxFloat64) ||
			(value < -MaxFloat && value > -math.MaxFloat64) {
			s.Puts("%!(exceeded MaxFloat)")
			return
		}
		ftoa(s, value)
	case 'e', 'E':
		etoa(s, value, false)
	case 'g', 'G':
		etoa(s, value, true)
	}
}

func convChar(s *State) {
	l := uint(1)
	if s.Flags&FlagLeft == 0 {
		for ; l < s.Width; l++ {
			s.Putchar(' ')
		}
	}
	s.Putchar(s.Args.Byte())
	if s.Flags&FlagLeft != 0 {
		for ; l < s.Width; l++ {
			s.Putchar(' ')
		}
	}
}

func convString(s *State) {
	str := s.Args.Str()
	n := len(str)
	if s.Flags&FlagPrecision != 0 && int(s.Precision) < n {
		n = int(s.Precision)
	}
	l := uint(n)
	if s.Flags&FlagLeft == 0 {
		for ; l < s.Width; l++ {
			s.Putchar(' ')
		}
	}
	for i := 0; i < n; i++ {
		s.Putchar(str[i])
	}
	if s.Flags&FlagLeft != 0 {
		for ; l < s.Width; l++ {
			s.Putchar(' ')
		}
	}
}

func convPointer(s *State) {
	// pointers render as zero-padded uppercase hex at the full platform
	// width, overriding whatever the directive asked for
	s.Width = ptrBytes * 2
	s.Flags |= FlagZeroPad
	s.Specifier = 'X'
	ntoa(s, uint64(s.Args.Pointer()), false, 16)
}

func convPercent(s *State) {
	s.Putchar('%')
}
