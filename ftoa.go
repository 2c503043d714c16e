package fmtx

import "math"

// pow10 is the fixed decimal-power table. Precision is clamped to its
// length before use; see ftoa.
var pow10 = [10]float64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// convBuf is the bounds-checked, fixed-capacity digit accumulator for
// float conversion. Digits are pushed least-significant first and later
// reversed through the sink. It fails closed: once full, push reports
// false and the caller aborts the conversion with a diagnostic instead of
// overrunning.
type convBuf struct {
	b [FTOABufferSize]byte
	n int
}

func (b *convBuf) push(c byte) bool {
	if b.n == len(b.b) {
		return false
	}
	b.b[b.n] = c
	b.n++
	return true
}

func (b *convBuf) bytes() []byte {
	return b.b[:b.n]
}

// outRev emits buf in reverse order, applying width and justification the
// same way the integer converter does: space padding on the left unless
// left-justified or zero-padded, space padding on the right when
// left-justified, measured against the shared counter.
func outRev(s *State, buf []byte) {
	start := s.Len()

	if s.Flags&(FlagLeft|FlagZeroPad) == 0 {
		for i := uint(len(buf)); i < s.Width; i++ {
			s.Putchar(' ')
		}
	}

	for i := len(buf) - 1; i >= 0; i-- {
		s.Putchar(buf[i])
	}

	if s.Flags&FlagLeft != 0 {
		for uint(s.Len()-start) < s.Width {
			s.Putchar(' ')
		}
	}
}

// floatSpecial renders NaN and infinities and reports whether it did.
// The literals are stored reversed because they travel through outRev
// like every other float, so width and justification still apply.
func floatSpecial(s *State, value float64) bool {
	if math.IsNaN(value) {
		outRev(s, []byte("nan"))
		return true
	}
	if value < -math.MaxFloat64 {
		outRev(s, []byte("fni-"))
		return true
	}
	if value > math.MaxFloat64 {
		if s.Flags&FlagPlus != 0 {
			outRev(s, []byte("fni+"))
		} else {
			outRev(s, []byte("fni"))
		}
		return true
	}
	return false
}

func ftoaExceeded(s *State) {
	s.Puts("%!(exceeded FTOABufferSize)")
}

// ftoa renders value as fixed-point decimal into the conversion buffer
// and then out through the sink.
//
// The rounding rule is deliberately non-standard and must not be
// "corrected": exact halfway fractions round up only when the candidate
// last digit is zero or odd, and at precision 0 the integer part rounds
// up on a halfway tie only when it is odd (1.5 -> 2, but 2.5 -> 2).
// Downstream callers depend on byte-identical output.
func ftoa(s *State, value float64) {
	var buf convBuf

	if floatSpecial(s, value) {
		return
	}

	negative := false
	if value < 0 {
		negative = true
		value = -value
	}

	if s.Flags&FlagPrecision == 0 {
		s.Precision = DefaultFloatPrecision
	}
	// keep precision inside the pow10 table by emitting literal zeros
	for s.Precision >= uint(len(pow10)) {
		if !buf.push('0') {
			ftoaExceeded(s)
			return
		}
		s.Precision--
	}

	whole := int64(value)
	tmp := (value - float64(whole)) * pow10[s.Precision]
	frac := uint64(tmp)
	diff := tmp - float64(frac)

	if diff > 0.5 {
		frac++
		// rollover: 0.99 at precision 1 becomes 1.0
		if float64(frac) >= pow10[s.Precision] {
			frac = 0
			whole++
		}
	} else if diff < 0.5 {
		// round down
	} else if frac == 0 || frac&1 == 1 {
		// exactly halfway: round up if the last digit is zero or odd
		frac++
	}

	if s.Precision == 0 {
		diff = value - float64(whole)
		if !(diff < 0.5 || diff > 0.5) && whole&1 == 1 {
			// exactly 0.5 with an odd integer part rounds up
			whole++
		}
	} else {
		count := s.Precision
		// fractional digits, least significant first
		for {
			count--
			if !buf.push(byte('0' + frac%10)) {
				ftoaExceeded(s)
				return
			}
			frac /= 10
			if frac == 0 {
				break
			}
		}
		// zeros between the fraction and the decimal point
		for ; count > 0; count-- {
			if !buf.push('0') {
				ftoaExceeded(s)
				return
			}
		}
		if !buf.push('.') {
			ftoaExceeded(s)
			return
		}
	}

	// whole part, still reversed
	for {
		if !buf.push(byte('0' + whole%10)) {
			ftoaExceeded(s)
			return
		}
		whole /= 10
		if whole == 0 {
			break
		}
	}

	// leading zeros; a sign character eats one column of the width
	if s.Flags&FlagLeft == 0 && s.Flags&FlagZeroPad != 0 {
		if s.Width != 0 && (negative || s.Flags&(FlagPlus|FlagSpace) != 0) {
			s.Width--
		}
		for uint(buf.n) < s.Width {
			if !buf.push('0') {
				ftoaExceeded(s)
				return
			}
		}
	}

	if negative {
		if !buf.push('-') {
			ftoaExceeded(s)
			return
		}
	} else if s.Flags&FlagPlus != 0 {
		if !buf.push('+') {
			ftoaExceeded(s)
			return
		}
	} else if s.Flags&FlagSpace != 0 {
		if !buf.push(' ') {
			ftoaExceeded(s)
			return
		}
	}

	outRev(s, buf.bytes())
}
