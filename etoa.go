package fmtx

import "math"

// etoa renders value in exponential notation, delegating the mantissa to
// ftoa and the exponent to ntoa through derived child states. In adaptive
// mode (%g/%G) the precision counts significant figures instead of
// fractional digits, and magnitudes inside [1e-4, 1e6) fall back to plain
// fixed-point with no exponent suffix.
func etoa(s *State, value float64, adapt bool) {
	if floatSpecial(s, value) {
		return
	}

	negative := value < 0
	if negative {
		value = -value
	}

	if s.Flags&FlagPrecision == 0 {
		s.Precision = DefaultFloatPrecision
	}

	// Determine the decimal exponent from the IEEE-754 bit pattern,
	// after David Gay's dtoa: estimate log10 from the binary exponent
	// plus an expansion of ln around 1.5, rebuild 10^expval through a
	// continued-fraction exp(z) so large exponents cannot overflow, and
	// correct the estimate by at most one afterward.
	u := math.Float64bits(value)
	var expval int
	var scale float64 // 10^expval
	if u != 0 {
		exp2 := int((u>>52)&0x7FF) - 1023
		mant := math.Float64frombits((u & (1<<52 - 1)) | (1023 << 52)) // in [1,2)
		expval = int(0.1760912590558 + float64(exp2)*0.301029995663981 + (mant-1.5)*0.289529654602168)
		e2 := int(float64(expval)*3.321928094887362 + 0.5)
		z := float64(expval)*2.302585092994046 - float64(e2)*0.6931471805599453
		z2 := z * z
		scale = math.Float64frombits(uint64(e2+1023) << 52)
		scale *= 1 + 2*z/(2-z+(z2/(6+(z2/(10+z2/14)))))
		if value < scale {
			expval--
			scale /= 10
		}
	}

	// the exponent suffix is "%+03d"-shaped: 4 bytes, 5 once |exp| >= 100
	var minwidth uint = 4
	if expval >= 100 || expval <= -100 {
		minwidth = 5
	}

	if adapt {
		if u == 0 || (value >= 1e-4 && value < 1e6) {
			// fall back to %f: reinterpret significant figures as
			// fractional digits and drop the suffix entirely
			if int(s.Precision) > expval {
				s.Precision = uint(int(s.Precision) - expval - 1)
			} else {
				s.Precision = 0
			}
			s.Flags |= FlagPrecision
			minwidth = 0
			expval = 0
		} else if s.Precision > 0 && s.Flags&FlagPrecision != 0 {
			// one significant figure goes to the mantissa's whole part
			s.Precision--
		}
	}

	// width left for the mantissa after reserving the suffix
	fwidth := s.Width
	if fwidth > minwidth {
		fwidth -= minwidth
	} else {
		fwidth = 0
	}
	if s.Flags&FlagLeft != 0 && minwidth != 0 {
		// right padding happens after the suffix, not inside the mantissa
		fwidth = 0
	}

	if expval != 0 {
		value /= scale
	}

	start := s.Len()
	mantissa := deriveState(s, s.Flags, fwidth, s.Precision, 'f')
	if negative {
		value = -value
	}
	ftoa(mantissa, value)

	if minwidth != 0 {
		if isUpper(s.Specifier) {
			s.Putchar('E')
		} else {
			s.Putchar('e')
		}
		exponent := deriveState(s, FlagZeroPad|FlagPlus, minwidth-1, 0, 'd')
		if expval < 0 {
			ntoa(exponent, uint64(-expval), true, 10)
		} else {
			ntoa(exponent, uint64(expval), false, 10)
		}
		if s.Flags&FlagLeft != 0 {
			for uint(s.Len()-start) < s.Width {
				s.Putchar(' ')
			}
		}
	}
}
