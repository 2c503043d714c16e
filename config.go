package fmtx

// Build-time tuning knobs. These correspond to the compile-time options of
// the C formatter this package is compatible with; they are constants so
// the compiler can fold the branches they gate.
const (
	// FTOABufferSize is the capacity of the fixed conversion buffer used
	// by fixed-point float rendering. It must be large enough to hold one
	// converted number including padded zeros. A conversion that would
	// not fit emits the %!(exceeded FTOABufferSize) diagnostic instead.
	FTOABufferSize = 32

	// DefaultFloatPrecision is the number of fractional digits used by
	// the float specifiers when the directive gives no precision.
	DefaultFloatPrecision = 6

	// MaxFloat is the largest magnitude %f and %F will render. Standard
	// printf prints every whole-number digit, which for a huge value is
	// hundreds of characters; values beyond this ceiling emit the
	// %!(exceeded MaxFloat) diagnostic instead.
	MaxFloat = 1e9

	// supportFloat and supportExponential gate the registration of the
	// float specifier families. Disabling them turns %f/%e/%g into
	// unknown specifiers and lets the linker drop the converters.
	supportFloat       = true
	supportExponential = true

	// supportLongLong gates the "ll" size class; when disabled it
	// degrades to "l".
	supportLongLong = true
)

// Platform width constants, used to resolve the j/t/z size modifiers and
// the %p field width the same way the C sizeof checks do.
const (
	wordBits = 32 << (^uint(0) >> 63)      // native int width
	ptrBits  = 32 << (^uintptr(0) >> 63)   // pointer width
	ptrBytes = ptrBits / 8
)
