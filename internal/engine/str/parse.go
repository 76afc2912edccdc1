package str

import (
	"errors"
	"math"
)

// Errors returned by ParseInt. These are the only recoverable errors in the
// engine; everything else treats bad input as a caller bug.
var (
	// ErrNotANumber means no digits could be parsed at all.
	ErrNotANumber = errors.New("not a valid number")

	// ErrTrailing means a number was parsed but bytes remain after it.
	ErrTrailing = errors.New("extra characters at end of input")

	// ErrRange means the digits overflow the 64-bit parse accumulator.
	ErrRange = errors.New("out of range of int64")

	// ErrTooLarge means the value parsed but exceeds math.MaxInt32.
	ErrTooLarge = errors.New("greater than max int32")

	// ErrTooSmall means the value parsed but is below math.MinInt32.
	ErrTooSmall = errors.New("less than min int32")
)

// ParseInt parses s as an integer with strtol base-0 semantics: optional
// leading ASCII whitespace, an optional sign, then hex for an 0x/0X prefix,
// octal for a leading 0, and decimal otherwise. The whole view must be
// consumed; trailing bytes are reported as ErrTrailing. Values are parsed
// through a 64-bit accumulator and then range-checked against int32,
// distinguishing garbage input from valid-but-overflowing numbers.
func ParseInt(s Str) (int32, error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i < len(s) && s[i] == '0' {
		// An 0x prefix only selects hex when a hex digit follows;
		// otherwise the 0 itself parses and the x is trailing input.
		if i+2 < len(s) && (s[i+1]|0x20) == 'x' && hexVal(s[i+2]) >= 0 {
			base = 16
			i += 2
		} else {
			base = 8
		}
	}

	var val uint64
	digits := 0
	overflow := false
	for i < len(s) {
		d := digitVal(s[i], base)
		if d < 0 {
			break
		}
		digits++
		if val > (math.MaxUint64-uint64(d))/base {
			overflow = true
		} else {
			val = val*base + uint64(d)
		}
		i++
	}

	if digits == 0 {
		return 0, ErrNotANumber
	}
	if i != len(s) {
		return 0, ErrTrailing
	}

	// Clamp semantics: the 64-bit parse saturates before the int32 check,
	// so a 40-digit number is a range error, not a too-large one.
	limit := uint64(math.MaxInt64)
	if neg {
		limit = uint64(math.MaxInt64) + 1
	}
	if overflow || val > limit {
		return 0, ErrRange
	}

	v := int64(val)
	if neg && val < uint64(math.MaxInt64)+1 {
		v = -v
	}
	if v > math.MaxInt32 {
		return 0, ErrTooLarge
	}
	if v < math.MinInt32 {
		return 0, ErrTooSmall
	}
	return int32(v), nil
}

func digitVal(c byte, base uint64) int {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return -1
	}
	if uint64(d) >= base {
		return -1
	}
	return d
}

func hexVal(c byte) int {
	return digitVal(c, 16)
}
