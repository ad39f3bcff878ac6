package sanitizer

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotInteger is returned when a value cannot be interpreted as an integer.
var ErrNotInteger = errors.New("value is not an integer")

// ToInt interprets v as an integer. Signed and unsigned integers convert
// directly, finite floats are truncated toward zero and strings are parsed
// after trimming (0x, 0o and 0b prefixes and underscores are accepted).
// Anything else, including nil, NaN and non-numeric strings, fails with an
// error wrapping ErrNotInteger.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d overflows int", ErrNotInteger, n)
		}
		return int(n), nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case string:
		return parseInt(n)
	case fmt.Stringer:
		return parseInt(n.String())
	case nil:
		return 0, fmt.Errorf("%w: nil", ErrNotInteger)
	default:
		return 0, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, v)
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}
	if f > math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("%w: %v overflows int", ErrNotInteger, f)
	}
	return int(f), nil
}

func parseInt(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	n, err := strconv.ParseInt(trimmed, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}
	return int(n), nil
}
