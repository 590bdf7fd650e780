package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// coerceInt converts a raw field value to an int, falling back to 0 for
// anything it cannot read.
func coerceInt(v any) int {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return clampUint(uint64(x))
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return clampUint(x)
	case float32:
		return truncFloat(float64(x))
	case float64:
		return truncFloat(x)
	case json.Number:
		return leadingInt(string(x))
	case string:
		return leadingInt(x)
	case []byte:
		return leadingInt(string(x))
	default:
		return 0
	}
}

// coerceString returns strings verbatim and formats anything else.
func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}

// leadingInt parses the optional sign and the run of digits at the start of
// s, after surrounding whitespace. No digits means 0. Values that overflow
// saturate at the int bounds.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int(c - '0')
		if n > (math.MaxInt-d)/10 {
			if neg {
				return math.MinInt
			}
			return math.MaxInt
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

// truncFloat drops the fraction. NaN is 0; values beyond the int range,
// infinities included, saturate the same way leadingInt does.
func truncFloat(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	if f >= math.MaxInt {
		return math.MaxInt
	}
	if f <= math.MinInt {
		return math.MinInt
	}
	return int(f)
}

func clampUint(u uint64) int {
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}
