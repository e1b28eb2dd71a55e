package analyses

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// normalizeScore coerces the backend's match value into an integer percentage.
// Accepted forms: an integral number, or a string like "87" / "87%". Anything
// else fails with *ScoreError. Out-of-range values are rejected rather than
// clamped: a backend reporting 140% is a backend fault, not a perfect match.
func normalizeScore(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return checkScoreRange(v, value)
	case float64:
		// JSON numbers decode as float64; only whole values qualify.
		if v != math.Trunc(v) {
			return 0, &ScoreError{Raw: value, Reason: "not an integer"}
		}
		return checkScoreRange(int(v), value)
	case string:
		trimmed := strings.TrimSpace(v)
		trimmed = strings.TrimSuffix(trimmed, "%")
		trimmed = strings.TrimSpace(trimmed)
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, &ScoreError{Raw: value, Reason: "not an integer"}
		}
		return checkScoreRange(n, value)
	default:
		return 0, &ScoreError{Raw: value, Reason: fmt.Sprintf("unsupported type %T", value)}
	}
}

func checkScoreRange(n int, raw any) (int, error) {
	if n < 0 || n > 100 {
		return 0, &ScoreError{Raw: raw, Reason: "out of range [0,100]"}
	}
	return n, nil
}
