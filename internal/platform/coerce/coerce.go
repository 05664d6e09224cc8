package coerce

import (
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order. Ambiguous inputs such as "03/04/2020" resolve
// to the first matching layout (day-first), not by calendar plausibility.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
}

// Int accepts numeric or numeric-string input and returns def for nil, empty,
// or unparsable values. Fractional strings are truncated toward zero.
func Int(value any, def int) int {
	return int(Int64(value, int64(def)))
}

func Int64(value any, def int64) int64 {
	parsed, ok := parseInt64(value)
	if !ok {
		return def
	}
	return parsed
}

// IntPtr is Int without a default: nil when the value is missing or
// unparsable.
func IntPtr(value any) *int {
	parsed, ok := parseInt64(value)
	if !ok {
		return nil
	}
	n := int(parsed)
	return &n
}

func parseInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return int64(parsed), true
	default:
		return 0, false
	}
}

func Float(value any, def float64) float64 {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return def
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return def
		}
		return parsed
	default:
		return def
	}
}

// Date tries each known layout in order and reports whether any matched.
func Date(value any) (time.Time, bool) {
	var raw string
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case string:
		raw = v
	case time.Time:
		return v, true
	default:
		return time.Time{}, false
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}
