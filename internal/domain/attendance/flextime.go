package attendance

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

// FlexTime is a punch timestamp in any of the shapes the upstream importers
// produce: a Firestore-style {"seconds": N} object, a raw epoch number, an
// absolute date-time string, or a bare wall-clock string ("14:30",
// "02:30 PM") that only becomes an instant once anchored to a processing
// date.
//
// Unmarshalling never fails: unrecognized shapes are flagged invalid and
// skipped downstream with a warning, per the parse-error policy. The original
// JSON is retained so stored logs round-trip byte for byte.
type FlexTime struct {
	raw       json.RawMessage
	abs       time.Time
	clockH    int
	clockM    int
	clockS    int
	clockOnly bool
	valid     bool
}

// NewFlexTime wraps an absolute instant, as when punch rows come from the
// database rather than an import payload.
func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{abs: t.UTC(), valid: true}
}

// ParseFlexTime parses a textual punch time.
func ParseFlexTime(s string) FlexTime {
	var ft FlexTime
	ft.raw, _ = json.Marshal(s)
	ft.fromString(s)
	return ft
}

func (ft *FlexTime) fromString(s string) {
	if t, ok := timeparse.ParseAbsolute(s); ok {
		ft.abs = t
		ft.valid = true
		return
	}
	if h, m, sec, ok := timeparse.ParseWallClock(s); ok {
		ft.clockH, ft.clockM, ft.clockS = h, m, sec
		ft.clockOnly = true
		ft.valid = true
	}
}

func (ft *FlexTime) UnmarshalJSON(b []byte) error {
	ft.raw = append(json.RawMessage(nil), b...)
	ft.valid = false
	ft.clockOnly = false

	trimmed := strings.TrimSpace(string(b))
	switch {
	case strings.HasPrefix(trimmed, "{"):
		var obj struct {
			Seconds  *int64 `json:"seconds"`
			USeconds *int64 `json:"_seconds"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil
		}
		secs := obj.Seconds
		if secs == nil {
			secs = obj.USeconds
		}
		if secs != nil {
			ft.abs = time.Unix(*secs, 0).UTC()
			ft.valid = true
		}
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		ft.fromString(s)
	default:
		if secs, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			ft.abs = time.Unix(secs, 0).UTC()
			ft.valid = true
		}
	}
	return nil
}

func (ft FlexTime) MarshalJSON() ([]byte, error) {
	if len(ft.raw) > 0 {
		return ft.raw, nil
	}
	if !ft.valid {
		return []byte("null"), nil
	}
	if ft.clockOnly {
		return json.Marshal(time.Date(0, 1, 1, ft.clockH, ft.clockM, ft.clockS, 0, time.UTC).Format("15:04:05"))
	}
	return json.Marshal(ft.abs.Format(time.RFC3339))
}

// Valid reports whether the punch time could be parsed at all.
func (ft FlexTime) Valid() bool { return ft.valid }

// Resolve turns the punch time into an absolute instant for the given
// processing date. Clock-only values are anchored to that date; absolute
// values are shifted into its location.
func (ft FlexTime) Resolve(date time.Time) (time.Time, bool) {
	if !ft.valid {
		return time.Time{}, false
	}
	if ft.clockOnly {
		return timeparse.At(date, ft.clockH, ft.clockM, ft.clockS), true
	}
	return ft.abs.In(date.Location()), true
}

// ClockOnly reports whether the value carries only a wall-clock time and
// therefore cannot be grouped by date on its own.
func (ft FlexTime) ClockOnly() bool { return ft.valid && ft.clockOnly }

func (ft FlexTime) String() string {
	if !ft.valid {
		return strings.TrimSpace(string(ft.raw))
	}
	if ft.clockOnly {
		return time.Date(0, 1, 1, ft.clockH, ft.clockM, ft.clockS, 0, time.UTC).Format("15:04:05")
	}
	return ft.abs.Format(time.RFC3339)
}
