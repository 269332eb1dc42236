package schedule

// ShiftWindow is an effective start/end pair in 24-hour "HH:MM" form. A window
// whose end sorts before its start describes a night shift that crosses
// midnight.
type ShiftWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FlexibleTime configures the grace period applied after shift start before an
// arrival counts as late.
type FlexibleTime struct {
	Enabled      bool `json:"enabled"`
	GraceMinutes int  `json:"graceMinutes"`
}

// ShiftSchedule is one named shift definition from the organization settings
// document. Overrides are layered: a date override beats a weekday override,
// which beats the default window. Each level supplies both bounds; there is no
// partial merge across levels.
type ShiftSchedule struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	DefaultTimes *ShiftWindow           `json:"defaultTimes,omitempty"`
	FlexibleTime FlexibleTime           `json:"flexibleTime"`
	Days         []string               `json:"days"`
	DayOverrides map[string]ShiftWindow `json:"dayOverrides,omitempty"`
	// DateOverrides is keyed by "YYYY-MM-DD".
	DateOverrides map[string]ShiftWindow `json:"dateOverrides,omitempty"`

	// Legacy flat fields from older settings documents that predate
	// DefaultTimes. Read-only fallback.
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// HasDay reports whether the named weekday is a working day of this shift.
func (s ShiftSchedule) HasDay(weekday string) bool {
	for _, d := range s.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// ByID indexes schedules by their ID.
func ByID(schedules []ShiftSchedule) map[string]ShiftSchedule {
	m := make(map[string]ShiftSchedule, len(schedules))
	for _, s := range schedules {
		m[s.ID] = s
	}
	return m
}
