package attendance

import (
	"log/slog"
	"time"

	"github.com/tanishqsindhu/attendance-system-sub000/internal/domain/attendance"
	"github.com/tanishqsindhu/attendance-system-sub000/internal/pkg/timeparse"
)

// PunchBounds is the per-day aggregate derived from a day's punch events.
type PunchBounds struct {
	FirstIn      *time.Time
	LastOut      *time.Time
	TotalMinutes int
	WorkingHours string
}

// FirstInLastOut derives the day's attendance bounds from its complete punch
// set: the earliest DutyOn instant and the latest DutyOff instant. Extremes
// are taken over resolved instants, not log order, so duplicate and
// out-of-order punches from faulty devices are tolerated. Malformed punch
// times are skipped with a warning.
func FirstInLastOut(logs []attendance.PunchLog, date time.Time, logger *slog.Logger) PunchBounds {
	var firstIn, lastOut *time.Time

	for _, log := range logs {
		instant, ok := log.DateTime.Resolve(date)
		if !ok {
			logger.Warn("skipping punch with unparseable time",
				"date", timeparse.DateKey(date),
				"raw", log.DateTime.String(),
				"inOut", log.InOut,
			)
			continue
		}
		switch log.InOut {
		case attendance.PunchDutyOn:
			if firstIn == nil || instant.Before(*firstIn) {
				t := instant
				firstIn = &t
			}
		case attendance.PunchDutyOff:
			if lastOut == nil || instant.After(*lastOut) {
				t := instant
				lastOut = &t
			}
		default:
			logger.Warn("skipping punch with unknown direction",
				"date", timeparse.DateKey(date),
				"inOut", log.InOut,
			)
		}
	}

	bounds := PunchBounds{FirstIn: firstIn, LastOut: lastOut}
	if firstIn != nil && lastOut != nil {
		if mins := timeparse.MinutesBetween(*firstIn, *lastOut); mins > 0 {
			bounds.TotalMinutes = mins
		}
	}
	bounds.WorkingHours = timeparse.FormatHoursMinutes(bounds.TotalMinutes)
	return bounds
}

// GroupPunchesByDate splits a flat punch list into per-date buckets keyed
// "YYYY-MM-DD". Clock-only punches carry no date of their own and cannot be
// grouped; they are skipped here and only usable through the single-date
// entry point, where the date is supplied by the caller.
func GroupPunchesByDate(logs []attendance.PunchLog, logger *slog.Logger) map[string][]attendance.PunchLog {
	grouped := make(map[string][]attendance.PunchLog)
	for _, log := range logs {
		if log.DateTime.ClockOnly() {
			logger.Warn("skipping clock-only punch in batch grouping", "raw", log.DateTime.String())
			continue
		}
		instant, ok := log.DateTime.Resolve(time.Time{})
		if !ok {
			logger.Warn("skipping punch with unparseable time", "raw", log.DateTime.String())
			continue
		}
		key := timeparse.DateKey(instant)
		grouped[key] = append(grouped[key], log)
	}
	return grouped
}
