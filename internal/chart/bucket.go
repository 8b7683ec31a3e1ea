// Package chart contains the pure computation behind the weekly sleep
// chart: day bucketing, weekly aggregation, and layout geometry. Nothing
// in this package performs I/O or reads clocks; callers pass immutable
// snapshots and get values back.
package chart

import (
	"sort"
	"time"

	"github.com/stagewatch/sleepchart/internal/domain"
)

// DayFunc truncates an instant to the start of the calendar day containing
// it. The calendar and timezone live entirely inside the function, so
// tests and callers fix them explicitly instead of depending on process
// locale.
type DayFunc func(time.Time) time.Time

// StartOfDayIn returns a DayFunc for midnight in the given location.
func StartOfDayIn(loc *time.Location) DayFunc {
	return func(t time.Time) time.Time {
		local := t.In(loc)
		return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	}
}

// GroupByDay buckets samples into one DailySleepData per calendar day,
// deriving the range from the samples themselves: the day of the earliest
// start through the day of the latest end. Returns nil when there are no
// samples.
func GroupByDay(samples []domain.SleepSample, day DayFunc) []domain.DailySleepData {
	if len(samples) == 0 {
		return nil
	}

	minStart := samples[0].StartAt
	maxEnd := samples[0].EndAt
	for _, s := range samples[1:] {
		if s.StartAt.Before(minStart) {
			minStart = s.StartAt
		}
		if s.EndAt.After(maxEnd) {
			maxEnd = s.EndAt
		}
	}

	return GroupByDayRange(samples, minStart, maxEnd, day)
}

// GroupByDayRange buckets samples into one DailySleepData per calendar day
// of the inclusive range [start, end]. Every day of the range appears in
// chronological order; days without samples carry an empty sample list.
//
// A sample belongs to the day containing its start. Samples that cross
// midnight are not split; the whole sample stays on its start day.
// Samples whose start day falls outside the range are dropped.
//
// An inverted range (end before start) yields an empty result.
func GroupByDayRange(samples []domain.SleepSample, start, end time.Time, day DayFunc) []domain.DailySleepData {
	first := day(start)
	last := day(end)
	if last.Before(first) {
		return nil
	}

	// Group by local date string, the same way the rest of the codebase
	// keys per-day aggregates.
	byDay := make(map[string][]domain.SleepSample)
	for _, s := range samples {
		key := day(s.StartAt).Format("2006-01-02")
		byDay[key] = append(byDay[key], s)
	}

	var days []domain.DailySleepData
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		daySamples := byDay[d.Format("2006-01-02")]
		sort.Slice(daySamples, func(i, j int) bool {
			return daySamples[i].StartAt.Before(daySamples[j].StartAt)
		})
		days = append(days, domain.DailySleepData{Date: d, Samples: daySamples})
	}
	return days
}
