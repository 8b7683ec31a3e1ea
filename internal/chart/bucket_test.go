package chart

import (
	"testing"
	"time"
	_ "time/tzdata" // Embed timezone database for CI/minimal containers

	"github.com/stagewatch/sleepchart/internal/domain"
)

func mkSample(stage domain.SleepStage, start, end time.Time) domain.SleepSample {
	return domain.SleepSample{Stage: stage, StartAt: start, EndAt: end}
}

func TestGroupByDayRange_OneEntryPerDay(t *testing.T) {
	day := StartOfDayIn(time.UTC)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDays int
	}{
		{
			name:     "single day",
			start:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC),
			wantDays: 1,
		},
		{
			name:     "full week",
			start:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC),
			wantDays: 7,
		},
		{
			name:     "endpoints mid-day still inclusive",
			start:    time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC),
			end:      time.Date(2024, 1, 17, 0, 1, 0, 0, time.UTC),
			wantDays: 3,
		},
		{
			name:     "month boundary",
			start:    time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
			wantDays: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := GroupByDayRange(nil, tt.start, tt.end, day)
			if len(days) != tt.wantDays {
				t.Fatalf("got %d days, want %d", len(days), tt.wantDays)
			}

			// Ascending, unique dates, one calendar day apart.
			for i := 1; i < len(days); i++ {
				diff := days[i].Date.Sub(days[i-1].Date)
				if diff != 24*time.Hour {
					t.Errorf("days[%d]-days[%d] = %v, want 24h", i, i-1, diff)
				}
			}
			// Empty range days carry empty sample lists, not nulls to choke on.
			for i, d := range days {
				if len(d.Samples) != 0 {
					t.Errorf("days[%d] has %d samples, want 0", i, len(d.Samples))
				}
			}
		})
	}
}

func TestGroupByDayRange_InvertedRangeIsEmpty(t *testing.T) {
	day := StartOfDayIn(time.UTC)
	start := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	if days := GroupByDayRange(nil, start, end, day); len(days) != 0 {
		t.Errorf("inverted range produced %d days, want 0", len(days))
	}
}

func TestGroupByDayRange_CrossMidnightStaysOnStartDay(t *testing.T) {
	day := StartOfDayIn(time.UTC)

	// 23:50 on the 15th through 00:10 on the 16th: the sample belongs
	// wholly to the 15th and is never split.
	s := mkSample(domain.StageAsleepCore,
		time.Date(2024, 1, 15, 23, 50, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 10, 0, 0, time.UTC),
	)

	days := GroupByDayRange([]domain.SleepSample{s},
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		day,
	)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if len(days[0].Samples) != 1 {
		t.Errorf("start day has %d samples, want 1", len(days[0].Samples))
	}
	if len(days[1].Samples) != 0 {
		t.Errorf("next day has %d samples, want 0", len(days[1].Samples))
	}
	if got := days[0].Samples[0].Duration(); got != 20*time.Minute {
		t.Errorf("sample duration = %v, want 20m (not split)", got)
	}
}

func TestGroupByDayRange_GapDaysAreEmpty(t *testing.T) {
	day := StartOfDayIn(time.UTC)

	samples := []domain.SleepSample{
		mkSample(domain.StageAsleepCore,
			time.Date(2024, 1, 15, 1, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)),
		mkSample(domain.StageAsleepCore,
			time.Date(2024, 1, 18, 1, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 18, 7, 0, 0, 0, time.UTC)),
	}

	days := GroupByDayRange(samples,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		day,
	)
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	wantCounts := []int{1, 0, 0, 1}
	for i, want := range wantCounts {
		if len(days[i].Samples) != want {
			t.Errorf("days[%d] has %d samples, want %d", i, len(days[i].Samples), want)
		}
	}
}

func TestGroupByDayRange_SamplesSortedWithinDay(t *testing.T) {
	day := StartOfDayIn(time.UTC)

	// Deliberately unordered input.
	samples := []domain.SleepSample{
		mkSample(domain.StageAsleepREM,
			time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC)),
		mkSample(domain.StageInBed,
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 15, 0, 0, time.UTC)),
		mkSample(domain.StageAsleepDeep,
			time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 5, 0, 0, 0, time.UTC)),
	}

	days := GroupByDayRange(samples,
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		day,
	)
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	got := days[0].Samples
	for i := 1; i < len(got); i++ {
		if got[i].StartAt.Before(got[i-1].StartAt) {
			t.Errorf("samples not sorted: [%d] %v before [%d] %v",
				i, got[i].StartAt, i-1, got[i-1].StartAt)
		}
	}
}

func TestGroupByDay_DerivesRangeFromSamples(t *testing.T) {
	day := StartOfDayIn(time.UTC)

	samples := []domain.SleepSample{
		mkSample(domain.StageAsleepCore,
			time.Date(2024, 1, 16, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 17, 7, 0, 0, 0, time.UTC)),
		mkSample(domain.StageAsleepCore,
			time.Date(2024, 1, 14, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC)),
	}

	days := GroupByDay(samples, day)

	// Earliest start is the 14th, latest end is the 17th: four days.
	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	if got := days[0].Date.Format("2006-01-02"); got != "2024-01-14" {
		t.Errorf("first day = %s, want 2024-01-14", got)
	}
	if got := days[3].Date.Format("2006-01-02"); got != "2024-01-17" {
		t.Errorf("last day = %s, want 2024-01-17", got)
	}
}

func TestGroupByDay_NoSamplesNoRange(t *testing.T) {
	if days := GroupByDay(nil, StartOfDayIn(time.UTC)); len(days) != 0 {
		t.Errorf("got %d days, want 0", len(days))
	}
}

func TestGroupByDayRange_DayBoundaryFollowsLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("load Asia/Tokyo: %v", err)
	}

	// 2024-01-15 16:00 UTC is already 01:00 on the 16th in Tokyo, so the
	// sample lands on the 16th under a Tokyo calendar and on the 15th
	// under UTC.
	s := mkSample(domain.StageAsleepCore,
		time.Date(2024, 1, 15, 16, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC),
	)

	utcDays := GroupByDay([]domain.SleepSample{s}, StartOfDayIn(time.UTC))
	if len(utcDays) != 1 || len(utcDays[0].Samples) != 1 {
		t.Fatalf("UTC bucketing: got %d days", len(utcDays))
	}
	if got := utcDays[0].Date.Day(); got != 15 {
		t.Errorf("UTC day = %d, want 15", got)
	}

	tokyoDays := GroupByDay([]domain.SleepSample{s}, StartOfDayIn(tokyo))
	if len(tokyoDays) != 1 || len(tokyoDays[0].Samples) != 1 {
		t.Fatalf("Tokyo bucketing: got %d days", len(tokyoDays))
	}
	if got := tokyoDays[0].Date.Day(); got != 16 {
		t.Errorf("Tokyo day = %d, want 16", got)
	}
}
