package domain

import (
	"math"
	"sort"
	"time"
)

// targetSleep is the daily duration treated as fully sufficient when
// scoring sleep quality.
const targetSleep = 8 * time.Hour

// DailySleepData holds every sample attributed to one calendar day.
// Date identifies the day; its time-of-day component is used only for
// labeling. The value is immutable once constructed and all summary
// attributes are computed on demand.
type DailySleepData struct {
	Date    time.Time
	Samples []SleepSample
}

// TotalSleepDuration sums the duration of every sample regardless of
// stage. Zero for an empty day.
func (d DailySleepData) TotalSleepDuration() time.Duration {
	var total time.Duration
	for _, s := range d.Samples {
		total += s.Duration()
	}
	return total
}

// DurationByStage folds the samples into cumulative durations per stage.
// The key set is exactly the distinct stages present.
func (d DailySleepData) DurationByStage() map[SleepStage]time.Duration {
	byStage := make(map[SleepStage]time.Duration)
	for _, s := range d.Samples {
		byStage[s.Stage] += s.Duration()
	}
	return byStage
}

// ActiveStages returns the distinct stages present, sorted by display order.
func (d DailySleepData) ActiveStages() []SleepStage {
	byStage := d.DurationByStage()
	stages := make([]SleepStage, 0, len(byStage))
	for stage := range byStage {
		stages = append(stages, stage)
	}
	sort.Slice(stages, func(i, j int) bool {
		return stages[i].SortOrder() < stages[j].SortOrder()
	})
	return stages
}

// TotalTimeInBed is the elapsed wall-clock span from the first sample's
// start to the last sample's end. Unlike TotalSleepDuration it covers gaps
// between samples. Zero for an empty day.
func (d DailySleepData) TotalTimeInBed() time.Duration {
	if len(d.Samples) == 0 {
		return 0
	}
	first := d.Samples[0]
	last := d.Samples[len(d.Samples)-1]
	return last.EndAt.Sub(first.StartAt)
}

// asleepDuration sums the durations of samples whose stage counts as sleep.
func (d DailySleepData) asleepDuration() time.Duration {
	var total time.Duration
	for _, s := range d.Samples {
		if s.Stage.IsAsleep() {
			total += s.Duration()
		}
	}
	return total
}

// SleepEfficiency is the fraction of time in bed actually spent asleep.
// Returns 0 when time in bed is zero.
func (d DailySleepData) SleepEfficiency() float64 {
	inBed := d.TotalTimeInBed()
	if inBed <= 0 {
		return 0
	}
	return d.asleepDuration().Seconds() / inBed.Seconds()
}

// QualityScore blends duration adequacy and efficiency into an integer in
// [0,100]. Each term is capped independently before summing, so 100
// requires both a saturated duration and full efficiency.
func (d DailySleepData) QualityScore() int {
	durationRatio := d.TotalSleepDuration().Seconds() / targetSleep.Seconds()
	if durationRatio > 1 {
		durationRatio = 1
	}
	efficiency := d.SleepEfficiency()
	if efficiency > 1 {
		efficiency = 1
	}
	return int(math.Round(50*durationRatio + 50*efficiency))
}
