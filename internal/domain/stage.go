package domain

// SleepStage classifies one interval of sleep-analysis data.
// @Description Sleep stage category: IN_BED envelope, asleep stages, or AWAKE.
type SleepStage string

const (
	// StageInBed covers time spent in bed, asleep or not.
	StageInBed SleepStage = "in_bed"
	// StageAsleepUnspecified is sleep without a finer stage classification.
	StageAsleepUnspecified SleepStage = "asleep_unspecified"
	// StageAsleepCore is light/core sleep.
	StageAsleepCore SleepStage = "asleep_core"
	// StageAsleepDeep is deep (slow-wave) sleep.
	StageAsleepDeep SleepStage = "asleep_deep"
	// StageAsleepREM is REM sleep.
	StageAsleepREM SleepStage = "asleep_rem"
	// StageAwake is time awake between sleep intervals.
	StageAwake SleepStage = "awake"
)

// AllStages lists every stage in display order.
var AllStages = []SleepStage{
	StageInBed,
	StageAsleepUnspecified,
	StageAsleepCore,
	StageAsleepDeep,
	StageAsleepREM,
	StageAwake,
}

var stageOrder = map[SleepStage]int{
	StageInBed:             0,
	StageAsleepUnspecified: 1,
	StageAsleepCore:        2,
	StageAsleepDeep:        3,
	StageAsleepREM:         4,
	StageAwake:             5,
}

// SortOrder returns the stable display position of the stage.
// Unknown values sort after every known stage.
func (s SleepStage) SortOrder() int {
	if order, ok := stageOrder[s]; ok {
		return order
	}
	return len(stageOrder)
}

// IsAsleep reports whether the stage counts as actual sleep.
// Every stage except in_bed and awake is asleep.
func (s SleepStage) IsAsleep() bool {
	switch s {
	case StageInBed, StageAwake:
		return false
	default:
		return true
	}
}

// Valid reports whether s is one of the known stages.
func (s SleepStage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}
