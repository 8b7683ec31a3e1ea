package domain

import "time"

// ChartOrientation selects how the weekly chart stacks a day's segments.
// @Description Chart layout mode: column (vertical bars) or row (horizontal bars).
type ChartOrientation string

const (
	// OrientationColumn stacks each day's segments vertically.
	OrientationColumn ChartOrientation = "column"
	// OrientationRow stacks each day's segments horizontally.
	OrientationRow ChartOrientation = "row"
)

// WeeklyChartRequest contains query parameters for the weekly chart endpoint.
type WeeklyChartRequest struct {
	// First day of the requested week (local date). Defaults to the trailing
	// seven days when unset.
	WeekStart *time.Time
	// Layout orientation, column by default.
	Orientation ChartOrientation
	// Named configuration preset: default, compact, or large.
	Preset string
}

// ChartSegment is one rendered interval inside a day's bar.
// @Description Positioned, colored segment for a single sample.
type ChartSegment struct {
	// Stage this segment renders
	Stage SleepStage `json:"stage" example:"asleep_deep"`
	// Offset from the bar origin in points
	Offset float64 `json:"offset" example:"24.5"`
	// Segment length in points (never below the configured minimum)
	Length float64 `json:"length" example:"36"`
	// Fill color as a hex string
	Color string `json:"color" example:"#2B6CB0"`
	// Corner radius in points
	CornerRadius float64 `json:"corner_radius" example:"3"`
}

// ChartDayMetrics carries the per-day summary shown beside a bar.
// @Description Health metrics for one charted day.
type ChartDayMetrics struct {
	// Total sampled duration as a display string
	TotalSleep string `json:"total_sleep" example:"7h 0m"`
	// Fraction of time in bed spent asleep (0-1)
	Efficiency float64 `json:"efficiency" example:"0.96"`
	// Blended 0-100 quality score
	QualityScore int `json:"quality_score" example:"92"`
}

// ChartDay is one day's bar in the weekly chart.
// @Description Labeled stack of segments for a single calendar day.
type ChartDay struct {
	// Calendar date (YYYY-MM-DD, local)
	Date string `json:"date" example:"2024-01-15"`
	// Single-letter weekday abbreviation
	Label string `json:"label" example:"M"`
	// True for Saturday and Sunday when weekend highlighting is on
	Highlighted bool `json:"highlighted" example:"false"`
	// Segments in sample order
	Segments []ChartSegment `json:"segments"`
	// Total stacked length in points, spacing included
	TotalLength float64 `json:"total_length" example:"182.5"`
	// Per-day metrics, present when the configuration shows health metrics
	Metrics *ChartDayMetrics `json:"metrics,omitempty"`
}

// ChartLegendEntry describes one stage in the chart color key.
// @Description Legend row: stage, display name, color, weekly total.
type ChartLegendEntry struct {
	// Stage this entry describes
	Stage SleepStage `json:"stage" example:"asleep_rem"`
	// Human-readable stage name
	Name string `json:"name" example:"REM"`
	// Swatch color as a hex string
	Color string `json:"color" example:"#76E4F7"`
	// Summed duration across the week as a display string
	Total string `json:"total" example:"10h 25m"`
}

// WeeklyChartResponse is the full weekly chart payload handed to the
// hosting UI.
// @Description Computed geometry and display strings for one week.
type WeeklyChartResponse struct {
	// First charted day (YYYY-MM-DD, local)
	WeekStart string `json:"week_start" example:"2024-01-15"`
	// Last charted day (YYYY-MM-DD, local)
	WeekEnd string `json:"week_end" example:"2024-01-21"`
	// Layout orientation used
	Orientation ChartOrientation `json:"orientation" example:"column"`
	// IANA timezone the days were bucketed in
	Timezone string `json:"timezone" example:"Europe/Amsterdam"`
	// One bar per day, chronological
	Days []ChartDay `json:"days"`
	// Color key for the stages present this week
	Legend []ChartLegendEntry `json:"legend"`
	// Average daily total as a display string
	AverageSleep string `json:"average_sleep" example:"7h 41m"`
	// Average daily total in seconds
	AverageSleepSeconds float64 `json:"average_sleep_seconds" example:"27668.6"`
}

// WeeklyInsightsResponse wraps the LLM narrative for a charted week.
// @Description Generated non-medical commentary on a week of sleep data.
type WeeklyInsightsResponse struct {
	// First charted day (YYYY-MM-DD, local)
	WeekStart string `json:"week_start" example:"2024-01-15"`
	// Last charted day (YYYY-MM-DD, local)
	WeekEnd string `json:"week_end" example:"2024-01-21"`
	// Generated narrative
	Insights LLMWeeklyInsights `json:"insights"`
}

// LLMWeeklyInsights is the structured output of the insights model.
// @Description Summary, observations, and guidance produced by the LLM.
type LLMWeeklyInsights struct {
	// 2-3 sentence summary of the week
	Summary string `json:"summary"`
	// Observed patterns in stages, duration, and efficiency
	Observations []string `json:"observations"`
	// Concrete, non-medical suggestions
	Guidance []string `json:"guidance"`
}

// WeeklyInsightsContext is the data handed to the LLM.
type WeeklyInsightsContext struct {
	WeekStart    string                `json:"week_start"`
	WeekEnd      string                `json:"week_end"`
	Days         []WeeklyInsightsDay   `json:"days"`
	StageTotals  map[SleepStage]string `json:"stage_totals"`
	AverageSleep string                `json:"average_sleep"`
}

// WeeklyInsightsDay summarizes one day for the LLM context.
type WeeklyInsightsDay struct {
	Date         string  `json:"date"`
	TotalSleep   string  `json:"total_sleep"`
	Efficiency   float64 `json:"efficiency"`
	QualityScore int     `json:"quality_score"`
}
