package chart

import (
	"time"

	"github.com/stagewatch/sleepchart/internal/domain"
)

// Providers bundles the display capability contracts the layout needs.
// Zero-value fields are not allowed; use DefaultProviders as a base.
type Providers struct {
	Colors    StageColorSource
	Names     StageNameSource
	Durations DurationFormatter
}

// DefaultProviders returns the built-in palette, names, and formatting.
func DefaultProviders() Providers {
	return Providers{
		Colors:    DefaultPalette(),
		Names:     EnglishNames{},
		Durations: HourMinuteFormatter{},
	}
}

// Layout is the computed chart geometry plus display strings, ready to be
// handed to the hosting UI.
type Layout struct {
	Days                []domain.ChartDay
	Legend              []domain.ChartLegendEntry
	AverageSleep        string
	AverageSleepSeconds float64
}

// BuildLayout turns bucketed days into positioned segments. Each sample
// becomes one segment of length duration-in-hours times the orientation's
// scale, floored at the configured minimum so short awakenings stay
// visible. Segments stack in sample order; columns that would exceed the
// configured maximum height are rescaled proportionally.
func BuildLayout(days []domain.DailySleepData, cfg Config, orientation domain.ChartOrientation, p Providers) Layout {
	scale := cfg.VerticalScale
	if orientation == domain.OrientationRow {
		scale = cfg.HorizontalScale
	}

	layout := Layout{Days: make([]domain.ChartDay, 0, len(days))}
	for _, day := range days {
		layout.Days = append(layout.Days, buildDay(day, cfg, scale, orientation, p))
	}

	summary := Summarize(days)
	for _, stage := range summary.Stages {
		layout.Legend = append(layout.Legend, domain.ChartLegendEntry{
			Stage: stage,
			Name:  p.Names.StageName(stage),
			Color: p.Colors.StageColor(stage),
			Total: p.Durations.FormatDuration(summary.StageTotals[stage]),
		})
	}
	layout.AverageSleep = p.Durations.FormatDuration(summary.AverageDailySleep)
	layout.AverageSleepSeconds = summary.AverageDailySleep.Seconds()

	return layout
}

func buildDay(day domain.DailySleepData, cfg Config, scale float64, orientation domain.ChartOrientation, p Providers) domain.ChartDay {
	lengths := make([]float64, len(day.Samples))
	var sum float64
	for i, s := range day.Samples {
		length := s.Duration().Hours() * scale
		if length < cfg.MinSegmentLength {
			length = cfg.MinSegmentLength
		}
		lengths[i] = length
		sum += length
	}

	spacing := 0.0
	if len(lengths) > 1 {
		spacing = cfg.SegmentSpacing * float64(len(lengths)-1)
	}

	// Columns have a hard height budget; rescale the segments (not the
	// spacing) when the stack would overflow it.
	if orientation == domain.OrientationColumn && cfg.MaxColumnHeight > 0 && sum+spacing > cfg.MaxColumnHeight {
		available := cfg.MaxColumnHeight - spacing
		if available < 0 {
			available = 0
		}
		factor := 0.0
		if sum > 0 {
			factor = available / sum
		}
		sum = 0
		for i := range lengths {
			lengths[i] *= factor
			sum += lengths[i]
		}
	}

	segments := make([]domain.ChartSegment, 0, len(day.Samples))
	offset := 0.0
	for i, s := range day.Samples {
		segments = append(segments, domain.ChartSegment{
			Stage:        s.Stage,
			Offset:       offset,
			Length:       lengths[i],
			Color:        p.Colors.StageColor(s.Stage),
			CornerRadius: cfg.CornerRadius,
		})
		offset += lengths[i] + cfg.SegmentSpacing
	}

	weekday := day.Date.Weekday()
	out := domain.ChartDay{
		Date:        day.Date.Format("2006-01-02"),
		Label:       weekday.String()[:1],
		Highlighted: cfg.HighlightWeekends && (weekday == time.Saturday || weekday == time.Sunday),
		Segments:    segments,
		TotalLength: sum + spacing,
	}

	if cfg.ShowHealthMetrics {
		out.Metrics = &domain.ChartDayMetrics{
			TotalSleep:   p.Durations.FormatDuration(day.TotalSleepDuration()),
			Efficiency:   day.SleepEfficiency(),
			QualityScore: day.QualityScore(),
		}
	}

	return out
}
