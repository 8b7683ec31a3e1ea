package chart

import (
	"math"
	"testing"
	"time"

	"github.com/stagewatch/sleepchart/internal/domain"
)

func TestBuildLayout_ProportionalSegments(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC) // a Monday
	night := date.Add(23 * time.Hour)
	days := []domain.DailySleepData{
		{
			Date: date,
			Samples: []domain.SleepSample{
				mkSample(domain.StageAsleepCore, night, night.Add(2*time.Hour)),
				mkSample(domain.StageAsleepDeep, night.Add(2*time.Hour), night.Add(3*time.Hour)),
			},
		},
	}

	cfg := DefaultConfig()
	layout := BuildLayout(days, cfg, domain.OrientationColumn, DefaultProviders())

	if len(layout.Days) != 1 {
		t.Fatalf("got %d days, want 1", len(layout.Days))
	}
	day := layout.Days[0]
	if day.Label != "M" {
		t.Errorf("Label = %q, want M", day.Label)
	}
	if len(day.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(day.Segments))
	}

	// 2h and 1h at the vertical scale, stacked in sample order.
	if got := day.Segments[0].Length; got != 2*cfg.VerticalScale {
		t.Errorf("segment[0].Length = %v, want %v", got, 2*cfg.VerticalScale)
	}
	if got := day.Segments[1].Length; got != cfg.VerticalScale {
		t.Errorf("segment[1].Length = %v, want %v", got, cfg.VerticalScale)
	}
	if day.Segments[0].Offset != 0 {
		t.Errorf("segment[0].Offset = %v, want 0", day.Segments[0].Offset)
	}
	wantOffset := 2*cfg.VerticalScale + cfg.SegmentSpacing
	if got := day.Segments[1].Offset; got != wantOffset {
		t.Errorf("segment[1].Offset = %v, want %v", got, wantOffset)
	}
	wantTotal := 3*cfg.VerticalScale + cfg.SegmentSpacing
	if got := day.TotalLength; math.Abs(got-wantTotal) > 1e-9 {
		t.Errorf("TotalLength = %v, want %v", got, wantTotal)
	}
}

func TestBuildLayout_MinimumSegmentLength(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	night := date.Add(23 * time.Hour)
	days := []domain.DailySleepData{
		{
			Date: date,
			Samples: []domain.SleepSample{
				// 30 seconds of awake: far below a visible size.
				mkSample(domain.StageAwake, night, night.Add(30*time.Second)),
			},
		},
	}

	cfg := DefaultConfig()
	layout := BuildLayout(days, cfg, domain.OrientationColumn, DefaultProviders())

	if got := layout.Days[0].Segments[0].Length; got != cfg.MinSegmentLength {
		t.Errorf("segment length = %v, want floor %v", got, cfg.MinSegmentLength)
	}
}

func TestBuildLayout_RowOrientationUsesHorizontalScale(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	night := date.Add(23 * time.Hour)
	days := []domain.DailySleepData{
		{
			Date: date,
			Samples: []domain.SleepSample{
				mkSample(domain.StageAsleepCore, night, night.Add(time.Hour)),
			},
		},
	}

	cfg := DefaultConfig()
	layout := BuildLayout(days, cfg, domain.OrientationRow, DefaultProviders())

	if got := layout.Days[0].Segments[0].Length; got != cfg.HorizontalScale {
		t.Errorf("segment length = %v, want %v", got, cfg.HorizontalScale)
	}
}

func TestBuildLayout_ColumnRescaledToMaxHeight(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	night := date.Add(20 * time.Hour)
	// 12h at 20pt/h = 240pt raw, above the 200pt default budget.
	days := []domain.DailySleepData{
		{
			Date: date,
			Samples: []domain.SleepSample{
				mkSample(domain.StageInBed, night, night.Add(4*time.Hour)),
				mkSample(domain.StageAsleepCore, night.Add(4*time.Hour), night.Add(12*time.Hour)),
			},
		},
	}

	cfg := DefaultConfig()
	layout := BuildLayout(days, cfg, domain.OrientationColumn, DefaultProviders())

	day := layout.Days[0]
	if day.TotalLength > cfg.MaxColumnHeight+1e-9 {
		t.Errorf("TotalLength = %v exceeds MaxColumnHeight %v", day.TotalLength, cfg.MaxColumnHeight)
	}
	// Proportions survive the rescale: 4h vs 8h stays 1:2.
	ratio := day.Segments[1].Length / day.Segments[0].Length
	if math.Abs(ratio-2) > 1e-9 {
		t.Errorf("segment ratio = %v, want 2", ratio)
	}
}

func TestBuildLayout_WeekendHighlighting(t *testing.T) {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	var days []domain.DailySleepData
	for i := 0; i < 7; i++ {
		days = append(days, domain.DailySleepData{Date: monday.AddDate(0, 0, i)})
	}

	cfg := DefaultConfig()
	cfg.HighlightWeekends = true
	layout := BuildLayout(days, cfg, domain.OrientationColumn, DefaultProviders())

	wantLabels := []string{"M", "T", "W", "T", "F", "S", "S"}
	for i, d := range layout.Days {
		if d.Label != wantLabels[i] {
			t.Errorf("days[%d].Label = %q, want %q", i, d.Label, wantLabels[i])
		}
		wantHighlight := i >= 5 // Saturday and Sunday
		if d.Highlighted != wantHighlight {
			t.Errorf("days[%d].Highlighted = %v, want %v", i, d.Highlighted, wantHighlight)
		}
	}

	cfg.HighlightWeekends = false
	layout = BuildLayout(days, cfg, domain.OrientationColumn, DefaultProviders())
	for i, d := range layout.Days {
		if d.Highlighted {
			t.Errorf("days[%d].Highlighted = true with highlighting off", i)
		}
	}
}

func TestBuildLayout_LegendAndAverage(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	night := date.Add(23 * time.Hour)
	days := []domain.DailySleepData{
		{
			Date: date,
			Samples: []domain.SleepSample{
				mkSample(domain.StageAsleepDeep, night, night.Add(2*time.Hour)),
				mkSample(domain.StageAsleepCore, night.Add(2*time.Hour), night.Add(6*time.Hour)),
			},
		},
		{Date: date.AddDate(0, 0, 1)},
	}

	layout := BuildLayout(days, DefaultConfig(), domain.OrientationColumn, DefaultProviders())

	if len(layout.Legend) != 2 {
		t.Fatalf("legend has %d entries, want 2", len(layout.Legend))
	}
	// Display order: core before deep.
	if layout.Legend[0].Stage != domain.StageAsleepCore || layout.Legend[1].Stage != domain.StageAsleepDeep {
		t.Errorf("legend order = %s, %s", layout.Legend[0].Stage, layout.Legend[1].Stage)
	}
	if layout.Legend[0].Name != "Core" {
		t.Errorf("legend name = %q, want Core", layout.Legend[0].Name)
	}
	if layout.Legend[0].Total != "4h 0m" {
		t.Errorf("legend total = %q, want 4h 0m", layout.Legend[0].Total)
	}

	// 6h over 2 days averages to 3h.
	if layout.AverageSleep != "3h 0m" {
		t.Errorf("AverageSleep = %q, want 3h 0m", layout.AverageSleep)
	}
	if got := layout.AverageSleepSeconds; got != (3 * time.Hour).Seconds() {
		t.Errorf("AverageSleepSeconds = %v, want %v", got, (3 * time.Hour).Seconds())
	}
}

func TestBuildLayout_MetricsFollowConfig(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	days := []domain.DailySleepData{dayWithTotal(date, 8*time.Hour)}

	withMetrics := BuildLayout(days, DefaultConfig(), domain.OrientationColumn, DefaultProviders())
	if withMetrics.Days[0].Metrics == nil {
		t.Fatal("Metrics = nil with ShowHealthMetrics on")
	}
	if got := withMetrics.Days[0].Metrics.QualityScore; got != 100 {
		t.Errorf("QualityScore = %d, want 100", got)
	}
	if got := withMetrics.Days[0].Metrics.TotalSleep; got != "8h 0m" {
		t.Errorf("TotalSleep = %q, want 8h 0m", got)
	}

	compact := BuildLayout(days, CompactConfig(), domain.OrientationColumn, DefaultProviders())
	if compact.Days[0].Metrics != nil {
		t.Error("Metrics present with ShowHealthMetrics off")
	}
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name string
		want Config
	}{
		{"default", DefaultConfig()},
		{"compact", CompactConfig()},
		{"large", LargeConfig()},
		{"", DefaultConfig()},
		{"bogus", DefaultConfig()},
	}

	for _, tt := range tests {
		if got := PresetByName(tt.name); got != tt.want {
			t.Errorf("PresetByName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestHourMinuteFormatter(t *testing.T) {
	f := HourMinuteFormatter{}
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{45 * time.Minute, "45m"},
		{time.Hour, "1h 0m"},
		{7*time.Hour + 30*time.Minute, "7h 30m"},
		{7*time.Hour + 29*time.Minute + 40*time.Second, "7h 30m"},
		{-time.Minute, "0m"},
	}
	for _, tt := range tests {
		if got := f.FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestDefaultPalette_FallbackColor(t *testing.T) {
	p := DefaultPalette()
	for _, s := range domain.AllStages {
		if p.StageColor(s) == p.Fallback {
			t.Errorf("known stage %s got fallback color", s)
		}
	}
	if got := p.StageColor(domain.SleepStage("mystery")); got != p.Fallback {
		t.Errorf("unknown stage color = %q, want fallback %q", got, p.Fallback)
	}
}
