package chart

// Config is the flat bag of layout parameters consumed at render time.
// All lengths are in points. Values are expected to be non-negative; the
// presets below are the only invariants the package itself maintains.
type Config struct {
	// ComponentSpacing separates the chart from surrounding components.
	ComponentSpacing float64
	// DaySpacing separates adjacent day bars.
	DaySpacing float64
	// SegmentSpacing separates stacked segments within a day.
	SegmentSpacing float64
	// ColumnWidth is the bar thickness in column orientation.
	ColumnWidth float64
	// MaxColumnHeight caps a column's stacked length; longer days are
	// rescaled proportionally to fit.
	MaxColumnHeight float64
	// VerticalScale converts hours to points in column orientation.
	VerticalScale float64
	// HorizontalScale converts hours to points in row orientation.
	HorizontalScale float64
	// MinSegmentLength keeps very short samples visible.
	MinSegmentLength float64
	// CornerRadius rounds segment corners.
	CornerRadius float64
	// RowHeight is the bar thickness in row orientation.
	RowHeight float64
	// ShowHealthMetrics attaches per-day totals, efficiency, and quality
	// scores to the layout.
	ShowHealthMetrics bool
	// HighlightWeekends marks Saturday and Sunday bars.
	HighlightWeekends bool
}

// DefaultConfig is the standard preset.
func DefaultConfig() Config {
	return Config{
		ComponentSpacing:  16,
		DaySpacing:        8,
		SegmentSpacing:    2,
		ColumnWidth:       24,
		MaxColumnHeight:   200,
		VerticalScale:     20,
		HorizontalScale:   28,
		MinSegmentLength:  4,
		CornerRadius:      3,
		RowHeight:         18,
		ShowHealthMetrics: true,
		HighlightWeekends: false,
	}
}

// CompactConfig fits the chart into tight spaces such as widgets.
func CompactConfig() Config {
	return Config{
		ComponentSpacing:  8,
		DaySpacing:        4,
		SegmentSpacing:    1,
		ColumnWidth:       16,
		MaxColumnHeight:   120,
		VerticalScale:     12,
		HorizontalScale:   16,
		MinSegmentLength:  2,
		CornerRadius:      2,
		RowHeight:         12,
		ShowHealthMetrics: false,
		HighlightWeekends: false,
	}
}

// LargeConfig is a roomier preset for full-screen detail views.
func LargeConfig() Config {
	return Config{
		ComponentSpacing:  24,
		DaySpacing:        12,
		SegmentSpacing:    3,
		ColumnWidth:       36,
		MaxColumnHeight:   320,
		VerticalScale:     32,
		HorizontalScale:   44,
		MinSegmentLength:  6,
		CornerRadius:      5,
		RowHeight:         28,
		ShowHealthMetrics: true,
		HighlightWeekends: true,
	}
}

// PresetByName resolves a named preset, falling back to the default for
// unknown names.
func PresetByName(name string) Config {
	switch name {
	case "compact":
		return CompactConfig()
	case "large":
		return LargeConfig()
	default:
		return DefaultConfig()
	}
}
