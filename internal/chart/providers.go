package chart

import (
	"fmt"
	"time"

	"github.com/stagewatch/sleepchart/internal/domain"
)

// StageColorSource maps a stage to its fill color.
type StageColorSource interface {
	StageColor(stage domain.SleepStage) string
}

// StageNameSource maps a stage to its display name.
type StageNameSource interface {
	StageName(stage domain.SleepStage) string
}

// DurationFormatter renders a duration as a display string.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// HexPalette is the default StageColorSource. Unknown stages get the
// fallback color.
type HexPalette struct {
	Colors   map[domain.SleepStage]string
	Fallback string
}

func (p HexPalette) StageColor(stage domain.SleepStage) string {
	if c, ok := p.Colors[stage]; ok {
		return c
	}
	return p.Fallback
}

// DefaultPalette returns the built-in stage colors.
func DefaultPalette() HexPalette {
	return HexPalette{
		Colors: map[domain.SleepStage]string{
			domain.StageInBed:             "#A0AEC0",
			domain.StageAsleepUnspecified: "#63B3ED",
			domain.StageAsleepCore:        "#4299E1",
			domain.StageAsleepDeep:        "#2B6CB0",
			domain.StageAsleepREM:         "#76E4F7",
			domain.StageAwake:             "#F6AD55",
		},
		Fallback: "#CBD5E0",
	}
}

// EnglishNames is the default StageNameSource.
type EnglishNames struct{}

func (EnglishNames) StageName(stage domain.SleepStage) string {
	switch stage {
	case domain.StageInBed:
		return "In Bed"
	case domain.StageAsleepUnspecified:
		return "Asleep"
	case domain.StageAsleepCore:
		return "Core"
	case domain.StageAsleepDeep:
		return "Deep"
	case domain.StageAsleepREM:
		return "REM"
	case domain.StageAwake:
		return "Awake"
	default:
		return string(stage)
	}
}

// HourMinuteFormatter renders durations as "7h 30m", dropping the hour
// part below one hour.
type HourMinuteFormatter struct{}

func (HourMinuteFormatter) FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Minute) / time.Minute)
	h := total / 60
	m := total % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
