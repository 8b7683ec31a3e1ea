package chart

import (
	"sort"
	"time"

	"github.com/stagewatch/sleepchart/internal/domain"
)

// WeeklySummary folds a sequence of days into the aggregates the legend
// and summary line are built from.
type WeeklySummary struct {
	// StageTotals maps each stage present during the week to its summed
	// duration across all days.
	StageTotals map[domain.SleepStage]time.Duration
	// Stages lists the keys of StageTotals in display order.
	Stages []domain.SleepStage
	// AverageDailySleep is the mean of the days' total durations, zero for
	// an empty week.
	AverageDailySleep time.Duration
}

// Summarize computes the weekly aggregates over an ordered day sequence.
func Summarize(days []domain.DailySleepData) WeeklySummary {
	summary := WeeklySummary{
		StageTotals: make(map[domain.SleepStage]time.Duration),
	}
	if len(days) == 0 {
		return summary
	}

	var total time.Duration
	for _, d := range days {
		total += d.TotalSleepDuration()
		for stage, dur := range d.DurationByStage() {
			summary.StageTotals[stage] += dur
		}
	}
	summary.AverageDailySleep = total / time.Duration(len(days))

	for stage := range summary.StageTotals {
		summary.Stages = append(summary.Stages, stage)
	}
	sort.Slice(summary.Stages, func(i, j int) bool {
		return summary.Stages[i].SortOrder() < summary.Stages[j].SortOrder()
	})

	return summary
}
