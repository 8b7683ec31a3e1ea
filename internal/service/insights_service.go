package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/chart"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/internal/llm"
	"github.com/stagewatch/sleepchart/internal/repository"
)

// InsightsService generates a narrative summary for a charted week.
type InsightsService interface {
	// Weekly creates insights for the same window the chart renders.
	Weekly(ctx context.Context, userID uuid.UUID, weekStart *time.Time) (*domain.WeeklyInsightsResponse, error)
}

type insightsService struct {
	chartService ChartService
	llmClient    llm.InsightsLLM
	userRepo     repository.UserRepository
	formatter    chart.DurationFormatter
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(chartService ChartService, llmClient llm.InsightsLLM, userRepo repository.UserRepository) InsightsService {
	return &insightsService{
		chartService: chartService,
		llmClient:    llmClient,
		userRepo:     userRepo,
		formatter:    chart.HourMinuteFormatter{},
	}
}

func (s *insightsService) Weekly(ctx context.Context, userID uuid.UUID, weekStart *time.Time) (*domain.WeeklyInsightsResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	days, _, err := s.chartService.WeeklyDays(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}

	summary := chart.Summarize(days)

	insightsCtx := &domain.WeeklyInsightsContext{
		WeekStart:    days[0].Date.Format("2006-01-02"),
		WeekEnd:      days[len(days)-1].Date.Format("2006-01-02"),
		StageTotals:  make(map[domain.SleepStage]string, len(summary.StageTotals)),
		AverageSleep: s.formatter.FormatDuration(summary.AverageDailySleep),
	}
	for stage, total := range summary.StageTotals {
		insightsCtx.StageTotals[stage] = s.formatter.FormatDuration(total)
	}
	for _, d := range days {
		insightsCtx.Days = append(insightsCtx.Days, domain.WeeklyInsightsDay{
			Date:         d.Date.Format("2006-01-02"),
			TotalSleep:   s.formatter.FormatDuration(d.TotalSleepDuration()),
			Efficiency:   d.SleepEfficiency(),
			QualityScore: d.QualityScore(),
		})
	}

	llmOutput, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	return &domain.WeeklyInsightsResponse{
		WeekStart: insightsCtx.WeekStart,
		WeekEnd:   insightsCtx.WeekEnd,
		Insights:  *llmOutput,
	}, nil
}
