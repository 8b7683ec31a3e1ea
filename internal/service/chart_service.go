package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/chart"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ChartWindowDays is the number of days rendered by the weekly chart.
	ChartWindowDays = 7
)

// ChartService assembles the weekly chart payload from stored samples.
type ChartService interface {
	// WeeklyChart computes the chart for the requested week.
	WeeklyChart(ctx context.Context, userID uuid.UUID, req *domain.WeeklyChartRequest) (*domain.WeeklyChartResponse, error)
	// WeeklyDays buckets a week of samples without building geometry; the
	// insights path consumes this.
	WeeklyDays(ctx context.Context, userID uuid.UUID, weekStart *time.Time) ([]domain.DailySleepData, string, error)
}

type chartService struct {
	sampleRepo repository.SampleRepository
	userRepo   repository.UserRepository
	providers  chart.Providers
	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewChartService creates a new ChartService with the default display
// providers.
func NewChartService(sampleRepo repository.SampleRepository, userRepo repository.UserRepository) ChartService {
	return &chartService{
		sampleRepo: sampleRepo,
		userRepo:   userRepo,
		providers:  chart.DefaultProviders(),
		now:        time.Now,
	}
}

func (s *chartService) WeeklyChart(ctx context.Context, userID uuid.UUID, req *domain.WeeklyChartRequest) (*domain.WeeklyChartResponse, error) {
	tracer := otel.Tracer("sleepchart-api/chart")
	ctx, span := tracer.Start(ctx, "ChartService.WeeklyChart",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("chart.orientation", string(req.Orientation)),
			attribute.String("chart.preset", req.Preset),
		),
	)
	defer span.End()

	days, timezone, err := s.WeeklyDays(ctx, userID, req.WeekStart)
	if err != nil {
		return nil, err
	}

	orientation := req.Orientation
	if orientation == "" {
		orientation = domain.OrientationColumn
	}
	cfg := chart.PresetByName(req.Preset)

	layout := chart.BuildLayout(days, cfg, orientation, s.providers)

	sampleCount := 0
	for _, d := range days {
		sampleCount += len(d.Samples)
	}
	span.SetAttributes(
		attribute.Int("chart.days", len(days)),
		attribute.Int("chart.samples", sampleCount),
	)

	return &domain.WeeklyChartResponse{
		WeekStart:           days[0].Date.Format("2006-01-02"),
		WeekEnd:             days[len(days)-1].Date.Format("2006-01-02"),
		Orientation:         orientation,
		Timezone:            timezone,
		Days:                layout.Days,
		Legend:              layout.Legend,
		AverageSleep:        layout.AverageSleep,
		AverageSleepSeconds: layout.AverageSleepSeconds,
	}, nil
}

// WeeklyDays loads the user's calendar, resolves the week range, fetches
// the window's samples, and buckets them into seven days. Without an
// explicit week start the window is the trailing seven days ending today
// in the user's timezone.
func (s *chartService) WeeklyDays(ctx context.Context, userID uuid.UUID, weekStart *time.Time) ([]domain.DailySleepData, string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	loc := time.UTC
	timezone := "UTC"
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
			timezone = user.Timezone
		}
	}
	day := chart.StartOfDayIn(loc)

	var first time.Time
	if weekStart != nil {
		// week_start arrives as a bare calendar date. Reinterpret its
		// year/month/day in the user's timezone; truncating the parsed
		// instant instead would shift the window a day for zones west
		// of UTC.
		y, m, d := weekStart.Date()
		first = time.Date(y, m, d, 0, 0, 0, 0, loc)
	} else {
		first = day(s.now()).AddDate(0, 0, -(ChartWindowDays - 1))
	}
	last := first.AddDate(0, 0, ChartWindowDays-1)

	// Fetch everything starting inside [first, last+1d). Samples that
	// cross midnight out of the window still belong to their start day.
	samples, err := s.sampleRepo.ListByStartRange(ctx, userID, first.UTC(), last.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, "", err
	}

	days := chart.GroupByDayRange(samples, first, last, day)
	return days, timezone, nil
}
