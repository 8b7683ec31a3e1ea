package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
)

// MockSampleService is a mock implementation of SampleService
type MockSampleService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSampleRequest) (*domain.SleepSample, bool, error)
	importFunc func(ctx context.Context, userID uuid.UUID, req *domain.ImportSleepSamplesRequest) (*domain.ImportSleepSamplesResponse, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) (*domain.SleepSampleListResponse, error)
}

func (m *MockSampleService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSampleRequest) (*domain.SleepSample, bool, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepSample{
		ID:      uuid.New(),
		UserID:  userID,
		Stage:   req.Stage,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	}, false, nil
}

func (m *MockSampleService) Import(ctx context.Context, userID uuid.UUID, req *domain.ImportSleepSamplesRequest) (*domain.ImportSleepSamplesResponse, error) {
	if m.importFunc != nil {
		return m.importFunc(ctx, userID, req)
	}
	return &domain.ImportSleepSamplesResponse{Imported: len(req.Samples)}, nil
}

func (m *MockSampleService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) (*domain.SleepSampleListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepSampleListResponse{Data: []domain.SleepSampleResponse{}}, nil
}

// MockChartService is a mock implementation of ChartService
type MockChartService struct {
	weeklyChartFunc func(ctx context.Context, userID uuid.UUID, req *domain.WeeklyChartRequest) (*domain.WeeklyChartResponse, error)
	weeklyDaysFunc  func(ctx context.Context, userID uuid.UUID, weekStart *time.Time) ([]domain.DailySleepData, string, error)
}

func (m *MockChartService) WeeklyChart(ctx context.Context, userID uuid.UUID, req *domain.WeeklyChartRequest) (*domain.WeeklyChartResponse, error) {
	if m.weeklyChartFunc != nil {
		return m.weeklyChartFunc(ctx, userID, req)
	}
	return &domain.WeeklyChartResponse{Orientation: req.Orientation}, nil
}

func (m *MockChartService) WeeklyDays(ctx context.Context, userID uuid.UUID, weekStart *time.Time) ([]domain.DailySleepData, string, error) {
	if m.weeklyDaysFunc != nil {
		return m.weeklyDaysFunc(ctx, userID, weekStart)
	}
	return nil, "UTC", nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	weeklyFunc func(ctx context.Context, userID uuid.UUID, weekStart *time.Time) (*domain.WeeklyInsightsResponse, error)
}

func (m *MockInsightsService) Weekly(ctx context.Context, userID uuid.UUID, weekStart *time.Time) (*domain.WeeklyInsightsResponse, error) {
	if m.weeklyFunc != nil {
		return m.weeklyFunc(ctx, userID, weekStart)
	}
	return &domain.WeeklyInsightsResponse{}, nil
}
