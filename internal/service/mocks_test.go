package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
)

// MockSampleRepository is a mock implementation of SampleRepository
type MockSampleRepository struct {
	samples         map[uuid.UUID]*domain.SleepSample
	clientRequestID map[string]*domain.SleepSample
	listResult      []domain.SleepSample
	err             error
}

func NewMockSampleRepository() *MockSampleRepository {
	return &MockSampleRepository{
		samples:         make(map[uuid.UUID]*domain.SleepSample),
		clientRequestID: make(map[string]*domain.SleepSample),
	}
}

func (m *MockSampleRepository) Create(ctx context.Context, sample *domain.SleepSample) error {
	if m.err != nil {
		return m.err
	}
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}
	sample.CreatedAt = time.Now()
	m.samples[sample.ID] = sample
	if sample.ClientRequestID != nil {
		key := sample.UserID.String() + ":" + *sample.ClientRequestID
		m.clientRequestID[key] = sample
	}
	return nil
}

func (m *MockSampleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	sample, ok := m.samples[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return sample, nil
}

func (m *MockSampleRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) ([]domain.SleepSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepSample, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepSample
	for _, sample := range m.samples {
		if sample.UserID == userID {
			result = append(result, *sample)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.After(result[j].StartAt)
	})
	return result, nil
}

func (m *MockSampleRepository) ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepSample
	for _, sample := range m.samples {
		if sample.UserID != userID {
			continue
		}
		if sample.StartAt.Before(from) || !sample.StartAt.Before(to) {
			continue
		}
		result = append(result, *sample)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartAt.Before(result[j].StartAt)
	})
	return result, nil
}

func (m *MockSampleRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSample, error) {
	if m.err != nil {
		return nil, m.err
	}
	sample, ok := m.clientRequestID[userID.String()+":"+clientRequestID]
	if !ok {
		return nil, nil
	}
	return sample, nil
}

// MockInsightsLLM is a mock implementation of llm.InsightsLLM
type MockInsightsLLM struct {
	generateFunc func(ctx context.Context, weekCtx *domain.WeeklyInsightsContext) (*domain.LLMWeeklyInsights, error)
	lastContext  *domain.WeeklyInsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, weekCtx *domain.WeeklyInsightsContext) (*domain.LLMWeeklyInsights, error) {
	m.lastContext = weekCtx
	if m.generateFunc != nil {
		return m.generateFunc(ctx, weekCtx)
	}
	return &domain.LLMWeeklyInsights{
		Summary:      "A steady week of sleep.",
		Observations: []string{"Consistent bedtimes."},
		Guidance:     []string{"Keep the schedule."},
	}, nil
}
