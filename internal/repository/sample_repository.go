package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/pkg/pagination"
	"gorm.io/gorm"
)

type SampleRepository interface {
	Create(ctx context.Context, sample *domain.SleepSample) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSample, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) ([]domain.SleepSample, error)
	// ListByStartRange returns every sample whose start falls in [from, to),
	// in ascending start order. This is the chart's read path.
	ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSample, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSample, error)
}

type sampleRepository struct {
	db *gorm.DB
}

func NewSampleRepository(db *gorm.DB) SampleRepository {
	return &sampleRepository{db: db}
}

func (r *sampleRepository) Create(ctx context.Context, sample *domain.SleepSample) error {
	return r.db.WithContext(ctx).Create(sample).Error
}

func (r *sampleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepSample, error) {
	var sample domain.SleepSample
	err := r.db.WithContext(ctx).First(&sample, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sample, nil
}

func (r *sampleRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) ([]domain.SleepSample, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with start_at < cursor.StartAt
			// or same start_at but id < cursor.ID
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var samples []domain.SleepSample
	if err := query.Find(&samples).Error; err != nil {
		return nil, err
	}

	return samples, nil
}

func (r *sampleRepository) ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepSample, error) {
	var samples []domain.SleepSample
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at >= ?", from).
		Where("start_at < ?", to).
		Order("start_at ASC").
		Find(&samples).Error
	if err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *sampleRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepSample, error) {
	var sample domain.SleepSample
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&sample).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // Not found is not an error for idempotency check
		}
		return nil, err
	}
	return &sample, nil
}
