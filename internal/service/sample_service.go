package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/internal/repository"
	"github.com/stagewatch/sleepchart/pkg/pagination"
)

type SampleService interface {
	// Create stores a single sample.
	// Returns (sample, isExisting, error) - isExisting is true when an
	// idempotent duplicate was found and returned instead.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSampleRequest) (*domain.SleepSample, bool, error)
	// Import stores a batch of samples from a health-data sync.
	Import(ctx context.Context, userID uuid.UUID, req *domain.ImportSleepSamplesRequest) (*domain.ImportSleepSamplesResponse, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) (*domain.SleepSampleListResponse, error)
}

type sampleService struct {
	repo     repository.SampleRepository
	userRepo repository.UserRepository
}

func NewSampleService(repo repository.SampleRepository, userRepo repository.UserRepository) SampleService {
	return &sampleService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *sampleService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSampleRequest) (*domain.SleepSample, bool, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, domain.ErrNotFound
	}

	return s.createOne(ctx, userID, req)
}

// createOne stores a sample for an already-validated user.
func (s *sampleService) createOne(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSampleRequest) (*domain.SleepSample, bool, error) {
	// Normalize timestamps to UTC for storage
	startUTC := req.StartAt.UTC()
	endUTC := req.EndAt.UTC()

	// Check for idempotency (duplicate client_request_id)
	if req.ClientRequestID != nil && *req.ClientRequestID != "" {
		existing, err := s.repo.GetByClientRequestID(ctx, userID, *req.ClientRequestID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, true, nil // Return existing sample
		}
	}

	sample := &domain.SleepSample{
		UserID:          userID,
		Stage:           req.Stage,
		StartAt:         startUTC,
		EndAt:           endUTC,
		ClientRequestID: req.ClientRequestID,
	}

	if err := s.repo.Create(ctx, sample); err != nil {
		return nil, false, err
	}

	return sample, false, nil
}

// Import stores each sample of the batch, counting idempotent duplicates
// instead of failing on them. Stage samples may overlap each other (an
// in_bed interval legitimately encloses the asleep intervals inside it),
// so no overlap check applies.
func (s *sampleService) Import(ctx context.Context, userID uuid.UUID, req *domain.ImportSleepSamplesRequest) (*domain.ImportSleepSamplesResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	result := &domain.ImportSleepSamplesResponse{}
	for i := range req.Samples {
		_, isExisting, err := s.createOne(ctx, userID, &req.Samples[i])
		if err != nil {
			return nil, err
		}
		if isExisting {
			result.Duplicates++
		} else {
			result.Imported++
		}
	}

	return result, nil
}

func (s *sampleService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSampleFilter) (*domain.SleepSampleListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	samples, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(samples) > limit

	// Trim to actual limit
	if hasMore {
		samples = samples[:limit]
	}

	response := &domain.SleepSampleListResponse{
		Data: make([]domain.SleepSampleResponse, len(samples)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, sample := range samples {
		response.Data[i] = sample.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(samples) > 0 {
		last := samples[len(samples)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
