package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepSample is one contiguous interval carrying a single stage label.
// Samples are written once during import and never mutated.
type SleepSample struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_sleep_samples_user_start" json:"user_id"`
	Stage           SleepStage `gorm:"type:varchar(32);not null" json:"stage"`
	StartAt         time.Time  `gorm:"not null;index:idx_sleep_samples_user_start,sort:desc" json:"start_at"`
	EndAt           time.Time  `gorm:"not null" json:"end_at"`
	ClientRequestID *string    `gorm:"type:varchar(255);uniqueIndex:idx_sample_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepSample) TableName() string {
	return "sleep_samples"
}

// Duration is the elapsed span of the sample. Non-negative for any sample
// that passed input validation (end_at >= start_at).
func (s SleepSample) Duration() time.Duration {
	return s.EndAt.Sub(s.StartAt)
}

// CreateSleepSampleRequest is the request body for recording one sample.
// @Description A single stage interval from a health-data source.
type CreateSleepSampleRequest struct {
	// Stage classification for this interval
	Stage SleepStage `json:"stage" validate:"required,sleep_stage" example:"asleep_core" enums:"in_bed,asleep_unspecified,asleep_core,asleep_deep,asleep_rem,awake"`
	// Interval start in RFC3339 format (UTC recommended)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-15T23:00:00Z"`
	// Interval end in RFC3339 format (must not precede start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtefield=StartAt" example:"2024-01-16T01:45:00Z"`
	// Optional client-generated ID for idempotent sync (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"healthkit-sample-8842"`
}

// ImportSleepSamplesRequest is the request body for a batch sync from a
// platform health-data source.
// @Description Batch of stage intervals, typically a full night or week export.
type ImportSleepSamplesRequest struct {
	// Samples to import, ordered or unordered
	Samples []CreateSleepSampleRequest `json:"samples" validate:"required,min=1,max=1000,dive"`
}

// SleepSampleResponse is the response body for sample endpoints.
// @Description Stored stage interval.
type SleepSampleResponse struct {
	// Unique sample identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Owner user ID
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Stage classification
	Stage SleepStage `json:"stage" example:"asleep_core"`
	// Interval start (UTC)
	StartAt time.Time `json:"start_at" example:"2024-01-15T23:00:00Z"`
	// Interval end (UTC)
	EndAt time.Time `json:"end_at" example:"2024-01-16T01:45:00Z"`
	// Interval length in seconds
	DurationSeconds float64 `json:"duration_seconds" example:"9900"`
	// Client-provided request ID (if any)
	ClientRequestID *string `json:"client_request_id,omitempty" example:"healthkit-sample-8842"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (s *SleepSample) ToResponse() SleepSampleResponse {
	return SleepSampleResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Stage:           s.Stage,
		StartAt:         s.StartAt,
		EndAt:           s.EndAt,
		DurationSeconds: s.Duration().Seconds(),
		ClientRequestID: s.ClientRequestID,
		CreatedAt:       s.CreatedAt,
	}
}

// ImportSleepSamplesResponse summarizes a batch import.
// @Description Counts of newly stored and previously seen samples.
type ImportSleepSamplesResponse struct {
	// Number of samples stored by this request
	Imported int `json:"imported" example:"42"`
	// Number of samples skipped as idempotent duplicates
	Duplicates int `json:"duplicates" example:"3"`
}

// SleepSampleListResponse is the response body for listing samples.
// @Description Paginated list of stage intervals.
type SleepSampleListResponse struct {
	// Array of sample records
	Data []SleepSampleResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SleepSampleFilter contains filter parameters for listing samples.
type SleepSampleFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
