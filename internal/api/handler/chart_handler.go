package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stagewatch/sleepchart/internal/domain"
	"github.com/stagewatch/sleepchart/internal/llm"
	"github.com/stagewatch/sleepchart/internal/service"
	"github.com/stagewatch/sleepchart/pkg/problem"
)

type ChartHandler struct {
	chartService    service.ChartService
	insightsService service.InsightsService
}

func NewChartHandler(chartService service.ChartService, insightsService service.InsightsService) *ChartHandler {
	return &ChartHandler{chartService: chartService, insightsService: insightsService}
}

// Weekly handles GET /v1/users/{userId}/chart/weekly
// @Summary Weekly sleep-stage chart
// @Description Compute stacked-segment geometry for a seven-day window in the user's timezone. Defaults to the trailing week ending today.
// @Tags chart
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param week_start query string false "First day of the window (YYYY-MM-DD in the user's timezone)" format(date) example(2024-01-15)
// @Param orientation query string false "Chart orientation" Enums(column, row) default(column)
// @Param preset query string false "Layout preset" Enums(default, compact, large) default(default)
// @Success 200 {object} domain.WeeklyChartResponse "Chart geometry and legend"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/chart/weekly [get]
func (h *ChartHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	req, fieldErrors := parseChartRequest(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.chartService.WeeklyChart(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build weekly chart").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// WeeklyInsights handles GET /v1/users/{userId}/chart/weekly/insights
// @Summary AI commentary on a week of sleep
// @Description Summarize the same seven-day window the chart covers using an LLM. Requires OPENAI_API_KEY to be configured.
// @Tags chart
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param week_start query string false "First day of the window (YYYY-MM-DD in the user's timezone)" format(date) example(2024-01-15)
// @Success 200 {object} domain.WeeklyInsightsResponse "Generated insights"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 503 {object} problem.Problem "Insights service not configured"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/chart/weekly/insights [get]
func (h *ChartHandler) WeeklyInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	req, fieldErrors := parseChartRequest(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.insightsService.Weekly(r.Context(), userID, req.WeekStart)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable):
			problem.New(http.StatusServiceUnavailable, "service-unavailable",
				"Service Unavailable", "Insights generation is not configured").Write(w)
		default:
			problem.InternalError("Failed to generate weekly insights").Write(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseChartRequest(r *http.Request) (*domain.WeeklyChartRequest, []problem.FieldError) {
	req := &domain.WeeklyChartRequest{
		Orientation: domain.OrientationColumn,
		Preset:      "default",
	}
	var fieldErrors []problem.FieldError

	if weekStartStr := r.URL.Query().Get("week_start"); weekStartStr != "" {
		weekStart, err := time.Parse("2006-01-02", weekStartStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "week_start",
				Message: "must be a date in YYYY-MM-DD format",
			})
		} else {
			req.WeekStart = &weekStart
		}
	}

	if orientation := r.URL.Query().Get("orientation"); orientation != "" {
		switch domain.ChartOrientation(orientation) {
		case domain.OrientationColumn, domain.OrientationRow:
			req.Orientation = domain.ChartOrientation(orientation)
		default:
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "orientation",
				Message: "must be one of: column, row",
			})
		}
	}

	if preset := r.URL.Query().Get("preset"); preset != "" {
		switch preset {
		case "default", "compact", "large":
			req.Preset = preset
		default:
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "preset",
				Message: "must be one of: default, compact, large",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return req, nil
}
