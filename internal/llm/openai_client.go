package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/stagewatch/sleepchart/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep tracking assistant.

You receive one week of aggregated sleep-stage data for a single user: per-day totals, efficiency, quality scores, and summed durations per sleep stage (in bed, core, deep, REM, awake). You must base your conclusions only on the provided data.

Your goals:
- Describe the week's sleep in clear, neutral language.
- Highlight patterns in stage balance (deep vs REM vs core), efficiency, and total duration.
- Point out the strongest and weakest nights of the week.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, wind-down habits, screen use, etc.).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the week, naming the averages and the best/worst nights.",
  "observations": [
    "3-6 bullet points about patterns in stage balance, efficiency, and duration.",
    "If relevant, one item about nights with unusual awake time or low efficiency."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if the nightly totals vary a lot."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing one week of this user's sleep data.

- "days" lists each charted day with its total sleep, efficiency (0-1), and 0-100 quality score.
- "stage_totals" sums each sleep stage's duration across the whole week.
- "average_sleep" is the mean daily total.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating weekly insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a week's context and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, weekCtx *domain.WeeklyInsightsContext) (*domain.LLMWeeklyInsights, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate weekly sleep insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, weekCtx *domain.WeeklyInsightsContext) (*domain.LLMWeeklyInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(weekCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMWeeklyInsights
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
