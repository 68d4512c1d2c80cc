package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tmori/gutcheck/internal/config"
	"github.com/tmori/gutcheck/internal/model"
)

const systemPrompt = `You are a gut-health coach. You receive a JSON object with a user's 7-day
score breakdown and daily summaries. Reply with ONLY a JSON object shaped as:
{"headline":"...","top_action":"...",
 "domains":{"nutrition":{"insight":"...","tips":["..."],"correlation":"..."},
            "supplementation":{...},"elimination":{...},"lifestyle":{...}},
 "stage_hints":{"deep":"...","rem":"...","core":"...","awake":"..."},
 "rebound_message":"...","cross_insights":["..."]}
Fill stage_hints only for the stages flagged in hint_flags and
rebound_message only when has_rebound is true. Keep every text short,
concrete and grounded in the numbers you were given.`

// OpenAIGenerator asks any OpenAI-compatible chat-completions API for the
// narrative. One request, bounded timeout, no retries.
type OpenAIGenerator struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewOpenAIGenerator builds the generator from config.
func NewOpenAIGenerator(cfg config.NarrativeConfig) *OpenAIGenerator {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	mdl := cfg.Model
	if mdl == "" {
		mdl = "gpt-4o-mini"
	}
	return &OpenAIGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   mdl,
		client:  &http.Client{Timeout: cfg.Timeout()},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate performs the single request-response exchange. Any failure is
// returned to the caller, which degrades to an empty narrative.
func (g *OpenAIGenerator) Generate(ctx context.Context, in Input) (*model.Narrative, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}

	body, _ := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
		Temperature:    0.4,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("narrative request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("narrative error %d: %s", resp.StatusCode, string(b))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no completion returned")
	}

	var nar model.Narrative
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &nar); err != nil {
		return nil, fmt.Errorf("unparseable narrative: %w", err)
	}
	return &nar, nil
}
