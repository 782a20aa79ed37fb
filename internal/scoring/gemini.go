package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiGenerator calls the Gemini generateContent endpoint with a JSON
// response schema and parses the structured result.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		client:  http.DefaultClient,
	}
}

// Generate sends the day summary to Gemini and returns the structured
// feedback. Any transport, status, or parse problem is returned as an error
// for the Service to absorb.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (Feedback, error) {
	if g.apiKey == "" {
		return Feedback{}, fmt.Errorf("no API key configured")
	}

	body := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]any{{"text": buildPrompt(req)}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"score":   map[string]any{"type": "NUMBER"},
					"message": map[string]any{"type": "STRING"},
					"tone":    map[string]any{"type": "STRING", "enum": []string{"danger", "warning", "success"}},
				},
				"required": []string{"score", "message", "tone"},
			},
		},
	}

	bodyJSON, err := json.Marshal(body)
	if err != nil {
		return Feedback{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyJSON))
	if err != nil {
		return Feedback{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return Feedback{}, fmt.Errorf("scoring request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Feedback{}, fmt.Errorf("failed to read scoring response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Feedback{}, fmt.Errorf("scoring service returned %d: %s", resp.StatusCode, string(respBody))
	}

	text := gjson.GetBytes(respBody, "candidates.0.content.parts.0.text").String()
	if strings.TrimSpace(text) == "" {
		return Feedback{}, fmt.Errorf("empty response from scoring service")
	}

	return parseFeedback(text)
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(`Student Name: %s
Total Goals Set: %d
Completed Goals: %s
Missed Goals: %s

Task:
1. Calculate a score out of 100 based on completion and difficulty (assume average difficulty).
2. Provide a short feedback message (max 50 words).
3. If the score is low (below 50), the tone should be strict and warning ("danger"). If medium (50-80), encouraging ("warning"). If high (80+), congratulatory ("success").

Return JSON.`,
		req.UserDisplayName,
		req.TotalGoals,
		strings.Join(req.CompletedGoalTexts, ", "),
		strings.Join(req.MissedGoalTexts, ", "))
}

// parseFeedback validates the generated text against the structural contract:
// numeric score, string message, enumerated tone. The score value itself is
// trusted as returned.
func parseFeedback(text string) (Feedback, error) {
	jsonStr := stripCodeFences(text)

	if !gjson.Valid(jsonStr) {
		return Feedback{}, fmt.Errorf("scoring service returned invalid JSON: %s", text)
	}

	score := gjson.Get(jsonStr, "score")
	message := gjson.Get(jsonStr, "message")
	tone := gjson.Get(jsonStr, "tone")

	if score.Type != gjson.Number {
		return Feedback{}, fmt.Errorf("scoring response missing numeric score")
	}
	if message.Type != gjson.String {
		return Feedback{}, fmt.Errorf("scoring response missing message")
	}
	if tone.Type != gjson.String || !Tone(tone.String()).Valid() {
		return Feedback{}, fmt.Errorf("scoring response has invalid tone: %s", tone.String())
	}

	return Feedback{
		Score:   int(score.Int()),
		Message: message.String(),
		Tone:    Tone(tone.String()),
	}, nil
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models emit even when asked for raw JSON.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx >= 0 {
			s = s[idx+1:]
		}
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-3]
	}
	return strings.TrimSpace(s)
}
