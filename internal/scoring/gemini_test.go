package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func geminiServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(status)
		if status != http.StatusOK {
			fmt.Fprint(w, `{"error": {"message": "boom"}}`)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testGenerator(server *httptest.Server) *GeminiGenerator {
	gen := NewGeminiGenerator("test-key", "gemini-2.5-flash")
	gen.baseURL = server.URL
	return gen
}

func TestGeminiGenerateParsesStructuredResult(t *testing.T) {
	server := geminiServer(t, http.StatusOK, `{"score": 85, "message": "Well done.", "tone": "success"}`)
	defer server.Close()

	got, err := testGenerator(server).Generate(context.Background(), Request{TotalGoals: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 85 || got.Message != "Well done." || got.Tone != ToneSuccess {
		t.Errorf("unexpected feedback: %+v", got)
	}
}

func TestGeminiGenerateStripsCodeFences(t *testing.T) {
	server := geminiServer(t, http.StatusOK, "```json\n{\"score\": 40, \"message\": \"Focus.\", \"tone\": \"danger\"}\n```")
	defer server.Close()

	got, err := testGenerator(server).Generate(context.Background(), Request{TotalGoals: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Score != 40 || got.Tone != ToneDanger {
		t.Errorf("unexpected feedback: %+v", got)
	}
}

func TestGeminiGenerateRejectsInvalidJSON(t *testing.T) {
	server := geminiServer(t, http.StatusOK, "I had a great day, thanks for asking!")
	defer server.Close()

	if _, err := testGenerator(server).Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestGeminiGenerateRejectsSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing score", `{"message": "hi", "tone": "success"}`},
		{"string score", `{"score": "85", "message": "hi", "tone": "success"}`},
		{"missing message", `{"score": 85, "tone": "success"}`},
		{"unknown tone", `{"score": 85, "message": "hi", "tone": "jubilant"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := geminiServer(t, http.StatusOK, tt.text)
			defer server.Close()

			if _, err := testGenerator(server).Generate(context.Background(), Request{}); err == nil {
				t.Error("expected schema mismatch error")
			}
		})
	}
}

func TestGeminiGenerateRejectsEmptyResponse(t *testing.T) {
	server := geminiServer(t, http.StatusOK, "")
	defer server.Close()

	if _, err := testGenerator(server).Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error for empty candidate text")
	}
}

func TestGeminiGenerateRejectsHTTPError(t *testing.T) {
	server := geminiServer(t, http.StatusInternalServerError, "")
	defer server.Close()

	if _, err := testGenerator(server).Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error for 500 response")
	}
}

func TestGeminiGenerateRequiresAPIKey(t *testing.T) {
	gen := NewGeminiGenerator("", "gemini-2.5-flash")
	if _, err := gen.Generate(context.Background(), Request{}); err == nil {
		t.Error("expected error when no API key is configured")
	}
}
