package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join("testdata", "cards.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &fx
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Cards) == 0 {
		t.Fatal("expected cards in fixture")
	}
	if fx.Default.Title != "" {
		t.Errorf("default title=%q, want empty", fx.Default.Title)
	}
}

func completionRequest(urls ...string) string {
	parts := []map[string]any{{"type": "text", "text": "Identify this card."}}
	for _, u := range urls {
		parts = append(parts, map[string]any{"type": "image_url", "image_url": map[string]string{"url": u}})
	}
	body, _ := json.Marshal(map[string]any{
		"model": "test-vision",
		"messages": []map[string]any{
			{"role": "system", "content": "You identify trading cards from photos."},
			{"role": "user", "content": parts},
		},
	})
	return string(body)
}

func extractFields(t *testing.T, w *httptest.ResponseRecorder) cardFields {
	t.Helper()
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("choices=%d, want 1", len(resp.Choices))
	}
	var fields cardFields
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &fields); err != nil {
		t.Fatalf("parsing content: %v", err)
	}
	return fields
}

func TestCompletionsHandler_MatchesImageURL(t *testing.T) {
	handler := completionsHandler(testLogger(), loadTestFixture(t))
	body := completionRequest("https://cdn.example/cards/gengar_front.jpg", "https://cdn.example/cards/gengar_back.jpg")
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	fields := extractFields(t, w)
	if fields.Title != "Gengar" {
		t.Errorf("title=%q, want Gengar", fields.Title)
	}
	if fields.Set != "Fossil" {
		t.Errorf("set=%q, want Fossil", fields.Set)
	}
	if fields.Condition != "LP" {
		t.Errorf("condition=%q, want LP", fields.Condition)
	}
}

func TestCompletionsHandler_NoMatchReturnsDefault(t *testing.T) {
	handler := completionsHandler(testLogger(), loadTestFixture(t))
	body := completionRequest("https://cdn.example/cards/unknown.jpg")
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler(w, req)

	fields := extractFields(t, w)
	if fields.Title != "" {
		t.Errorf("title=%q, want empty for unmatched image", fields.Title)
	}
}

func TestCompletionsHandler_BadBody(t *testing.T) {
	handler := completionsHandler(testLogger(), loadTestFixture(t))
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/completions", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestImageURLs_SkipsSystemMessage(t *testing.T) {
	var req chatRequest
	if err := json.Unmarshal([]byte(completionRequest("https://cdn.example/a.jpg")), &req); err != nil {
		t.Fatalf("unmarshaling request: %v", err)
	}
	urls := imageURLs(&req)
	if len(urls) != 1 || urls[0] != "https://cdn.example/a.jpg" {
		t.Errorf("urls=%v, want one entry", urls)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
