// Package main implements a mock vision API server for local development.
// It speaks the OpenAI chat completions protocol and answers every request
// with card fields from a JSON fixture, keyed by substrings of the image
// URLs in the request, so the queue engine can run without a real model.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

type fixture struct {
	// Cards maps a substring of an image URL to the fields to return.
	Cards map[string]cardFields `json:"cards"`
	// Default is returned when no substring matches.
	Default cardFields `json:"default"`
}

type cardFields struct {
	Title     string `json:"title"`
	Set       string `json:"set"`
	Condition string `json:"condition"`
	Numbering string `json:"numbering"`
	Notes     string `json:"notes"`
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string          `json:"role"`
		Content json.RawMessage `json:"content"`
	} `json:"messages"`
}

type contentPart struct {
	Type     string `json:"type"`
	ImageURL *struct {
		URL string `json:"url"`
	} `json:"image_url"`
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-vision/testdata/cards.json", "path to card fields fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "cards", len(fx.Cards))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", completionsHandler(logger, fx))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock vision server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func completionsHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
			return
		}

		urls := imageURLs(&req)
		fields := fx.Default
		matched := "default"
		for substr, f := range fx.Cards {
			for _, u := range urls {
				if strings.Contains(u, substr) {
					fields = f
					matched = substr
					break
				}
			}
		}

		content, err := json.Marshal(fields)
		if err != nil {
			http.Error(w, `{"error":"encoding fields"}`, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]any{
			"model": req.Model,
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": string(content)}},
			},
		})
		logger.Info("completion", "model", req.Model, "images", len(urls), "matched", matched, "title", fields.Title)
	}
}

// imageURLs pulls image URLs out of the user message content parts.
// System messages carry plain string content and are skipped.
func imageURLs(req *chatRequest) []string {
	var urls []string
	for _, msg := range req.Messages {
		var parts []contentPart
		if err := json.Unmarshal(msg.Content, &parts); err != nil {
			continue
		}
		for _, p := range parts {
			if p.Type == "image_url" && p.ImageURL != nil {
				urls = append(urls, p.ImageURL.URL)
			}
		}
	}
	return urls
}
