package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const visionSystemPrompt = `You identify trading cards from photos. ` +
	`Respond with a JSON object with string fields: title, set, condition, numbering, notes. ` +
	`Use an empty string for anything you cannot read. ` +
	`condition must be one of: M, NM, EX, VG, GD, LP, SP, MP, HP, Poor, or empty.`

// OpenAIVision implements Extractor against the OpenAI chat completions
// API with image inputs. Compatible with any endpoint speaking the same
// protocol. The API key comes from the OPENAI_API_KEY environment
// variable unless overridden.
type OpenAIVision struct {
	endpoint string
	model    string
	apiKey   string
	client   *http.Client
}

// OpenAIVisionOption configures the OpenAIVision backend.
type OpenAIVisionOption func(*OpenAIVision)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) OpenAIVisionOption {
	return func(b *OpenAIVision) {
		b.client = c
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(key string) OpenAIVisionOption {
	return func(b *OpenAIVision) {
		b.apiKey = key
	}
}

// NewOpenAIVision creates a vision backend for the given chat completions
// endpoint and model.
func NewOpenAIVision(endpoint, model string, opts ...OpenAIVisionOption) *OpenAIVision {
	b := &OpenAIVision{
		endpoint: endpoint,
		model:    model,
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (*OpenAIVision) Name() string {
	return "openai_vision"
}

type visionChatRequest struct {
	Model       string          `json:"model"`
	Messages    []visionMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	ResponseFmt *visionRespFmt  `json:"response_format,omitempty"`
}

type visionMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"` // string for system, []visionPart for user
}

type visionPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *visionImageURL `json:"image_url,omitempty"`
}

type visionImageURL struct {
	URL string `json:"url"`
}

type visionRespFmt struct {
	Type string `json:"type"`
}

type visionChatResponse struct {
	Choices []visionChoice `json:"choices"`
}

type visionChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// ExtractCard sends the given image URLs in one chat completion request
// and parses the JSON object the model returns.
func (b *OpenAIVision) ExtractCard(ctx context.Context, imageURLs []string) (*CardFields, error) {
	if len(imageURLs) == 0 {
		return nil, fmt.Errorf("no images to extract from")
	}

	parts := []visionPart{
		{Type: "text", Text: "Identify this card."},
	}
	for _, u := range imageURLs {
		parts = append(parts, visionPart{Type: "image_url", ImageURL: &visionImageURL{URL: u}})
	}

	chatReq := visionChatRequest{
		Model: b.model,
		Messages: []visionMessage{
			{Role: "system", Content: visionSystemPrompt},
			{Role: "user", Content: parts},
		},
		MaxTokens:   300,
		ResponseFmt: &visionRespFmt{Type: "json_object"},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling vision API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var chatResp visionChatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("empty choices from vision API")
	}

	var fields CardFields
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &fields); err != nil {
		return nil, fmt.Errorf("parsing extracted fields: %w", err)
	}
	return &fields, nil
}
