package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"newsdeck/config"
	"newsdeck/domain"
)

const summarizerResponseLimit = 1 << 20

// SummarizerAPIClient calls an OpenAI-compatible chat completions
// endpoint to summarize article text.
type SummarizerAPIClient struct {
	client *http.Client
	cfg    config.SummarizerConfig
	logger *slog.Logger
}

func NewSummarizerAPIClient(client *http.Client, cfg config.SummarizerConfig, logger *slog.Logger) *SummarizerAPIClient {
	return &SummarizerAPIClient{client: client, cfg: cfg, logger: logger}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content messageContent `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// messageContent accepts both response shapes providers serve: a plain
// string, or an array of typed content parts.
type messageContent string

func (c *messageContent) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*c = messageContent(plain)
		return nil
	}

	var parts []struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("unexpected message content shape: %w", err)
	}

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.Text)
	}
	*c = messageContent(b.String())
	return nil
}

// Summarize sends the title and article text to the completion API and
// returns the generated summary. A well-formed response with no usable
// text yields ErrEmptySummary.
func (s *SummarizerAPIClient) Summarize(ctx context.Context, title, articleText string) (string, error) {
	if strings.TrimSpace(articleText) == "" {
		return "", domain.ErrNoContent
	}

	payload := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: "Summarize incoming news articles accurately. " +
					"Respond with important concise bullet points followed by a final line labelled 'Takeaway:'. " +
					"Do not invent facts and avoid marketing language.",
			},
			{
				Role:    "user",
				Content: fmt.Sprintf("Title: %s\n\nArticle:\n%s", title, articleText),
			},
		},
		Temperature: s.cfg.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal summary request: %w", err)
	}

	endpoint := s.cfg.BaseURL + s.cfg.APIPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build summary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	s.logger.Info("requesting article summary", "model", s.cfg.Model)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call summary api: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, summarizerResponseLimit))
	if err != nil {
		return "", fmt.Errorf("read summary response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary api status %d: %s", resp.StatusCode, truncateForLog(raw))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode summary response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", domain.ErrEmptySummary
	}

	summary := strings.TrimSpace(string(parsed.Choices[0].Message.Content))
	if summary == "" {
		return "", domain.ErrEmptySummary
	}
	return summary, nil
}

func truncateForLog(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) > limit {
		return text[:limit] + "..."
	}
	return text
}
