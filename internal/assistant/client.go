// Package assistant asks a chat-completion provider for conversation topics
// tailored to a group of people.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"
	"vivo-app/internal/config"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
)

const (
	defaultModel   = "gpt-4o"
	defaultTimeout = 60 * time.Second
)

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
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type topicPayload struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Difficulty  *string   `json:"difficulty"`
	ZodiacSigns *[]string `json:"zodiacSigns"`
	IsTrending  *bool     `json:"isTrending"`
}

type topicsPayload struct {
	Topics *[]topicPayload `json:"topics"`
}

// Client calls a chat-completions endpoint. It is safe for concurrent use.
type Client struct {
	http        *resty.Client
	endpoint    string
	model       string
	temperature float64
	sanitizer   *bluemonday.Policy
}

// NewClient creates a Client from cfg, filling in the provider defaults for an
// empty model or timeout. The temperature is used as given, so 0 is valid.
func NewClient(cfg config.AssistantConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	return &Client{
		http:        resty.New().SetTimeout(timeout),
		endpoint:    cfg.Endpoint,
		model:       model,
		temperature: cfg.Temperature,
		// Suggested text is shown verbatim to users, so all markup is stripped.
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// SuggestTopics sends one completion request describing people and returns the
// topics the provider suggested, numbered from 1. There is no retry.
func (c *Client) SuggestTopics(ctx context.Context, apiKey string, people []Person, languageCode string) ([]ZodiacTopic, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}
	if err := ValidatePeople(people); err != nil {
		return nil, err
	}

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: BuildUserPrompt(people, languageCode)},
		},
		Temperature: c.temperature,
	}

	resp, err := c.http.R().SetContext(ctx).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var completion chatResponse
	if err := json.Unmarshal(resp.Body(), &completion); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return c.decodeTopics(completion.Choices[0].Message.Content)
}

func (c *Client) decodeTopics(content string) ([]ZodiacTopic, error) {
	var payload topicsPayload
	if err := json.Unmarshal([]byte(ExtractJSON(content)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodingFailed, err)
	}
	if payload.Topics == nil {
		return nil, fmt.Errorf("%w: missing topics", ErrDecodingFailed)
	}

	topics := make([]ZodiacTopic, 0, len(*payload.Topics))
	for i, item := range *payload.Topics {
		if item.Title == nil || item.Description == nil || item.Difficulty == nil || item.ZodiacSigns == nil {
			return nil, fmt.Errorf("%w: topic %d is incomplete", ErrDecodingFailed, i+1)
		}
		signs := make([]string, len(*item.ZodiacSigns))
		for j, s := range *item.ZodiacSigns {
			signs[j] = c.plainText(s)
		}
		topics = append(topics, ZodiacTopic{
			ID:          i + 1,
			Title:       c.plainText(*item.Title),
			Description: c.plainText(*item.Description),
			Difficulty:  c.plainText(*item.Difficulty),
			ZodiacSigns: signs,
			IsTrending:  item.IsTrending != nil && *item.IsTrending,
		})
	}
	return topics, nil
}

// plainText strips markup from s. bluemonday escapes the text it keeps, so the
// result is unescaped again; the fields are plain text, not HTML.
func (c *Client) plainText(s string) string {
	return html.UnescapeString(c.sanitizer.Sanitize(s))
}
