package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"

	"ringbook/internal/config"
)

// Client talks to an OpenAI-compatible chat completions endpoint. Both
// supported providers expose one: OpenAI natively, Google through its
// compatibility surface.
type Client struct {
	apiKey string
	client *fasthttp.Client
}

const (
	openAIBaseURL = "https://api.openai.com/v1"
	googleBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
)

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey: cfg.AIAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     10,
			ReadTimeout:         90 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one user prompt and returns the model's reply text.
func (c *Client) Complete(ctx context.Context, provider, model, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("AI API key not configured")
	}
	if model == "" {
		return "", fmt.Errorf("AI model not configured in preferences")
	}

	baseURL := openAIBaseURL
	if provider == "Google" {
		baseURL = googleBaseURL
	}

	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(baseURL + "/chat/completions")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.SetBody(body)

	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return "", fmt.Errorf("AI request failed: %w", err)
	}

	var result chatResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to decode AI response: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		if result.Error != nil {
			return "", fmt.Errorf("AI API error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("AI API error: %d", resp.StatusCode())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI response contained no choices")
	}
	return result.Choices[0].Message.Content, nil
}
