package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"genfy-be/pkg/llm"
)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultVisionModel handles multimodal image analysis.
	DefaultVisionModel = "meta-llama/llama-3.2-11b-vision-instruct"
	// DefaultPlannerModel is a small text model used for focus-area planning.
	DefaultPlannerModel = "mistralai/mistral-7b-instruct"
)

// Client calls OpenRouter for both image analysis and planner completions.
type Client struct {
	BaseURL      string
	APIKey       string
	VisionModel  string
	PlannerModel string
	Referer      string
	Title        string
	HTTPClient   *http.Client
}

func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, &llm.ConfigError{Provider: "openrouter", Reason: "API key not configured"}
	}
	return &Client{
		BaseURL:      defaultBaseURL,
		APIKey:       apiKey,
		VisionModel:  DefaultVisionModel,
		PlannerModel: DefaultPlannerModel,
		Referer:      "http://localhost:3000",
		Title:        "Genfy",
		HTTPClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}, nil
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature float64      `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// DescribeImage sends the image and an analysis prompt to the vision model.
func (c *Client) DescribeImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	req := chatRequest{
		Model: c.VisionModel,
		Messages: []apiMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURI}},
			},
		}},
	}
	return c.complete(ctx, req)
}

// Complete sends a plain text prompt to the planner model.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	req := chatRequest{
		Model:       c.PlannerModel,
		Messages:    []apiMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}
	return c.complete(ctx, req)
}

func (c *Client) complete(ctx context.Context, payload chatRequest) (string, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("HTTP-Referer", c.Referer)
	req.Header.Set("X-Title", c.Title)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &llm.CallError{Provider: "openrouter", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &llm.CallError{Provider: "openrouter", Err: fmt.Errorf("status %d, body: %s", resp.StatusCode, string(bodyBytes))}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", &llm.CallError{Provider: "openrouter", Err: fmt.Errorf("no response from model")}
	}

	return chatResp.Choices[0].Message.Content, nil
}
