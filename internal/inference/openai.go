package inference

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAI converts diagrams by sending the image to a vision-capable chat
// model and extracting TikZ code from the response.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI-backed strategy. A non-positive timeout leaves
// the HTTP client without a deadline; per-job contexts still bound each call.
func NewOpenAI(apiKey, model string, timeout time.Duration) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = openai.GPT4o
	}

	cfg := openai.DefaultConfig(apiKey)
	if timeout > 0 {
		cfg.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &OpenAI{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

// Infer sends the image with the category prompt and validates the result
func (o *OpenAI) Infer(ctx context.Context, req Request) (string, error) {
	imageURL, err := imageDataURL(req.ImagePath)
	if err != nil {
		return "", err
	}

	prompt := BuildPrompt(req.Category, req.Description)
	if req.TemplateCode != "" {
		prompt += "\n\nUse this template as a starting point:\n" + req.TemplateCode
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: prompt,
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: imageURL},
					},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	code := ExtractTikZ(resp.Choices[0].Message.Content)
	if !HasTikZEnvironment(code) {
		return "", errors.New("model response contains no tikzpicture environment")
	}

	return code, nil
}

// imageDataURL reads the image and encodes it as a data URL for MultiContent
// message parts
func imageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	return fmt.Sprintf("data:%s;base64,%s",
		http.DetectContentType(data),
		base64.StdEncoding.EncodeToString(data),
	), nil
}

// ExtractTikZ strips markdown code fences from a model response
func ExtractTikZ(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return content
	}

	// Drop the opening fence (``` or ```latex) and the closing fence if present.
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
