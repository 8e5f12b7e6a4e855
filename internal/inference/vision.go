package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ocrPrompt instructs the model to transcribe a handwritten problem image
const ocrPrompt = `You are an expert OCR system specialized in reading handwritten physics problems.

Extract all text from the image, including:
- Problem statements
- Mathematical equations and symbols
- Numerical values and units
- Questions being asked
- Given information

Preserve the structure and formatting as much as possible.
Use standard notation:
- Greek letters: θ (theta), μ (mu), etc.
- Superscripts: m/s², kg·m/s, etc.
- Fractions: 1/2, 3/4, etc.

Return ONLY the extracted text, nothing else.`

// ReadText transcribes the problem statement in the image. It backs the
// solver's vision OCR pass.
func (o *OpenAI) ReadText(ctx context.Context, imagePath string) (string, error) {
	imageURL, err := imageDataURL(imagePath)
	if err != nil {
		return "", err
	}

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: ocrPrompt,
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

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
