package assistant

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps the OpenAI chat completion API for the store assistant.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
}

func NewClient(apiKey string) *Client {
	if apiKey == "" {
		log.Println("⚠️ OPENAI_API_KEY is empty, assistant will not work")
	}

	return &Client{
		client:      openai.NewClient(apiKey),
		model:       "gpt-4o-mini",
		temperature: 0.6,
		maxTokens:   400,
	}
}

// GenerateReply forwards the user message with the rendered store context
// and returns the assistant's answer.
func (c *Client) GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("openai error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choice returned")
	}
	return resp.Choices[0].Message.Content, nil
}
