package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=ai_client.go -destination=mocks/text_generator_mock.go -package=mocks

// TextGenerator is the third-party text-generation collaborator.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	Close() error
}

type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature float32
	// JSON asks the provider for a bare JSON body when it supports that.
	JSON bool
}

type OpenAITextClient struct {
	client *openai.Client
	model  string
}

func NewOpenAITextClient(apiKey, model string) *OpenAITextClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAITextClient{client: openai.NewClient(apiKey), model: model}
}

func (c *OpenAITextClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAITextClient) Close() error { return nil }

type GeminiTextClient struct {
	client *genai.Client
	model  string
}

func NewGeminiTextClient(ctx context.Context, apiKey, model string) (*GeminiTextClient, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTextClient{client: client, model: model}, nil
}

func (c *GeminiTextClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(req.Temperature)
	if req.JSON {
		m.ResponseMIMEType = "application/json"
	}
	if req.System != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String()), nil
}

func (c *GeminiTextClient) Close() error {
	return c.client.Close()
}

// NewTextGenerator picks the provider named by AI_PROVIDER.
func NewTextGenerator(ctx context.Context, provider, apiKey, model string) (TextGenerator, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAITextClient(apiKey, model), nil
	case "gemini":
		return NewGeminiTextClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}

// CleanJSONArray strips markdown fences and chatter around the first JSON
// array in an LLM reply.
func CleanJSONArray(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start == -1 || end < start {
		return response
	}
	return response[start : end+1]
}
