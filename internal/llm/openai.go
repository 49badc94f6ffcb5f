package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const (
	defaultChatTimeout     = 30 * time.Second
	defaultChatTemperature = 0.7
	defaultMaxTokens       = 1024
)

// OpenAIClient calls an OpenAI-compatible Chat Completions API. A custom
// base URL lets the same client talk to hosts like Groq.
type OpenAIClient struct {
	model  openai.ChatModel
	client *openai.Client
}

// NewOpenAIClient builds a client; baseURL may be empty for api.openai.com.
func NewOpenAIClient(apiKey, baseURL string, model openai.ChatModel) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}
	if model == "" {
		model = openai.ChatModelGPT4oMini
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &OpenAIClient{
		model:  model,
		client: &cli,
	}, nil
}

// Complete sends the prompt as a single user message and returns the raw text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.chat(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            buildMessages(prompt),
		Temperature:         openai.Float(defaultChatTemperature),
		MaxCompletionTokens: openai.Int(defaultMaxTokens),
	})
	if err != nil {
		return "", err
	}
	return resp, nil
}

// CompleteJSON requests structured output for the given schema and returns
// the raw JSON bytes of the model's object.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, prompt string, schema Schema) ([]byte, error) {
	resp, err := c.chat(ctx, openai.ChatCompletionNewParams{
		Model:               c.model,
		Messages:            buildMessages(prompt),
		Temperature:         openai.Float(defaultChatTemperature),
		MaxCompletionTokens: openai.Int(defaultMaxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schema.Name,
					Schema: schema.Definition,
					Strict: openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	if !json.Valid([]byte(resp)) {
		return nil, fmt.Errorf("%w: %.200s", ErrMalformedOutput, resp)
	}
	return []byte(resp), nil
}

func (c *OpenAIClient) chat(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("nil openai client")
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrUnexpectedResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func buildMessages(prompt string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(prompt),
				},
			},
		},
	}
}
