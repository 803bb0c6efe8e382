package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const openaiDefaultModel = openai.GPT4oMini

func init() {
	RegisterFactory("openai", func(config map[string]any) (Estimator, error) {
		apiKey, _ := config["api_key"].(string)
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}

		model, _ := config["model"].(string)
		if model == "" {
			model = openaiDefaultModel
		}

		return NewOpenAIEstimator(openai.NewClient(apiKey), model), nil
	})
}

// estimatorPrompt instructs the model to answer with the Estimation JSON
// shape only. Confidence is the model's own certainty about the guess.
const estimatorPrompt = `You are a nutrition estimator. The user describes food in free text, usually in Russian.
Respond with a single JSON object and nothing else:
{"food_name": string, "quantity_grams": number, "calories": number, "protein": number, "fat": number, "carbs": number, "confidence": number}
calories/protein/fat/carbs are totals for the described quantity, not per 100 g.
confidence is between 0 and 1. If the text does not describe food, use confidence 0.`

// OpenAIEstimator asks an OpenAI chat model for a structured nutrition
// guess.
type OpenAIEstimator struct {
	client *openai.Client
	model  string
}

// NewOpenAIEstimator creates an estimator around an existing client.
func NewOpenAIEstimator(client *openai.Client, model string) *OpenAIEstimator {
	return &OpenAIEstimator{client: client, model: model}
}

// Name returns the provider name.
func (e *OpenAIEstimator) Name() string { return "openai" }

// Estimate sends the description to the chat model and parses the JSON
// reply. Any transport or decoding failure is returned as an error; the
// caller degrades to the keyword path.
func (e *OpenAIEstimator) Estimate(ctx context.Context, text string) (*Estimation, error) {
	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		Temperature: 0.1,
		MaxTokens:   200,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: estimatorPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai completion: empty response")
	}

	var est Estimation
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &est); err != nil {
		return nil, fmt.Errorf("openai completion: malformed JSON: %w", err)
	}
	return &est, nil
}
