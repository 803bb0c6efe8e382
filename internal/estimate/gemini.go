package estimate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	geminiDefaultModel  = "gemini-2.0-flash"
	geminiClientTimeout = 30 * time.Second
)

func init() {
	RegisterFactory("gemini", func(config map[string]any) (Estimator, error) {
		apiKey, _ := config["api_key"].(string)
		if apiKey == "" {
			apiKey = os.Getenv("GOOGLE_API_KEY")
		}
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY not set")
		}

		model, _ := config["model"].(string)
		if model == "" {
			model = geminiDefaultModel
		}

		ctx, cancel := context.WithTimeout(context.Background(), geminiClientTimeout)
		defer cancel()
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}

		return NewGeminiEstimator(client, model), nil
	})
}

// GeminiEstimator asks a Gemini model for a structured nutrition guess
// using JSON response mode.
type GeminiEstimator struct {
	client *genai.Client
	model  string
}

// NewGeminiEstimator creates an estimator around an existing client.
func NewGeminiEstimator(client *genai.Client, model string) *GeminiEstimator {
	return &GeminiEstimator{client: client, model: model}
}

// Name returns the provider name.
func (e *GeminiEstimator) Name() string { return "gemini" }

// Estimate sends the description to the model and parses the JSON reply.
func (e *GeminiEstimator) Estimate(ctx context.Context, text string) (*Estimation, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr(float32(0.1)),
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: estimatorPrompt}},
		},
	}

	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{{Text: text}}},
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini completion: %w", err)
	}

	var est Estimation
	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return nil, fmt.Errorf("gemini completion: empty response")
	}
	if err := json.Unmarshal([]byte(content), &est); err != nil {
		return nil, fmt.Errorf("gemini completion: malformed JSON: %w", err)
	}
	return &est, nil
}
