package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator produces advice and a prediction from a prepared payload.
// Implementations may call an external model or answer locally.
type Generator interface {
	Generate(ctx context.Context, payload Payload) (*Response, error)
}

// StubGenerator reports that no model was consulted. Process turns its nil
// response into simulated placeholders.
type StubGenerator struct{}

// Generate always returns a nil response without error.
func (StubGenerator) Generate(_ context.Context, _ Payload) (*Response, error) {
	return nil, nil
}

// GeminiGenerator asks the Gemini API for spending advice. The client is
// created lazily on first use.
type GeminiGenerator struct {
	apiKey    string
	modelName string

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator creates a generator for the given API key and model
// name.
func NewGeminiGenerator(apiKey, modelName string) *GeminiGenerator {
	return &GeminiGenerator{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

func (g *GeminiGenerator) ensureClient(ctx context.Context) error {
	if g.client != nil {
		return nil
	}
	if g.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	g.client = client
	g.model = client.GenerativeModel(g.modelName)
	return nil
}

// Generate sends the payload to Gemini and parses the structured reply.
func (g *GeminiGenerator) Generate(ctx context.Context, payload Payload) (*Response, error) {
	if err := g.ensureClient(ctx); err != nil {
		return nil, err
	}

	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	prompt := fmt.Sprintf(`You are a personal finance assistant. Analyze the following
monthly bank statement summary and expense breakdown:

%s

Respond in Chinese, in this format:
Advice: [One or two sentences of concrete spending advice]
Prediction: [One sentence predicting next month's spending]`, payloadJSON)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return parseResponse(text), nil
}

// parseResponse extracts the labelled lines from the model reply. Missing
// labels leave the field empty, which Process replaces with markers.
func parseResponse(text string) *Response {
	resp := Response{Status: "success"}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Advice:"):
			resp.Advice = strings.TrimSpace(strings.TrimPrefix(line, "Advice:"))
		case strings.HasPrefix(line, "Prediction:"):
			resp.Prediction = strings.TrimSpace(strings.TrimPrefix(line, "Prediction:"))
		}
	}
	return &resp
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	g.model = nil
	return err
}
