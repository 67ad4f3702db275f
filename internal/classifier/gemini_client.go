package classifier

import (
	"context"
	"fmt"
	"sync"

	"receiptcsv/receipt-csv/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements the AIClient interface against the Google Gemini
// API. The underlying client is created lazily on first use so constructing
// a GeminiClient never performs network work.
type GeminiClient struct {
	apiKey    string
	modelName string
	logger    logging.Logger

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini-backed classification client.
func NewGeminiClient(apiKey, modelName string, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		logger:    logger,
	}
}

func (c *GeminiClient) ensureModel(ctx context.Context) (*genai.GenerativeModel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model != nil {
		return c.model, nil
	}
	if c.apiKey == "" {
		return nil, fmt.Errorf("gemini api key not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	return c.model, nil
}

// GenerateClassification sends the prompt and returns the raw response text
// of the first candidate.
func (c *GeminiClient) GenerateClassification(ctx context.Context, prompt string) (string, error) {
	model, err := c.ensureModel(ctx)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini api")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

// Close releases the underlying API client if one was created.
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.model = nil
	return err
}
