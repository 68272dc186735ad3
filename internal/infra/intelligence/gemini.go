package intelligence

import (
	"context"
	"strings"

	"quinta-booking/internal/pkg/errs"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrEmptyResponse = errs.New("model returned no content")

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, func(), error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create gemini client")
	}
	cleanup := func() { _ = client.Close() }
	return &GeminiClient{client: client, modelName: modelName}, cleanup, nil
}

func (g *GeminiClient) Generate(ctx context.Context, systemInstruction, message string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(message))
	if err != nil {
		return "", errs.Wrap(err, "gemini generate error")
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
