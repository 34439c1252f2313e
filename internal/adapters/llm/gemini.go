package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/i18n"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a CompletionClient against the hosted Gemini API.
// The credential comes from deployment configuration and is never surfaced
// past this package.
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Complete implements domain.CompletionClient. One call per user turn, no
// retries. Every failure collapses to a service-kind CompletionError; the
// cause is logged for operators only.
func (g *GeminiClient) Complete(
	ctx context.Context,
	userText string,
	lang domain.Language,
	enrichment *domain.Enrichment,
) (*domain.Answer, error) {
	log := observability.LoggerFromContext(ctx).With("model", g.modelName, "lang", lang)

	system := BuildSystemPrompt(lang, enrichment)
	contents := []*genai.Content{
		genai.NewContentFromText(userText, genai.RoleUser),
	}

	temp := float32(0.7)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   int32(2048),
		// Search augmentation lets the model ground answers in the live
		// LinkedIn/GitHub profiles named in the persona prompt.
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	res, err := g.client.Models.GenerateContent(ctx, g.modelName, contents, cfg)
	if err != nil {
		log.Error("gemini generate content failed", "error", err)
		return nil, domain.NewCompletionError(domain.FailureService, fmt.Errorf("gemini generate content: %w", err))
	}
	if res == nil {
		log.Error("gemini returned nil response")
		return nil, domain.NewCompletionError(domain.FailureService, fmt.Errorf("gemini returned nil response"))
	}

	return buildAnswer(res, lang), nil
}

// buildAnswer converts a raw endpoint response into the domain answer. An
// empty body becomes the fixed fallback phrase for the language instead of an
// empty bubble.
func buildAnswer(res *genai.GenerateContentResponse, lang domain.Language) *domain.Answer {
	text := res.Text()
	if text == "" {
		text = i18n.For(lang).EmptyAnswer
	}

	return &domain.Answer{
		Text:      text,
		Citations: extractCitations(res),
	}
}

// extractCitations pulls the {title, uri} grounding references out of the
// response, keeping only entries that carry a usable URI.
func extractCitations(res *genai.GenerateContentResponse) []domain.Citation {
	if len(res.Candidates) == 0 {
		return nil
	}

	meta := res.Candidates[0].GroundingMetadata
	if meta == nil {
		return nil
	}

	var citations []domain.Citation
	for _, chunk := range meta.GroundingChunks {
		if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		citations = append(citations, domain.Citation{
			Title: chunk.Web.Title,
			URI:   chunk.Web.URI,
		})
	}

	return citations
}
