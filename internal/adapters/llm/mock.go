package llm

import (
	"context"
	"fmt"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
)

// MockClient is a canned CompletionClient for local development and tests.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Complete(
	ctx context.Context,
	userText string,
	lang domain.Language,
	enrichment *domain.Enrichment,
) (*domain.Answer, error) {
	if lang == domain.LangEN {
		return &domain.Answer{
			Text: fmt.Sprintf("Juanma would love to answer %q, but this is a local build without the real assistant.", userText),
		}, nil
	}
	return &domain.Answer{
		Text: fmt.Sprintf("A Juanma le encantaría responder %q, pero esto es un entorno local sin el asistente real.", userText),
	}, nil
}
