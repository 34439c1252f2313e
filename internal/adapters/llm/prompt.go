package llm

import (
	"fmt"
	"strings"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/i18n"
)

// BuildSystemPrompt composes the persona directive for the active language
// plus, when available, the profile enrichment rendered as a short factual
// appendix. Prior turns are deliberately not included: each completion call
// is stateless from the endpoint's perspective.
func BuildSystemPrompt(lang domain.Language, enrichment *domain.Enrichment) string {
	system := i18n.For(lang).SystemPrompt
	if enrichment == nil {
		return system
	}

	var b strings.Builder
	b.WriteString(system)
	b.WriteString("\n\nVERIFIED PROFILE FACTS (from GitHub):\n")
	if enrichment.Bio != "" {
		b.WriteString(fmt.Sprintf("- Bio: %s\n", enrichment.Bio))
	}
	b.WriteString(fmt.Sprintf("- Public repositories: %d\n", enrichment.RepoCount))
	if len(enrichment.RecentRepos) > 0 {
		b.WriteString(fmt.Sprintf("- Recently updated repositories: %s\n", strings.Join(enrichment.RecentRepos, ", ")))
	}

	return b.String()
}
