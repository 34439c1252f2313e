// Package enrich fetches a best-effort public-profile snapshot used to enrich
// the completion system prompt. Failures here are invisible to end users: the
// assistant simply answers without the extra context.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/observability"
)

const recentRepoLimit = 5

// GitHubEnricher fetches the user profile and recent repositories from the
// public GitHub REST API. The fetch runs at most once per process.
type GitHubEnricher struct {
	baseURL string
	user    string
	client  *http.Client

	once sync.Once

	mu   sync.RWMutex
	snap *domain.Enrichment
}

func NewGitHubEnricher(baseURL, user string) *GitHubEnricher {
	return &GitHubEnricher{
		baseURL: baseURL,
		user:    user,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type githubUser struct {
	Bio         string `json:"bio"`
	PublicRepos int    `json:"public_repos"`
}

type githubRepo struct {
	Name string `json:"name"`
}

// Prefetch resolves the enrichment snapshot. Safe to call more than once;
// only the first call does work. Never returns an error: on any failure the
// snapshot stays absent and a diagnostic is logged for operators.
func (e *GitHubEnricher) Prefetch(ctx context.Context) {
	e.once.Do(func() {
		log := observability.LoggerFromContext(ctx).With("github_user", e.user)

		var (
			wg      sync.WaitGroup
			user    githubUser
			repos   []githubRepo
			userErr error
			repoErr error
		)

		wg.Add(2)
		go func() {
			defer wg.Done()
			userErr = e.getJSON(ctx, fmt.Sprintf("%s/users/%s", e.baseURL, e.user), &user)
		}()
		go func() {
			defer wg.Done()
			url := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", e.baseURL, e.user, recentRepoLimit)
			repoErr = e.getJSON(ctx, url, &repos)
		}()
		wg.Wait()

		if userErr != nil || repoErr != nil {
			observability.EnrichmentFailuresTotal.Inc()
			log.Debug("profile enrichment unavailable", "user_error", userErr, "repos_error", repoErr)
			return
		}

		names := make([]string, 0, len(repos))
		for _, r := range repos {
			if r.Name != "" {
				names = append(names, r.Name)
			}
		}

		e.mu.Lock()
		e.snap = &domain.Enrichment{
			Bio:         user.Bio,
			RepoCount:   user.PublicRepos,
			RecentRepos: names,
			FetchedAt:   time.Now(),
		}
		e.mu.Unlock()

		log.Info("profile enrichment resolved", "repo_count", user.PublicRepos)
	})
}

// Snapshot returns the resolved enrichment, or nil while absent.
func (e *GitHubEnricher) Snapshot() *domain.Enrichment {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

func (e *GitHubEnricher) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: unexpected status %d", url, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s: %w", url, err)
	}
	return nil
}

// NoopEnricher always reports an absent snapshot. Used when enrichment is
// disabled by configuration.
type NoopEnricher struct{}

func (NoopEnricher) Snapshot() *domain.Enrichment { return nil }
