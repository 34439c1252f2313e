package domain

import "context"

// CompletionClient defines how the core application talks to the remote
// completion service. One user message in, one answer (or classified failure)
// out. Implementations must not retry on their own.
type CompletionClient interface {
	Complete(ctx context.Context, userText string, lang Language, enrichment *Enrichment) (*Answer, error)
}

// Enricher exposes the profile snapshot fetched at startup. Snapshot returns
// nil while the fetch has not resolved (or failed); callers just proceed
// without it.
type Enricher interface {
	Snapshot() *Enrichment
}

// ConnectivityProbe is the ambient "is the network reachable" signal,
// consulted synchronously before attempting a completion call.
type ConnectivityProbe interface {
	Online() bool
}
