package domain

import "fmt"

// Citation is a grounding reference reported by the completion endpoint
// when it used search augmentation.
type Citation struct {
	Title string
	URI   string
}

// Turn represents any message in the conversation log (user, assistant or error).
// Turns are immutable once appended.
type Turn struct {
	ID        TurnID
	Role      Role
	Text      string
	CreatedAt Timestamp

	// Citations is only set on assistant turns backed by a grounded answer.
	Citations []Citation
}

// Enrichment is an auxiliary public-profile snapshot appended to the system
// instruction to improve answer relevance. Best effort: the conversation
// works fine without it.
type Enrichment struct {
	Bio         string
	RepoCount   int
	RecentRepos []string
	FetchedAt   Timestamp
}

// Answer is a successful completion result.
type Answer struct {
	Text      string
	Citations []Citation
}

// CompletionError is the only error type the completion client surfaces.
// The cause stays operator-only; end users get one generic message per kind.
type CompletionError struct {
	Kind  FailureKind
	cause error
}

func NewCompletionError(kind FailureKind, cause error) *CompletionError {
	return &CompletionError{Kind: kind, cause: cause}
}

func (e *CompletionError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("completion failed (%s)", e.Kind)
	}
	return fmt.Sprintf("completion failed (%s): %v", e.Kind, e.cause)
}

func (e *CompletionError) Unwrap() error {
	return e.cause
}
