package assistant

import "errors"

var (
	// ErrEmptyInput: blank submissions are ignored, no state change.
	ErrEmptyInput = errors.New("empty input")

	// ErrBusy: a reply is already in flight; the submission is rejected,
	// never queued.
	ErrBusy = errors.New("a reply is already in flight")

	// ErrRestricted: the environment gate is closed for this session.
	ErrRestricted = errors.New("assistant restricted in this environment")

	// ErrReplyDiscarded: the session was disposed or reseeded while the
	// reply was in flight, so the result was dropped without touching state.
	ErrReplyDiscarded = errors.New("pending reply discarded")

	ErrSessionNotFound = errors.New("session not found")
)
