package domain

import "time"

type SessionID string
type TurnID string

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleError     Role = "error"
)

// Language is the active display language of the portfolio.
type Language string

const (
	LangES Language = "es"
	LangEN Language = "en"
)

// GateStatus says whether the assistant may call the completion service
// from the current hosting context. Computed once per session.
type GateStatus string

const (
	GateAllowed    GateStatus = "allowed"
	GateRestricted GateStatus = "restricted"
)

// FailureKind classifies a failed completion attempt.
type FailureKind string

const (
	FailureOffline FailureKind = "offline"
	FailureService FailureKind = "service"
)

type Timestamp = time.Time
