// Package gate decides whether the assistant may talk to the completion
// service from a given hosting origin. The completion service is billed per
// call against the operator's credential, so anything outside the operator's
// own deployments fails closed.
//
// This is a coarse hostname check, not a security boundary: it exists to stop
// accidental quota drain from previews and third-party embeds.
package gate

import (
	"strings"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
)

type Gate struct {
	allowed map[string]struct{}
	denied  []string
}

// New builds a gate from an exact-match hostname allow-list and a substring
// deny-list of known sandbox/preview hosts.
func New(allowedOrigins, deniedPatterns []string) *Gate {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[strings.ToLower(strings.TrimSpace(o))] = struct{}{}
	}

	denied := make([]string, 0, len(deniedPatterns))
	for _, p := range deniedPatterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			denied = append(denied, p)
		}
	}

	return &Gate{allowed: allowed, denied: denied}
}

// Evaluate maps a reported origin to a gate status. Pure and deterministic;
// never errors. Anything not recognizable defaults to restricted.
func (g *Gate) Evaluate(origin string) domain.GateStatus {
	host := normalizeHost(origin)
	if host == "" {
		return domain.GateRestricted
	}

	// Deny-list wins even over an allow-list hit.
	for _, p := range g.denied {
		if strings.Contains(host, p) {
			return domain.GateRestricted
		}
	}

	if _, ok := g.allowed[host]; ok {
		return domain.GateAllowed
	}

	return domain.GateRestricted
}

// normalizeHost reduces an origin string ("https://Host:443/path") to a bare
// lowercase hostname.
func normalizeHost(origin string) string {
	s := strings.ToLower(strings.TrimSpace(origin))

	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndex(s, ":"); i >= 0 {
		// Only strip a trailing :port, not IPv6 colons.
		if port := s[i+1:]; port != "" && !strings.Contains(port, "]") && isDigits(port) {
			s = s[:i]
		}
	}

	return strings.TrimSuffix(s, ".")
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
