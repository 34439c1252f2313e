package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"
	"github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/gate"
)

func newTestGate() *gate.Gate {
	return gate.New(
		[]string{"juanmafdez.dev", "www.juanmafdez.dev", "localhost", "127.0.0.1"},
		[]string{"stackblitz", "webcontainer", "usercontent.goog"},
	)
}

func TestEvaluate(t *testing.T) {
	g := newTestGate()

	tests := []struct {
		name   string
		origin string
		want   domain.GateStatus
	}{
		{"production host", "juanmafdez.dev", domain.GateAllowed},
		{"www host", "www.juanmafdez.dev", domain.GateAllowed},
		{"full origin with scheme", "https://juanmafdez.dev", domain.GateAllowed},
		{"origin with port", "http://localhost:5173", domain.GateAllowed},
		{"loopback", "127.0.0.1", domain.GateAllowed},
		{"mixed case", "HTTPS://Juanmafdez.DEV", domain.GateAllowed},
		{"trailing path", "https://juanmafdez.dev/about", domain.GateAllowed},

		{"unknown host", "example.com", domain.GateRestricted},
		{"subdomain of allowed is not allowed", "evil.juanmafdez.dev", domain.GateRestricted},
		{"sandbox preview", "abc123.stackblitz.io", domain.GateRestricted},
		{"webcontainer embed", "w-corp.webcontainer-api.io", domain.GateRestricted},
		{"google preview", "12345.scf.usercontent.goog", domain.GateRestricted},
		{"empty origin fails closed", "", domain.GateRestricted},
		{"garbage origin fails closed", "://///", domain.GateRestricted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Evaluate(tt.origin))
		})
	}
}

func TestDenyListWinsOverAllowList(t *testing.T) {
	// An operator mistake that allow-lists a sandbox host must still restrict.
	g := gate.New([]string{"demo.stackblitz.io"}, []string{"stackblitz"})
	assert.Equal(t, domain.GateRestricted, g.Evaluate("demo.stackblitz.io"))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	g := newTestGate()
	for i := 0; i < 10; i++ {
		assert.Equal(t, domain.GateAllowed, g.Evaluate("juanmafdez.dev"))
	}
}
