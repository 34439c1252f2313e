package assistant

import "github.com/Ju4nmaFd3z/juanma-dev-portfolio/internal/domain"

// Store is the append-only conversation log of one session. Existing turns
// are never edited or removed; the whole log is only replaced through Seed.
//
// Store is not safe for concurrent use on its own: it is owned exclusively by
// one Session, whose mutex guards every access.
type Store struct {
	turns []domain.Turn
}

func NewStore() *Store {
	return &Store{}
}

// Seed resets the log to a single greeting turn.
func (s *Store) Seed(greeting domain.Turn) {
	s.turns = []domain.Turn{greeting}
}

// Append adds one turn at the end.
func (s *Store) Append(turn domain.Turn) {
	s.turns = append(s.turns, turn)
}

// Turns returns a copy of the log in display order.
func (s *Store) Turns() []domain.Turn {
	out := make([]domain.Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// LastTurns returns a copy of the last n turns, oldest first.
// n <= 0 returns everything.
func (s *Store) LastTurns(n int) []domain.Turn {
	if n <= 0 || n >= len(s.turns) {
		return s.Turns()
	}
	out := make([]domain.Turn, n)
	copy(out, s.turns[len(s.turns)-n:])
	return out
}

func (s *Store) Len() int {
	return len(s.turns)
}
