package game

import (
	"slices"
	"sync"
	"time"

	"imposter_server/internal/domain"
)

const (
	RolePlayer   = "player"
	RoleImposter = "imposter"

	MinPlayers = 3
	MaxPlayers = 20
)

// Game is one ephemeral round. Everything that determines a reveal response
// (word, hint, imposter seats) is fixed at creation; only the Revealed
// bookkeeping mutates afterwards, under the per-game mutex.
//
// The struct is JSON-marshalable so the redis-backed registry can store it
// verbatim. The mutex is not part of the serialized state.
type Game struct {
	ID            string       `json:"id"`
	NumPlayers    int          `json:"num_players"`
	NumImposters  int          `json:"num_imposters"`
	HintsEnabled  bool         `json:"hints_enabled"`
	SecretWord    string       `json:"secret_word"`
	Hint          string       `json:"hint,omitempty"`
	ImposterSeats []int        `json:"imposter_seats"` // sorted player numbers
	Revealed      map[int]bool `json:"revealed"`
	CreatedAt     time.Time    `json:"created_at"`

	mu sync.Mutex
}

// RevealResult is what a single player gets to see.
type RevealResult struct {
	Role string `json:"role"`
	Word string `json:"word,omitempty"`
	Hint string `json:"hint,omitempty"`
}

// Reveal returns the role card for the given player number and marks the
// player as revealed. Calling it again for the same player returns the same
// result; nothing here is random.
func (g *Game) Reveal(playerNumber int) (RevealResult, error) {
	if playerNumber < 1 || playerNumber > g.NumPlayers {
		return RevealResult{}, domain.ErrInvalidPlayer
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	res := RevealResult{Role: RolePlayer, Word: g.SecretWord}
	if slices.Contains(g.ImposterSeats, playerNumber) {
		res = RevealResult{Role: RoleImposter, Hint: g.Hint}
	}

	if g.Revealed == nil {
		g.Revealed = make(map[int]bool)
	}
	g.Revealed[playerNumber] = true

	return res, nil
}

// Solution discloses the secret word and the full imposter list.
func (g *Game) Solution() (string, []int) {
	return g.SecretWord, slices.Clone(g.ImposterSeats)
}

// RevealedCount returns how many distinct players have seen their role.
func (g *Game) RevealedCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Revealed)
}

// ExpiredAt reports whether the game is older than ttl at the given time.
func (g *Game) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(g.CreatedAt) > ttl
}
