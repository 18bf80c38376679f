package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"imposter_server/internal/category"
	"imposter_server/internal/domain"

	"github.com/google/uuid"
)

// Factory validates game parameters and assembles Game records.
type Factory struct {
	categories *category.Store
}

func NewFactory(categories *category.Store) *Factory {
	return &Factory{categories: categories}
}

// Create builds a new game: resolves the selected categories, merges their
// word lists into one pool, picks the secret word uniformly and samples the
// imposter seats without replacement.
func (f *Factory) Create(categoryIDs []string, numPlayers, numImposters int, hintsEnabled bool, custom []domain.Category) (*Game, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("%w: numPlayers must be between %d and %d", domain.ErrInvalidParameters, MinPlayers, MaxPlayers)
	}
	if numImposters < 1 || numImposters >= numPlayers {
		return nil, fmt.Errorf("%w: numImposters must be between 1 and numPlayers-1", domain.ErrInvalidParameters)
	}
	if len(categoryIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", domain.ErrInvalidParameters)
	}

	resolved, err := f.categories.Resolve(categoryIDs, custom)
	if err != nil {
		return nil, err
	}

	var pool []domain.WordEntry
	for _, id := range categoryIDs {
		pool = append(pool, resolved[id].Words...)
	}
	if len(pool) == 0 {
		return nil, domain.ErrEmptyWordPool
	}

	entry := pool[rand.IntN(len(pool))]

	// Shuffle-and-take sample of player numbers 1..numPlayers.
	seats := rand.Perm(numPlayers)[:numImposters]
	for i := range seats {
		seats[i]++
	}
	slices.Sort(seats)

	hint := ""
	if hintsEnabled {
		hint = entry.Hint
	}

	return &Game{
		ID:            uuid.New().String(),
		NumPlayers:    numPlayers,
		NumImposters:  numImposters,
		HintsEnabled:  hintsEnabled,
		SecretWord:    entry.Word,
		Hint:          hint,
		ImposterSeats: seats,
		Revealed:      make(map[int]bool),
		CreatedAt:     time.Now(),
	}, nil
}
