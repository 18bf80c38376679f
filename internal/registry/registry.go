package registry

import (
	"context"

	"imposter_server/internal/game"
)

// Registry is the keyed store of live games. Implementations own expiry:
// a game past its TTL is indistinguishable from one that never existed.
type Registry interface {
	// Put stores a freshly created game.
	Put(ctx context.Context, g *game.Game) error
	// Get returns the game or domain.ErrGameNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)
	// Update persists reveal bookkeeping after a mutation. Implementations
	// backed by shared memory may treat this as a no-op.
	Update(ctx context.Context, g *game.Game) error
	// Delete removes a game. Missing ids are not an error.
	Delete(ctx context.Context, id string) error
}
