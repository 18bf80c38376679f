package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"imposter_server/internal/domain"
	"imposter_server/internal/game"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "imposter:game:"

// Redis is the multi-instance registry: games are stored as JSON values
// with a server-side TTL, so eviction is redis's job. Reveal bookkeeping is
// written back with KEEPTTL; a lost write between instances is harmless
// because every reveal response derives only from creation-time fields.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Put(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	return r.client.Set(ctx, keyPrefix+g.ID, data, r.ttl).Err()
}

func (r *Redis) Get(ctx context.Context, id string) (*game.Game, error) {
	data, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var g game.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("unmarshal game: %w", err)
	}
	return &g, nil
}

func (r *Redis) Update(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game: %w", err)
	}
	// KEEPTTL so bookkeeping writes never extend the game's lifetime.
	return r.client.Set(ctx, keyPrefix+g.ID, data, redis.KeepTTL).Err()
}

func (r *Redis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, keyPrefix+id).Err()
}
