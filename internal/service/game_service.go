package service

import (
	"context"

	"imposter_server/internal/domain"
	"imposter_server/internal/game"
	"imposter_server/internal/logger"
	"imposter_server/internal/registry"
	"imposter_server/internal/repository"
)

// GameService wires the game factory, the registry and the optional
// analytics log into the operations the HTTP layer exposes.
type GameService struct {
	factory  *game.Factory
	registry registry.Registry
	gameLog  *repository.GameLogRepository // nil when DATABASE_URL is not set
}

func NewGameService(factory *game.Factory, reg registry.Registry, gameLog *repository.GameLogRepository) *GameService {
	return &GameService{
		factory:  factory,
		registry: reg,
		gameLog:  gameLog,
	}
}

// Create validates parameters, builds the game and stores it in the
// registry. The analytics row is written fire-and-forget; a failed insert
// never fails the request.
func (s *GameService) Create(ctx context.Context, categoryIDs []string, numPlayers, numImposters int, hintsEnabled bool, custom []domain.Category) (*game.Game, error) {
	g, err := s.factory.Create(categoryIDs, numPlayers, numImposters, hintsEnabled, custom)
	if err != nil {
		return nil, err
	}

	if err := s.registry.Put(ctx, g); err != nil {
		return nil, err
	}

	gamesCreated.Inc()
	logger.Info("game created", "game_id", g.ID, "players", g.NumPlayers, "imposters", g.NumImposters)

	if s.gameLog != nil {
		go func() {
			row := &repository.GameLog{
				GameID:       g.ID,
				NumPlayers:   g.NumPlayers,
				NumImposters: g.NumImposters,
				HintsEnabled: g.HintsEnabled,
				CategoryIDs:  categoryIDs,
			}
			if err := s.gameLog.Create(context.Background(), row); err != nil {
				logger.Warn("game log insert failed", "game_id", g.ID, "error", err)
			}
		}()
	}

	return g, nil
}

// Reveal returns the role card for one player and persists the reveal
// bookkeeping. Idempotent per player.
func (s *GameService) Reveal(ctx context.Context, gameID string, playerNumber int) (game.RevealResult, error) {
	g, err := s.registry.Get(ctx, gameID)
	if err != nil {
		return game.RevealResult{}, err
	}

	res, err := g.Reveal(playerNumber)
	if err != nil {
		return game.RevealResult{}, err
	}

	if err := s.registry.Update(ctx, g); err != nil {
		// The response is still correct; bookkeeping is best-effort.
		logger.Warn("reveal bookkeeping update failed", "game_id", gameID, "error", err)
	}

	reveals.Inc()
	return res, nil
}

// Solution discloses the word and the sorted imposter list. Available as
// soon as the game exists; the client decides when to show it.
func (s *GameService) Solution(ctx context.Context, gameID string) (string, []int, error) {
	g, err := s.registry.Get(ctx, gameID)
	if err != nil {
		return "", nil, err
	}

	word, imposters := g.Solution()
	solutions.Inc()
	return word, imposters, nil
}
