package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GameLogRepository records non-secret facts about created games for
// analytics. The secret word and the imposter seats are deliberately not
// part of the row.
type GameLogRepository struct {
	db *pgxpool.Pool
}

func NewGameLogRepository(db *pgxpool.Pool) *GameLogRepository {
	return &GameLogRepository{db: db}
}

// GameLog is one created-game row.
type GameLog struct {
	ID           int64     `db:"id"`
	GameID       string    `db:"game_id"`
	NumPlayers   int       `db:"num_players"`
	NumImposters int       `db:"num_imposters"`
	HintsEnabled bool      `db:"hints_enabled"`
	CategoryIDs  []string  `db:"category_ids"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *GameLogRepository) Create(ctx context.Context, gl *GameLog) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO game_log (game_id, num_players, num_imposters, hints_enabled, category_ids)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		gl.GameID, gl.NumPlayers, gl.NumImposters, gl.HintsEnabled, gl.CategoryIDs,
	).Scan(&gl.ID, &gl.CreatedAt)
}

// CountSince returns how many games were created after the given time.
func (r *GameLogRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM game_log WHERE created_at > $1`, since,
	).Scan(&n)
	return n, err
}
