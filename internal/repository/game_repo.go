package repository

import (
	"context"
	"errors"

	"betvida/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository struct {
	db *pgxpool.Pool
}

func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) GetByID(ctx context.Context, id string) (*domain.Game, error) {
	var g domain.Game
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, image_url, win_chance, min_bet, max_bet
		 FROM games
		 WHERE id = $1`,
		id,
	).Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.WinChance, &g.MinBet, &g.MaxBet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *GameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, image_url, win_chance, min_bet, max_bet
		 FROM games
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL,
			&g.WinChance, &g.MinBet, &g.MaxBet); err != nil {
			return nil, err
		}
		res = append(res, &g)
	}
	return res, rows.Err()
}

// Seed inserts catalog entries, skipping ids that already exist. Re-running
// against a populated catalog is a no-op.
func (r *GameRepository) Seed(ctx context.Context, games []domain.Game) (int, error) {
	inserted := 0
	for _, g := range games {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO games (id, name, description, image_url, win_chance, min_bet, max_bet)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (id) DO NOTHING`,
			g.ID, g.Name, g.Description, g.ImageURL, g.WinChance, g.MinBet, g.MaxBet,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
