package repository

import (
	"context"
	"errors"

	"betvida/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrBetNotFound = errors.New("bet not found")
	// ErrBetNotPending means a conditional transition found the bet in a
	// state other than the one it requires.
	ErrBetNotPending   = errors.New("bet already resolved")
	ErrBetNotWatchable = errors.New("bet has no pending video to complete")
)

type BetRepository struct {
	db *pgxpool.Pool
}

func NewBetRepository(db *pgxpool.Pool) *BetRepository {
	return &BetRepository{db: db}
}

const betColumns = `id, user_id, game_id, minutes, result, video_id,
	completed, created_at, resolved_at, completed_at`

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var b domain.Bet
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.GameID,
		&b.Minutes,
		&b.Result,
		&b.VideoID,
		&b.Completed,
		&b.CreatedAt,
		&b.ResolvedAt,
		&b.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Create inserts a pending bet and fills in its id and created_at.
func (r *BetRepository) Create(ctx context.Context, b *domain.Bet) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO bets (user_id, game_id, minutes)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		b.UserID, b.GameID, b.Minutes,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *BetRepository) GetByID(ctx context.Context, id int64) (*domain.Bet, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+betColumns+` FROM bets WHERE id = $1`, id)
	return scanBet(row)
}

// Resolve transitions a pending bet to win or lose as one conditional
// write. Two concurrent resolves cannot both succeed: the guard is the
// `result IS NULL` predicate, not a read-then-write pair. Resolving an
// already-resolved bet returns ErrBetNotPending.
func (r *BetRepository) Resolve(ctx context.Context, id int64, result domain.BetResult, videoID *string) (*domain.Bet, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE bets
		 SET result = $2, video_id = $3, resolved_at = now()
		 WHERE id = $1 AND result IS NULL
		 RETURNING `+betColumns,
		id, result, videoID,
	)
	b, err := scanBet(row)
	if errors.Is(err, ErrBetNotFound) {
		// Distinguish a missing bet from a lost race.
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, ErrBetNotPending
		}
		return nil, ErrBetNotFound
	}
	return b, err
}

// Complete marks a lost bet's penalty video as watched. Valid only while
// the bet is lost and not yet completed.
func (r *BetRepository) Complete(ctx context.Context, id int64) (*domain.Bet, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE bets
		 SET completed = TRUE, completed_at = now()
		 WHERE id = $1 AND result = 'lose' AND completed = FALSE
		 RETURNING `+betColumns,
		id,
	)
	b, err := scanBet(row)
	if errors.Is(err, ErrBetNotFound) {
		if _, getErr := r.GetByID(ctx, id); getErr == nil {
			return nil, ErrBetNotWatchable
		}
		return nil, ErrBetNotFound
	}
	return b, err
}

// RecentByUser returns the user's newest bets, newest first, capped at
// limit.
func (r *BetRepository) RecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.Bet, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+betColumns+`
		 FROM bets
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBets(rows)
}

// PendingVideosByUser returns lost bets whose penalty video has not been
// watched yet.
func (r *BetRepository) PendingVideosByUser(ctx context.Context, userID int64) ([]*domain.Bet, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+betColumns+`
		 FROM bets
		 WHERE user_id = $1 AND result = 'lose' AND completed = FALSE
		 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBets(rows)
}

func collectBets(rows pgx.Rows) ([]*domain.Bet, error) {
	var res []*domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
