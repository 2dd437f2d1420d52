package repository

import (
	"context"
	"errors"

	"betvida/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, provider_uid, display_name, photo_url, minutes_won,
	minutes_lost, total_bets, is_vip, created_at, last_login`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.ProviderUID,
		&u.DisplayName,
		&u.PhotoURL,
		&u.MinutesWon,
		&u.MinutesLost,
		&u.TotalBets,
		&u.IsVIP,
		&u.CreatedAt,
		&u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByProviderUID(ctx context.Context, uid string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE provider_uid = $1`, uid)
	return scanUser(row)
}

// Upsert creates the profile on first login or refreshes display data and
// last_login on repeat logins. Aggregate counters are never touched here.
func (r *UserRepository) Upsert(ctx context.Context, providerUID, displayName, photoURL string) (*domain.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (provider_uid, display_name, photo_url)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (provider_uid) DO UPDATE
		 SET display_name = EXCLUDED.display_name,
		     photo_url = EXCLUDED.photo_url,
		     last_login = now()
		 RETURNING `+userColumns,
		providerUID, displayName, photoURL,
	)
	return scanUser(row)
}

// ApplyOutcome applies exactly one resolved bet to the user's aggregates as
// a single atomic increment, never a read-modify-write.
func (r *UserRepository) ApplyOutcome(ctx context.Context, userID int64, wonMinutes, lostMinutes int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users
		 SET minutes_won = minutes_won + $1,
		     minutes_lost = minutes_lost + $2,
		     total_bets = total_bets + 1
		 WHERE id = $3`,
		wonMinutes, lostMinutes, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// AchievementIDs returns the ids the user has earned, oldest first.
func (r *UserRepository) AchievementIDs(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT achievement_id FROM user_achievements
		 WHERE user_id = $1
		 ORDER BY earned_at, achievement_id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GrantAchievement records an earned achievement. Granting one the user
// already holds is a no-op; returns whether a new row was written.
func (r *UserRepository) GrantAchievement(ctx context.Context, userID int64, achievementID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO user_achievements (user_id, achievement_id)
		 VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		userID, achievementID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// TopByMinutesWon returns up to n users ranked by minutes_won descending.
// Ties break on user id so pagination stays stable.
func (r *UserRepository) TopByMinutesWon(ctx context.Context, n int) ([]domain.LeaderboardEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, display_name, photo_url, minutes_won
		 FROM users
		 ORDER BY minutes_won DESC, id
		 LIMIT $1`,
		n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.LeaderboardEntry
	rank := 1
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.PhotoURL, &e.MinutesWon); err != nil {
			return nil, err
		}
		e.Rank = rank
		rank++
		res = append(res, e)
	}
	return res, rows.Err()
}
