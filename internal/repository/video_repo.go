package repository

import (
	"context"
	"errors"

	"betvida/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoRepository struct {
	db *pgxpool.Pool
}

func NewVideoRepository(db *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{db: db}
}

const videoColumns = `id, title, category, youtube_id, duration_seconds`

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	var v domain.Video
	err := r.db.QueryRow(ctx,
		`SELECT `+videoColumns+` FROM videos WHERE id = $1`, id,
	).Scan(&v.ID, &v.Title, &v.Category, &v.YoutubeID, &v.DurationSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

// WithMinDuration returns every video at least seconds long.
func (r *VideoRepository) WithMinDuration(ctx context.Context, seconds int) ([]*domain.Video, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+videoColumns+`
		 FROM videos
		 WHERE duration_seconds >= $1
		 ORDER BY duration_seconds, id`,
		seconds,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Video
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.Category, &v.YoutubeID, &v.DurationSeconds); err != nil {
			return nil, err
		}
		res = append(res, &v)
	}
	return res, rows.Err()
}

// Any returns a single video regardless of duration, or ErrVideoNotFound
// when the catalog is empty.
func (r *VideoRepository) Any(ctx context.Context) (*domain.Video, error) {
	var v domain.Video
	err := r.db.QueryRow(ctx,
		`SELECT `+videoColumns+` FROM videos ORDER BY id LIMIT 1`,
	).Scan(&v.ID, &v.Title, &v.Category, &v.YoutubeID, &v.DurationSeconds)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VideoRepository) Seed(ctx context.Context, videos []domain.Video) (int, error) {
	inserted := 0
	for _, v := range videos {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO videos (id, title, category, youtube_id, duration_seconds)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			v.ID, v.Title, v.Category, v.YoutubeID, v.DurationSeconds,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
