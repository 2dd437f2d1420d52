package repository

import (
	"context"

	"betvida/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AchievementRepository struct {
	db *pgxpool.Pool
}

func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) List(ctx context.Context) ([]*domain.Achievement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, rule_type, threshold
		 FROM achievements
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.RuleType, &a.Threshold); err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

func (r *AchievementRepository) Seed(ctx context.Context, achievements []domain.Achievement) (int, error) {
	inserted := 0
	for _, a := range achievements {
		tag, err := r.db.Exec(ctx,
			`INSERT INTO achievements (id, name, description, rule_type, threshold)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			a.ID, a.Name, a.Description, a.RuleType, a.Threshold,
		)
		if err != nil {
			return inserted, err
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}
