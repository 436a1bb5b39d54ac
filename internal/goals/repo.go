package goals

import (
	"context"
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, g Goal) (*Goal, error) {
	var targetDate *time.Time
	if g.TargetDate != nil {
		t := g.TargetDate.Time()
		targetDate = &t
	}

	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO goal (user_id, title, target_date, achieved, created_at)
			VALUES ($1, $2, $3, FALSE, $4)
			RETURNING id;`,
		userID, g.Title, targetDate, g.CreatedAt,
	).Scan(&g.ID)
	if err != nil {
		return nil, err
	}
	g.Achieved = false
	return &g, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, title, target_date, achieved, created_at
			FROM goal
			WHERE user_id = $1
			ORDER BY achieved, created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		var targetDate *time.Time
		if err := rows.Scan(&g.ID, &g.Title, &targetDate, &g.Achieved, &g.CreatedAt); err != nil {
			return nil, err
		}
		if targetDate != nil {
			d := program.FromDB(*targetDate)
			g.TargetDate = &d
		}
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *Repo) SetAchieved(ctx context.Context, userID uuid.UUID, id int, achieved bool) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE goal SET achieved = $1 WHERE id = $2 AND user_id = $3;`,
		achieved, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM goal WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
