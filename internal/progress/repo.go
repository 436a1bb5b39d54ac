package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProgressNotFound = errors.New("progress not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// TrackingDates returns the distinct days the user submitted any tracking
// entry on, most recent first.
func (r *Repo) TrackingDates(ctx context.Context, userID uuid.UUID, limit int) ([]program.Date, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT tracked_on FROM (
				SELECT tracked_on FROM food_tracking WHERE user_id = $1
				UNION
				SELECT tracked_on FROM wellness_tracking WHERE user_id = $1
			) AS tracked
			ORDER BY tracked_on DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []program.Date
	for rows.Next() {
		var trackedOn time.Time
		if err := rows.Scan(&trackedOn); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		dates = append(dates, program.FromDB(trackedOn))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *Repo) TrackedDaysCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`
			SELECT count(*) FROM (
				SELECT tracked_on FROM food_tracking WHERE user_id = $1
				UNION
				SELECT tracked_on FROM wellness_tracking WHERE user_id = $1
			) AS tracked;`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	p := Progress{UserID: userID}
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				day, phase, streak, food_regularity, wellness_regularity, created_at, updated_at
			FROM progress
			WHERE user_id = $1;`,
		userID,
	).Scan(&p.Day, &p.Phase, &p.Streak, &p.FoodRegularity, &p.WellnessRegularity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) UpdateStreak(ctx context.Context, userID uuid.UUID, streak int, updatedAt time.Time) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE progress SET streak = $1, updated_at = $2 WHERE user_id = $3;`,
		streak, updatedAt, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProgressNotFound
	}
	return nil
}

func (r *Repo) Insert(ctx context.Context, p Progress) error {
	_, err := r.db.Exec(
		ctx,
		`
			INSERT INTO progress (
				user_id, day, phase, streak, food_regularity, wellness_regularity, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		p.UserID, p.Day, p.Phase, p.Streak, p.FoodRegularity, p.WellnessRegularity, p.CreatedAt, p.UpdatedAt,
	)
	return err
}
