package tracking

import (
	"context"
	"errors"
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repo) AddFood(ctx context.Context, userID uuid.UUID, entry FoodEntry) (*FoodEntry, error) {
	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO food_tracking (user_id, tracked_on, meal, description, hunger_before, satiety_after, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		userID, entry.TrackedOn.Time(), string(entry.Meal), entry.Description, entry.HungerBefore, entry.SatietyAfter, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpsertWellness keeps a single wellness entry per day, the last write wins.
func (r *Repo) UpsertWellness(ctx context.Context, userID uuid.UUID, entry WellnessEntry) error {
	_, err := r.db.Exec(
		ctx,
		`
			INSERT INTO wellness_tracking (
				user_id, tracked_on, energy, mood, stress, sleep_hours, water_glasses,
				sport_minutes, relaxation_done, emotion_technique, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (user_id, tracked_on) DO UPDATE SET
				energy = EXCLUDED.energy,
				mood = EXCLUDED.mood,
				stress = EXCLUDED.stress,
				sleep_hours = EXCLUDED.sleep_hours,
				water_glasses = EXCLUDED.water_glasses,
				sport_minutes = EXCLUDED.sport_minutes,
				relaxation_done = EXCLUDED.relaxation_done,
				emotion_technique = EXCLUDED.emotion_technique,
				updated_at = EXCLUDED.updated_at;`,
		userID, entry.TrackedOn.Time(), entry.Energy, entry.Mood, entry.Stress, entry.SleepHours, entry.WaterGlasses,
		entry.SportMinutes, entry.RelaxationDone, entry.EmotionTechnique, entry.UpdatedAt,
	)
	return err
}

func (r *Repo) FoodOn(ctx context.Context, userID uuid.UUID, date program.Date) ([]FoodEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, tracked_on, meal, description, hunger_before, satiety_after, created_at
			FROM food_tracking
			WHERE user_id = $1 AND tracked_on = $2
			ORDER BY created_at;`,
		userID, date.Time(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []FoodEntry
	for rows.Next() {
		var e FoodEntry
		var trackedOn time.Time
		var meal string
		if err := rows.Scan(&e.ID, &trackedOn, &meal, &e.Description, &e.HungerBefore, &e.SatietyAfter, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.TrackedOn = program.FromDB(trackedOn)
		e.Meal = Meal(meal)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// WellnessOn returns nil, nil when nothing was tracked that day.
func (r *Repo) WellnessOn(ctx context.Context, userID uuid.UUID, date program.Date) (*WellnessEntry, error) {
	var e WellnessEntry
	var trackedOn time.Time
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				tracked_on, energy, mood, stress, sleep_hours, water_glasses,
				sport_minutes, relaxation_done, emotion_technique, updated_at
			FROM wellness_tracking
			WHERE user_id = $1 AND tracked_on = $2;`,
		userID, date.Time(),
	).Scan(
		&trackedOn, &e.Energy, &e.Mood, &e.Stress, &e.SleepHours, &e.WaterGlasses,
		&e.SportMinutes, &e.RelaxationDone, &e.EmotionTechnique, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	e.TrackedOn = program.FromDB(trackedOn)
	return &e, nil
}
