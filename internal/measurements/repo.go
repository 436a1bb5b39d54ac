package measurements

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

func (r *Repo) Add(ctx context.Context, userID uuid.UUID, m Measurement) (*Measurement, error) {
	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO measurement (user_id, measured_on, weight_kg, waist_cm, hips_cm, chest_cm, thigh_cm, arm_cm, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;`,
		userID, m.MeasuredOn.Time(), m.WeightKG, m.WaistCM, m.HipsCM, m.ChestCM, m.ThighCM, m.ArmCM, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]Measurement, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, measured_on, weight_kg, waist_cm, hips_cm, chest_cm, thigh_cm, arm_cm, created_at
			FROM measurement
			WHERE user_id = $1
			ORDER BY measured_on DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Measurement
	for rows.Next() {
		var m Measurement
		var measuredOn time.Time
		if err := rows.Scan(
			&m.ID, &measuredOn, &m.WeightKG, &m.WaistCM, &m.HipsCM, &m.ChestCM, &m.ThighCM, &m.ArmCM, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.MeasuredOn = program.FromDB(measuredOn)
		list = append(list, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repo) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM measurement WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}
