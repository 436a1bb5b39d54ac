package profile

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

func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p := Profile{UserID: userID}
	var signupDate time.Time
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				first_name, signup_date, height_cm, start_weight_kg, target_weight_kg, updated_at
			FROM profile
			WHERE user_id = $1;`,
		userID,
	).Scan(&p.FirstName, &signupDate, &p.HeightCM, &p.StartWeightKG, &p.TargetWeightKG, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	p.SignupDate = program.FromDB(signupDate)
	return &p, nil
}

func (r *Repo) SignupDate(ctx context.Context, userID uuid.UUID) (program.Date, error) {
	var signupDate time.Time
	err := r.db.QueryRow(
		ctx,
		`SELECT signup_date FROM profile WHERE user_id = $1;`,
		userID,
	).Scan(&signupDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return program.Date{}, ErrProfileNotFound
		}
		return program.Date{}, err
	}
	return program.FromDB(signupDate), nil
}

func (r *Repo) Update(ctx context.Context, userID uuid.UUID, update Update, updatedAt time.Time) error {
	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE profile SET
				first_name = $1, height_cm = $2, start_weight_kg = $3, target_weight_kg = $4, updated_at = $5
			WHERE user_id = $6;`,
		update.FirstName, update.HeightCM, update.StartWeightKG, update.TargetWeightKG, updatedAt, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
