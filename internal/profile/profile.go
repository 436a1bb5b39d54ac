package profile

import (
	"errors"
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	UserID         uuid.UUID    `json:"-"`
	FirstName      string       `json:"firstName"`
	SignupDate     program.Date `json:"signupDate"`
	HeightCM       *float64     `json:"heightCm"`
	StartWeightKG  *float64     `json:"startWeightKg"`
	TargetWeightKG *float64     `json:"targetWeightKg"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// Update holds the user editable fields.
type Update struct {
	FirstName      string   `json:"firstName"`
	HeightCM       *float64 `json:"heightCm"`
	StartWeightKG  *float64 `json:"startWeightKg"`
	TargetWeightKG *float64 `json:"targetWeightKg"`
}

func (u Update) Validate() error {
	if u.FirstName == "" {
		return errors.New("first name empty")
	}
	for _, v := range []*float64{u.HeightCM, u.StartWeightKG, u.TargetWeightKG} {
		if v != nil && *v <= 0 {
			return errors.New("body values must be positive")
		}
	}
	return nil
}

type Response struct {
	Profile
	Position program.Position `json:"position"`
}
