package progress

import (
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
)

// Progress is the per-user denormalized summary row.
type Progress struct {
	UserID             uuid.UUID `json:"-"`
	Day                int       `json:"day"`
	Phase              int       `json:"phase"`
	Streak             int       `json:"streak"`
	FoodRegularity     float64   `json:"foodRegularity"`
	WellnessRegularity float64   `json:"wellnessRegularity"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// NewProgress is the record created lazily on the first streak update.
func NewProgress(userID uuid.UUID, streak int, now time.Time) Progress {
	return Progress{
		UserID:    userID,
		Day:       1,
		Phase:     1,
		Streak:    streak,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StreakUpdate is the outcome of a best-effort streak recalculation.
// Applied is false when the new value could not be computed or stored; Err
// then says why. Callers are never expected to fail because of it.
type StreakUpdate struct {
	UserID   uuid.UUID
	Streak   int
	Previous int
	Applied  bool
	Err      error
}

// NewBadges returns the streak badges crossed by this update.
func (u StreakUpdate) NewBadges() []Badge {
	if !u.Applied {
		return nil
	}
	return NewStreakBadges(u.Previous, u.Streak)
}

// Overview is what the progress screen shows.
type Overview struct {
	Progress
	Position    program.Position `json:"position"`
	TrackedDays int              `json:"trackedDays"`
	Badges      []Badge          `json:"badges"`
}
