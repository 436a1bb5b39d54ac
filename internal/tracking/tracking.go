package tracking

import (
	"errors"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/progress"
)

var ErrInvalidEntry = errors.New("invalid tracking entry")

type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
	MealSnack     Meal = "snack"
)

func (m Meal) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type FoodEntry struct {
	ID           int          `json:"id"`
	TrackedOn    program.Date `json:"trackedOn"`
	Meal         Meal         `json:"meal"`
	Description  string       `json:"description"`
	HungerBefore int          `json:"hungerBefore"`
	SatietyAfter int          `json:"satietyAfter"`
	CreatedAt    time.Time    `json:"createdAt"`
}

func (e FoodEntry) Validate() error {
	if !e.Meal.Valid() {
		return fmt.Errorf("%w: unknown meal [%s]", ErrInvalidEntry, e.Meal)
	}
	if e.HungerBefore < 0 || e.HungerBefore > 10 {
		return fmt.Errorf("%w: hunger must be within 0..10", ErrInvalidEntry)
	}
	if e.SatietyAfter < 0 || e.SatietyAfter > 10 {
		return fmt.Errorf("%w: satiety must be within 0..10", ErrInvalidEntry)
	}
	return nil
}

type WellnessEntry struct {
	TrackedOn        program.Date `json:"trackedOn"`
	Energy           int          `json:"energy"`
	Mood             int          `json:"mood"`
	Stress           int          `json:"stress"`
	SleepHours       float64      `json:"sleepHours"`
	WaterGlasses     int          `json:"waterGlasses"`
	SportMinutes     int          `json:"sportMinutes"`
	RelaxationDone   bool         `json:"relaxationDone"`
	EmotionTechnique string       `json:"emotionTechnique"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

func (e WellnessEntry) Validate() error {
	for name, v := range map[string]int{"energy": e.Energy, "mood": e.Mood, "stress": e.Stress} {
		if v < 1 || v > 5 {
			return fmt.Errorf("%w: %s must be within 1..5", ErrInvalidEntry, name)
		}
	}
	if e.SleepHours < 0 || e.SleepHours > 24 {
		return fmt.Errorf("%w: sleep hours must be within 0..24", ErrInvalidEntry)
	}
	if e.WaterGlasses < 0 || e.SportMinutes < 0 {
		return fmt.Errorf("%w: negative counters", ErrInvalidEntry)
	}
	return nil
}

type Day struct {
	Date     program.Date   `json:"date"`
	Food     []FoodEntry    `json:"food"`
	Wellness *WellnessEntry `json:"wellness"`
}

// SubmitResult carries the stored entry and, when the streak update went
// through, the new streak.
type SubmitResult[T any] struct {
	Entry  T                `json:"entry"`
	Streak *int             `json:"streak,omitempty"`
	Badges []progress.Badge `json:"newBadges,omitempty"`
}

func newSubmitResult[T any](entry T, update progress.StreakUpdate) SubmitResult[T] {
	res := SubmitResult[T]{Entry: entry}
	if update.Applied {
		streak := update.Streak
		res.Streak = &streak
		res.Badges = update.NewBadges()
	}
	return res
}
