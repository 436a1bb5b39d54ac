package progress

import (
	"fmt"

	"github.com/agpcoach/agp/internal/program"
)

type BadgeID string

const (
	BadgeFirstTracking   BadgeID = "first_tracking"
	BadgeProgramComplete BadgeID = "program_complete"
)

var StreakThresholds = []int{3, 7, 14, 21, 28}

type Badge struct {
	ID          BadgeID `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Earned      bool    `json:"earned"`
}

// BadgeStats are the inputs badge evaluation depends on.
type BadgeStats struct {
	Streak      int
	Position    program.Position
	TrackedDays int
}

func streakBadgeID(days int) BadgeID {
	return BadgeID(fmt.Sprintf("streak_%d", days))
}

func phaseBadgeID(phase int) BadgeID {
	return BadgeID(fmt.Sprintf("phase_%d", phase))
}

func streakBadge(days int) Badge {
	return Badge{
		ID:          streakBadgeID(days),
		Title:       fmt.Sprintf("%d days in a row", days),
		Description: fmt.Sprintf("Tracked %d consecutive days", days),
	}
}

func phaseCompleted(phase int, pos program.Position) bool {
	if pos.Completed {
		return true
	}
	return pos.Day > phase*program.DaysPerPhase
}

// EvaluateBadges returns the whole badge catalog, each marked earned or not.
func EvaluateBadges(stats BadgeStats) []Badge {
	badges := []Badge{
		{
			ID:          BadgeFirstTracking,
			Title:       "First step",
			Description: "Submitted the first tracking entry",
			Earned:      stats.TrackedDays > 0,
		},
	}

	for _, threshold := range StreakThresholds {
		b := streakBadge(threshold)
		b.Earned = stats.Streak >= threshold
		badges = append(badges, b)
	}

	for phase := 1; phase <= program.TotalPhases; phase++ {
		badges = append(badges, Badge{
			ID:          phaseBadgeID(phase),
			Title:       fmt.Sprintf("Phase %d completed", phase),
			Description: fmt.Sprintf("Went through all %d days of phase %d", program.DaysPerPhase, phase),
			Earned:      phaseCompleted(phase, stats.Position),
		})
	}

	badges = append(badges, Badge{
		ID:          BadgeProgramComplete,
		Title:       "Program complete",
		Description: fmt.Sprintf("Tracked all %d days of the program", program.TotalDays),
		Earned:      stats.Position.Completed && stats.TrackedDays >= program.TotalDays,
	})

	return badges
}

// NewStreakBadges returns the streak badges reached when the streak went from
// previous to current. A streak that dropped earns nothing.
func NewStreakBadges(previous, current int) []Badge {
	var badges []Badge
	for _, threshold := range StreakThresholds {
		if previous < threshold && current >= threshold {
			b := streakBadge(threshold)
			b.Earned = true
			badges = append(badges, b)
		}
	}
	return badges
}
