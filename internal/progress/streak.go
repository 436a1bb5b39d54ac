package progress

import "github.com/agpcoach/agp/internal/program"

// CalculateStreak returns the number of consecutive tracked days ending at
// the most recent entry. dates must be sorted most recent first.
//
// The streak is still alive when the last entry was yesterday, so a user who
// has not tracked yet today keeps it until a full day is skipped.
func CalculateStreak(dates []program.Date, today program.Date) int {
	if len(dates) == 0 {
		return 0
	}

	mostRecent := dates[0]
	if today.DaysSince(mostRecent) > 1 {
		return 0
	}

	streak := 1
	current := mostRecent
	for _, d := range dates[1:] {
		if d.Equal(current) {
			// several entries on the same day
			continue
		}
		expected := current.AddDays(-1)
		if !d.Equal(expected) {
			break
		}
		streak++
		current = expected
	}

	return streak
}
