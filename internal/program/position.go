package program

const (
	TotalDays    = 28
	DaysPerPhase = 7
	TotalPhases  = TotalDays / DaysPerPhase
)

// Position is where a user stands in the 28-day program.
type Position struct {
	Day       int  `json:"day"`
	Phase     int  `json:"phase"`
	Completed bool `json:"completed"`
}

// Day returns the 1-based program day for a user who signed up on signup,
// clamped to [1, TotalDays].
func Day(signup, today Date) int {
	day := today.DaysSince(signup) + 1
	return min(max(day, 1), TotalDays)
}

// Phase returns ceil(day / DaysPerPhase), clamped to [1, TotalPhases].
func Phase(day int) int {
	phase := (day + DaysPerPhase - 1) / DaysPerPhase
	return min(max(phase, 1), TotalPhases)
}

func PositionAt(signup, today Date) Position {
	day := Day(signup, today)
	return Position{
		Day:       day,
		Phase:     Phase(day),
		Completed: today.DaysSince(signup)+1 > TotalDays,
	}
}
