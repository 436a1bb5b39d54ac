package goals

import (
	"errors"
	"strings"
	"time"

	"github.com/agpcoach/agp/internal/program"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrInvalidGoal  = errors.New("invalid goal")
)

const maxTitleLength = 200

type Goal struct {
	ID         int           `json:"id"`
	Title      string        `json:"title"`
	TargetDate *program.Date `json:"targetDate,omitempty"`
	Achieved   bool          `json:"achieved"`
	CreatedAt  time.Time     `json:"createdAt"`
}

func (g Goal) Validate() error {
	title := strings.TrimSpace(g.Title)
	if title == "" || len(title) > maxTitleLength {
		return ErrInvalidGoal
	}
	return nil
}

type ListResponse struct {
	Goals    []Goal `json:"goals"`
	Achieved int    `json:"achieved"`
}

type achievedRequest struct {
	Achieved *bool `json:"achieved"`
}
