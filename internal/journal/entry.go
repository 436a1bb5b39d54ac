package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agpcoach/agp/internal/program"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrInvalidEntry  = errors.New("invalid journal entry")
)

const maxPageSize = 100

// Entry is a free-text note, optionally tied to the emotion technique
// practiced that day.
type Entry struct {
	ID        int          `json:"id"`
	WrittenOn program.Date `json:"writtenOn"`
	Technique string       `json:"technique"`
	Content   string       `json:"content"`
	Mood      int          `json:"mood"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (e Entry) Validate() error {
	if strings.TrimSpace(e.Content) == "" {
		return fmt.Errorf("%w: content empty", ErrInvalidEntry)
	}
	if e.Mood < 1 || e.Mood > 5 {
		return fmt.Errorf("%w: mood must be within 1..5", ErrInvalidEntry)
	}
	return nil
}

type PageResponse struct {
	Entries []Entry `json:"entries"`
	Total   int     `json:"total"`
}
