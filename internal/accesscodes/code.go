package accesscodes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrAccessCodeInvalid = errors.New("access code invalid, expired or used up")

// no 0/O or 1/I, codes are typed in by hand
const (
	alphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	groupSize  = 4
	groupCount = 2
)

type AccessCode struct {
	Code      string     `json:"code"`
	MaxUses   int        `json:"maxUses"`
	UsedCount int        `json:"usedCount"`
	ExpiresAt *time.Time `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (c AccessCode) Usable(now time.Time) bool {
	if c.UsedCount >= c.MaxUses {
		return false
	}
	return c.ExpiresAt == nil || c.ExpiresAt.After(now)
}

// Normalize makes user input comparable to stored codes.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func Generate() (string, error) {
	return GenerateFrom(rand.Reader)
}

// GenerateFrom builds a XXXX-XXXX code using random bytes from r.
func GenerateFrom(r io.Reader) (string, error) {
	buf := make([]byte, groupSize*groupCount)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	var sb strings.Builder
	for i, b := range buf {
		if i > 0 && i%groupSize == 0 {
			sb.WriteByte('-')
		}
		// len(alphabet) divides 256, no modulo bias
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}
	return sb.String(), nil
}

func IsWellFormed(code string) bool {
	if len(code) != groupSize*groupCount+groupCount-1 {
		return false
	}
	for i, c := range code {
		if (i+1)%(groupSize+1) == 0 {
			if c != '-' {
				return false
			}
			continue
		}
		if !strings.ContainsRune(alphabet, c) {
			return false
		}
	}
	return true
}
