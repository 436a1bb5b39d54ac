package profile

import (
	"github.com/agpcoach/agp/internal/program"

	"github.com/coocood/freecache"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte               = 1024 * 1024
	signupCacheExpireHours = 24
)

// SignupDateCache keeps signup dates in process. They never change once the
// account exists, the expiry only bounds memory held for inactive users.
type SignupDateCache struct {
	cache *freecache.Cache
}

func NewSignupDateCache(sizeMB int) *SignupDateCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &SignupDateCache{
		cache: freecache.NewCache(sizeMB * megabyte),
	}
}

func cacheKey(userID uuid.UUID) []byte {
	return []byte("signup::" + userID.String())
}

func (c *SignupDateCache) Get(userID uuid.UUID) (program.Date, bool) {
	val, err := c.cache.Get(cacheKey(userID))
	if err != nil {
		return program.Date{}, false
	}

	date, err := program.ParseDate(string(val))
	if err != nil {
		log.Errorf("corrupt signup date in cache for user [%s]: %s", userID, err)
		c.cache.Del(cacheKey(userID))
		return program.Date{}, false
	}

	return date, true
}

func (c *SignupDateCache) Set(userID uuid.UUID, date program.Date) {
	if err := c.cache.Set(cacheKey(userID), []byte(date.String()), signupCacheExpireHours*3600); err != nil {
		log.Errorf("cache signup date for user [%s]: %s", userID, err)
	}
}

func (c *SignupDateCache) EntryCount() int64 {
	return c.cache.EntryCount()
}
