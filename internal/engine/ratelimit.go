package engine

import (
	"sync"

	"golang.org/x/time/rate"
)

// userLimiter rate-limits inbound messages per user id, with a global
// cap on top.
type userLimiter struct {
	global   *rate.Limiter
	perUser  map[string]*rate.Limiter
	mu       sync.RWMutex
	perRate  rate.Limit
	perBurst int
}

func newUserLimiter(perSecond float64, burst int) *userLimiter {
	return &userLimiter{
		global:   rate.NewLimiter(rate.Limit(perSecond*100), burst*100),
		perUser:  make(map[string]*rate.Limiter),
		perRate:  rate.Limit(perSecond),
		perBurst: burst,
	}
}

func (l *userLimiter) Allow(userID string) bool {
	if !l.global.Allow() {
		return false
	}
	return l.limiterFor(userID).Allow()
}

func (l *userLimiter) limiterFor(userID string) *rate.Limiter {
	l.mu.RLock()
	lim, ok := l.perUser[userID]
	l.mu.RUnlock()
	if ok {
		return lim
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if lim, ok := l.perUser[userID]; ok {
		return lim
	}
	lim = rate.NewLimiter(l.perRate, l.perBurst)
	l.perUser[userID] = lim
	return lim
}
