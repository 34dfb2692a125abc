package throttle

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/akbarw/onlinebank/pkg/timing"
)

const (
	DefaultLimit  = 5
	DefaultWindow = time.Minute
)

// Decision tells the caller whether a login attempt may proceed.
// RetryAfter carries the number of seconds left until the client's
// window resets; it is zero for allowed attempts
type Decision struct {
	Allowed    bool
	RetryAfter int
}

type window struct {
	count     int
	startedAt time.Time
}

// Limiter counts login attempts per client identity within a sliding
// fixed-length window. It is advisory throttling, not authentication:
// callers must record every attempt, successful or not.
// State lives in process memory only and is lost on restart
type Limiter struct {
	mu      sync.Mutex
	windows map[string]window
	limit   int
	length  time.Duration
	now     func() time.Time
}

type Option func(*Limiter)

func WithLimit(limit int) Option {
	return func(l *Limiter) {
		l.limit = limit
	}
}

func WithWindow(length time.Duration) Option {
	return func(l *Limiter) {
		l.length = length
	}
}

// WithClock substitutes the limiter's notion of the current time,
// mainly for tests
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(opts ...Option) *Limiter {
	l := &Limiter{
		windows: make(map[string]window),
		limit:   DefaultLimit,
		length:  DefaultWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordAttempt counts a login attempt for the client and decides whether
// the client may still proceed. Attempts over the limit within the current
// window are rejected without being counted; a window that has fully
// elapsed is replaced with a fresh one on the next attempt
func (l *Limiter) RecordAttempt(clientID string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, seen := l.windows[clientID]
	if !seen || now.Sub(w.startedAt) > l.length {
		l.windows[clientID] = window{count: 1, startedAt: now}
		return Decision{Allowed: true}
	}

	if w.count >= l.limit {
		retryAfter := int(math.Ceil(w.startedAt.Add(l.length).Sub(now).Seconds()))
		log.Debug().
			Str("client", clientID).Int("retryAfter", retryAfter).
			Msg("Client is over the attempt limit")
		return Decision{RetryAfter: retryAfter}
	}

	w.count++
	l.windows[clientID] = w
	return Decision{Allowed: true}
}

// EvictStale drops windows that have fully elapsed, so that one-off
// clients do not accumulate in memory forever. Returns the number of
// windows evicted
func (l *Limiter) EvictStale() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	evicted := 0
	for clientID, w := range l.windows {
		if now.Sub(w.startedAt) > l.length {
			delete(l.windows, clientID)
			evicted++
		}
	}
	return evicted
}

// Run sweeps stale windows every interval until the context is cancelled
func (l *Limiter) Run(ctx context.Context, every time.Duration) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping eviction of stale attempt windows")
			return
		case <-timing.Wait(ctx, every):
			if evicted := l.EvictStale(); evicted > 0 {
				log.Debug().Int("evicted", evicted).Msg("Evicted stale attempt windows")
			}
		}
	}
}
