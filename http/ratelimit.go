package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a client's limiter is kept after its last
// request.
const DefaultIdleTimeout = 10 * time.Minute

// ClientLimiter provides per-client rate limiting using token buckets.
// Each client address gets its own limiter so one busy client cannot starve
// the others. Limiters idle for longer than IdleTimeout are evicted.
type ClientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rps       float64
	burst     int
	lastSweep time.Time

	IdleTimeout time.Duration

	// Now returns the current time.
	Now func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientLimiter creates a ClientLimiter allowing rps requests per second
// per client with a burst of twice the rate (at least 1).
func NewClientLimiter(rps float64) *ClientLimiter {
	burst := int(rps * 2)
	if burst < 1 {
		burst = 1
	}
	return &ClientLimiter{
		clients:     make(map[string]*clientLimiter),
		rps:         rps,
		burst:       burst,
		IdleTimeout: DefaultIdleTimeout,
		Now:         time.Now,
	}
}

// Allow reports whether client may make a request now.
func (l *ClientLimiter) Allow(client string) bool {
	now := l.Now()

	l.mu.Lock()
	l.evictIdle(now)
	c, ok := l.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.clients[client] = c
	}
	c.lastSeen = now
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *ClientLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// evictIdle drops idle clients at most once per IdleTimeout. Caller holds mu.
func (l *ClientLimiter) evictIdle(now time.Time) {
	if l.IdleTimeout <= 0 || now.Sub(l.lastSweep) < l.IdleTimeout {
		return
	}
	l.lastSweep = now
	for client, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.IdleTimeout {
			delete(l.clients, client)
		}
	}
}

// RateLimitMiddleware rejects requests over the client's limit with 429.
func RateLimitMiddleware(l *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientHost(r)) {
				writeJSON(w, http.StatusTooManyRequests, errorResponse{Detail: "Rate limit exceeded."})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientHost returns the host part of the remote address.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
