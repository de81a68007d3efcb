package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/phrazzld/posts-api/internal/domain"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map.
const maxTrackedClients = 10000

type peerKey struct{}

// SocketPeer records the connection's remote address before any middleware
// (such as chi's RealIP) rewrites r.RemoteAddr from forwarding headers. It must
// be mounted ahead of those middleware for RateLimiter to key on the real peer.
func SocketPeer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), peerKey{}, r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimiter applies a token bucket per client address.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	responder ErrorResponder
}

// NewRateLimiter creates a limiter allowing requestsPerSecond with the given
// burst for each client.
func NewRateLimiter(requestsPerSecond float64, burst int, responder ErrorResponder) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		rate:      rate.Limit(requestsPerSecond),
		burst:     burst,
		responder: responder,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Handler rejects requests over the client's allowance with a 429 problem.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientKey(r)).Allow() {
			w.Header().Set("Retry-After", "1")
			rl.responder.Respond(w, r, domain.NewAppError(
				domain.MsgRateLimited, "", http.StatusTooManyRequests, domain.ErrRateLimited,
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup forgets all clients once half of maxTrackedClients are tracked.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if len(rl.limiters) >= maxTrackedClients/2 {
		rl.limiters = make(map[string]*rate.Limiter)
	}
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// clientKey is the host of the socket peer recorded by SocketPeer, falling
// back to r.RemoteAddr when SocketPeer is not mounted.
func clientKey(r *http.Request) string {
	addr, ok := r.Context().Value(peerKey{}).(string)
	if !ok {
		addr = r.RemoteAddr
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
