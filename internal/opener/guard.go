package opener

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSettleDelay is how long a released token keeps its paths pinned
// to absorb events the editor could not attribute.
const DefaultSettleDelay = 100 * time.Millisecond

// recentTokens bounds how many issued token IDs are remembered for
// matching event origins.
const recentTokens = 256

// Reasons returned by Guard.Ignore.
const (
	ReasonContext = "raised inside an open operation"
	ReasonOrigin  = "caused by an open operation"
	ReasonPath    = "path is part of an open operation"
)

type tokenKey struct{}

// WithToken returns a context carrying tok.
func WithToken(ctx context.Context, tok *Token) context.Context {
	return context.WithValue(ctx, tokenKey{}, tok.ID)
}

// TokenFromContext returns the ID of the token carried by ctx.
func TokenFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tokenKey{}).(string)
	return id, ok && id != ""
}

// Guard recognizes events caused by the Coordinator's own operations.
// It is safe for concurrent use.
type Guard struct {
	settle time.Duration

	mu       sync.Mutex
	recent   *lru.Cache[string, struct{}]
	inflight map[string]int
}

// NewGuard returns a Guard that keeps paths pinned for settle after a
// token is released. A settle of zero releases them immediately.
func NewGuard(settle time.Duration) *Guard {
	// lru.New only fails for a non-positive size.
	recent, _ := lru.New[string, struct{}](recentTokens)
	return &Guard{
		settle:   max(settle, 0),
		recent:   recent,
		inflight: make(map[string]int),
	}
}

// Token marks one open operation.
type Token struct {
	ID string

	guard *Guard
	paths []string
	once  sync.Once
}

// Begin issues a token pinning paths. Empty paths are skipped.
func (g *Guard) Begin(paths ...string) *Token {
	tok := &Token{ID: uuid.NewString(), guard: g}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.recent.Add(tok.ID, struct{}{})
	for _, p := range paths {
		if p == "" {
			continue
		}
		p = filepath.Clean(p)
		tok.paths = append(tok.paths, p)
		g.inflight[p]++
	}
	return tok
}

// Done signals that the operation has completed. Its paths are unpinned
// after the settle delay. Calling Done more than once has no effect.
func (t *Token) Done() {
	t.once.Do(func() {
		if t.guard.settle == 0 {
			t.guard.release(t.paths)
			return
		}
		time.AfterFunc(t.guard.settle, func() { t.guard.release(t.paths) })
	})
}

func (g *Guard) release(paths []string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, p := range paths {
		if g.inflight[p] <= 1 {
			delete(g.inflight, p)
			continue
		}
		g.inflight[p]--
	}
}

// Ignore reports whether ev was caused by an operation of this guard, and
// why.
func (g *Guard) Ignore(ctx context.Context, ev Event) (string, bool) {
	if _, ok := TokenFromContext(ctx); ok {
		return ReasonContext, true
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if ev.Origin != "" && g.recent.Contains(ev.Origin) {
		return ReasonOrigin, true
	}
	if ev.Path != "" && g.inflight[filepath.Clean(ev.Path)] > 0 {
		return ReasonPath, true
	}
	return "", false
}

// Pinned returns the number of paths currently pinned.
func (g *Guard) Pinned() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.inflight)
}
