package opener

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuard_PinsPathsUntilDone(t *testing.T) {
	g := NewGuard(0)
	tok := g.Begin("/work/styles/user-card.scss", "/work/components/UserCard.tsx", "")

	if g.Pinned() != 2 {
		t.Fatalf("Pinned() = %d, want 2", g.Pinned())
	}
	reason, ok := g.Ignore(context.Background(), Event{Kind: EventOpened, Path: "/work/styles/./user-card.scss"})
	if !ok || reason != ReasonPath {
		t.Errorf("Ignore() = %q, %v; want %q, true", reason, ok, ReasonPath)
	}

	tok.Done()
	tok.Done()

	if g.Pinned() != 0 {
		t.Errorf("Pinned() after Done = %d, want 0", g.Pinned())
	}
	if _, ok := g.Ignore(context.Background(), Event{Kind: EventOpened, Path: "/work/styles/user-card.scss"}); ok {
		t.Error("path still ignored after release")
	}
}

func TestGuard_OverlappingTokens(t *testing.T) {
	g := NewGuard(0)
	first := g.Begin("/work/a.ts")
	second := g.Begin("/work/a.ts")

	first.Done()
	if _, ok := g.Ignore(context.Background(), Event{Path: "/work/a.ts"}); !ok {
		t.Error("path released while second token still holds it")
	}
	second.Done()
	if _, ok := g.Ignore(context.Background(), Event{Path: "/work/a.ts"}); ok {
		t.Error("path still pinned after both tokens released")
	}
}

func TestGuard_SettleDelay(t *testing.T) {
	g := NewGuard(20 * time.Millisecond)
	tok := g.Begin("/work/a.ts")
	tok.Done()

	if g.Pinned() != 1 {
		t.Fatalf("Pinned() right after Done = %d, want 1", g.Pinned())
	}
	assert.Eventually(t, func() bool { return g.Pinned() == 0 }, time.Second, 5*time.Millisecond)
}

func TestGuard_OriginOutlivesRelease(t *testing.T) {
	g := NewGuard(0)
	tok := g.Begin("/work/a.ts")
	tok.Done()

	reason, ok := g.Ignore(context.Background(), Event{Path: "/work/b.ts", Origin: tok.ID})
	if !ok || reason != ReasonOrigin {
		t.Errorf("Ignore() = %q, %v; want %q, true", reason, ok, ReasonOrigin)
	}

	if _, ok := g.Ignore(context.Background(), Event{Path: "/work/b.ts", Origin: "someone-else"}); ok {
		t.Error("unknown origin should not be ignored")
	}
}

func TestGuard_Context(t *testing.T) {
	g := NewGuard(0)
	tok := g.Begin()

	ctx := WithToken(context.Background(), tok)
	if id, ok := TokenFromContext(ctx); !ok || id != tok.ID {
		t.Fatalf("TokenFromContext() = %q, %v", id, ok)
	}
	reason, ok := g.Ignore(ctx, Event{Path: "/work/unrelated.ts"})
	if !ok || reason != ReasonContext {
		t.Errorf("Ignore() = %q, %v; want %q, true", reason, ok, ReasonContext)
	}

	if _, ok := TokenFromContext(context.Background()); ok {
		t.Error("TokenFromContext() on empty context reported a token")
	}
}

func TestGuard_TokensAreUnique(t *testing.T) {
	g := NewGuard(0)
	a, b := g.Begin(), g.Begin()
	if a.ID == b.ID {
		t.Errorf("tokens share ID %q", a.ID)
	}
}
