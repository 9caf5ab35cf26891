package render

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/livefeed-server/internal/core"
)

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()

	r, err := New()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return r
}

func TestPageContainsFormAndPosts(t *testing.T) {
	r := mustRenderer(t)

	var sb strings.Builder
	err := r.Page(&sb, PageData{
		Username: "guest-1234",
		Posts: []core.Post{
			{ID: "p1", Author: "alice", Content: "hello feed", CreatedAt: time.Now()},
		},
	})
	if err != nil {
		t.Fatalf("page render failed: %v", err)
	}

	html := sb.String()
	for _, want := range []string{
		`hx-post="/posts"`,
		`sse-connect="/events"`,
		`value="guest-1234"`,
		"hello feed",
		"alice",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestFeedFragmentEmptySnapshot(t *testing.T) {
	r := mustRenderer(t)

	html, err := r.Feed(nil)
	if err != nil {
		t.Fatalf("feed render failed: %v", err)
	}
	if strings.Contains(html, "card") {
		t.Fatalf("empty snapshot rendered cards: %q", html)
	}
}

func TestFeedFragmentEscapesContent(t *testing.T) {
	r := mustRenderer(t)

	html, err := r.Feed([]core.Post{
		{ID: "p1", Author: "mallory", Content: "<script>alert(1)</script>", CreatedAt: time.Now()},
	})
	if err != nil {
		t.Fatalf("feed render failed: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatal("post content not escaped")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped content, got %q", html)
	}
}

func TestFeedFragmentRejectsUnsafeAvatarScheme(t *testing.T) {
	r := mustRenderer(t)

	html, err := r.Feed([]core.Post{
		{ID: "p1", Author: "mallory", Content: "hi", AvatarRef: "javascript:alert(1)", CreatedAt: time.Now()},
	})
	if err != nil {
		t.Fatalf("feed render failed: %v", err)
	}
	if strings.Contains(html, "javascript:alert") {
		t.Fatal("unsafe avatar URL passed through unneutralized")
	}
}
