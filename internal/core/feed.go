package core

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"
)

// Default feed bounds. Both are overridable through FeedOptions; the content
// cap keeps single snapshots cheap to copy and render, the post cap bounds
// memory growth of a long-running process.
const (
	DefaultMaxContentBytes = 4096
	DefaultMaxPosts        = 10000

	// MaxAuthorRunes caps the display name length.
	MaxAuthorRunes = 32
)

// FeedOptions configures feed bounds. Zero values select the defaults.
type FeedOptions struct {
	MaxContentBytes int
	MaxPosts        int
}

// Feed is the single source of truth: an in-memory, append-only sequence of
// posts in insertion order. Append is the sole mutator and notifies the
// change signal only after the post is visible to Snapshot.
type Feed struct {
	mu     sync.RWMutex
	posts  []Post
	signal *Signal

	maxContentBytes int
	maxPosts        int
}

// NewFeed creates an empty feed publishing changes to signal.
func NewFeed(signal *Signal, opts FeedOptions) *Feed {
	if opts.MaxContentBytes <= 0 {
		opts.MaxContentBytes = DefaultMaxContentBytes
	}
	if opts.MaxPosts <= 0 {
		opts.MaxPosts = DefaultMaxPosts
	}
	return &Feed{
		signal:          signal,
		maxContentBytes: opts.MaxContentBytes,
		maxPosts:        opts.MaxPosts,
	}
}

// Append validates the post and appends it to the feed. On success the post
// is visible to Snapshot before the change signal fires. On failure the feed
// is unchanged and no notification is sent.
//
// CreatedAt is clamped so the sequence stays non-decreasing in time even if
// callers race with slightly skewed clocks.
func (f *Feed) Append(p Post) error {
	if err := f.validate(p); err != nil {
		return err
	}

	f.mu.Lock()
	if len(f.posts) >= f.maxPosts {
		f.mu.Unlock()
		return coreError(ErrCodeFeedFull, fmt.Sprintf("feed is capped at %d posts", f.maxPosts))
	}
	if n := len(f.posts); n > 0 && p.CreatedAt.Before(f.posts[n-1].CreatedAt) {
		p.CreatedAt = f.posts[n-1].CreatedAt
	}
	f.posts = append(f.posts, p)
	f.mu.Unlock()

	// Notify strictly after commit so a woken subscriber never re-reads
	// a state older than the one it was woken for.
	f.signal.Notify()
	return nil
}

// Snapshot returns a copy of the post sequence as of the moment of the call.
// The copy is the caller's to keep; it never observes a partial append.
func (f *Feed) Snapshot() []Post {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Post, len(f.posts))
	copy(out, f.posts)
	return out
}

// Len returns the current number of posts.
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.posts)
}

// Subscribe registers a new change subscription on the feed's signal.
func (f *Feed) Subscribe() *Subscription {
	return f.signal.Subscribe()
}

func (f *Feed) validate(p Post) error {
	if strings.TrimSpace(p.Author) == "" {
		return coreError(ErrCodeInvalidPost, "author must not be empty")
	}
	if utf8.RuneCountInString(p.Author) > MaxAuthorRunes {
		return coreError(ErrCodeInvalidPost, fmt.Sprintf("author exceeds %d characters", MaxAuthorRunes))
	}
	if len(p.Content) > f.maxContentBytes {
		return coreError(ErrCodeInvalidPost, fmt.Sprintf("content exceeds %d bytes", f.maxContentBytes))
	}
	return nil
}
