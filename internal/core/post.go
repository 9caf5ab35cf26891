package core

import "time"

// Post is a single feed entry. Once appended to the feed it is immutable:
// the feed only ever grows and existing entries are never rewritten.
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	AvatarRef string    `json:"avatar_ref,omitempty"`
}
