package core

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// avatarService produces a deterministic avatar image for authors that did
// not supply one.
const avatarService = "https://ui-avatars.com/api/?background=random&rounded=true&name="

// FeedService is the write path: it builds posts from submitted fields and
// appends them to the feed. Validation failures are reported to the caller;
// they never reach other subscribers.
type FeedService struct {
	feed *Feed
	now  func() time.Time
}

// NewFeedService creates a service appending to feed.
func NewFeedService(feed *Feed) *FeedService {
	return &FeedService{
		feed: feed,
		now:  time.Now,
	}
}

// CreatePost assembles a post from the submitted fields and appends it.
// The ID and CreatedAt are assigned here; an empty avatarRef falls back to
// a generated avatar URL derived from the author name.
func (s *FeedService) CreatePost(author, content, avatarRef string) (Post, error) {
	author = strings.TrimSpace(author)
	if avatarRef == "" {
		avatarRef = avatarService + url.QueryEscape(author)
	}

	post := Post{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		CreatedAt: s.now().UTC(),
		AvatarRef: avatarRef,
	}
	if err := s.feed.Append(post); err != nil {
		return Post{}, err
	}
	return post, nil
}
