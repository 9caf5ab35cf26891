package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/vovakirdan/livefeed-server/internal/core"
)

func TestHealthEndpoint(t *testing.T) {
	env := startTestServer(t)

	resp, err := env.ts.Client().Get(env.ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestCreatePostJSON(t *testing.T) {
	env := startTestServer(t)

	body := bytes.NewBufferString(`{"author":"alice","content":"hello"}`)
	resp, err := env.ts.Client().Post(env.ts.URL+"/posts", "application/json", body)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.StatusCode)
	}

	var post core.Post
	if err := json.NewDecoder(resp.Body).Decode(&post); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if post.Author != "alice" || post.Content != "hello" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if post.ID == "" || post.AvatarRef == "" {
		t.Fatalf("missing assigned fields: %+v", post)
	}

	if env.feed.Len() != 1 {
		t.Fatalf("post not in feed, len=%d", env.feed.Len())
	}
}

func TestCreatePostForm(t *testing.T) {
	env := startTestServer(t)

	form := url.Values{}
	form.Set("author", "bob")
	form.Set("content", "from the form")

	resp, err := env.ts.Client().Post(
		env.ts.URL+"/posts",
		"application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		t.Fatalf("create request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, body)
	}
}

func TestCreatePostValidationFailure(t *testing.T) {
	env := startTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing author", `{"content":"hi"}`},
		{"blank author", `{"author":"   ","content":"hi"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := env.ts.Client().Post(env.ts.URL+"/posts", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatalf("create request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", resp.StatusCode)
			}

			var errResp ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Error == "" {
				t.Fatal("error response has no message")
			}
		})
	}

	if env.feed.Len() != 0 {
		t.Fatalf("rejected submissions mutated feed, len=%d", env.feed.Len())
	}
}

func TestListPosts(t *testing.T) {
	env := startTestServer(t)

	if _, err := env.svc.CreatePost("alice", "one", ""); err != nil {
		t.Fatalf("seed post failed: %v", err)
	}
	if _, err := env.svc.CreatePost("bob", "two", ""); err != nil {
		t.Fatalf("seed post failed: %v", err)
	}

	resp, err := env.ts.Client().Get(env.ts.URL + "/api/posts")
	if err != nil {
		t.Fatalf("list request failed: %v", err)
	}
	defer resp.Body.Close()

	var posts []core.Post
	if err := json.NewDecoder(resp.Body).Decode(&posts); err != nil {
		t.Fatalf("failed to decode posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Content != "one" || posts[1].Content != "two" {
		t.Fatalf("posts out of order: %+v", posts)
	}
}

func TestHomePage(t *testing.T) {
	env := startTestServer(t)

	if _, err := env.svc.CreatePost("alice", "already here", ""); err != nil {
		t.Fatalf("seed post failed: %v", err)
	}

	resp, err := env.ts.Client().Get(env.ts.URL + "/")
	if err != nil {
		t.Fatalf("home request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	page := string(body)

	if !strings.Contains(page, "already here") {
		t.Fatal("page does not reflect the snapshot")
	}
	if !strings.Contains(page, "guest-") {
		t.Fatal("page has no guest username")
	}
}
