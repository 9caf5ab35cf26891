// Command ws_smoke reads feed snapshots from /ws on a running livefeed
// server and verifies a posted message shows up in the next snapshot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/vovakirdan/livefeed-server/internal/proto"
)

func main() {
	if err := run(); err != nil {
		log.Printf("ws_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	wsAddr := flag.String("addr", "ws://localhost:8080/ws", "WebSocket address")
	httpAddr := flag.String("http", "http://localhost:8080", "HTTP base URL for posting")
	author := flag.String("author", "smoke", "author to post as")
	text := flag.String("text", "hello from ws smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, *wsAddr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	var initial proto.Snapshot
	if err := wsjson.Read(ctx, conn, &initial); err != nil {
		return fmt.Errorf("read initial snapshot: %w", err)
	}
	fmt.Printf("connected: version %d, %d posts\n", initial.Version, len(initial.Posts))

	form := url.Values{}
	form.Set("author", *author)
	form.Set("content", *text)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *httpAddr+"/posts", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit post: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("submit status: %d", resp.StatusCode)
	}

	for {
		var snap proto.Snapshot
		if err := wsjson.Read(ctx, conn, &snap); err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		for _, p := range snap.Posts {
			if p.Content == *text {
				fmt.Printf("ok: post visible at version %d\n", snap.Version)
				return nil
			}
		}
	}
}
