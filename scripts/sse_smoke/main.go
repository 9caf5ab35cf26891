// Command sse_smoke posts a message to a running livefeed server and checks
// that the /events stream delivers an update containing it.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

func main() {
	if err := run(); err != nil {
		log.Printf("sse_smoke: %v", err)
		os.Exit(1)
	}
}

func run() error {
	base := flag.String("addr", "http://localhost:8080", "server base URL")
	author := flag.String("author", "smoke", "author to post as")
	text := flag.String("text", "hello from smoke test", "message text to send")
	timeout := flag.Duration("timeout", 5*time.Second, "total timeout for the run")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *base+"/events", nil)
	if err != nil {
		return fmt.Errorf("build stream request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("stream status: %d", resp.StatusCode)
	}

	events := make(chan string, 8)
	go func() {
		defer close(events)
		br := bufio.NewReader(resp.Body)
		var data []string
		for {
			line, err := br.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\n")
			if line == "" {
				if len(data) > 0 {
					events <- strings.Join(data, "\n")
					data = data[:0]
				}
				continue
			}
			if payload, ok := strings.CutPrefix(line, "data: "); ok {
				data = append(data, payload)
			}
		}
	}()

	// First event is the current snapshot.
	select {
	case <-events:
	case <-ctx.Done():
		return fmt.Errorf("no initial event: %w", ctx.Err())
	}

	form := url.Values{}
	form.Set("author", *author)
	form.Set("content", *text)
	postReq, err := http.NewRequestWithContext(ctx, http.MethodPost, *base+"/posts", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build post request: %w", err)
	}
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	postResp, err := http.DefaultClient.Do(postReq)
	if err != nil {
		return fmt.Errorf("submit post: %w", err)
	}
	postResp.Body.Close()
	if postResp.StatusCode != http.StatusCreated {
		return fmt.Errorf("submit status: %d", postResp.StatusCode)
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return fmt.Errorf("stream closed before update arrived")
			}
			if strings.Contains(event, *text) {
				fmt.Println("ok: update received")
				return nil
			}
		case <-ctx.Done():
			return fmt.Errorf("no update event: %w", ctx.Err())
		}
	}
}
