package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebhookClient_PostMessage_Success(t *testing.T) {
	var got Message
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, 5*time.Second)
	msg := Message{
		Text:   "hello",
		Blocks: []Block{Header("Title"), Fields(Markdown("*A*"), Markdown("*B*"))},
	}
	if err := c.PostMessage(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contentType != "application/json" {
		t.Errorf("expected application/json, got %q", contentType)
	}
	if got.Text != "hello" || len(got.Blocks) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.Blocks[0].Type != "header" || got.Blocks[0].Text.Type != "plain_text" || !got.Blocks[0].Text.Emoji {
		t.Errorf("unexpected header block: %+v", got.Blocks[0])
	}
	if len(got.Blocks[1].Fields) != 2 || got.Blocks[1].Fields[0].Type != "mrkdwn" {
		t.Errorf("unexpected fields block: %+v", got.Blocks[1])
	}
}

func TestWebhookClient_PostMessage_NotConfigured(t *testing.T) {
	c := NewWebhookClient("", time.Second)
	err := c.PostMessage(context.Background(), Message{Text: "x"})
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

func TestWebhookClient_PostMessage_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("invalid_token"))
	}))
	defer srv.Close()

	c := NewWebhookClient(srv.URL, 5*time.Second)
	err := c.PostMessage(context.Background(), Message{Text: "x"})

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusForbidden || se.Body != "invalid_token" {
		t.Errorf("unexpected status error: %+v", se)
	}
	if se.Error() != "Slack API error: 403" {
		t.Errorf("unexpected message: %q", se.Error())
	}
}

func TestWebhookClient_PostMessage_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewWebhookClient(url, time.Second)
	if err := c.PostMessage(context.Background(), Message{Text: "x"}); err == nil {
		t.Error("expected transport error for closed server")
	}
}

func TestEscapeText(t *testing.T) {
	got := EscapeText("a < b && c > d")
	want := "a &lt; b &amp;&amp; c &gt; d"
	if got != want {
		t.Errorf("EscapeText = %q, want %q", got, want)
	}
}
