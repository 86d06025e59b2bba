package mail

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResendClient_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer re_test" {
			t.Errorf("authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	c, err := NewResendClient("re_test", srv.URL+"/")
	if err != nil {
		t.Fatalf("NewResendClient: %v", err)
	}
	id, err := c.Send(context.Background(), Message{
		From:    "EBS <no-reply@example.com>",
		To:      "office@example.com",
		ReplyTo: "sam@example.com",
		Subject: "New Quote Request — Sam",
		HTML:    "<p>Hello <b>team</b></p>",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if id != "email_123" {
		t.Fatalf("id = %q, want email_123", id)
	}

	to, _ := got["to"].([]any)
	if len(to) != 1 || to[0] != "office@example.com" {
		t.Fatalf("to = %v", got["to"])
	}
	if got["reply_to"] != "sam@example.com" {
		t.Fatalf("reply_to = %v", got["reply_to"])
	}
	if got["text"] != "Hello team" {
		t.Fatalf("text = %q", got["text"])
	}
}

func TestResendClient_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	c, err := NewResendClient("re_test", srv.URL)
	if err != nil {
		t.Fatalf("NewResendClient: %v", err)
	}
	if _, err := c.Send(context.Background(), Message{To: "a@b.co"}); err == nil || !strings.Contains(err.Error(), "Invalid from field") {
		t.Fatalf("err = %v, want the provider message", err)
	}
}

func TestResendClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := NewResendClient("k", url)
	if err != nil {
		t.Fatalf("NewResendClient: %v", err)
	}
	if _, err := c.Send(context.Background(), Message{}); err == nil {
		t.Fatalf("expected error from closed server")
	}
}

func TestInMemory(t *testing.T) {
	m := &InMemory{}
	if _, err := m.Send(context.Background(), Message{To: "a@b.co", Subject: "one"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	id, _ := m.Send(context.Background(), Message{To: "c@d.co", Subject: "two"})
	if id != "memory-2" {
		t.Fatalf("id = %q", id)
	}
	if out := m.Outbox(); len(out) != 2 || out[1].Subject != "two" {
		t.Fatalf("outbox = %+v", out)
	}

	m.Fail = func(msg Message) error {
		if msg.To == "bad@b.co" {
			return errors.New("mailbox unavailable")
		}
		return nil
	}
	if _, err := m.Send(context.Background(), Message{To: "bad@b.co"}); err == nil {
		t.Fatalf("expected failure")
	}
	if len(m.Outbox()) != 2 {
		t.Fatalf("failed message recorded")
	}
}

func TestHTMLToText(t *testing.T) {
	src := `<html><head><title>x</title><style>p{color:red}</style></head><body>
<h2>Hello</h2>
<p>Line   <strong>one</strong></p>
<ul><li>A</li><li>B</li></ul>
</body></html>`
	want := "Hello\n\nLine one\n\n- A\n- B"
	if got := HTMLToText(src); got != want {
		t.Fatalf("HTMLToText =\n%q\nwant\n%q", got, want)
	}
	if strings.Contains(HTMLToText("<script>alert(1)</script>ok"), "alert") {
		t.Fatalf("script content leaked into text")
	}
}
