package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// ResendClient sends messages through the Resend API.
type ResendClient struct {
	client *resend.Client
}

// NewResendClient builds a client for apiKey. An empty baseURL targets the
// public Resend API.
func NewResendClient(apiKey, baseURL string) (*ResendClient, error) {
	c := resend.NewCustomClient(&http.Client{Timeout: 15 * time.Second}, apiKey)
	if baseURL != "" {
		u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parse resend base url: %w", err)
		}
		c.BaseURL = u
	}
	return &ResendClient{client: c}, nil
}

// Send delivers msg with a plain-text alternative derived from its HTML when
// Text is empty.
func (c *ResendClient) Send(ctx context.Context, msg Message) (string, error) {
	text := msg.Text
	if text == "" {
		text = HTMLToText(msg.HTML)
	}
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return resp.Id, nil
}
