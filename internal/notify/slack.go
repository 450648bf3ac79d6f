// Package notify posts inventory alerts to chat.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Message is the alert content of one inventory run.
type Message struct {
	Controller string
	Alert      string // offline and role-less nodes
	Failures   string // nodes that could not be classified
}

// Empty reports whether there is nothing worth posting.
func (m Message) Empty() bool {
	return m.Alert == "" && m.Failures == ""
}

// Text renders the message in Slack mrkdwn.
func (m Message) Text() string {
	var b strings.Builder
	b.WriteString("*Node inventory*")
	if m.Controller != "" {
		fmt.Fprintf(&b, " for %s", m.Controller)
	}
	b.WriteString("\n")
	if m.Alert != "" {
		b.WriteString("Machines needing attention:\n```\n" + m.Alert + "\n```\n")
	}
	if m.Failures != "" {
		b.WriteString("Machines with missing labels:\n```\n" + m.Failures + "\n```\n")
	}
	return b.String()
}

// SlackNotifier posts messages to a Slack incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	Channel    string
	Client     *http.Client
}

type slackPayload struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

// Notify posts m unless it is empty. It reports whether a post was made.
func (s *SlackNotifier) Notify(ctx context.Context, m Message) (bool, error) {
	if m.Empty() {
		return false, nil
	}

	body, err := json.Marshal(slackPayload{Channel: s.Channel, Text: m.Text()})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return false, fmt.Errorf("posting to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("slack webhook returned %s: %s", resp.Status, strings.TrimSpace(string(detail)))
	}
	return true, nil
}
