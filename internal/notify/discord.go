package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	http "github.com/bogdanfinn/fhttp"

	"github.com/yourneighborhoodchef/airmon/internal/stats"
)

// Doer is the request-response surface Discord needs from the HTTP client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Fields      []embedField `json:"fields"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Discord posts an embed to a webhook URL, carrying a snapshot of the
// current check statistics alongside the message.
type Discord struct {
	webhookURL string
	client     Doer
	stats      *stats.Statistics
	now        func() time.Time
}

func NewDiscord(webhookURL string, client Doer, st *stats.Statistics) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		client:     client,
		stats:      st,
		now:        time.Now,
	}
}

func (d *Discord) Name() string {
	return "discord"
}

func (d *Discord) Send(title, message string, status Status) error {
	snap := d.stats.Snapshot()
	payload := webhookPayload{
		Embeds: []embed{{
			Title:       status.Emoji() + " " + title,
			Description: message,
			Color:       status.Color(),
			Timestamp:   d.now().UTC().Format(time.RFC3339),
			Fields: []embedField{{
				Name:   "Check Statistics",
				Value:  snap.Summary(),
				Inline: false,
			}},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
