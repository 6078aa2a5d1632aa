// Package tropo triggers an outbound call through the voice API. Used only
// by the rick-roll novelty command.
package tropo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/madzombie/spark-bot/internal/upstream"
)

type Client struct {
	apiURL     string
	voiceToken string
	httpClient *http.Client
}

func New(apiURL, voiceToken string) *Client {
	return &Client{
		apiURL:     apiURL,
		voiceToken: voiceToken,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Call launches the voice application against the given number. A 2xx
// response means the call was accepted; anything else is a StatusError.
func (c *Client) Call(ctx context.Context, number string) error {
	payload, err := json.Marshal(map[string]string{
		"token":  c.voiceToken,
		"number": number,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return upstream.StatusError{Op: "voice API", Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}
