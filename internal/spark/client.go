// Package spark talks to the messaging API: fetching the message that
// triggered a webhook, and posting the bot's replies into a room.
package spark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/madzombie/spark-bot/internal/models"
	"github.com/madzombie/spark-bot/internal/upstream"
)

type Client struct {
	messagesURL string
	token       string
	httpClient  *http.Client
}

func New(messagesURL, token string) *Client {
	return &Client{
		messagesURL: messagesURL,
		token:       token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetMessage retrieves the full message (text included) for a message id
// delivered by a webhook notification.
func (c *Client) GetMessage(ctx context.Context, messageID string) (models.Message, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.messagesURL+"/"+messageID, nil)
	if err != nil {
		return models.Message{}, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Message{}, fmt.Errorf("fetching message %s: %w", messageID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return models.Message{}, upstream.StatusError{Op: "messages API", Status: resp.StatusCode, Body: string(body)}
	}

	var msg models.Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return models.Message{}, fmt.Errorf("decoding message %s: %w", messageID, err)
	}
	return msg, nil
}

// PostMessage posts text into a room. Failures are returned for the caller
// to log and count; they are never retried.
func (c *Client) PostMessage(ctx context.Context, roomID, text string) error {
	payload, err := json.Marshal(map[string]string{
		"roomId": roomID,
		"text":   text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.messagesURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to room %s: %w", roomID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return upstream.StatusError{Op: "messages API", Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// The token is forwarded verbatim as the authorization value, matching how
// the bot credential is issued.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Cache-Control", "no-cache")
}
