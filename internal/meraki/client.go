// Package meraki is a thin read-only client for the dashboard API endpoints
// the bot reports on. Every call is a single request/response: no retries,
// and no caching even within one invocation.
package meraki

import (
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
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// OrgInventory lists every device in the organization's inventory.
func (c *Client) OrgInventory(ctx context.Context, orgID string) ([]models.DeviceRecord, error) {
	var devices []models.DeviceRecord
	path := fmt.Sprintf("/organizations/%s/inventory", orgID)
	if err := c.get(ctx, path, &devices); err != nil {
		return nil, fmt.Errorf("fetching org inventory: %w", err)
	}
	return devices, nil
}

// OrgNetworks lists the networks under the organization.
func (c *Client) OrgNetworks(ctx context.Context, orgID string) ([]models.NetworkRecord, error) {
	var networks []models.NetworkRecord
	path := fmt.Sprintf("/organizations/%s/networks", orgID)
	if err := c.get(ctx, path, &networks); err != nil {
		return nil, fmt.Errorf("fetching org networks: %w", err)
	}
	return networks, nil
}

// NetworkSSIDs lists the SSID slots configured on a network.
func (c *Client) NetworkSSIDs(ctx context.Context, netID string) ([]models.SSIDRecord, error) {
	var ssids []models.SSIDRecord
	path := fmt.Sprintf("/networks/%s/ssids", netID)
	if err := c.get(ctx, path, &ssids); err != nil {
		return nil, fmt.Errorf("fetching ssids: %w", err)
	}
	return ssids, nil
}

// NetworkDevices lists the devices deployed in a network.
func (c *Client) NetworkDevices(ctx context.Context, netID string) ([]models.DeviceRecord, error) {
	var devices []models.DeviceRecord
	path := fmt.Sprintf("/networks/%s/devices", netID)
	if err := c.get(ctx, path, &devices); err != nil {
		return nil, fmt.Errorf("fetching network devices: %w", err)
	}
	return devices, nil
}

// DeviceClients lists the clients a device has seen within the trailing
// window.
func (c *Client) DeviceClients(ctx context.Context, serial string, window time.Duration) ([]models.ClientRecord, error) {
	var clients []models.ClientRecord
	path := fmt.Sprintf("/devices/%s/clients?timespan=%d", serial, int(window.Seconds()))
	if err := c.get(ctx, path, &clients); err != nil {
		return nil, fmt.Errorf("fetching clients for %s: %w", serial, err)
	}
	return clients, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Cisco-Meraki-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return upstream.StatusError{Op: "dashboard API", Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding dashboard response: %w", err)
	}
	return nil
}
