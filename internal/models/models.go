package models

// InboundEvent is the webhook notification Spark sends when a message is
// posted in a room the bot is a member of. Only the nested ids are used.
type InboundEvent struct {
	Data EventData `json:"data"`
}

type EventData struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
}

// Message is a single Spark message fetched by id.
type Message struct {
	ID     string `json:"id"`
	RoomID string `json:"roomId"`
	Text   string `json:"text"`
}

// DeviceRecord is one device from the dashboard inventory. Serial is the
// stable key used to join a device to its client list.
type DeviceRecord struct {
	Model  string   `json:"model"`
	Serial string   `json:"serial"`
	MAC    string   `json:"mac"`
	Tags   []string `json:"tags"`
}

type NetworkRecord struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

type SSIDRecord struct {
	Number  int    `json:"number"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// ClientRecord is one wireless client seen by a device within the requested
// trailing window. Usage values are kilobytes as reported by the dashboard.
type ClientRecord struct {
	Description string      `json:"description"`
	IP          string      `json:"ip"`
	MAC         string      `json:"mac"`
	Usage       ClientUsage `json:"usage"`
}

type ClientUsage struct {
	Sent float64 `json:"sent"`
	Recv float64 `json:"recv"`
}
