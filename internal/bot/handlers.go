// Package bot implements the command pipeline: parse the message text,
// fetch from the dashboard API, filter and aggregate, render a table, and
// post it back into the room.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/madzombie/spark-bot/internal/config"
	"github.com/madzombie/spark-bot/internal/meraki"
	"github.com/madzombie/spark-bot/internal/metrics"
	"github.com/madzombie/spark-bot/internal/report"
	"github.com/madzombie/spark-bot/internal/spark"
	"github.com/madzombie/spark-bot/internal/tropo"
)

const (
	helpText           = "get [mr clients|guest clients|top talkers|inventory|networks|ssids]"
	invalidCommandText = "Please enter a valid command"
	fetchFailedText    = "Unable to complete that command right now"
)

type Bot struct {
	cfg   config.Config
	dash  *meraki.Client
	rooms *spark.Client
	voice *tropo.Client
	m     *metrics.Metrics
}

func New(cfg config.Config, dash *meraki.Client, rooms *spark.Client, voice *tropo.Client, m *metrics.Metrics) *Bot {
	return &Bot{cfg: cfg, dash: dash, rooms: rooms, voice: voice, m: m}
}

// Dispatch routes message text to its handler. Handler failures never
// escape: they are counted, logged, and reported into the room instead.
func (b *Bot) Dispatch(ctx context.Context, roomID, text string) {
	cmd, ok := Parse(text)
	if !ok {
		slog.Info("unrecognized command", "room", roomID, "text", text)
		b.post(ctx, roomID, invalidCommandText)
		return
	}
	b.m.Commands.WithLabelValues(cmd.Kind.String()).Inc()

	var err error
	switch cmd.Kind {
	case KindHelp:
		b.post(ctx, roomID, helpText)
	case KindInventory:
		err = b.inventory(ctx, roomID)
	case KindNetworks:
		err = b.networks(ctx, roomID)
	case KindSSIDs:
		err = b.ssids(ctx, roomID)
	case KindMRClients:
		err = b.mrClients(ctx, roomID)
	case KindGuestClients:
		err = b.guestClients(ctx, roomID)
	case KindTopTalkers:
		err = b.topTalkers(ctx, roomID)
	case KindRickRoll:
		b.rickRoll(ctx, roomID, cmd.Arg)
	}
	if err != nil {
		b.m.CommandErrors.WithLabelValues(cmd.Kind.String()).Inc()
		slog.Error("command failed", "command", cmd.Kind.String(), "room", roomID, "error", err)
		b.post(ctx, roomID, fetchFailedText)
	}
}

func (b *Bot) inventory(ctx context.Context, roomID string) error {
	devices, err := b.dash.OrgInventory(ctx, b.cfg.OrgID)
	if err != nil {
		return err
	}
	table := report.New("Model", "Serial Number", "Mac Address")
	for _, d := range devices {
		table.AddRow(d.Model, d.Serial, d.MAC)
	}
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) networks(ctx context.Context, roomID string) error {
	networks, err := b.dash.OrgNetworks(ctx, b.cfg.OrgID)
	if err != nil {
		return err
	}
	table := report.New("Network ID", "Network Name", "Tags")
	for _, n := range networks {
		table.AddRow(n.ID, n.Name, strings.Join(n.Tags, " "))
	}
	if err := table.SortBy("Network Name", false); err != nil {
		return err
	}
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) ssids(ctx context.Context, roomID string) error {
	ssids, err := b.dash.NetworkSSIDs(ctx, b.cfg.NetID)
	if err != nil {
		return err
	}
	table := report.New("SSID #", "SSID Name", "Enabled?")
	for _, s := range ssids {
		table.AddRow(strconv.Itoa(s.Number), s.Name, strconv.FormatBool(s.Enabled))
	}
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) mrClients(ctx context.Context, roomID string) error {
	devices, err := b.dash.NetworkDevices(ctx, b.cfg.NetID)
	if err != nil {
		return err
	}
	aps := AccessPoints(devices, b.cfg.APModelPrefix)

	table := report.New("Description", "IP", "MAC")
	clientCount := 0
	for _, ap := range aps {
		clients, err := b.dash.DeviceClients(ctx, ap.Serial, b.cfg.ClientWindow())
		if err != nil {
			return err
		}
		for _, c := range clients {
			table.AddRow(c.Description, c.IP, c.MAC)
		}
		clientCount += len(clients)
	}

	summary := fmt.Sprintf("There are %d users on the wireless network across %d %s devices",
		clientCount, len(aps), b.cfg.APModelPrefix)
	b.post(ctx, roomID, summary)
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) guestClients(ctx context.Context, roomID string) error {
	devices, err := b.dash.NetworkDevices(ctx, b.cfg.NetID)
	if err != nil {
		return err
	}
	aps := GuestAccessPoints(devices, b.cfg.APModelPrefix, b.cfg.GuestTag)

	table := report.New("Description", "IP", "MAC")
	clientCount := 0
	for _, ap := range aps {
		clients, err := b.dash.DeviceClients(ctx, ap.Serial, b.cfg.ClientWindow())
		if err != nil {
			return err
		}
		for _, c := range OnSubnet(clients, b.cfg.GuestSubnet) {
			table.AddRow(c.Description, c.IP, c.MAC)
			clientCount++
		}
	}

	summary := fmt.Sprintf("There are %d users on the guest wireless network", clientCount)
	b.post(ctx, roomID, summary)
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) topTalkers(ctx context.Context, roomID string) error {
	devices, err := b.dash.NetworkDevices(ctx, b.cfg.NetID)
	if err != nil {
		return err
	}

	var totals map[string]float64
	for _, ap := range AccessPoints(devices, b.cfg.APModelPrefix) {
		clients, err := b.dash.DeviceClients(ctx, ap.Serial, b.cfg.TopTalkersWindow())
		if err != nil {
			return err
		}
		totals = AggregateUsage(totals, clients)
	}

	// Rows go in by name first so that equal usage totals keep a
	// deterministic order through the stable sort.
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	table := report.New("Client", "Usage - kbytes past hour")
	for _, name := range names {
		table.AddRow(name, strconv.FormatFloat(totals[name], 'f', -1, 64))
	}
	if err := table.SortBy("Usage - kbytes past hour", true); err != nil {
		return err
	}
	b.post(ctx, roomID, table.Render())
	return nil
}

func (b *Bot) rickRoll(ctx context.Context, roomID, number string) {
	if err := b.voice.Call(ctx, number); err != nil {
		slog.Error("voice call failed", "number", number, "error", err)
		b.post(ctx, roomID, "Something went wrong")
		return
	}
	b.post(ctx, roomID, "Success")
}

// post is the one way anything reaches the room. A failed post is counted
// and logged but never retried and never escalated; there is no further
// fallback once the notification channel itself is down.
func (b *Bot) post(ctx context.Context, roomID, text string) {
	if err := b.rooms.PostMessage(ctx, roomID, text); err != nil {
		b.m.PostFailures.Inc()
		slog.Error("posting to room failed", "room", roomID, "error", err)
	}
}
