package bot_test

import (
	"testing"

	"github.com/madzombie/spark-bot/internal/bot"
)

func TestParseExactCommands(t *testing.T) {
	cases := []struct {
		text string
		want bot.Kind
	}{
		{"Meraki get ?", bot.KindHelp},
		{"Meraki get inventory", bot.KindInventory},
		{"Meraki get networks", bot.KindNetworks},
		{"Meraki get ssids", bot.KindSSIDs},
		{"Meraki get mr clients", bot.KindMRClients},
		{"Meraki get guest clients", bot.KindGuestClients},
		{"Meraki get top talkers", bot.KindTopTalkers},
	}
	for _, c := range cases {
		cmd, ok := bot.Parse(c.text)
		if !ok {
			t.Errorf("Parse(%q) not recognized", c.text)
			continue
		}
		if cmd.Kind != c.want {
			t.Errorf("Parse(%q).Kind = %v, want %v", c.text, cmd.Kind, c.want)
		}
		if cmd.Arg != "" {
			t.Errorf("Parse(%q).Arg = %q, want empty", c.text, cmd.Arg)
		}
	}
}

func TestParseIsCaseAndWhitespaceSensitive(t *testing.T) {
	for _, text := range []string{
		"meraki get inventory",
		"Meraki get  inventory",
		"Meraki get inventory ",
		" Meraki get ?",
		"Meraki Get Networks",
	} {
		if _, ok := bot.Parse(text); ok {
			t.Errorf("Parse(%q) matched, want no match", text)
		}
	}
}

func TestParseRickRollExtractsArgument(t *testing.T) {
	cmd, ok := bot.Parse("Meraki rick roll 5551234567")
	if !ok {
		t.Fatal("Parse() did not recognize rick roll")
	}
	if cmd.Kind != bot.KindRickRoll {
		t.Errorf("Kind = %v, want KindRickRoll", cmd.Kind)
	}
	if cmd.Arg != "5551234567" {
		t.Errorf("Arg = %q, want 5551234567", cmd.Arg)
	}
}

func TestParseRickRollEmptyRemainder(t *testing.T) {
	if _, ok := bot.Parse("Meraki rick roll "); ok {
		t.Error("Parse() with empty remainder matched, want error-handler route")
	}
}

func TestParseUnknownText(t *testing.T) {
	for _, text := range []string{"", "hello", "Meraki get", "Meraki destroy everything"} {
		if _, ok := bot.Parse(text); ok {
			t.Errorf("Parse(%q) matched, want no match", text)
		}
	}
}
