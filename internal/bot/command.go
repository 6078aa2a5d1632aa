package bot

import "strings"

// Kind identifies one supported chat command.
type Kind int

const (
	KindUnknown Kind = iota
	KindHelp
	KindInventory
	KindNetworks
	KindSSIDs
	KindMRClients
	KindGuestClients
	KindTopTalkers
	KindRickRoll
)

func (k Kind) String() string {
	switch k {
	case KindHelp:
		return "help"
	case KindInventory:
		return "inventory"
	case KindNetworks:
		return "networks"
	case KindSSIDs:
		return "ssids"
	case KindMRClients:
		return "mr_clients"
	case KindGuestClients:
		return "guest_clients"
	case KindTopTalkers:
		return "top_talkers"
	case KindRickRoll:
		return "rick_roll"
	default:
		return "unknown"
	}
}

// Command is a parsed chat command: the kind plus any trailing argument.
type Command struct {
	Kind Kind
	Arg  string
}

var exactCommands = map[string]Kind{
	"Meraki get ?":             KindHelp,
	"Meraki get inventory":     KindInventory,
	"Meraki get networks":      KindNetworks,
	"Meraki get ssids":         KindSSIDs,
	"Meraki get mr clients":    KindMRClients,
	"Meraki get guest clients": KindGuestClients,
	"Meraki get top talkers":   KindTopTalkers,
}

const rickRollPrefix = "Meraki rick roll "

// Parse matches message text against the command grammar. Matching is
// case-sensitive and exact on whitespace; loosening it would change which
// room chatter the bot reacts to.
func Parse(text string) (Command, bool) {
	if kind, ok := exactCommands[text]; ok {
		return Command{Kind: kind}, true
	}
	if arg, ok := strings.CutPrefix(text, rickRollPrefix); ok {
		if arg == "" {
			return Command{}, false
		}
		return Command{Kind: KindRickRoll, Arg: arg}, true
	}
	return Command{}, false
}
