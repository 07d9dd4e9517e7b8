package auction

import "fmt"

// Status tracks where a player stands in a season's auction.
type Status string

const (
	StatusPending    Status = "pending"
	StatusSold       Status = "sold"
	StatusUnsold     Status = "unsold"
	StatusIconPlayer Status = "icon_player"
	StatusOwner      Status = "owner"
)

var AllStatuses = map[Status]struct{}{
	StatusPending:    {},
	StatusSold:       {},
	StatusUnsold:     {},
	StatusIconPlayer: {},
	StatusOwner:      {},
}

// Terminal reports whether a player can never leave this status.
// Unsold players recycle into the next round; pending players get bid on.
func (s Status) Terminal() bool {
	switch s {
	case StatusSold, StatusIconPlayer, StatusOwner:
		return true
	default:
		return false
	}
}

// Mode selects how the organizer feeds players into the auction.
type Mode string

const (
	ModeRandom     Mode = "random"
	ModeManual     Mode = "manual"
	ModeFastAssign Mode = "fast_assign"
)

func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeRandom, ModeManual, ModeFastAssign:
		return Mode(raw), nil
	case "":
		return ModeRandom, nil
	default:
		return "", fmt.Errorf("unknown auction mode: %s", raw)
	}
}
