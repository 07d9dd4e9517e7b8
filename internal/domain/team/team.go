package team

import (
	"errors"
	"fmt"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/shopspring/decimal"
)

// ErrDuplicatePurchase guards the one-purchase-per-(team, player)
// invariant of the ledger.
var ErrDuplicatePurchase = errors.New("player already purchased for this team")

// Team is a shared identity that may register for many seasons.
type Team struct {
	ID         string
	Name       string
	LogoURL    string
	OwnerName  string
	OwnerEmail string
	Active     bool
	CreatedAt  time.Time
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.OwnerName == "" {
		return fmt.Errorf("team owner name is required")
	}

	return nil
}

// SeasonEntry joins a team to one season and carries its live auction
// position. Remaining budget only falls and the headcount only rises
// once the auction starts; every successful purchase moves both.
type SeasonEntry struct {
	ID             string
	TeamID         string
	SeasonID       string
	IconPlayerID   string
	TotalBudget    decimal.Decimal
	Remaining      decimal.Decimal
	MaxPlayers     int
	CurrentPlayers int
	Active         bool
	CreatedAt      time.Time
}

func (e SeasonEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("team season id is required")
	}
	if e.TeamID == "" {
		return fmt.Errorf("team id is required")
	}
	if e.SeasonID == "" {
		return fmt.Errorf("season id is required")
	}
	if e.TotalBudget.IsNegative() || e.Remaining.IsNegative() {
		return fmt.Errorf("team budget cannot be negative")
	}
	if e.Remaining.GreaterThan(e.TotalBudget) {
		return fmt.Errorf("remaining budget cannot exceed total budget")
	}
	if e.MaxPlayers < 1 {
		return fmt.Errorf("max players must be at least 1")
	}
	if e.CurrentPlayers < 0 || e.CurrentPlayers > e.MaxPlayers {
		return fmt.Errorf("current players out of range: %d of %d", e.CurrentPlayers, e.MaxPlayers)
	}

	return nil
}

// Budget projects the entry onto the pure bid-evaluation input.
func (e SeasonEntry) Budget() auction.TeamBudget {
	return auction.TeamBudget{
		Remaining:      e.Remaining,
		MaxPlayers:     e.MaxPlayers,
		CurrentPlayers: e.CurrentPlayers,
	}
}

// ApplyPurchase debits the price and takes one roster slot. Callers
// must already have gated the amount through the bid evaluation; icon
// assignments apply a zero price without gating.
func (e *SeasonEntry) ApplyPurchase(price decimal.Decimal) {
	e.Remaining = e.Remaining.Sub(price)
	e.CurrentPlayers++
}

// Purchase is one immutable ledger entry: who bought whom at what
// price. Entries are soft-deactivated, never edited.
type Purchase struct {
	ID           string
	TeamSeasonID string
	PlayerID     string
	Price        decimal.Decimal
	IconPlayer   bool
	PurchasedAt  time.Time
	Active       bool
}

func (p Purchase) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("purchase id is required")
	}
	if p.TeamSeasonID == "" {
		return fmt.Errorf("team season id is required")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("purchase price cannot be negative")
	}

	return nil
}
