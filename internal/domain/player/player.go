package player

import (
	"fmt"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
)

// Role is the single tag derived from a player's skill flags.
type Role string

const (
	RoleWicketkeeper        Role = "wicketkeeper"
	RoleBatsman             Role = "batsman"
	RoleBowler              Role = "bowler"
	RoleAllrounder          Role = "allrounder"
	RoleWicketkeeperBatsman Role = "wicketkeeper_batsman"
)

// DeriveRole maps the three independent skill flags onto a role.
// First match wins; a player with no flags set defaults to batsman.
func DeriveRole(wicketkeeper, batsman, bowler bool) Role {
	switch {
	case wicketkeeper && batsman:
		return RoleWicketkeeperBatsman
	case wicketkeeper:
		return RoleWicketkeeper
	case batsman && bowler:
		return RoleAllrounder
	case batsman:
		return RoleBatsman
	case bowler:
		return RoleBowler
	default:
		return RoleBatsman
	}
}

// Player is a shared identity that may take part in many seasons.
// Skill flags live on the player; the derived role is recomputed
// whenever the flags are edited. Players are deactivated, never deleted.
type Player struct {
	ID           string
	FirstName    string
	LastName     string
	Village      string
	Mobile       string
	PhotoURL     string
	Wicketkeeper bool
	Batsman      bool
	Bowler       bool
	BattingStyle string
	BowlingStyle string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.FirstName == "" {
		return fmt.Errorf("player first name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.Mobile == "" {
		return fmt.Errorf("player mobile is required")
	}
	if p.Village == "" {
		return fmt.Errorf("player village is required")
	}

	return nil
}

func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// SeasonEntry joins a player to one season: exactly one entry exists
// per (player, season) pair. Auction status and round are mutated only
// by the auction engine.
type SeasonEntry struct {
	ID           string
	PlayerID     string
	SeasonID     string
	Selected     bool
	Status       auction.Status
	Round        int
	RegisteredAt time.Time
	Active       bool
}

func (e SeasonEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("player season id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if e.SeasonID == "" {
		return fmt.Errorf("season id is required")
	}
	if _, ok := auction.AllStatuses[e.Status]; !ok {
		return fmt.Errorf("invalid auction status: %s", e.Status)
	}
	if e.Round < 1 {
		return fmt.Errorf("auction round must be positive")
	}

	return nil
}
