package postgres

import (
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
)

type playerRowModel struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Village      string    `db:"village"`
	Mobile       string    `db:"mobile"`
	PhotoURL     string    `db:"photo_url"`
	Wicketkeeper bool      `db:"is_wicketkeeper"`
	Batsman      bool      `db:"is_batsman"`
	Bowler       bool      `db:"is_bowler"`
	BattingStyle string    `db:"batting_style"`
	BowlingStyle string    `db:"bowling_style"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m playerRowModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Village:      m.Village,
		Mobile:       m.Mobile,
		PhotoURL:     m.PhotoURL,
		Wicketkeeper: m.Wicketkeeper,
		Batsman:      m.Batsman,
		Bowler:       m.Bowler,
		BattingStyle: m.BattingStyle,
		BowlingStyle: m.BowlingStyle,
		Role:         player.Role(m.Role),
		Active:       m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type playerSeasonRowModel struct {
	ID           string    `db:"id"`
	PlayerID     string    `db:"player_id"`
	SeasonID     string    `db:"season_id"`
	Selected     bool      `db:"is_selected_for_auction"`
	Status       string    `db:"auction_status"`
	Round        int       `db:"auction_round"`
	RegisteredAt time.Time `db:"registered_at"`
	IsActive     bool      `db:"is_active"`
}

func (m playerSeasonRowModel) toDomain() player.SeasonEntry {
	return player.SeasonEntry{
		ID:           m.ID,
		PlayerID:     m.PlayerID,
		SeasonID:     m.SeasonID,
		Selected:     m.Selected,
		Status:       auction.Status(m.Status),
		Round:        m.Round,
		RegisteredAt: m.RegisteredAt,
		Active:       m.IsActive,
	}
}
