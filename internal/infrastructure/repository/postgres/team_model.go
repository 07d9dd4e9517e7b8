package postgres

import (
	"database/sql"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/shopspring/decimal"
)

type teamRowModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	LogoURL    string    `db:"logo_url"`
	OwnerName  string    `db:"owner_name"`
	OwnerEmail string    `db:"owner_email"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
}

func (m teamRowModel) toDomain() team.Team {
	return team.Team{
		ID:         m.ID,
		Name:       m.Name,
		LogoURL:    m.LogoURL,
		OwnerName:  m.OwnerName,
		OwnerEmail: m.OwnerEmail,
		Active:     m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

type teamSeasonRowModel struct {
	ID             string          `db:"id"`
	TeamID         string          `db:"team_id"`
	SeasonID       string          `db:"season_id"`
	IconPlayerID   sql.NullString  `db:"icon_player_id"`
	TotalBudget    decimal.Decimal `db:"total_budget"`
	Remaining      decimal.Decimal `db:"remaining_budget"`
	MaxPlayers     int             `db:"max_players"`
	CurrentPlayers int             `db:"current_players"`
	IsActive       bool            `db:"is_active"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (m teamSeasonRowModel) toDomain() team.SeasonEntry {
	return team.SeasonEntry{
		ID:             m.ID,
		TeamID:         m.TeamID,
		SeasonID:       m.SeasonID,
		IconPlayerID:   m.IconPlayerID.String,
		TotalBudget:    m.TotalBudget,
		Remaining:      m.Remaining,
		MaxPlayers:     m.MaxPlayers,
		CurrentPlayers: m.CurrentPlayers,
		Active:         m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

type purchaseRowModel struct {
	ID           string          `db:"id"`
	TeamSeasonID string          `db:"team_season_id"`
	PlayerID     string          `db:"player_id"`
	Price        decimal.Decimal `db:"price"`
	IconPlayer   bool            `db:"is_icon_player"`
	PurchasedAt  time.Time       `db:"purchased_at"`
	IsActive     bool            `db:"is_active"`
}

func (m purchaseRowModel) toDomain() team.Purchase {
	return team.Purchase{
		ID:           m.ID,
		TeamSeasonID: m.TeamSeasonID,
		PlayerID:     m.PlayerID,
		Price:        m.Price,
		IconPlayer:   m.IconPlayer,
		PurchasedAt:  m.PurchasedAt,
		Active:       m.IsActive,
	}
}
