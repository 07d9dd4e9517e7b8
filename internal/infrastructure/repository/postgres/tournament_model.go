package postgres

import (
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/shopspring/decimal"
)

type tournamentRowModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	LogoURL     string    `db:"logo_url"`
	Category    string    `db:"category"`
	OrganizerID string    `db:"organizer_id"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m tournamentRowModel) toDomain() tournament.Tournament {
	return tournament.Tournament{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		LogoURL:     m.LogoURL,
		Category:    tournament.Category(m.Category),
		OrganizerID: m.OrganizerID,
		Active:      m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type seasonRowModel struct {
	ID                string          `db:"id"`
	TournamentID      string          `db:"tournament_id"`
	Name              string          `db:"name"`
	Year              int             `db:"year"`
	OrganizerID       string          `db:"organizer_id"`
	RegistrationOpen  bool            `db:"registration_open"`
	IsActive          bool            `db:"is_active"`
	BasePrice         decimal.Decimal `db:"base_price"`
	MaxPlayersPerTeam int             `db:"max_players_per_team"`
	BudgetPerTeam     decimal.Decimal `db:"budget_per_team"`
	Configured        bool            `db:"auction_configured"`
	AuctionStarted    bool            `db:"auction_started"`
	AuctionMode       string          `db:"auction_mode"`
	CurrentRound      int             `db:"current_round"`
	CreatedAt         time.Time       `db:"created_at"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (m seasonRowModel) toDomain() tournament.Season {
	return tournament.Season{
		ID:                m.ID,
		TournamentID:      m.TournamentID,
		Name:              m.Name,
		Year:              m.Year,
		OrganizerID:       m.OrganizerID,
		RegistrationOpen:  m.RegistrationOpen,
		Active:            m.IsActive,
		BasePrice:         m.BasePrice,
		MaxPlayersPerTeam: m.MaxPlayersPerTeam,
		BudgetPerTeam:     m.BudgetPerTeam,
		Configured:        m.Configured,
		AuctionStarted:    m.AuctionStarted,
		AuctionMode:       auction.Mode(m.AuctionMode),
		CurrentRound:      m.CurrentRound,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
