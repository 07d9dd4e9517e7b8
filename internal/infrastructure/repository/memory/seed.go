package memory

import (
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/shopspring/decimal"
)

const (
	SeedOrganizerID  = "org-demo"
	TournamentIDVPL  = "vpl-2026"
	SeasonIDVPL2026  = "vpl-2026-season-1"
	TeamIDRoyals     = "team-royals"
	TeamIDStrikers   = "team-strikers"
	TeamSeasonRoyals = "ts-royals-2026"
	TeamSeasonStrik  = "ts-strikers-2026"
)

var seedTime = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:          TournamentIDVPL,
			Name:        "Village Premier League",
			Description: "Annual tennis-ball cricket tournament",
			Category:    tournament.CategoryVillage,
			OrganizerID: SeedOrganizerID,
			Active:      true,
			CreatedAt:   seedTime,
			UpdatedAt:   seedTime,
		},
	}
}

func SeedSeasons() []tournament.Season {
	return []tournament.Season{
		{
			ID:                SeasonIDVPL2026,
			TournamentID:      TournamentIDVPL,
			Name:              "Season 1",
			Year:              2026,
			OrganizerID:       SeedOrganizerID,
			RegistrationOpen:  true,
			Active:            true,
			BasePrice:         decimal.NewFromInt(100),
			MaxPlayersPerTeam: 10,
			BudgetPerTeam:     decimal.NewFromInt(5000),
			Configured:        true,
			AuctionMode:       auction.ModeRandom,
			CurrentRound:      1,
			CreatedAt:         seedTime,
			UpdatedAt:         seedTime,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDRoyals, Name: "River Royals", OwnerName: "Mahesh Patel", OwnerEmail: "mahesh@example.com", Active: true, CreatedAt: seedTime},
		{ID: TeamIDStrikers, Name: "Sunset Strikers", OwnerName: "Kiran Shah", OwnerEmail: "kiran@example.com", Active: true, CreatedAt: seedTime},
	}
}

func SeedTeamSeasons() []team.SeasonEntry {
	return []team.SeasonEntry{
		{
			ID:          TeamSeasonRoyals,
			TeamID:      TeamIDRoyals,
			SeasonID:    SeasonIDVPL2026,
			TotalBudget: decimal.NewFromInt(5000),
			Remaining:   decimal.NewFromInt(5000),
			MaxPlayers:  10,
			Active:      true,
			CreatedAt:   seedTime,
		},
		{
			ID:          TeamSeasonStrik,
			TeamID:      TeamIDStrikers,
			SeasonID:    SeasonIDVPL2026,
			TotalBudget: decimal.NewFromInt(5000),
			Remaining:   decimal.NewFromInt(5000),
			MaxPlayers:  10,
			Active:      true,
			CreatedAt:   seedTime,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "pl-01", FirstName: "Ravi", LastName: "Deshmukh", Village: "Anandpur", Mobile: "9800000001", Batsman: true, Role: player.RoleBatsman, Active: true, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "pl-02", FirstName: "Sunil", LastName: "Jadhav", Village: "Anandpur", Mobile: "9800000002", Bowler: true, Role: player.RoleBowler, Active: true, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "pl-03", FirstName: "Akash", LastName: "More", Village: "Shivapur", Mobile: "9800000003", Batsman: true, Bowler: true, Role: player.RoleAllrounder, Active: true, CreatedAt: seedTime, UpdatedAt: seedTime},
		{ID: "pl-04", FirstName: "Nilesh", LastName: "Kale", Village: "Shivapur", Mobile: "9800000004", Wicketkeeper: true, Batsman: true, Role: player.RoleWicketkeeperBatsman, Active: true, CreatedAt: seedTime, UpdatedAt: seedTime},
	}
}

func SeedPlayerSeasons() []player.SeasonEntry {
	return []player.SeasonEntry{
		{ID: "ps-01", PlayerID: "pl-01", SeasonID: SeasonIDVPL2026, Selected: true, Status: auction.StatusPending, Round: 1, RegisteredAt: seedTime, Active: true},
		{ID: "ps-02", PlayerID: "pl-02", SeasonID: SeasonIDVPL2026, Selected: true, Status: auction.StatusPending, Round: 1, RegisteredAt: seedTime, Active: true},
		{ID: "ps-03", PlayerID: "pl-03", SeasonID: SeasonIDVPL2026, Selected: true, Status: auction.StatusPending, Round: 1, RegisteredAt: seedTime, Active: true},
		{ID: "ps-04", PlayerID: "pl-04", SeasonID: SeasonIDVPL2026, Selected: true, Status: auction.StatusPending, Round: 1, RegisteredAt: seedTime, Active: true},
	}
}
