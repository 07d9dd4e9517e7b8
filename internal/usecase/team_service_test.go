package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
)

func newTeamService(seasonRepo *memory.TournamentRepository, teamRepo *memory.TeamRepository, playerRepo *memory.PlayerRepository) *TeamService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTeamService(seasonRepo, teamRepo, playerRepo, memory.NewTxRunner(seasonRepo, playerRepo, teamRepo), &seqIDGenerator{prefix: "id"}, logger)
}

func TestTeamService_ConfigureAuction(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), []tournament.Season{
		{
			ID:               "fresh-season",
			TournamentID:     memory.TournamentIDVPL,
			Name:             "Season 2",
			Year:             2027,
			OrganizerID:      memory.SeedOrganizerID,
			RegistrationOpen: true,
			Active:           true,
			CurrentRound:     1,
		},
	})
	service := newTeamService(seasonRepo, memory.NewTeamRepository(nil, nil), memory.NewPlayerRepository(nil, nil))

	config, err := service.ConfigureAuction(t.Context(), AuctionConfigInput{
		SeasonID:          "fresh-season",
		OrganizerID:       memory.SeedOrganizerID,
		BasePrice:         decimal.NewFromInt(200),
		MaxPlayersPerTeam: 8,
		BudgetPerTeam:     decimal.NewFromInt(4000),
	})
	if err != nil {
		t.Fatalf("configure auction failed: %v", err)
	}
	if !config.Configured || !config.BasePrice.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("unexpected config: %+v", config)
	}

	// Budget must cover a full roster at base price.
	if _, err := service.ConfigureAuction(t.Context(), AuctionConfigInput{
		SeasonID:          "fresh-season",
		OrganizerID:       memory.SeedOrganizerID,
		BasePrice:         decimal.NewFromInt(500),
		MaxPlayersPerTeam: 10,
		BudgetPerTeam:     decimal.NewFromInt(4000),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid config rejection, got %v", err)
	}
}

func TestTeamService_ConfigureAuction_LockedAfterStart(t *testing.T) {
	seasons := memory.SeedSeasons()
	seasons[0].AuctionStarted = true
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), seasons)
	service := newTeamService(seasonRepo, memory.NewTeamRepository(nil, nil), memory.NewPlayerRepository(nil, nil))

	if _, err := service.ConfigureAuction(t.Context(), AuctionConfigInput{
		SeasonID:          memory.SeasonIDVPL2026,
		OrganizerID:       memory.SeedOrganizerID,
		BasePrice:         decimal.NewFromInt(100),
		MaxPlayersPerTeam: 10,
		BudgetPerTeam:     decimal.NewFromInt(5000),
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict after start, got %v", err)
	}
}

func TestTeamService_RegisterTeams(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), nil)
	service := newTeamService(seasonRepo, teamRepo, memory.NewPlayerRepository(nil, nil))

	created, err := service.RegisterTeams(t.Context(), RegisterTeamsInput{
		SeasonID:    memory.SeasonIDVPL2026,
		OrganizerID: memory.SeedOrganizerID,
		Teams: []TeamRegistration{
			{Name: "River Royals", OwnerName: "Mahesh Patel"},
			{Name: "Hilltop Hawks", OwnerName: "Sanjay Naik", OwnerEmail: "sanjay@example.com"},
		},
	})
	if err != nil {
		t.Fatalf("register teams failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(created))
	}

	// Existing team identity is reused by name.
	if created[0].TeamID != memory.TeamIDRoyals {
		t.Fatalf("expected reuse of %s, got %s", memory.TeamIDRoyals, created[0].TeamID)
	}
	if !created[0].Remaining.Equal(decimal.NewFromInt(5000)) || created[0].MaxPlayers != 10 {
		t.Fatalf("season limits not stamped: %+v", created[0])
	}

	if _, err := service.RegisterTeams(t.Context(), RegisterTeamsInput{
		SeasonID:    memory.SeasonIDVPL2026,
		OrganizerID: memory.SeedOrganizerID,
		Teams:       []TeamRegistration{{Name: "River Royals"}},
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected duplicate registration rejection, got %v", err)
	}
}

func TestTeamService_RegisterTeams_FailedBatchLeavesNoPartialState(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(nil, nil)
	service := newTeamService(seasonRepo, teamRepo, memory.NewPlayerRepository(nil, nil))

	// The second tuple fails after the first team is created, so the
	// whole batch must be rolled back.
	if _, err := service.RegisterTeams(t.Context(), RegisterTeamsInput{
		SeasonID:    memory.SeasonIDVPL2026,
		OrganizerID: memory.SeedOrganizerID,
		Teams: []TeamRegistration{
			{Name: "Valley Vikings", OwnerName: "Kiran Desai"},
			{Name: "   "},
		},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank team name, got %v", err)
	}

	if _, exists, err := teamRepo.GetByName(t.Context(), "Valley Vikings"); err != nil || exists {
		t.Fatalf("team from the failed batch must not survive, exists=%v err=%v", exists, err)
	}

	entries, err := teamRepo.ListBySeason(t.Context(), memory.SeasonIDVPL2026)
	if err != nil {
		t.Fatalf("list season entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no season entries after rollback, got %d", len(entries))
	}
}

func TestTeamService_AssignIconPlayers(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())
	service := newTeamService(seasonRepo, teamRepo, playerRepo)

	assigned, err := service.AssignIconPlayers(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID, []IconAssignment{
		{TeamID: memory.TeamIDRoyals, IconPlayerID: "pl-01"},
	})
	if err != nil {
		t.Fatalf("assign icon players failed: %v", err)
	}
	if assigned != 1 {
		t.Fatalf("expected 1 assignment, got %d", assigned)
	}

	entry, _, err := teamRepo.GetSeasonEntry(t.Context(), memory.SeasonIDVPL2026, memory.TeamIDRoyals)
	if err != nil {
		t.Fatalf("get team season failed: %v", err)
	}
	if entry.IconPlayerID != "pl-01" || entry.CurrentPlayers != 1 {
		t.Fatalf("unexpected entry after icon assignment: %+v", entry)
	}
	if !entry.Remaining.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("icon purchase must be free, remaining %s", entry.Remaining)
	}

	purchases, err := teamRepo.ListPurchases(t.Context(), entry.ID)
	if err != nil {
		t.Fatalf("list purchases failed: %v", err)
	}
	if len(purchases) != 1 || !purchases[0].IconPlayer || !purchases[0].Price.IsZero() {
		t.Fatalf("unexpected icon purchase: %+v", purchases)
	}

	// The same player cannot anchor two teams.
	if _, err := service.AssignIconPlayers(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID, []IconAssignment{
		{TeamID: memory.TeamIDStrikers, IconPlayerID: "pl-01"},
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for reused icon player, got %v", err)
	}
}

func TestTeamService_TeamsOverview(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())
	service := newTeamService(seasonRepo, teamRepo, playerRepo)

	overviews, err := service.TeamsOverview(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID)
	if err != nil {
		t.Fatalf("teams overview failed: %v", err)
	}
	if len(overviews) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(overviews))
	}
	if overviews[0].TeamName != "River Royals" || overviews[0].MaxPlayers != 10 {
		t.Fatalf("unexpected overview: %+v", overviews[0])
	}

	if _, err := service.TeamsOverview(t.Context(), memory.SeasonIDVPL2026, "someone-else"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign organizer must see not-found, got %v", err)
	}
}

func TestTeamService_TeamDetails(t *testing.T) {
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC)
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())
	service := newTeamService(seasonRepo, teamRepo, playerRepo)
	service.now = func() time.Time { return now }

	if _, err := service.AssignIconPlayers(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID, []IconAssignment{
		{TeamID: memory.TeamIDRoyals, IconPlayerID: "pl-04"},
	}); err != nil {
		t.Fatalf("assign icon players failed: %v", err)
	}

	details, err := service.TeamDetails(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID, memory.TeamIDRoyals)
	if err != nil {
		t.Fatalf("team details failed: %v", err)
	}
	if details.Overview.IconPlayerName != "Nilesh Kale" {
		t.Fatalf("expected icon player name, got %q", details.Overview.IconPlayerName)
	}
	if len(details.Players) != 1 || !details.Players[0].IconPlayer {
		t.Fatalf("unexpected roster: %+v", details.Players)
	}
}
