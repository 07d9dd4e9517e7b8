package usecase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
)

type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

type auctionFixture struct {
	service    *AuctionService
	seasonRepo *memory.TournamentRepository
	playerRepo *memory.PlayerRepository
	teamRepo   *memory.TeamRepository
}

// liveAuctionFixture builds a started auction with one team holding a
// budget of 1000, a roster limit of 3 and a base price of 100, and
// three pending players in round 1.
func liveAuctionFixture(t *testing.T) auctionFixture {
	t.Helper()

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	season := tournament.Season{
		ID:                "s1",
		TournamentID:      "t1",
		Name:              "Season 1",
		Year:              2026,
		OrganizerID:       "org-1",
		Active:            true,
		BasePrice:         decimal.NewFromInt(100),
		MaxPlayersPerTeam: 3,
		BudgetPerTeam:     decimal.NewFromInt(1000),
		Configured:        true,
		AuctionStarted:    true,
		AuctionMode:       auction.ModeRandom,
		CurrentRound:      1,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	players := []player.Player{
		{ID: "p1", FirstName: "Ravi", LastName: "Deshmukh", Mobile: "9811111111", Batsman: true, Role: player.RoleBatsman, Active: true},
		{ID: "p2", FirstName: "Sunil", LastName: "Jadhav", Mobile: "9822222222", Bowler: true, Role: player.RoleBowler, Active: true},
		{ID: "p3", FirstName: "Akash", LastName: "More", Mobile: "9833333333", Batsman: true, Bowler: true, Role: player.RoleAllrounder, Active: true},
	}
	entries := []player.SeasonEntry{
		{ID: "ps1", PlayerID: "p1", SeasonID: "s1", Selected: true, Status: auction.StatusPending, Round: 1, Active: true},
		{ID: "ps2", PlayerID: "p2", SeasonID: "s1", Selected: true, Status: auction.StatusPending, Round: 1, Active: true},
		{ID: "ps3", PlayerID: "p3", SeasonID: "s1", Selected: true, Status: auction.StatusPending, Round: 1, Active: true},
	}

	teams := []team.Team{
		{ID: "tm1", Name: "River Royals", OwnerName: "Mahesh Patel", Active: true},
	}
	teamEntries := []team.SeasonEntry{
		{
			ID:          "ts1",
			TeamID:      "tm1",
			SeasonID:    "s1",
			TotalBudget: decimal.NewFromInt(1000),
			Remaining:   decimal.NewFromInt(1000),
			MaxPlayers:  3,
			Active:      true,
		},
	}

	seasonRepo := memory.NewTournamentRepository(nil, []tournament.Season{season})
	playerRepo := memory.NewPlayerRepository(players, entries)
	teamRepo := memory.NewTeamRepository(teams, teamEntries)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuctionService(seasonRepo, playerRepo, teamRepo, memory.NewTxRunner(seasonRepo, playerRepo, teamRepo), &seqIDGenerator{prefix: "id"}, logger)
	service.now = func() time.Time { return now }

	return auctionFixture{service: service, seasonRepo: seasonRepo, playerRepo: playerRepo, teamRepo: teamRepo}
}

func TestAuctionService_StartAuction_OnlyOnce(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAuctionService(seasonRepo, playerRepo, teamRepo, memory.NewTxRunner(seasonRepo, playerRepo, teamRepo), &seqIDGenerator{prefix: "id"}, logger)

	result, err := service.StartAuction(t.Context(), StartAuctionInput{
		SeasonID:    memory.SeasonIDVPL2026,
		OrganizerID: memory.SeedOrganizerID,
	})
	if err != nil {
		t.Fatalf("start auction failed: %v", err)
	}
	if result.Mode != auction.ModeRandom {
		t.Fatalf("expected default mode random, got %s", result.Mode)
	}
	if result.Round != 1 || result.TotalTeams != 2 {
		t.Fatalf("unexpected start result: %+v", result)
	}

	if _, err := service.StartAuction(t.Context(), StartAuctionInput{
		SeasonID:    memory.SeasonIDVPL2026,
		OrganizerID: memory.SeedOrganizerID,
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on second start, got %v", err)
	}
}

func TestAuctionService_ResolveBid_SoldUpdatesLedgerAndBudget(t *testing.T) {
	f := liveAuctionFixture(t)

	result, err := f.service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    "p1",
		TeamID:      "tm1",
		Amount:      decimal.NewFromInt(400),
		Sold:        true,
	})
	if err != nil {
		t.Fatalf("resolve bid failed: %v", err)
	}
	if !result.Sold || result.TeamName != "River Royals" {
		t.Fatalf("unexpected result: %+v", result)
	}

	entry, _, err := f.teamRepo.GetSeasonEntry(t.Context(), "s1", "tm1")
	if err != nil {
		t.Fatalf("get team season failed: %v", err)
	}
	if !entry.Remaining.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected remaining 600, got %s", entry.Remaining)
	}
	if entry.CurrentPlayers != 1 {
		t.Fatalf("expected 1 player, got %d", entry.CurrentPlayers)
	}

	playerEntry, _, err := f.playerRepo.GetSeasonEntry(t.Context(), "s1", "p1")
	if err != nil {
		t.Fatalf("get player season failed: %v", err)
	}
	if playerEntry.Status != auction.StatusSold {
		t.Fatalf("expected sold status, got %s", playerEntry.Status)
	}

	purchases, err := f.teamRepo.ListPurchases(t.Context(), "ts1")
	if err != nil {
		t.Fatalf("list purchases failed: %v", err)
	}
	if len(purchases) != 1 || !purchases[0].Price.Equal(decimal.NewFromInt(400)) {
		t.Fatalf("unexpected purchases: %+v", purchases)
	}
}

func TestAuctionService_ResolveBid_BelowBasePrice(t *testing.T) {
	f := liveAuctionFixture(t)

	_, err := f.service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    "p1",
		TeamID:      "tm1",
		Amount:      decimal.NewFromInt(50),
		Sold:        true,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for sub-floor bid, got %v", err)
	}

	playerEntry, _, _ := f.playerRepo.GetSeasonEntry(t.Context(), "s1", "p1")
	if playerEntry.Status != auction.StatusPending {
		t.Fatalf("rejected bid must not change status, got %s", playerEntry.Status)
	}
}

func TestAuctionService_ResolveBid_CapBoundary(t *testing.T) {
	// Budget 1000, 3 slots, base 100: two future slots reserve 200, so
	// the cap for the first purchase is exactly 800.
	f := liveAuctionFixture(t)

	if _, err := f.service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    "p1",
		TeamID:      "tm1",
		Amount:      decimal.NewFromInt(801),
		Sold:        true,
	}); !errors.Is(err, auction.ErrBidCapExceeded) {
		t.Fatalf("expected cap exceeded at 801, got %v", err)
	}

	if _, err := f.service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    "p1",
		TeamID:      "tm1",
		Amount:      decimal.NewFromInt(800),
		Sold:        true,
	}); err != nil {
		t.Fatalf("bid at exact cap must pass: %v", err)
	}
}

func TestAuctionService_ResolveBid_Unsold(t *testing.T) {
	f := liveAuctionFixture(t)

	result, err := f.service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    "p2",
		Sold:        false,
	})
	if err != nil {
		t.Fatalf("resolve unsold failed: %v", err)
	}
	if result.Sold {
		t.Fatalf("expected unsold result")
	}

	entry, _, _ := f.playerRepo.GetSeasonEntry(t.Context(), "s1", "p2")
	if entry.Status != auction.StatusUnsold {
		t.Fatalf("expected unsold status, got %s", entry.Status)
	}
}

func TestAuctionService_NextRandomPlayer_Transitions(t *testing.T) {
	f := liveAuctionFixture(t)
	f.service.randIntN = func(n int) int { return 0 }

	next, err := f.service.NextRandomPlayer(t.Context(), "s1", "org-1")
	if err != nil {
		t.Fatalf("next random player failed: %v", err)
	}
	if next.Action != ActionPresentPlayer || next.Candidate == nil {
		t.Fatalf("expected a candidate, got %+v", next)
	}
	if !next.Candidate.MaxBid.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected season max bid 800, got %s", next.Candidate.MaxBid)
	}

	// Exhaust the pool: one sold, two unsold.
	mustResolve(t, f.service, "p1", "tm1", 100, true)
	mustResolve(t, f.service, "p2", "", 0, false)
	mustResolve(t, f.service, "p3", "", 0, false)

	next, err = f.service.NextRandomPlayer(t.Context(), "s1", "org-1")
	if err != nil {
		t.Fatalf("next random player failed: %v", err)
	}
	if next.Action != ActionStartNextRound {
		t.Fatalf("expected start-next-round, got %s", next.Action)
	}

	if _, err := f.service.StartNextRound(t.Context(), "s1", "org-1"); err != nil {
		t.Fatalf("start next round failed: %v", err)
	}

	mustResolve(t, f.service, "p2", "tm1", 100, true)
	mustResolve(t, f.service, "p3", "tm1", 100, true)

	next, err = f.service.NextRandomPlayer(t.Context(), "s1", "org-1")
	if err != nil {
		t.Fatalf("next random player failed: %v", err)
	}
	if next.Action != ActionAuctionComplete {
		t.Fatalf("expected auction complete, got %s", next.Action)
	}
}

func mustResolve(t *testing.T, service *AuctionService, playerID, teamID string, amount int64, sold bool) {
	t.Helper()

	if _, err := service.ResolveBid(t.Context(), ResolveBidInput{
		SeasonID:    "s1",
		OrganizerID: "org-1",
		PlayerID:    playerID,
		TeamID:      teamID,
		Amount:      decimal.NewFromInt(amount),
		Sold:        sold,
	}); err != nil {
		t.Fatalf("resolve bid for %s failed: %v", playerID, err)
	}
}

func TestAuctionService_FastAssign_ContinuousBudget(t *testing.T) {
	f := liveAuctionFixture(t)

	// The first assignment debits the budget the second is judged by:
	// after paying 800, the reserve for one remaining slot leaves a cap
	// of 100, so 150 is skipped.
	result, err := f.service.FastAssign(t.Context(), "s1", "org-1", []FastAssignment{
		{PlayerID: "p1", TeamID: "tm1", Price: decimal.NewFromInt(800)},
		{PlayerID: "p2", TeamID: "tm1", Price: decimal.NewFromInt(150)},
		{PlayerID: "p3", TeamID: "tm1", Price: decimal.NewFromInt(100)},
	})
	if err != nil {
		t.Fatalf("fast assign failed: %v", err)
	}
	if result.AssignedCount != 2 {
		t.Fatalf("expected 2 assignments, got %d", result.AssignedCount)
	}

	skipped, _, _ := f.playerRepo.GetSeasonEntry(t.Context(), "s1", "p2")
	if skipped.Status != auction.StatusPending {
		t.Fatalf("skipped player must stay pending, got %s", skipped.Status)
	}

	entry, _, _ := f.teamRepo.GetSeasonEntry(t.Context(), "s1", "tm1")
	if entry.CurrentPlayers != 2 || !entry.Remaining.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("unexpected team state: players=%d remaining=%s", entry.CurrentPlayers, entry.Remaining)
	}
}

func TestAuctionService_StartNextRound_NothingToMove(t *testing.T) {
	f := liveAuctionFixture(t)

	if _, err := f.service.StartNextRound(t.Context(), "s1", "org-1"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict with no unsold players, got %v", err)
	}

	season, _, _ := f.seasonRepo.GetSeason(t.Context(), "s1")
	if season.CurrentRound != 1 {
		t.Fatalf("round must not advance on failure, got %d", season.CurrentRound)
	}
}
