package usecase

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/memory"
)

func newTournamentService(repo tournament.Repository) *TournamentService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewTournamentService(repo, &seqIDGenerator{prefix: "id"}, logger)
}

func TestTournamentService_CreateTournament(t *testing.T) {
	repo := memory.NewTournamentRepository(nil, nil)
	service := newTournamentService(repo)

	now := time.Date(2026, 4, 4, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	created, err := service.CreateTournament(t.Context(), CreateTournamentInput{
		Name:        "Taluka Cup",
		Category:    tournament.CategoryTaluka,
		OrganizerID: "org-1",
	})
	if err != nil {
		t.Fatalf("create tournament failed: %v", err)
	}
	if created.ID != "id-001" || !created.CreatedAt.Equal(now) {
		t.Fatalf("unexpected tournament: %+v", created)
	}

	if _, err := service.CreateTournament(t.Context(), CreateTournamentInput{
		Name:        "taluka cup",
		Category:    tournament.CategoryTaluka,
		OrganizerID: "org-1",
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected duplicate name conflict, got %v", err)
	}

	// A different organizer may reuse the name.
	if _, err := service.CreateTournament(t.Context(), CreateTournamentInput{
		Name:        "Taluka Cup",
		Category:    tournament.CategoryTaluka,
		OrganizerID: "org-2",
	}); err != nil {
		t.Fatalf("other organizer create failed: %v", err)
	}

	if _, err := service.CreateTournament(t.Context(), CreateTournamentInput{
		Name:        "Mystery Cup",
		Category:    tournament.Category("street"),
		OrganizerID: "org-1",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid category rejection, got %v", err)
	}
}

func TestTournamentService_CreateSeason(t *testing.T) {
	repo := memory.NewTournamentRepository(memory.SeedTournaments(), nil)
	service := newTournamentService(repo)

	season, err := service.CreateSeason(t.Context(), CreateSeasonInput{
		TournamentID: memory.TournamentIDVPL,
		OrganizerID:  memory.SeedOrganizerID,
		Name:         "Season 2",
		Year:         2027,
	})
	if err != nil {
		t.Fatalf("create season failed: %v", err)
	}
	if !season.RegistrationOpen || season.Configured || season.AuctionStarted {
		t.Fatalf("fresh season must be open and unconfigured: %+v", season)
	}
	if season.CurrentRound != 1 {
		t.Fatalf("expected round 1, got %d", season.CurrentRound)
	}

	if _, err := service.CreateSeason(t.Context(), CreateSeasonInput{
		TournamentID: memory.TournamentIDVPL,
		OrganizerID:  "someone-else",
		Name:         "Season X",
		Year:         2027,
	}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign organizer must see not-found, got %v", err)
	}
}

func TestTournamentService_ListMySeasons(t *testing.T) {
	repo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	service := newTournamentService(repo)

	seasons, err := service.ListMySeasons(t.Context(), memory.SeedOrganizerID)
	if err != nil {
		t.Fatalf("list my seasons failed: %v", err)
	}
	if len(seasons) != 1 || seasons[0].ID != memory.SeasonIDVPL2026 {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}

	seasons, err = service.ListMySeasons(t.Context(), "someone-else")
	if err != nil {
		t.Fatalf("list my seasons failed: %v", err)
	}
	if len(seasons) != 0 {
		t.Fatalf("expected no seasons for foreign organizer, got %d", len(seasons))
	}
}
