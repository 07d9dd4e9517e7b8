package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	tournamentmock "github.com/nikunj436/cricketAuction/internal/mocks/domain/tournament"
	"github.com/stretchr/testify/mock"
)

func TestTournamentService_ListSeasons_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := tournamentmock.NewRepository(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewTournamentService(repo, &seqIDGenerator{prefix: "id"}, logger)

	tournamentID := "vpl-2026"
	expectedSeasons := []tournament.Season{
		{ID: "vpl-2026-season-1", TournamentID: tournamentID, Name: "Season 1", Year: 2026, OrganizerID: "org-1"},
	}

	repo.
		On("GetTournament", mock.Anything, tournamentID).
		Return(tournament.Tournament{ID: tournamentID, OrganizerID: "org-1", Active: true}, true, nil).
		Once()
	repo.
		On("ListSeasonsByTournament", mock.Anything, tournamentID).
		Return(expectedSeasons, nil).
		Once()

	got, err := service.ListSeasons(ctx, tournamentID, "org-1")
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(got) != len(expectedSeasons) {
		t.Fatalf("unexpected season count: got=%d want=%d", len(got), len(expectedSeasons))
	}
	if got[0].ID != expectedSeasons[0].ID {
		t.Fatalf("unexpected season id: got=%s want=%s", got[0].ID, expectedSeasons[0].ID)
	}
}

func TestTournamentService_ListSeasons_ForeignOrganizerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := tournamentmock.NewRepository(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewTournamentService(repo, &seqIDGenerator{prefix: "id"}, logger)

	repo.
		On("GetTournament", mock.Anything, "vpl-2026").
		Return(tournament.Tournament{ID: "vpl-2026", OrganizerID: "org-1", Active: true}, true, nil).
		Once()

	_, err := service.ListSeasons(ctx, "vpl-2026", "org-2")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
