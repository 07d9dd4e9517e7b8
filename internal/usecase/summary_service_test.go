package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nikunj436/cricketAuction/internal/infrastructure/repository/memory"
)

type captureMailer struct {
	sent chan RosterSummary
}

func (m *captureMailer) SendRosterSummary(_ context.Context, summary RosterSummary) error {
	m.sent <- summary
	return nil
}

func TestSummaryService_SendSeasonSummaries(t *testing.T) {
	seasons := memory.SeedSeasons()
	seasons[0].AuctionStarted = true
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), seasons)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	teams := NewTeamService(seasonRepo, teamRepo, playerRepo, memory.NewTxRunner(seasonRepo, playerRepo, teamRepo), &seqIDGenerator{prefix: "id"}, logger)

	mailer := &captureMailer{sent: make(chan RosterSummary, 4)}
	service, err := NewSummaryService(seasonRepo, teamRepo, teams, mailer, 2, logger)
	if err != nil {
		t.Fatalf("new summary service: %v", err)
	}
	defer service.Release()

	dispatched, err := service.SendSeasonSummaries(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID)
	if err != nil {
		t.Fatalf("send season summaries failed: %v", err)
	}
	if dispatched != 2 {
		t.Fatalf("expected 2 dispatches, got %d", dispatched)
	}

	owners := make(map[string]bool)
	for i := 0; i < 2; i++ {
		select {
		case summary := <-mailer.sent:
			owners[summary.OwnerEmail] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for summary %d", i+1)
		}
	}
	if !owners["mahesh@example.com"] || !owners["kiran@example.com"] {
		t.Fatalf("unexpected recipients: %v", owners)
	}
}

func TestSummaryService_SendSeasonSummaries_BeforeStart(t *testing.T) {
	seasonRepo := memory.NewTournamentRepository(memory.SeedTournaments(), memory.SeedSeasons())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamSeasons())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedPlayerSeasons())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	teams := NewTeamService(seasonRepo, teamRepo, playerRepo, memory.NewTxRunner(seasonRepo, playerRepo, teamRepo), &seqIDGenerator{prefix: "id"}, logger)

	mailer := &captureMailer{sent: make(chan RosterSummary, 4)}
	service, err := NewSummaryService(seasonRepo, teamRepo, teams, mailer, 2, logger)
	if err != nil {
		t.Fatalf("new summary service: %v", err)
	}
	defer service.Release()

	if _, err := service.SendSeasonSummaries(t.Context(), memory.SeasonIDVPL2026, memory.SeedOrganizerID); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict before auction start, got %v", err)
	}
}
