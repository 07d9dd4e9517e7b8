package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/nikunj436/cricketAuction/internal/domain/team"
)

func TestTxRunner_RestoresStoresOnError(t *testing.T) {
	teamRepo := NewTeamRepository(SeedTeams(), SeedTeamSeasons())
	tx := NewTxRunner(teamRepo)

	boom := errors.New("second step failed")
	err := tx.InTx(t.Context(), func(ctx context.Context) error {
		if err := teamRepo.Create(ctx, team.Team{ID: "tm-tx", Name: "Halfway XI", Active: true}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected unit of work error, got %v", err)
	}

	if _, exists, err := teamRepo.Get(t.Context(), "tm-tx"); err != nil || exists {
		t.Fatalf("team created inside a failed unit of work must not survive, exists=%v err=%v", exists, err)
	}
	if _, exists, err := teamRepo.Get(t.Context(), TeamIDRoyals); err != nil || !exists {
		t.Fatalf("seeded team must survive the restore, exists=%v err=%v", exists, err)
	}
}

func TestTxRunner_KeepsWritesOnSuccess(t *testing.T) {
	teamRepo := NewTeamRepository(nil, nil)
	tx := NewTxRunner(teamRepo)

	err := tx.InTx(t.Context(), func(ctx context.Context) error {
		return teamRepo.Create(ctx, team.Team{ID: "tm-ok", Name: "Committed XI", Active: true})
	})
	if err != nil {
		t.Fatalf("unit of work failed: %v", err)
	}

	if _, exists, err := teamRepo.Get(t.Context(), "tm-ok"); err != nil || !exists {
		t.Fatalf("committed team must be visible, exists=%v err=%v", exists, err)
	}
}
