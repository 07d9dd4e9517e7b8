package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
)

type CreateTournamentInput struct {
	Name        string
	Description string
	LogoURL     string
	Category    tournament.Category
	OrganizerID string
}

type CreateSeasonInput struct {
	TournamentID string
	OrganizerID  string
	Name         string
	Year         int
}

// TournamentService manages tournaments and their seasons. Every read
// and write is scoped to the calling organizer.
type TournamentService struct {
	repo   tournament.Repository
	idGen  idgen.Generator
	logger *slog.Logger
	now    func() time.Time
}

func NewTournamentService(repo tournament.Repository, idGen idgen.Generator, logger *slog.Logger) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TournamentService{
		repo:   repo,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

func (s *TournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CreateTournament")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if _, exists, err := s.repo.GetTournamentByName(ctx, input.OrganizerID, name); err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament by name: %w", err)
	} else if exists {
		return tournament.Tournament{}, fmt.Errorf("%w: you already organize a tournament named %q", ErrConflict, name)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("generate tournament id: %w", err)
	}

	now := s.now().UTC()
	created := tournament.Tournament{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		LogoURL:     strings.TrimSpace(input.LogoURL),
		Category:    input.Category,
		OrganizerID: input.OrganizerID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := created.Validate(); err != nil {
		return tournament.Tournament{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.CreateTournament(ctx, created); err != nil {
		return tournament.Tournament{}, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.InfoContext(ctx, "tournament created",
		"tournament_id", created.ID,
		"organizer_id", input.OrganizerID,
	)

	return created, nil
}

func (s *TournamentService) ListTournaments(ctx context.Context, organizerID string) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	tournaments, err := s.repo.ListTournamentsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return tournaments, nil
}

// CreateSeason opens a season under a tournament. Registration starts
// open; auction settings are configured separately before the auction.
func (s *TournamentService) CreateSeason(ctx context.Context, input CreateSeasonInput) (tournament.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.CreateSeason")
	defer span.End()

	parent, exists, err := s.repo.GetTournament(ctx, input.TournamentID)
	if err != nil {
		return tournament.Season{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists || parent.OrganizerID != input.OrganizerID {
		return tournament.Season{}, fmt.Errorf("%w: tournament not found or access denied", ErrNotFound)
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return tournament.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := s.now().UTC()
	season := tournament.Season{
		ID:               id,
		TournamentID:     parent.ID,
		Name:             strings.TrimSpace(input.Name),
		Year:             input.Year,
		OrganizerID:      input.OrganizerID,
		RegistrationOpen: true,
		Active:           true,
		CurrentRound:     1,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := season.Validate(); err != nil {
		return tournament.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.CreateSeason(ctx, season); err != nil {
		return tournament.Season{}, fmt.Errorf("create season: %w", err)
	}

	s.logger.InfoContext(ctx, "season created",
		"season_id", season.ID,
		"tournament_id", parent.ID,
	)

	return season, nil
}

func (s *TournamentService) ListSeasons(ctx context.Context, tournamentID, organizerID string) ([]tournament.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListSeasons")
	defer span.End()

	parent, exists, err := s.repo.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !exists || parent.OrganizerID != organizerID {
		return nil, fmt.Errorf("%w: tournament not found or access denied", ErrNotFound)
	}

	seasons, err := s.repo.ListSeasonsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}

// ListMySeasons lists every season the organizer runs across all of
// their tournaments.
func (s *TournamentService) ListMySeasons(ctx context.Context, organizerID string) ([]tournament.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListMySeasons")
	defer span.End()

	seasons, err := s.repo.ListSeasonsByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return seasons, nil
}
