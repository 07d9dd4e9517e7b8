package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/panjf2000/ants/v2"
)

// RosterSummary is the per-team digest mailed to owners once an
// auction completes.
type RosterSummary struct {
	SeasonName string
	TeamName   string
	OwnerName  string
	OwnerEmail string
	Overview   TeamOverview
	Players    []RosterPlayer
}

// Mailer delivers a roster summary to the team owner.
type Mailer interface {
	SendRosterSummary(ctx context.Context, summary RosterSummary) error
}

// SummaryService fans roster summary emails out to team owners. Sends
// run on a bounded worker pool so a slow SMTP peer cannot stall the
// request path.
type SummaryService struct {
	seasonRepo tournament.Repository
	teamRepo   team.Repository
	teams      *TeamService
	mailer     Mailer
	pool       *ants.Pool
	logger     *slog.Logger
	sendWait   time.Duration
}

func NewSummaryService(
	seasonRepo tournament.Repository,
	teamRepo team.Repository,
	teams *TeamService,
	mailer Mailer,
	workers int,
	logger *slog.Logger,
) (*SummaryService, error) {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}

	pool, err := ants.NewPool(workers, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("create mail worker pool: %w", err)
	}

	return &SummaryService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		teams:      teams,
		mailer:     mailer,
		pool:       pool,
		logger:     logger,
		sendWait:   30 * time.Second,
	}, nil
}

// Release tears down the worker pool. Call on shutdown.
func (s *SummaryService) Release() {
	s.pool.Release()
}

// SendSeasonSummaries mails every team owner in the season their final
// roster. Returns how many sends were dispatched; individual delivery
// failures are logged, not returned.
func (s *SummaryService) SendSeasonSummaries(ctx context.Context, seasonID, organizerID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SummaryService.SendSeasonSummaries")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return 0, err
	}
	if !season.AuctionStarted {
		return 0, fmt.Errorf("%w: auction has not started yet", ErrConflict)
	}

	entries, err := s.teamRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return 0, fmt.Errorf("list season teams: %w", err)
	}

	dispatched := 0
	for _, entry := range entries {
		details, err := s.teams.TeamDetails(ctx, season.ID, organizerID, entry.TeamID)
		if err != nil {
			s.logger.ErrorContext(ctx, "skip roster summary",
				"team_id", entry.TeamID, "error", err)
			continue
		}

		registered, exists, err := s.teamRepo.Get(ctx, entry.TeamID)
		if err != nil || !exists || registered.OwnerEmail == "" {
			continue
		}

		summary := RosterSummary{
			SeasonName: season.Name,
			TeamName:   registered.Name,
			OwnerName:  registered.OwnerName,
			OwnerEmail: registered.OwnerEmail,
			Overview:   details.Overview,
			Players:    details.Players,
		}

		if err := s.pool.Submit(func() { s.deliver(summary) }); err != nil {
			s.logger.ErrorContext(ctx, "submit roster summary",
				"team_id", entry.TeamID, "error", err)
			continue
		}
		dispatched++
	}

	s.logger.InfoContext(ctx, "roster summaries dispatched",
		"season_id", seasonID,
		"count", dispatched,
	)

	return dispatched, nil
}

func (s *SummaryService) deliver(summary RosterSummary) {
	ctx, cancel := context.WithTimeout(context.Background(), s.sendWait)
	defer cancel()

	if err := s.mailer.SendRosterSummary(ctx, summary); err != nil {
		s.logger.ErrorContext(ctx, "send roster summary",
			"owner_email", summary.OwnerEmail, "error", err)
		return
	}

	s.logger.InfoContext(ctx, "roster summary sent", "owner_email", summary.OwnerEmail)
}
