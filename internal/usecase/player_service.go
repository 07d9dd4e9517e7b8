package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
)

type RegisterPlayerInput struct {
	SeasonID     string
	FirstName    string
	LastName     string
	Village      string
	Mobile       string
	PhotoURL     string
	Wicketkeeper bool
	Batsman      bool
	Bowler       bool
	BattingStyle string
	BowlingStyle string
}

type SeasonPlayer struct {
	Player player.Player
	Entry  player.SeasonEntry
}

// PlayerService handles player registration into open seasons and the
// organizer's selection of which registrants enter the auction.
type PlayerService struct {
	seasonRepo tournament.Repository
	playerRepo player.Repository
	tx         TxRunner
	idGen      idgen.Generator
	logger     *slog.Logger
	now        func() time.Time
}

func NewPlayerService(
	seasonRepo tournament.Repository,
	playerRepo player.Repository,
	tx TxRunner,
	idGen idgen.Generator,
	logger *slog.Logger,
) *PlayerService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PlayerService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		tx:         tx,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// FindByMobile looks up an existing player profile so the registration
// form can be prefilled. Registration is public: no ownership check.
func (s *PlayerService) FindByMobile(ctx context.Context, mobile string) (player.Player, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.FindByMobile")
	defer span.End()

	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return player.Player{}, false, fmt.Errorf("%w: mobile number is required", ErrInvalidInput)
	}

	found, exists, err := s.playerRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player by mobile: %w", err)
	}

	return found, exists, nil
}

// RegisterPlayer enrolls a player into a season with open registration.
// A returning player is matched by mobile number and relinked rather
// than duplicated; their profile and role are refreshed from the form.
func (s *PlayerService) RegisterPlayer(ctx context.Context, input RegisterPlayerInput) (player.SeasonEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RegisterPlayer")
	defer span.End()

	var entry player.SeasonEntry
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, exists, err := s.seasonRepo.GetSeason(ctx, input.SeasonID)
		if err != nil {
			return fmt.Errorf("get season: %w", err)
		}
		if !exists || !season.Active {
			return fmt.Errorf("%w: season not found", ErrNotFound)
		}
		if !season.RegistrationOpen {
			return fmt.Errorf("%w: registration is closed for this season", ErrConflict)
		}

		mobile := strings.TrimSpace(input.Mobile)
		registered, exists, err := s.playerRepo.GetByMobile(ctx, mobile)
		if err != nil {
			return fmt.Errorf("get player by mobile: %w", err)
		}

		now := s.now().UTC()
		role := player.DeriveRole(input.Wicketkeeper, input.Batsman, input.Bowler)
		if exists {
			registered.FirstName = strings.TrimSpace(input.FirstName)
			registered.LastName = strings.TrimSpace(input.LastName)
			registered.Village = strings.TrimSpace(input.Village)
			registered.PhotoURL = strings.TrimSpace(input.PhotoURL)
			registered.Wicketkeeper = input.Wicketkeeper
			registered.Batsman = input.Batsman
			registered.Bowler = input.Bowler
			registered.BattingStyle = strings.TrimSpace(input.BattingStyle)
			registered.BowlingStyle = strings.TrimSpace(input.BowlingStyle)
			registered.Role = role
			registered.UpdatedAt = now
			if err := registered.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if err := s.playerRepo.Update(ctx, registered); err != nil {
				return fmt.Errorf("update player: %w", err)
			}
		} else {
			playerID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate player id: %w", err)
			}
			registered = player.Player{
				ID:           playerID,
				FirstName:    strings.TrimSpace(input.FirstName),
				LastName:     strings.TrimSpace(input.LastName),
				Village:      strings.TrimSpace(input.Village),
				Mobile:       mobile,
				PhotoURL:     strings.TrimSpace(input.PhotoURL),
				Wicketkeeper: input.Wicketkeeper,
				Batsman:      input.Batsman,
				Bowler:       input.Bowler,
				BattingStyle: strings.TrimSpace(input.BattingStyle),
				BowlingStyle: strings.TrimSpace(input.BowlingStyle),
				Role:         role,
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := registered.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if err := s.playerRepo.Create(ctx, registered); err != nil {
				return fmt.Errorf("create player: %w", err)
			}
		}

		if _, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, registered.ID); err != nil {
			return fmt.Errorf("get player season: %w", err)
		} else if exists {
			return fmt.Errorf("%w: player is already registered for this season", ErrConflict)
		}

		entryID, err := s.idGen.NewID()
		if err != nil {
			return fmt.Errorf("generate player season id: %w", err)
		}
		entry = player.SeasonEntry{
			ID:           entryID,
			PlayerID:     registered.ID,
			SeasonID:     season.ID,
			Status:       auction.StatusPending,
			Round:        1,
			RegisteredAt: now,
			Active:       true,
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.playerRepo.CreateSeasonEntry(ctx, entry); err != nil {
			return fmt.Errorf("create player season: %w", err)
		}

		return nil
	})
	if err != nil {
		return player.SeasonEntry{}, err
	}

	s.logger.InfoContext(ctx, "player registered",
		"season_id", input.SeasonID,
		"player_season_id", entry.ID,
	)

	return entry, nil
}

func (s *PlayerService) ListSeasonPlayers(ctx context.Context, seasonID, organizerID string) ([]SeasonPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListSeasonPlayers")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.playerRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list season players: %w", err)
	}

	return s.joinPlayers(ctx, entries)
}

// CloseRegistration stops further player signups for a season.
func (s *PlayerService) CloseRegistration(ctx context.Context, seasonID, organizerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CloseRegistration")
	defer span.End()

	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
		if err != nil {
			return err
		}
		if !season.RegistrationOpen {
			return fmt.Errorf("%w: registration is already closed", ErrConflict)
		}

		season.RegistrationOpen = false
		season.UpdatedAt = s.now().UTC()
		if err := s.seasonRepo.UpdateSeason(ctx, season); err != nil {
			return fmt.Errorf("update season: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "registration closed", "season_id", seasonID)
	return nil
}

// SelectPlayersForAuction marks which registered players enter the
// bidding pool. Allowed until the auction starts; reselection replaces
// the previous selection.
func (s *PlayerService) SelectPlayersForAuction(ctx context.Context, seasonID, organizerID string, playerIDs []string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SelectPlayersForAuction")
	defer span.End()

	if len(playerIDs) == 0 {
		return 0, fmt.Errorf("%w: at least one player is required", ErrInvalidInput)
	}

	selected := 0
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
		if err != nil {
			return err
		}
		if season.AuctionStarted {
			return fmt.Errorf("%w: cannot change the auction pool after auction has started", ErrConflict)
		}

		for _, playerID := range playerIDs {
			if _, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, playerID); err != nil {
				return fmt.Errorf("get player season: %w", err)
			} else if !exists {
				return fmt.Errorf("%w: player %s is not registered for this season", ErrNotFound, playerID)
			}
		}

		if err := s.playerRepo.SetAuctionSelection(ctx, season.ID, playerIDs); err != nil {
			return fmt.Errorf("set auction selection: %w", err)
		}
		selected = len(playerIDs)
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "auction pool selected",
		"season_id", seasonID,
		"count", selected,
	)

	return selected, nil
}

// AuctionPlayersList lists the selected pool with current statuses,
// used by the tracking screen during a live auction.
func (s *PlayerService) AuctionPlayersList(ctx context.Context, seasonID, organizerID string) ([]SeasonPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AuctionPlayersList")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.playerRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list season players: %w", err)
	}

	pool := entries[:0:0]
	for _, entry := range entries {
		if entry.Selected {
			pool = append(pool, entry)
		}
	}

	return s.joinPlayers(ctx, pool)
}

func (s *PlayerService) joinPlayers(ctx context.Context, entries []player.SeasonEntry) ([]SeasonPlayer, error) {
	joined := make([]SeasonPlayer, 0, len(entries))
	for _, entry := range entries {
		profile, exists, err := s.playerRepo.Get(ctx, entry.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			continue
		}
		joined = append(joined, SeasonPlayer{Player: profile, Entry: entry})
	}
	return joined, nil
}
