package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
	"github.com/shopspring/decimal"
)

type AuctionConfigInput struct {
	SeasonID          string
	OrganizerID       string
	BasePrice         decimal.Decimal
	MaxPlayersPerTeam int
	BudgetPerTeam     decimal.Decimal
}

type AuctionConfig struct {
	BasePrice         decimal.Decimal
	MaxPlayersPerTeam int
	BudgetPerTeam     decimal.Decimal
	Configured        bool
	AuctionStarted    bool
}

type TeamRegistration struct {
	Name       string
	LogoURL    string
	OwnerName  string
	OwnerEmail string
}

type RegisterTeamsInput struct {
	SeasonID    string
	OrganizerID string
	Teams       []TeamRegistration
}

type IconAssignment struct {
	TeamID       string
	IconPlayerID string
}

type TeamOverview struct {
	TeamID         string
	TeamName       string
	OwnerName      string
	LogoURL        string
	CurrentPlayers int
	MaxPlayers     int
	Remaining      decimal.Decimal
	TotalBudget    decimal.Decimal
	IconPlayerName string
}

type RosterPlayer struct {
	Player     player.Player
	Price      decimal.Decimal
	IconPlayer bool
	BoughtAt   time.Time
}

type TeamDetails struct {
	Overview TeamOverview
	Players  []RosterPlayer
}

// TeamService manages team registration, auction configuration and the
// season-scoped team reporting views.
type TeamService struct {
	seasonRepo tournament.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	tx         TxRunner
	idGen      idgen.Generator
	logger     *slog.Logger
	now        func() time.Time
}

func NewTeamService(
	seasonRepo tournament.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	tx TxRunner,
	idGen idgen.Generator,
	logger *slog.Logger,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		tx:         tx,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
	}
}

// ConfigureAuction sets the three auction knobs on a season. Rejected
// once the auction has started: configuration is immutable from then on.
func (s *TeamService) ConfigureAuction(ctx context.Context, input AuctionConfigInput) (AuctionConfig, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ConfigureAuction")
	defer span.End()

	var config AuctionConfig
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, input.SeasonID, input.OrganizerID)
		if err != nil {
			return err
		}
		if season.AuctionStarted {
			return fmt.Errorf("%w: cannot modify auction config after auction has started", ErrConflict)
		}

		season.BasePrice = input.BasePrice
		season.MaxPlayersPerTeam = input.MaxPlayersPerTeam
		season.BudgetPerTeam = input.BudgetPerTeam
		if err := season.ValidateAuctionConfig(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		season.Configured = true
		season.UpdatedAt = s.now().UTC()
		if err := s.seasonRepo.UpdateSeason(ctx, season); err != nil {
			return fmt.Errorf("update season: %w", err)
		}

		config = auctionConfigOf(season)
		return nil
	})
	if err != nil {
		return AuctionConfig{}, err
	}

	s.logger.InfoContext(ctx, "auction configured",
		"season_id", input.SeasonID,
		"base_price", input.BasePrice.String(),
		"max_players", input.MaxPlayersPerTeam,
	)

	return config, nil
}

func (s *TeamService) GetAuctionConfig(ctx context.Context, seasonID, organizerID string) (AuctionConfig, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetAuctionConfig")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return AuctionConfig{}, err
	}

	return auctionConfigOf(season), nil
}

// RegisterTeams registers a batch of teams for a season, reusing an
// existing team identity by name. Each team gets the season's budget
// and roster limits stamped onto its entry.
func (s *TeamService) RegisterTeams(ctx context.Context, input RegisterTeamsInput) ([]team.SeasonEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RegisterTeams")
	defer span.End()

	if len(input.Teams) == 0 {
		return nil, fmt.Errorf("%w: at least one team is required", ErrInvalidInput)
	}

	var created []team.SeasonEntry
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, input.SeasonID, input.OrganizerID)
		if err != nil {
			return err
		}
		if !season.Configured {
			return fmt.Errorf("%w: configure auction settings before registering teams", ErrConflict)
		}
		if season.AuctionStarted {
			return fmt.Errorf("%w: cannot register teams after auction has started", ErrConflict)
		}

		created = make([]team.SeasonEntry, 0, len(input.Teams))
		for _, registration := range input.Teams {
			name := strings.TrimSpace(registration.Name)
			if name == "" {
				return fmt.Errorf("%w: team name is required", ErrInvalidInput)
			}

			existing, exists, err := s.teamRepo.GetByName(ctx, name)
			if err != nil {
				return fmt.Errorf("get team by name: %w", err)
			}

			registered := existing
			if !exists {
				teamID, err := s.idGen.NewID()
				if err != nil {
					return fmt.Errorf("generate team id: %w", err)
				}
				registered = team.Team{
					ID:         teamID,
					Name:       name,
					LogoURL:    strings.TrimSpace(registration.LogoURL),
					OwnerName:  strings.TrimSpace(registration.OwnerName),
					OwnerEmail: strings.TrimSpace(registration.OwnerEmail),
					Active:     true,
					CreatedAt:  s.now().UTC(),
				}
				if err := registered.Validate(); err != nil {
					return fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
				if err := s.teamRepo.Create(ctx, registered); err != nil {
					return fmt.Errorf("create team: %w", err)
				}
			}

			if _, exists, err := s.teamRepo.GetSeasonEntry(ctx, season.ID, registered.ID); err != nil {
				return fmt.Errorf("get team season: %w", err)
			} else if exists {
				return fmt.Errorf("%w: team %q is already registered for this season", ErrConflict, registered.Name)
			}

			entryID, err := s.idGen.NewID()
			if err != nil {
				return fmt.Errorf("generate team season id: %w", err)
			}
			entry := team.SeasonEntry{
				ID:          entryID,
				TeamID:      registered.ID,
				SeasonID:    season.ID,
				TotalBudget: season.BudgetPerTeam,
				Remaining:   season.BudgetPerTeam,
				MaxPlayers:  season.MaxPlayersPerTeam,
				Active:      true,
				CreatedAt:   s.now().UTC(),
			}
			if err := entry.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			if err := s.teamRepo.CreateSeasonEntry(ctx, entry); err != nil {
				return fmt.Errorf("create team season: %w", err)
			}
			created = append(created, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "teams registered",
		"season_id", input.SeasonID,
		"count", len(created),
	)

	return created, nil
}

func (s *TeamService) ListSeasonTeams(ctx context.Context, seasonID, organizerID string) ([]team.SeasonEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListSeasonTeams")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.teamRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list season teams: %w", err)
	}

	return entries, nil
}

// AssignIconPlayers pre-assigns players to teams before the auction
// starts. Each assignment writes a zero-price icon purchase; icon
// players never enter the bidding pool.
func (s *TeamService) AssignIconPlayers(ctx context.Context, seasonID, organizerID string, assignments []IconAssignment) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AssignIconPlayers")
	defer span.End()

	if len(assignments) == 0 {
		return 0, fmt.Errorf("%w: at least one assignment is required", ErrInvalidInput)
	}

	assigned := 0
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
		if err != nil {
			return err
		}
		if season.AuctionStarted {
			return fmt.Errorf("%w: cannot assign icon players after auction has started", ErrConflict)
		}

		for _, assignment := range assignments {
			teamEntry, exists, err := s.teamRepo.GetSeasonEntry(ctx, season.ID, assignment.TeamID)
			if err != nil {
				return fmt.Errorf("get team season: %w", err)
			}
			if !exists {
				return fmt.Errorf("%w: team %s not found in this season", ErrNotFound, assignment.TeamID)
			}

			playerEntry, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, assignment.IconPlayerID)
			if err != nil {
				return fmt.Errorf("get player season: %w", err)
			}
			if !exists || !playerEntry.Selected {
				return fmt.Errorf("%w: player %s not found or not selected for auction", ErrNotFound, assignment.IconPlayerID)
			}

			if _, taken, err := s.teamRepo.GetSeasonEntryByIconPlayer(ctx, season.ID, assignment.IconPlayerID); err != nil {
				return fmt.Errorf("check icon assignment: %w", err)
			} else if taken {
				return fmt.Errorf("%w: player %s is already assigned as icon player", ErrConflict, assignment.IconPlayerID)
			}

			teamEntry.IconPlayerID = assignment.IconPlayerID
			if _, err := recordPurchase(ctx, s.teamRepo, s.idGen, s.now().UTC(), &teamEntry, assignment.IconPlayerID, decimal.Zero, true); err != nil {
				return err
			}
			assigned++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "icon players assigned",
		"season_id", seasonID,
		"count", assigned,
	)

	return assigned, nil
}

// TeamsOverview is the season dashboard: budget, headcount and icon
// player per registered team.
func (s *TeamService) TeamsOverview(ctx context.Context, seasonID, organizerID string) ([]TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TeamsOverview")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return nil, err
	}

	entries, err := s.teamRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return nil, fmt.Errorf("list season teams: %w", err)
	}

	overviews := make([]TeamOverview, 0, len(entries))
	for _, entry := range entries {
		overview, err := s.overviewOf(ctx, entry)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, overview)
	}

	return overviews, nil
}

// TeamDetails lists one team's full roster from the purchase ledger.
func (s *TeamService) TeamDetails(ctx context.Context, seasonID, organizerID, teamID string) (TeamDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TeamDetails")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return TeamDetails{}, err
	}

	entry, exists, err := s.teamRepo.GetSeasonEntry(ctx, season.ID, teamID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("get team season: %w", err)
	}
	if !exists {
		return TeamDetails{}, fmt.Errorf("%w: team not found in this season", ErrNotFound)
	}

	overview, err := s.overviewOf(ctx, entry)
	if err != nil {
		return TeamDetails{}, err
	}

	purchases, err := s.teamRepo.ListPurchases(ctx, entry.ID)
	if err != nil {
		return TeamDetails{}, fmt.Errorf("list purchases: %w", err)
	}

	roster := make([]RosterPlayer, 0, len(purchases))
	for _, purchase := range purchases {
		bought, exists, err := s.playerRepo.Get(ctx, purchase.PlayerID)
		if err != nil {
			return TeamDetails{}, fmt.Errorf("get player: %w", err)
		}
		if !exists {
			continue
		}
		roster = append(roster, RosterPlayer{
			Player:     bought,
			Price:      purchase.Price,
			IconPlayer: purchase.IconPlayer,
			BoughtAt:   purchase.PurchasedAt,
		})
	}

	return TeamDetails{Overview: overview, Players: roster}, nil
}

func (s *TeamService) overviewOf(ctx context.Context, entry team.SeasonEntry) (TeamOverview, error) {
	registered, exists, err := s.teamRepo.Get(ctx, entry.TeamID)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamOverview{}, fmt.Errorf("%w: team %s", ErrNotFound, entry.TeamID)
	}

	iconName := ""
	if entry.IconPlayerID != "" {
		icon, exists, err := s.playerRepo.Get(ctx, entry.IconPlayerID)
		if err != nil {
			return TeamOverview{}, fmt.Errorf("get icon player: %w", err)
		}
		if exists {
			iconName = icon.FullName()
		}
	}

	return TeamOverview{
		TeamID:         entry.TeamID,
		TeamName:       registered.Name,
		OwnerName:      registered.OwnerName,
		LogoURL:        registered.LogoURL,
		CurrentPlayers: entry.CurrentPlayers,
		MaxPlayers:     entry.MaxPlayers,
		Remaining:      entry.Remaining,
		TotalBudget:    entry.TotalBudget,
		IconPlayerName: iconName,
	}, nil
}

func auctionConfigOf(season tournament.Season) AuctionConfig {
	return AuctionConfig{
		BasePrice:         season.BasePrice,
		MaxPlayersPerTeam: season.MaxPlayersPerTeam,
		BudgetPerTeam:     season.BudgetPerTeam,
		Configured:        season.Configured,
		AuctionStarted:    season.AuctionStarted,
	}
}
