package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/team"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
	"github.com/shopspring/decimal"
)

// NextAction tells the operator what the auction needs next. An empty
// pending pool is an actionable state, not an error.
type NextAction string

const (
	ActionPresentPlayer   NextAction = "present_player"
	ActionStartNextRound  NextAction = "start_next_round"
	ActionAuctionComplete NextAction = "auction_complete"
)

// Candidate is the read-only presentation of one player on the block,
// with the highest bid any team in the season could still place.
type Candidate struct {
	Entry  player.SeasonEntry
	Player player.Player
	MaxBid decimal.Decimal
}

type NextPlayerResult struct {
	Action    NextAction
	Candidate *Candidate
}

type StartAuctionInput struct {
	SeasonID    string
	OrganizerID string
	Mode        auction.Mode
}

type StartAuctionResult struct {
	Mode       auction.Mode
	Round      int
	TotalTeams int
}

type ResolveBidInput struct {
	SeasonID    string
	OrganizerID string
	PlayerID    string
	TeamID      string
	Amount      decimal.Decimal
	Sold        bool
}

type ResolveBidResult struct {
	Sold     bool
	TeamName string
	Price    decimal.Decimal
}

type FastAssignment struct {
	PlayerID string
	TeamID   string
	Price    decimal.Decimal
}

type FastAssignResult struct {
	AssignedCount int
}

type NextRoundResult struct {
	Round        int
	PlayersMoved int
}

// AuctionService is the state machine driving a season's auction. It is
// stateless between calls: every operation reads the persisted season,
// player and team state, applies the budget rules, and commits the new
// state inside one transactional unit.
type AuctionService struct {
	seasonRepo tournament.Repository
	playerRepo player.Repository
	teamRepo   team.Repository
	tx         TxRunner
	idGen      idgen.Generator
	logger     *slog.Logger
	now        func() time.Time
	randIntN   func(n int) int
}

func NewAuctionService(
	seasonRepo tournament.Repository,
	playerRepo player.Repository,
	teamRepo team.Repository,
	tx TxRunner,
	idGen idgen.Generator,
	logger *slog.Logger,
) *AuctionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuctionService{
		seasonRepo: seasonRepo,
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		tx:         tx,
		idGen:      idGen,
		logger:     logger,
		now:        time.Now,
		randIntN:   rand.IntN,
	}
}

// StartAuction flips the season into auction mode. One-way: a second
// call fails without touching the round counter or icon players.
func (s *AuctionService) StartAuction(ctx context.Context, input StartAuctionInput) (StartAuctionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.StartAuction")
	defer span.End()

	var result StartAuctionResult
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, input.SeasonID, input.OrganizerID)
		if err != nil {
			return err
		}
		if !season.Configured {
			return fmt.Errorf("%w: configure auction settings first", ErrConflict)
		}
		if season.AuctionStarted {
			return fmt.Errorf("%w: auction has already started", ErrConflict)
		}

		mode := input.Mode
		if mode == "" {
			mode = auction.ModeRandom
		}

		teamEntries, err := s.teamRepo.ListBySeason(ctx, season.ID)
		if err != nil {
			return fmt.Errorf("list season teams: %w", err)
		}
		if len(teamEntries) == 0 {
			return fmt.Errorf("%w: no teams registered for this season", ErrConflict)
		}

		season.AuctionStarted = true
		season.AuctionMode = mode
		season.CurrentRound = 1
		season.UpdatedAt = s.now().UTC()
		if err := s.seasonRepo.UpdateSeason(ctx, season); err != nil {
			return fmt.Errorf("update season: %w", err)
		}

		iconPlayerIDs := make([]string, 0, len(teamEntries))
		for _, entry := range teamEntries {
			if entry.IconPlayerID != "" {
				iconPlayerIDs = append(iconPlayerIDs, entry.IconPlayerID)
			}
		}
		if len(iconPlayerIDs) > 0 {
			if err := s.playerRepo.MarkIconPlayers(ctx, season.ID, iconPlayerIDs); err != nil {
				return fmt.Errorf("mark icon players: %w", err)
			}
		}

		if err := s.playerRepo.StampRound(ctx, season.ID, 1); err != nil {
			return fmt.Errorf("stamp opening round: %w", err)
		}

		result = StartAuctionResult{Mode: mode, Round: 1, TotalTeams: len(teamEntries)}
		return nil
	})
	if err != nil {
		return StartAuctionResult{}, err
	}

	s.logger.InfoContext(ctx, "auction started",
		"season_id", input.SeasonID,
		"mode", result.Mode,
		"total_teams", result.TotalTeams,
	)

	return result, nil
}

// NextRandomPlayer draws uniformly from the current round's pending
// pool. Read-only: presenting a candidate changes nothing.
func (s *AuctionService) NextRandomPlayer(ctx context.Context, seasonID, organizerID string) (NextPlayerResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.NextRandomPlayer")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return NextPlayerResult{}, err
	}
	if err := requireAuctionStarted(season); err != nil {
		return NextPlayerResult{}, err
	}

	pending, err := s.playerRepo.ListPendingAtRound(ctx, season.ID, season.CurrentRound)
	if err != nil {
		return NextPlayerResult{}, fmt.Errorf("list pending players: %w", err)
	}

	if len(pending) == 0 {
		unsold, err := s.playerRepo.ListByStatus(ctx, season.ID, auction.StatusUnsold)
		if err != nil {
			return NextPlayerResult{}, fmt.Errorf("list unsold players: %w", err)
		}
		if len(unsold) > 0 {
			return NextPlayerResult{Action: ActionStartNextRound}, nil
		}
		return NextPlayerResult{Action: ActionAuctionComplete}, nil
	}

	selected := pending[s.randIntN(len(pending))]
	candidate, err := s.buildCandidate(ctx, season, selected)
	if err != nil {
		return NextPlayerResult{}, err
	}

	return NextPlayerResult{Action: ActionPresentPlayer, Candidate: &candidate}, nil
}

// ManualPlayer presents the named pending player. Read-only.
func (s *AuctionService) ManualPlayer(ctx context.Context, seasonID, organizerID, playerID string) (Candidate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.ManualPlayer")
	defer span.End()

	season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
	if err != nil {
		return Candidate{}, err
	}
	if err := requireAuctionStarted(season); err != nil {
		return Candidate{}, err
	}

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return Candidate{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	entry, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, playerID)
	if err != nil {
		return Candidate{}, fmt.Errorf("get player season: %w", err)
	}
	if !exists || entry.Status != auction.StatusPending {
		return Candidate{}, fmt.Errorf("%w: player not found or not available for auction", ErrNotFound)
	}

	return s.buildCandidate(ctx, season, entry)
}

// ResolveBid settles the player currently on the block: sold to a team
// at a price, or unsold into the recycling pool. Any failed
// precondition aborts the operation with no partial state change.
func (s *AuctionService) ResolveBid(ctx context.Context, input ResolveBidInput) (ResolveBidResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.ResolveBid")
	defer span.End()

	var result ResolveBidResult
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, input.SeasonID, input.OrganizerID)
		if err != nil {
			return err
		}
		if err := requireAuctionStarted(season); err != nil {
			return err
		}

		entry, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, strings.TrimSpace(input.PlayerID))
		if err != nil {
			return fmt.Errorf("get player season: %w", err)
		}
		if !exists || entry.Status != auction.StatusPending {
			return fmt.Errorf("%w: player not found or not available for bidding", ErrNotFound)
		}

		if !input.Sold {
			entry.Status = auction.StatusUnsold
			if err := s.playerRepo.UpdateSeasonEntry(ctx, entry); err != nil {
				return fmt.Errorf("update player season: %w", err)
			}
			result = ResolveBidResult{Sold: false}
			return nil
		}

		// Hard floor, checked before the budget rules on purpose: the
		// operator gets a base-price message rather than a cap message
		// for a bid that never met the floor.
		if input.Amount.LessThan(season.BasePrice) {
			return fmt.Errorf("%w: bid amount must be at least base price of %s",
				ErrInvalidInput, season.BasePrice.String())
		}

		teamEntry, exists, err := s.teamRepo.GetSeasonEntry(ctx, season.ID, strings.TrimSpace(input.TeamID))
		if err != nil {
			return fmt.Errorf("get team season: %w", err)
		}
		if !exists {
			return fmt.Errorf("%w: team not found in this season", ErrNotFound)
		}

		eval := auction.EvaluateBid(teamEntry.Budget(), input.Amount, season.BasePrice)
		if !eval.Admissible {
			return eval.Reason
		}

		if _, err := recordPurchase(ctx, s.teamRepo, s.idGen, s.now().UTC(), &teamEntry, entry.PlayerID, input.Amount, false); err != nil {
			return err
		}

		entry.Status = auction.StatusSold
		if err := s.playerRepo.UpdateSeasonEntry(ctx, entry); err != nil {
			return fmt.Errorf("update player season: %w", err)
		}

		boughtBy, _, err := s.teamRepo.Get(ctx, teamEntry.TeamID)
		if err != nil {
			return fmt.Errorf("get team: %w", err)
		}

		result = ResolveBidResult{Sold: true, TeamName: boughtBy.Name, Price: input.Amount}
		return nil
	})
	if err != nil {
		return ResolveBidResult{}, err
	}

	if result.Sold {
		s.logger.InfoContext(ctx, "player sold",
			"season_id", input.SeasonID,
			"player_id", input.PlayerID,
			"team_id", input.TeamID,
			"price", result.Price.String(),
		)
	} else {
		s.logger.InfoContext(ctx, "player unsold",
			"season_id", input.SeasonID,
			"player_id", input.PlayerID,
		)
	}

	return result, nil
}

// FastAssign allocates players to teams directly, skipping competitive
// bidding. Tuples are processed in order and committed as they go, so
// an earlier assignment tightens the budget the next tuple is judged
// against. Inadmissible or unresolvable tuples are skipped silently;
// the operator inspects remaining statuses afterwards.
func (s *AuctionService) FastAssign(ctx context.Context, seasonID, organizerID string, assignments []FastAssignment) (FastAssignResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.FastAssign")
	defer span.End()

	var result FastAssignResult
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
		if err != nil {
			return err
		}
		if err := requireAuctionStarted(season); err != nil {
			return err
		}

		assigned := 0
		for _, assignment := range assignments {
			entry, exists, err := s.playerRepo.GetSeasonEntry(ctx, season.ID, assignment.PlayerID)
			if err != nil {
				return fmt.Errorf("get player season: %w", err)
			}
			if !exists || (entry.Status != auction.StatusPending && entry.Status != auction.StatusUnsold) {
				continue
			}

			teamEntry, exists, err := s.teamRepo.GetSeasonEntry(ctx, season.ID, assignment.TeamID)
			if err != nil {
				return fmt.Errorf("get team season: %w", err)
			}
			if !exists {
				continue
			}

			eval := auction.EvaluateBid(teamEntry.Budget(), assignment.Price, season.BasePrice)
			if !eval.Admissible {
				continue
			}

			if _, err := recordPurchase(ctx, s.teamRepo, s.idGen, s.now().UTC(), &teamEntry, entry.PlayerID, assignment.Price, false); err != nil {
				if errors.Is(err, team.ErrDuplicatePurchase) {
					continue
				}
				return err
			}

			entry.Status = auction.StatusSold
			if err := s.playerRepo.UpdateSeasonEntry(ctx, entry); err != nil {
				return fmt.Errorf("update player season: %w", err)
			}
			assigned++
		}

		result = FastAssignResult{AssignedCount: assigned}
		return nil
	})
	if err != nil {
		return FastAssignResult{}, err
	}

	s.logger.InfoContext(ctx, "fast assign finished",
		"season_id", seasonID,
		"requested", len(assignments),
		"assigned", result.AssignedCount,
	)

	return result, nil
}

// StartNextRound recycles every unsold player into a fresh pending
// round. Fails loudly when there is nothing to advance, leaving the
// round counter untouched.
func (s *AuctionService) StartNextRound(ctx context.Context, seasonID, organizerID string) (NextRoundResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.StartNextRound")
	defer span.End()

	var result NextRoundResult
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		season, err := ownedSeason(ctx, s.seasonRepo, seasonID, organizerID)
		if err != nil {
			return err
		}
		if err := requireAuctionStarted(season); err != nil {
			return err
		}

		nextRound := season.CurrentRound + 1
		moved, err := s.playerRepo.AdvanceUnsold(ctx, season.ID, nextRound)
		if err != nil {
			return fmt.Errorf("advance unsold players: %w", err)
		}
		if moved == 0 {
			return fmt.Errorf("%w: no unsold players to move to next round", ErrConflict)
		}

		season.CurrentRound = nextRound
		season.UpdatedAt = s.now().UTC()
		if err := s.seasonRepo.UpdateSeason(ctx, season); err != nil {
			return fmt.Errorf("update season: %w", err)
		}

		result = NextRoundResult{Round: nextRound, PlayersMoved: moved}
		return nil
	})
	if err != nil {
		return NextRoundResult{}, err
	}

	s.logger.InfoContext(ctx, "auction round advanced",
		"season_id", seasonID,
		"round", result.Round,
		"players_moved", result.PlayersMoved,
	)

	return result, nil
}

func (s *AuctionService) buildCandidate(ctx context.Context, season tournament.Season, entry player.SeasonEntry) (Candidate, error) {
	details, exists, err := s.playerRepo.Get(ctx, entry.PlayerID)
	if err != nil {
		return Candidate{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return Candidate{}, fmt.Errorf("%w: player %s", ErrNotFound, entry.PlayerID)
	}

	maxBid, err := s.maxBidForSeason(ctx, season)
	if err != nil {
		return Candidate{}, err
	}

	return Candidate{Entry: entry, Player: details, MaxBid: maxBid}, nil
}

func (s *AuctionService) maxBidForSeason(ctx context.Context, season tournament.Season) (decimal.Decimal, error) {
	teamEntries, err := s.teamRepo.ListBySeason(ctx, season.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list season teams: %w", err)
	}

	budgets := make([]auction.TeamBudget, 0, len(teamEntries))
	for _, entry := range teamEntries {
		budgets = append(budgets, entry.Budget())
	}

	return auction.MaxBidAcrossTeams(budgets, season.BasePrice), nil
}
