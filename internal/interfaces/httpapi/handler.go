package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/usecase"
	"github.com/shopspring/decimal"
)

type Handler struct {
	tournamentService *usecase.TournamentService
	playerService     *usecase.PlayerService
	teamService       *usecase.TeamService
	auctionService    *usecase.AuctionService
	summaryService    *usecase.SummaryService
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	tournamentService *usecase.TournamentService,
	playerService *usecase.PlayerService,
	teamService *usecase.TeamService,
	auctionService *usecase.AuctionService,
	summaryService *usecase.SummaryService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		tournamentService: tournamentService,
		playerService:     playerService,
		teamService:       teamService,
		auctionService:    auctionService,
		summaryService:    summaryService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) requirePrincipal(ctx context.Context, w http.ResponseWriter) (string, bool) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return "", false
	}
	return principal.UserID, true
}

type seasonDTO struct {
	ID               string `json:"id"`
	TournamentID     string `json:"tournamentId"`
	Name             string `json:"name"`
	Year             int    `json:"year"`
	RegistrationOpen bool   `json:"registrationOpen"`
	Configured       bool   `json:"auctionConfigured"`
	AuctionStarted   bool   `json:"auctionStarted"`
	AuctionMode      string `json:"auctionMode,omitempty"`
	CurrentRound     int    `json:"currentRound"`
	CreatedAtUTC     string `json:"createdAtUtc"`
}

type playerDTO struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Village      string `json:"village"`
	Mobile       string `json:"mobile"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	Wicketkeeper bool   `json:"wicketkeeper"`
	Batsman      bool   `json:"batsman"`
	Bowler       bool   `json:"bowler"`
	BattingStyle string `json:"battingStyle,omitempty"`
	BowlingStyle string `json:"bowlingStyle,omitempty"`
	Role         string `json:"role"`
}

type seasonPlayerDTO struct {
	Player        playerDTO `json:"player"`
	Selected      bool      `json:"selectedForAuction"`
	AuctionStatus string    `json:"auctionStatus"`
	AuctionRound  int       `json:"auctionRound"`
	RegisteredAt  string    `json:"registeredAtUtc"`
}

type candidateDTO struct {
	Player playerDTO       `json:"player"`
	Round  int             `json:"round"`
	MaxBid decimal.Decimal `json:"maxBid"`
}

func seasonToDTO(ctx context.Context, v tournament.Season) seasonDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonToDTO")
	defer span.End()

	return seasonDTO{
		ID:               v.ID,
		TournamentID:     v.TournamentID,
		Name:             v.Name,
		Year:             v.Year,
		RegistrationOpen: v.RegistrationOpen,
		Configured:       v.Configured,
		AuctionStarted:   v.AuctionStarted,
		AuctionMode:      string(v.AuctionMode),
		CurrentRound:     v.CurrentRound,
		CreatedAtUTC:     v.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:           v.ID,
		FirstName:    v.FirstName,
		LastName:     v.LastName,
		Village:      v.Village,
		Mobile:       v.Mobile,
		PhotoURL:     v.PhotoURL,
		Wicketkeeper: v.Wicketkeeper,
		Batsman:      v.Batsman,
		Bowler:       v.Bowler,
		BattingStyle: v.BattingStyle,
		BowlingStyle: v.BowlingStyle,
		Role:         string(v.Role),
	}
}

func seasonPlayerToDTO(ctx context.Context, v usecase.SeasonPlayer) seasonPlayerDTO {
	ctx, span := startSpan(ctx, "httpapi.seasonPlayerToDTO")
	defer span.End()

	return seasonPlayerDTO{
		Player:        playerToDTO(ctx, v.Player),
		Selected:      v.Entry.Selected,
		AuctionStatus: string(v.Entry.Status),
		AuctionRound:  v.Entry.Round,
		RegisteredAt:  v.Entry.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

func candidateToDTO(ctx context.Context, v usecase.Candidate) candidateDTO {
	ctx, span := startSpan(ctx, "httpapi.candidateToDTO")
	defer span.End()

	return candidateDTO{
		Player: playerToDTO(ctx, v.Player),
		Round:  v.Entry.Round,
		MaxBid: v.MaxBid,
	}
}
