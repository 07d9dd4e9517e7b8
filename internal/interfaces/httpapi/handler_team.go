package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/nikunj436/cricketAuction/internal/usecase"
	"github.com/shopspring/decimal"
)

func (h *Handler) ConfigureAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfigureAuction")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req auctionConfigRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	cfg, err := h.teamService.ConfigureAuction(ctx, usecase.AuctionConfigInput{
		SeasonID:          seasonID,
		OrganizerID:       organizerID,
		BasePrice:         req.BasePrice,
		MaxPlayersPerTeam: req.MaxPlayersPerTeam,
		BudgetPerTeam:     req.BudgetPerTeam,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "configure auction failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionConfigToDTO(ctx, cfg))
}

func (h *Handler) GetAuctionConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAuctionConfig")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	cfg, err := h.teamService.GetAuctionConfig(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get auction config failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionConfigToDTO(ctx, cfg))
}

func (h *Handler) RegisterTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterTeams")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req registerTeamsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	registrations := make([]usecase.TeamRegistration, 0, len(req.Teams))
	for _, t := range req.Teams {
		registrations = append(registrations, usecase.TeamRegistration{
			Name:       t.Name,
			LogoURL:    t.LogoURL,
			OwnerName:  t.OwnerName,
			OwnerEmail: t.OwnerEmail,
		})
	}

	seasonID := r.PathValue("seasonID")
	entries, err := h.teamService.RegisterTeams(ctx, usecase.RegisterTeamsInput{
		SeasonID:    seasonID,
		OrganizerID: organizerID,
		Teams:       registrations,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register teams failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamSeasonDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, teamSeasonDTO{
			TeamID:      e.TeamID,
			TotalBudget: e.TotalBudget,
			Remaining:   e.Remaining,
			MaxPlayers:  e.MaxPlayers,
		})
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

func (h *Handler) AssignIconPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignIconPlayers")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req assignIconPlayersRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	assignments := make([]usecase.IconAssignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		assignments = append(assignments, usecase.IconAssignment{
			TeamID:       a.TeamID,
			IconPlayerID: a.IconPlayerID,
		})
	}

	seasonID := r.PathValue("seasonID")
	count, err := h.teamService.AssignIconPlayers(ctx, seasonID, organizerID, assignments)
	if err != nil {
		h.logger.WarnContext(ctx, "assign icon players failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"assignedCount": count})
}

func (h *Handler) TeamsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamsOverview")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	overviews, err := h.teamService.TeamsOverview(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "teams overview failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamOverviewDTO, 0, len(overviews))
	for _, o := range overviews {
		items = append(items, teamOverviewToDTO(ctx, o))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) TeamDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TeamDetails")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	teamID := r.PathValue("teamID")
	details, err := h.teamService.TeamDetails(ctx, seasonID, organizerID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team details failed", "season_id", seasonID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	players := make([]rosterPlayerDTO, 0, len(details.Players))
	for _, p := range details.Players {
		players = append(players, rosterPlayerDTO{
			Player:     playerToDTO(ctx, p.Player),
			Price:      p.Price,
			IconPlayer: p.IconPlayer,
			BoughtAt:   p.BoughtAt.UTC().Format(time.RFC3339),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, teamDetailsDTO{
		Overview: teamOverviewToDTO(ctx, details.Overview),
		Players:  players,
	})
}

type auctionConfigRequest struct {
	BasePrice         decimal.Decimal `json:"basePrice" validate:"required"`
	MaxPlayersPerTeam int             `json:"maxPlayersPerTeam" validate:"required,min=1"`
	BudgetPerTeam     decimal.Decimal `json:"budgetPerTeam" validate:"required"`
}

type registerTeamsRequest struct {
	Teams []teamRegistrationRequest `json:"teams" validate:"required,min=1,dive"`
}

type teamRegistrationRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	LogoURL    string `json:"logoUrl" validate:"omitempty,url"`
	OwnerName  string `json:"ownerName" validate:"required,max=120"`
	OwnerEmail string `json:"ownerEmail" validate:"required,email"`
}

type assignIconPlayersRequest struct {
	Assignments []iconAssignmentRequest `json:"assignments" validate:"required,min=1,dive"`
}

type iconAssignmentRequest struct {
	TeamID       string `json:"teamId" validate:"required"`
	IconPlayerID string `json:"iconPlayerId" validate:"required"`
}

type auctionConfigDTO struct {
	BasePrice         decimal.Decimal `json:"basePrice"`
	MaxPlayersPerTeam int             `json:"maxPlayersPerTeam"`
	BudgetPerTeam     decimal.Decimal `json:"budgetPerTeam"`
	Configured        bool            `json:"configured"`
	AuctionStarted    bool            `json:"auctionStarted"`
}

type teamSeasonDTO struct {
	TeamID      string          `json:"teamId"`
	TotalBudget decimal.Decimal `json:"totalBudget"`
	Remaining   decimal.Decimal `json:"remainingBudget"`
	MaxPlayers  int             `json:"maxPlayers"`
}

type teamOverviewDTO struct {
	TeamID         string          `json:"teamId"`
	TeamName       string          `json:"teamName"`
	OwnerName      string          `json:"ownerName"`
	LogoURL        string          `json:"logoUrl,omitempty"`
	CurrentPlayers int             `json:"currentPlayers"`
	MaxPlayers     int             `json:"maxPlayers"`
	Remaining      decimal.Decimal `json:"remainingBudget"`
	TotalBudget    decimal.Decimal `json:"totalBudget"`
	IconPlayerName string          `json:"iconPlayerName,omitempty"`
}

type rosterPlayerDTO struct {
	Player     playerDTO       `json:"player"`
	Price      decimal.Decimal `json:"price"`
	IconPlayer bool            `json:"iconPlayer"`
	BoughtAt   string          `json:"boughtAtUtc"`
}

type teamDetailsDTO struct {
	Overview teamOverviewDTO   `json:"overview"`
	Players  []rosterPlayerDTO `json:"players"`
}

func auctionConfigToDTO(ctx context.Context, v usecase.AuctionConfig) auctionConfigDTO {
	ctx, span := startSpan(ctx, "httpapi.auctionConfigToDTO")
	defer span.End()

	return auctionConfigDTO{
		BasePrice:         v.BasePrice,
		MaxPlayersPerTeam: v.MaxPlayersPerTeam,
		BudgetPerTeam:     v.BudgetPerTeam,
		Configured:        v.Configured,
		AuctionStarted:    v.AuctionStarted,
	}
}

func teamOverviewToDTO(ctx context.Context, v usecase.TeamOverview) teamOverviewDTO {
	ctx, span := startSpan(ctx, "httpapi.teamOverviewToDTO")
	defer span.End()

	return teamOverviewDTO{
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		OwnerName:      v.OwnerName,
		LogoURL:        v.LogoURL,
		CurrentPlayers: v.CurrentPlayers,
		MaxPlayers:     v.MaxPlayers,
		Remaining:      v.Remaining,
		TotalBudget:    v.TotalBudget,
		IconPlayerName: v.IconPlayerName,
	}
}
