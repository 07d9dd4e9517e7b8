package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/usecase"
	"github.com/shopspring/decimal"
)

func (h *Handler) StartAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartAuction")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req startAuctionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	mode, err := auction.ParseMode(req.Mode)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	seasonID := r.PathValue("seasonID")
	result, err := h.auctionService.StartAuction(ctx, usecase.StartAuctionInput{
		SeasonID:    seasonID,
		OrganizerID: organizerID,
		Mode:        mode,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "start auction failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, startAuctionDTO{
		Mode:       string(result.Mode),
		Round:      result.Round,
		TotalTeams: result.TotalTeams,
	})
}

func (h *Handler) NextRandomPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NextRandomPlayer")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	result, err := h.auctionService.NextRandomPlayer(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "next random player failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nextPlayerToDTO(ctx, result))
}

func (h *Handler) ManualPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ManualPlayer")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	playerID := r.PathValue("playerID")
	candidate, err := h.auctionService.ManualPlayer(ctx, seasonID, organizerID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "manual player failed", "season_id", seasonID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, candidateToDTO(ctx, candidate))
}

func (h *Handler) ResolveBid(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveBid")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req resolveBidRequest
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
	result, err := h.auctionService.ResolveBid(ctx, usecase.ResolveBidInput{
		SeasonID:    seasonID,
		OrganizerID: organizerID,
		PlayerID:    req.PlayerID,
		TeamID:      req.TeamID,
		Amount:      req.Amount,
		Sold:        req.Sold,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "resolve bid failed", "season_id", seasonID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolveBidDTO{
		Sold:     result.Sold,
		TeamName: result.TeamName,
		Price:    result.Price,
	})
}

func (h *Handler) FastAssign(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FastAssign")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req fastAssignRequest
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

	assignments := make([]usecase.FastAssignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		assignments = append(assignments, usecase.FastAssignment{
			PlayerID: a.PlayerID,
			TeamID:   a.TeamID,
			Price:    a.Price,
		})
	}

	seasonID := r.PathValue("seasonID")
	result, err := h.auctionService.FastAssign(ctx, seasonID, organizerID, assignments)
	if err != nil {
		h.logger.WarnContext(ctx, "fast assign failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"assignedCount": result.AssignedCount})
}

func (h *Handler) StartNextRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.StartNextRound")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	result, err := h.auctionService.StartNextRound(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "start next round failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nextRoundDTO{
		Round:        result.Round,
		PlayersMoved: result.PlayersMoved,
	})
}

func (h *Handler) SendSeasonSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SendSeasonSummaries")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	dispatched, err := h.summaryService.SendSeasonSummaries(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "send season summaries failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, map[string]int{"dispatchedCount": dispatched})
}

type startAuctionRequest struct {
	Mode string `json:"mode"`
}

type resolveBidRequest struct {
	PlayerID string          `json:"playerId" validate:"required"`
	TeamID   string          `json:"teamId"`
	Amount   decimal.Decimal `json:"amount"`
	Sold     bool            `json:"sold"`
}

type fastAssignRequest struct {
	Assignments []fastAssignmentRequest `json:"assignments" validate:"required,min=1,dive"`
}

type fastAssignmentRequest struct {
	PlayerID string          `json:"playerId" validate:"required"`
	TeamID   string          `json:"teamId" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
}

type startAuctionDTO struct {
	Mode       string `json:"mode"`
	Round      int    `json:"round"`
	TotalTeams int    `json:"totalTeams"`
}

type resolveBidDTO struct {
	Sold     bool            `json:"sold"`
	TeamName string          `json:"teamName,omitempty"`
	Price    decimal.Decimal `json:"price"`
}

type nextPlayerDTO struct {
	Action    string        `json:"action"`
	Candidate *candidateDTO `json:"candidate,omitempty"`
}

type nextRoundDTO struct {
	Round        int `json:"round"`
	PlayersMoved int `json:"playersMoved"`
}

func nextPlayerToDTO(ctx context.Context, v usecase.NextPlayerResult) nextPlayerDTO {
	ctx, span := startSpan(ctx, "httpapi.nextPlayerToDTO")
	defer span.End()

	dto := nextPlayerDTO{Action: string(v.Action)}
	if v.Candidate != nil {
		candidate := candidateToDTO(ctx, *v.Candidate)
		dto.Candidate = &candidate
	}
	return dto
}
