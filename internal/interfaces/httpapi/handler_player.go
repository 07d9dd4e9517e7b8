package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/nikunj436/cricketAuction/internal/usecase"
)

// RegisterPlayer is the public registration form. Players self-register
// into an open season, no bearer token required.
func (h *Handler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterPlayer")
	defer span.End()

	var req registerPlayerRequest
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
	entry, err := h.playerService.RegisterPlayer(ctx, usecase.RegisterPlayerInput{
		SeasonID:     seasonID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Village:      req.Village,
		Mobile:       req.Mobile,
		PhotoURL:     req.PhotoURL,
		Wicketkeeper: req.Wicketkeeper,
		Batsman:      req.Batsman,
		Bowler:       req.Bowler,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register player failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, registrationDTO{
		PlayerID:     entry.PlayerID,
		SeasonID:     entry.SeasonID,
		AuctionRound: entry.Round,
	})
}

// FindPlayerByMobile backs the registration form's prefill lookup.
func (h *Handler) FindPlayerByMobile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FindPlayerByMobile")
	defer span.End()

	mobile := r.URL.Query().Get("mobile")
	item, found, err := h.playerService.FindByMobile(ctx, mobile)
	if err != nil {
		h.logger.WarnContext(ctx, "find player by mobile failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	if !found {
		writeSuccess(ctx, w, http.StatusOK, playerLookupDTO{Found: false})
		return
	}

	dto := playerToDTO(ctx, item)
	writeSuccess(ctx, w, http.StatusOK, playerLookupDTO{Found: true, Player: &dto})
}

func (h *Handler) ListSeasonPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasonPlayers")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	players, err := h.playerService.ListSeasonPlayers(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list season players failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonPlayerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, seasonPlayerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CloseRegistration(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CloseRegistration")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	if err := h.playerService.CloseRegistration(ctx, seasonID, organizerID); err != nil {
		h.logger.WarnContext(ctx, "close registration failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"registrationOpen": false})
}

func (h *Handler) SelectPlayersForAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectPlayersForAuction")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req selectPlayersRequest
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
	count, err := h.playerService.SelectPlayersForAuction(ctx, seasonID, organizerID, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "select auction players failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"selectedCount": count})
}

func (h *Handler) ListAuctionPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAuctionPlayers")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasonID := r.PathValue("seasonID")
	players, err := h.playerService.AuctionPlayersList(ctx, seasonID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list auction players failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonPlayerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, seasonPlayerToDTO(ctx, p))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type registerPlayerRequest struct {
	FirstName    string `json:"firstName" validate:"required,max=80"`
	LastName     string `json:"lastName" validate:"required,max=80"`
	Village      string `json:"village" validate:"required,max=120"`
	Mobile       string `json:"mobile" validate:"required,min=7,max=15"`
	PhotoURL     string `json:"photoUrl" validate:"omitempty,url"`
	Wicketkeeper bool   `json:"wicketkeeper"`
	Batsman      bool   `json:"batsman"`
	Bowler       bool   `json:"bowler"`
	BattingStyle string `json:"battingStyle" validate:"max=40"`
	BowlingStyle string `json:"bowlingStyle" validate:"max=40"`
}

type selectPlayersRequest struct {
	PlayerIDs []string `json:"playerIds" validate:"required,min=1,dive,required"`
}

type registrationDTO struct {
	PlayerID     string `json:"playerId"`
	SeasonID     string `json:"seasonId"`
	AuctionRound int    `json:"auctionRound"`
}

type playerLookupDTO struct {
	Found  bool       `json:"found"`
	Player *playerDTO `json:"player,omitempty"`
}
