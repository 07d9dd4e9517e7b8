package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
	"github.com/nikunj436/cricketAuction/internal/usecase"
)

func (h *Handler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTournament")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req createTournamentRequest
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

	item, err := h.tournamentService.CreateTournament(ctx, usecase.CreateTournamentInput{
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Category:    tournament.Category(req.Category),
		OrganizerID: organizerID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create tournament failed", "organizer_id", organizerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tournamentToDTO(ctx, item))
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	tournaments, err := h.tournamentService.ListTournaments(ctx, organizerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "organizer_id", organizerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentToDTO(ctx, t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreateSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSeason")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req createSeasonRequest
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

	season, err := h.tournamentService.CreateSeason(ctx, usecase.CreateSeasonInput{
		TournamentID: r.PathValue("tournamentID"),
		OrganizerID:  organizerID,
		Name:         req.Name,
		Year:         req.Year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create season failed", "organizer_id", organizerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, seasonToDTO(ctx, season))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	tournamentID := r.PathValue("tournamentID")
	seasons, err := h.tournamentService.ListSeasons(ctx, tournamentID, organizerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMySeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMySeasons")
	defer span.End()

	organizerID, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	seasons, err := h.tournamentService.ListMySeasons(ctx, organizerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list my seasons failed", "organizer_id", organizerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(ctx, s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

type createTournamentRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=500"`
	LogoURL     string `json:"logoUrl" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required"`
}

type createSeasonRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Year int    `json:"year" validate:"required,min=2000,max=2100"`
}

type tournamentDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Category     string `json:"category"`
	CreatedAtUTC string `json:"createdAtUtc"`
}

func tournamentToDTO(ctx context.Context, v tournament.Tournament) tournamentDTO {
	ctx, span := startSpan(ctx, "httpapi.tournamentToDTO")
	defer span.End()

	return tournamentDTO{
		ID:           v.ID,
		Name:         v.Name,
		Description:  v.Description,
		LogoURL:      v.LogoURL,
		Category:     string(v.Category),
		CreatedAtUTC: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
