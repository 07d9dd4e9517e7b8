package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
)

// ownedSeason loads a season and checks the caller actually organizes
// it. A season owned by someone else reads as not found so the API
// never confirms foreign season IDs.
func ownedSeason(ctx context.Context, repo tournament.Repository, seasonID, organizerID string) (tournament.Season, error) {
	seasonID = strings.TrimSpace(seasonID)
	organizerID = strings.TrimSpace(organizerID)
	if seasonID == "" {
		return tournament.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if organizerID == "" {
		return tournament.Season{}, fmt.Errorf("%w: organizer id is required", ErrUnauthorized)
	}

	season, exists, err := repo.GetSeason(ctx, seasonID)
	if err != nil {
		return tournament.Season{}, fmt.Errorf("get season: %w", err)
	}
	if !exists || !season.Active || season.OrganizerID != organizerID {
		return tournament.Season{}, fmt.Errorf("%w: season not found or access denied", ErrNotFound)
	}

	return season, nil
}

func requireAuctionStarted(season tournament.Season) error {
	if !season.AuctionStarted {
		return fmt.Errorf("%w: auction has not started yet", ErrConflict)
	}
	return nil
}
