package player

import (
	"context"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
)

// Repository describes player persistence needs from use cases.
// Calls issued inside a transactional unit of work must observe the
// writes of earlier calls in the same unit.
type Repository interface {
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	Get(ctx context.Context, playerID string) (Player, bool, error)
	GetByMobile(ctx context.Context, mobile string) (Player, bool, error)

	CreateSeasonEntry(ctx context.Context, entry SeasonEntry) error
	UpdateSeasonEntry(ctx context.Context, entry SeasonEntry) error
	GetSeasonEntry(ctx context.Context, seasonID, playerID string) (SeasonEntry, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]SeasonEntry, error)
	ListByStatus(ctx context.Context, seasonID string, status auction.Status) ([]SeasonEntry, error)
	// ListPendingAtRound returns the pending pool for one round,
	// restricted to players selected for the auction.
	ListPendingAtRound(ctx context.Context, seasonID string, round int) ([]SeasonEntry, error)

	// MarkIconPlayers flips the given players to icon status.
	MarkIconPlayers(ctx context.Context, seasonID string, playerIDs []string) error
	// StampRound stamps the round onto every pending, auction-selected
	// entry in the season.
	StampRound(ctx context.Context, seasonID string, round int) error
	// AdvanceUnsold recycles every unsold entry back to pending at the
	// given round, returning how many entries moved.
	AdvanceUnsold(ctx context.Context, seasonID string, round int) (int, error)
	// SetAuctionSelection clears the season's selection and then marks
	// exactly the given players as selected.
	SetAuctionSelection(ctx context.Context, seasonID string, playerIDs []string) error
}
