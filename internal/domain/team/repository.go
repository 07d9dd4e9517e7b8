package team

import "context"

// Repository describes team persistence needs from use cases.
// Calls issued inside a transactional unit of work must observe the
// writes of earlier calls in the same unit; fast-assign batches rely
// on re-reading continuously updated season entries.
type Repository interface {
	Create(ctx context.Context, t Team) error
	Get(ctx context.Context, teamID string) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)

	CreateSeasonEntry(ctx context.Context, entry SeasonEntry) error
	UpdateSeasonEntry(ctx context.Context, entry SeasonEntry) error
	GetSeasonEntry(ctx context.Context, seasonID, teamID string) (SeasonEntry, bool, error)
	// GetSeasonEntryByIconPlayer finds the entry that has already
	// claimed the given player as its icon, if any.
	GetSeasonEntryByIconPlayer(ctx context.Context, seasonID, playerID string) (SeasonEntry, bool, error)
	ListBySeason(ctx context.Context, seasonID string) ([]SeasonEntry, error)

	// CreatePurchase appends one ledger entry. It fails with
	// ErrDuplicatePurchase when the (team season, player) pair already
	// holds an active purchase.
	CreatePurchase(ctx context.Context, p Purchase) error
	ListPurchases(ctx context.Context, teamSeasonID string) ([]Purchase, error)
}
