package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/team"
	idgen "github.com/nikunj436/cricketAuction/internal/platform/id"
	"github.com/shopspring/decimal"
)

// recordPurchase writes one ledger entry and applies the budget and
// headcount mutation to the team's season entry in the same unit of
// work. Admissibility is the caller's job: bids arrive here already
// gated, icon assignments bypass the gate at price zero. A duplicate
// (team season, player) pair surfaces team.ErrDuplicatePurchase.
func recordPurchase(
	ctx context.Context,
	teamRepo team.Repository,
	idGen idgen.Generator,
	now time.Time,
	entry *team.SeasonEntry,
	playerID string,
	price decimal.Decimal,
	iconPlayer bool,
) (team.Purchase, error) {
	purchaseID, err := idGen.NewID()
	if err != nil {
		return team.Purchase{}, fmt.Errorf("generate purchase id: %w", err)
	}

	purchase := team.Purchase{
		ID:           purchaseID,
		TeamSeasonID: entry.ID,
		PlayerID:     playerID,
		Price:        price,
		IconPlayer:   iconPlayer,
		PurchasedAt:  now,
		Active:       true,
	}
	if err := purchase.Validate(); err != nil {
		return team.Purchase{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := teamRepo.CreatePurchase(ctx, purchase); err != nil {
		return team.Purchase{}, fmt.Errorf("create purchase: %w", err)
	}

	entry.ApplyPurchase(price)
	if err := teamRepo.UpdateSeasonEntry(ctx, *entry); err != nil {
		return team.Purchase{}, fmt.Errorf("update team season: %w", err)
	}

	return purchase, nil
}
