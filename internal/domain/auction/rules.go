package auction

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRosterFull         = errors.New("team has reached maximum player limit")
	ErrInsufficientBudget = errors.New("insufficient budget for this bid")
	ErrReserveShortfall   = errors.New("remaining budget cannot cover reserve for future slots")
	ErrBidCapExceeded     = errors.New("bid exceeds maximum allowed for this team")
)

// TeamBudget is the live budget position of one team inside a season.
type TeamBudget struct {
	Remaining      decimal.Decimal
	MaxPlayers     int
	CurrentPlayers int
}

// Evaluation is the verdict on one candidate bid. When Admissible is
// false, Reason wraps one of the sentinel errors above with detail and
// MaxBid still carries the computed cap where one exists (cap-exceeded
// rejections), so callers can tell the operator what would have passed.
type Evaluation struct {
	Admissible bool
	MaxBid     decimal.Decimal
	Reason     error
}

// EvaluateBid decides whether a team can pay amount for one player
// without bidding itself out of filling its remaining mandatory roster
// slots at base price. The reserve is a greedy feasibility guarantee,
// not a spend optimizer. Pure: inputs are never mutated.
func EvaluateBid(budget TeamBudget, amount, basePrice decimal.Decimal) Evaluation {
	if budget.CurrentPlayers >= budget.MaxPlayers {
		return Evaluation{MaxBid: decimal.Zero, Reason: ErrRosterFull}
	}

	if amount.GreaterThan(budget.Remaining) {
		return Evaluation{MaxBid: decimal.Zero, Reason: ErrInsufficientBudget}
	}

	slotsAfterThisPick := budget.MaxPlayers - budget.CurrentPlayers - 1
	reserve := basePrice.Mul(decimal.NewFromInt(int64(slotsAfterThisPick)))
	maxBid := budget.Remaining.Sub(reserve)

	if maxBid.LessThan(basePrice) {
		return Evaluation{
			MaxBid: decimal.Zero,
			Reason: fmt.Errorf("%w: need to reserve %s for %d more players",
				ErrReserveShortfall, reserve.String(), slotsAfterThisPick),
		}
	}

	if amount.GreaterThan(maxBid) {
		return Evaluation{
			MaxBid: maxBid,
			Reason: fmt.Errorf("%w: maximum bid allowed is %s", ErrBidCapExceeded, maxBid.String()),
		}
	}

	return Evaluation{Admissible: true, MaxBid: maxBid}
}

// MaxBidAcrossTeams computes the display-only ceiling for the player on
// the block: each team is evaluated against its own full remaining
// budget as a hypothetical candidate, and the highest admissible cap
// wins. Teams whose own remaining budget would be rejected contribute
// nothing.
func MaxBidAcrossTeams(budgets []TeamBudget, basePrice decimal.Decimal) decimal.Decimal {
	best := decimal.Zero
	for _, budget := range budgets {
		eval := EvaluateBid(budget, budget.Remaining, basePrice)
		if eval.Admissible && eval.MaxBid.GreaterThan(best) {
			best = eval.MaxBid
		}
	}

	return best
}
