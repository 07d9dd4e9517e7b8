package auction

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestEvaluateBid_CapEqualsReserveAdjustedBudget(t *testing.T) {
	budget := TeamBudget{Remaining: money(1000), MaxPlayers: 5, CurrentPlayers: 2}
	basePrice := money(100)

	// Two mandatory slots remain after this pick, so 200 stays reserved
	// and the cap lands on 800 exactly.
	eval := EvaluateBid(budget, money(800), basePrice)
	if !eval.Admissible {
		t.Fatalf("expected 800 to be admissible, got reason: %v", eval.Reason)
	}
	if !eval.MaxBid.Equal(money(800)) {
		t.Fatalf("expected max bid 800, got %s", eval.MaxBid)
	}

	eval = EvaluateBid(budget, money(801), basePrice)
	if eval.Admissible {
		t.Fatal("expected 801 to exceed the cap")
	}
	if !errors.Is(eval.Reason, ErrBidCapExceeded) {
		t.Fatalf("expected ErrBidCapExceeded, got %v", eval.Reason)
	}
	if !eval.MaxBid.Equal(money(800)) {
		t.Fatalf("cap rejection should still report max bid 800, got %s", eval.MaxBid)
	}
}

func TestEvaluateBid_RosterFull(t *testing.T) {
	budget := TeamBudget{Remaining: money(1000), MaxPlayers: 3, CurrentPlayers: 3}

	eval := EvaluateBid(budget, money(100), money(100))
	if eval.Admissible {
		t.Fatal("expected full roster to be inadmissible")
	}
	if !errors.Is(eval.Reason, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", eval.Reason)
	}
	if !eval.MaxBid.IsZero() {
		t.Fatalf("expected zero max bid, got %s", eval.MaxBid)
	}
}

func TestEvaluateBid_InsufficientBudget(t *testing.T) {
	budget := TeamBudget{Remaining: money(500), MaxPlayers: 5, CurrentPlayers: 2}

	eval := EvaluateBid(budget, money(501), money(100))
	if !errors.Is(eval.Reason, ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", eval.Reason)
	}
}

func TestEvaluateBid_ReserveShortfall(t *testing.T) {
	// 250 left with three slots to fill after this one: reserve is 300,
	// so the team cannot even meet the floor.
	budget := TeamBudget{Remaining: money(250), MaxPlayers: 5, CurrentPlayers: 1}

	eval := EvaluateBid(budget, money(100), money(100))
	if eval.Admissible {
		t.Fatal("expected reserve shortfall to be inadmissible")
	}
	if !errors.Is(eval.Reason, ErrReserveShortfall) {
		t.Fatalf("expected ErrReserveShortfall, got %v", eval.Reason)
	}
}

func TestEvaluateBid_Pure(t *testing.T) {
	budget := TeamBudget{Remaining: money(1000), MaxPlayers: 5, CurrentPlayers: 2}
	basePrice := money(100)

	first := EvaluateBid(budget, money(800), basePrice)
	second := EvaluateBid(budget, money(800), basePrice)

	if first.Admissible != second.Admissible || !first.MaxBid.Equal(second.MaxBid) {
		t.Fatal("identical inputs must yield identical evaluations")
	}
	if !budget.Remaining.Equal(money(1000)) || budget.CurrentPlayers != 2 {
		t.Fatal("EvaluateBid must not mutate its input")
	}
}

func TestMaxBidAcrossTeams(t *testing.T) {
	basePrice := money(100)
	budgets := []TeamBudget{
		// Last mandatory slot: full remaining budget is admissible.
		{Remaining: money(700), MaxPlayers: 3, CurrentPlayers: 2},
		// Reserve forces the candidate (full remaining) over the cap,
		// so this team contributes nothing despite the bigger purse.
		{Remaining: money(900), MaxPlayers: 5, CurrentPlayers: 2},
		// Roster full: contributes nothing.
		{Remaining: money(2000), MaxPlayers: 2, CurrentPlayers: 2},
	}

	got := MaxBidAcrossTeams(budgets, basePrice)
	if !got.Equal(money(700)) {
		t.Fatalf("expected cross-team max 700, got %s", got)
	}

	if !MaxBidAcrossTeams(nil, basePrice).IsZero() {
		t.Fatal("no teams should yield zero")
	}
}
