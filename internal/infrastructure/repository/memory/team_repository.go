package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/nikunj436/cricketAuction/internal/domain/team"
)

type TeamRepository struct {
	mu         sync.RWMutex
	teams      map[string]team.Team
	entries    map[string]team.SeasonEntry
	purchases  map[string]team.Purchase
	teamID     []string
	entryID    []string
	purchaseID []string
}

func NewTeamRepository(teams []team.Team, entries []team.SeasonEntry) *TeamRepository {
	r := &TeamRepository{
		teams:     make(map[string]team.Team, len(teams)),
		entries:   make(map[string]team.SeasonEntry, len(entries)),
		purchases: make(map[string]team.Purchase),
	}

	for _, t := range teams {
		r.teams[t.ID] = t
		r.teamID = append(r.teamID, t.ID)
	}
	for _, e := range entries {
		r.entries[e.ID] = e
		r.entryID = append(r.entryID, e.ID)
	}

	return r
}

func (r *TeamRepository) snapshot() func() {
	r.mu.RLock()
	teams := maps.Clone(r.teams)
	entries := maps.Clone(r.entries)
	purchases := maps.Clone(r.purchases)
	teamID := slices.Clone(r.teamID)
	entryID := slices.Clone(r.entryID)
	purchaseID := slices.Clone(r.purchaseID)
	r.mu.RUnlock()

	return func() {
		r.mu.Lock()
		r.teams = teams
		r.entries = entries
		r.purchases = purchases
		r.teamID = teamID
		r.entryID = entryID
		r.purchaseID = purchaseID
		r.mu.Unlock()
	}
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams[t.ID] = t
	r.teamID = append(r.teamID, t.ID)
	return nil
}

func (r *TeamRepository) Get(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	if !ok || !t.Active {
		return team.Team{}, false, nil
	}

	return t, true, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.teamID {
		t := r.teams[id]
		if t.Active && strings.EqualFold(t.Name, name) {
			return t, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) CreateSeasonEntry(_ context.Context, entry team.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	r.entryID = append(r.entryID, entry.ID)
	return nil
}

func (r *TeamRepository) UpdateSeasonEntry(_ context.Context, entry team.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return nil
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *TeamRepository) GetSeasonEntry(_ context.Context, seasonID, teamID string) (team.SeasonEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.TeamID == teamID {
			return e, true, nil
		}
	}

	return team.SeasonEntry{}, false, nil
}

func (r *TeamRepository) GetSeasonEntryByIconPlayer(_ context.Context, seasonID, playerID string) (team.SeasonEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.IconPlayerID == playerID {
			return e, true, nil
		}
	}

	return team.SeasonEntry{}, false, nil
}

func (r *TeamRepository) ListBySeason(_ context.Context, seasonID string) ([]team.SeasonEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.SeasonEntry, 0)
	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *TeamRepository) CreatePurchase(_ context.Context, p team.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.purchaseID {
		existing := r.purchases[id]
		if existing.Active && existing.TeamSeasonID == p.TeamSeasonID && existing.PlayerID == p.PlayerID {
			return team.ErrDuplicatePurchase
		}
	}

	r.purchases[p.ID] = p
	r.purchaseID = append(r.purchaseID, p.ID)
	return nil
}

func (r *TeamRepository) ListPurchases(_ context.Context, teamSeasonID string) ([]team.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Purchase, 0)
	for _, id := range r.purchaseID {
		p := r.purchases[id]
		if p.Active && p.TeamSeasonID == teamSeasonID {
			out = append(out, p)
		}
	}

	return out, nil
}
