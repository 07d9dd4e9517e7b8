package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
)

type PlayerRepository struct {
	mu       sync.RWMutex
	players  map[string]player.Player
	entries  map[string]player.SeasonEntry
	playerID []string
	entryID  []string
}

func NewPlayerRepository(players []player.Player, entries []player.SeasonEntry) *PlayerRepository {
	r := &PlayerRepository{
		players: make(map[string]player.Player, len(players)),
		entries: make(map[string]player.SeasonEntry, len(entries)),
	}

	for _, p := range players {
		r.players[p.ID] = p
		r.playerID = append(r.playerID, p.ID)
	}
	for _, e := range entries {
		r.entries[e.ID] = e
		r.entryID = append(r.entryID, e.ID)
	}

	return r
}

func (r *PlayerRepository) snapshot() func() {
	r.mu.RLock()
	players := maps.Clone(r.players)
	entries := maps.Clone(r.entries)
	playerID := slices.Clone(r.playerID)
	entryID := slices.Clone(r.entryID)
	r.mu.RUnlock()

	return func() {
		r.mu.Lock()
		r.players = players
		r.entries = entries
		r.playerID = playerID
		r.entryID = entryID
		r.mu.Unlock()
	}
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players[p.ID] = p
	r.playerID = append(r.playerID, p.ID)
	return nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[p.ID]; !ok {
		return nil
	}
	r.players[p.ID] = p
	return nil
}

func (r *PlayerRepository) Get(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[playerID]
	if !ok || !p.Active {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) GetByMobile(_ context.Context, mobile string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.playerID {
		p := r.players[id]
		if p.Active && p.Mobile == mobile {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) CreateSeasonEntry(_ context.Context, entry player.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = entry
	r.entryID = append(r.entryID, entry.ID)
	return nil
}

func (r *PlayerRepository) UpdateSeasonEntry(_ context.Context, entry player.SeasonEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.ID]; !ok {
		return nil
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *PlayerRepository) GetSeasonEntry(_ context.Context, seasonID, playerID string) (player.SeasonEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.PlayerID == playerID {
			return e, true, nil
		}
	}

	return player.SeasonEntry{}, false, nil
}

func (r *PlayerRepository) ListBySeason(_ context.Context, seasonID string) ([]player.SeasonEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.SeasonEntry, 0)
	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListByStatus(_ context.Context, seasonID string, status auction.Status) ([]player.SeasonEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.SeasonEntry, 0)
	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.Status == status {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *PlayerRepository) ListPendingAtRound(_ context.Context, seasonID string, round int) ([]player.SeasonEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.SeasonEntry, 0)
	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.Selected && e.Status == auction.StatusPending && e.Round == round {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *PlayerRepository) MarkIconPlayers(_ context.Context, seasonID string, playerIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		marked[id] = struct{}{}
	}

	for _, id := range r.entryID {
		e := r.entries[id]
		if !e.Active || e.SeasonID != seasonID {
			continue
		}
		if _, ok := marked[e.PlayerID]; ok {
			e.Status = auction.StatusIconPlayer
			r.entries[id] = e
		}
	}

	return nil
}

func (r *PlayerRepository) StampRound(_ context.Context, seasonID string, round int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.Selected && e.Status == auction.StatusPending {
			e.Round = round
			r.entries[id] = e
		}
	}

	return nil
}

func (r *PlayerRepository) AdvanceUnsold(_ context.Context, seasonID string, round int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	moved := 0
	for _, id := range r.entryID {
		e := r.entries[id]
		if e.Active && e.SeasonID == seasonID && e.Selected && e.Status == auction.StatusUnsold {
			e.Status = auction.StatusPending
			e.Round = round
			r.entries[id] = e
			moved++
		}
	}

	return moved, nil
}

func (r *PlayerRepository) SetAuctionSelection(_ context.Context, seasonID string, playerIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	selected := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		selected[id] = struct{}{}
	}

	for _, id := range r.entryID {
		e := r.entries[id]
		if !e.Active || e.SeasonID != seasonID {
			continue
		}
		_, ok := selected[e.PlayerID]
		e.Selected = ok
		r.entries[id] = e
	}

	return nil
}
