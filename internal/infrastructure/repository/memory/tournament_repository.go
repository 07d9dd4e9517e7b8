package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
)

type TournamentRepository struct {
	mu           sync.RWMutex
	tournaments  map[string]tournament.Tournament
	seasons      map[string]tournament.Season
	tournamentID []string
	seasonID     []string
}

func NewTournamentRepository(tournaments []tournament.Tournament, seasons []tournament.Season) *TournamentRepository {
	r := &TournamentRepository{
		tournaments: make(map[string]tournament.Tournament, len(tournaments)),
		seasons:     make(map[string]tournament.Season, len(seasons)),
	}

	for _, t := range tournaments {
		r.tournaments[t.ID] = t
		r.tournamentID = append(r.tournamentID, t.ID)
	}
	for _, s := range seasons {
		r.seasons[s.ID] = s
		r.seasonID = append(r.seasonID, s.ID)
	}

	return r
}

func (r *TournamentRepository) snapshot() func() {
	r.mu.RLock()
	tournaments := maps.Clone(r.tournaments)
	seasons := maps.Clone(r.seasons)
	tournamentID := slices.Clone(r.tournamentID)
	seasonID := slices.Clone(r.seasonID)
	r.mu.RUnlock()

	return func() {
		r.mu.Lock()
		r.tournaments = tournaments
		r.seasons = seasons
		r.tournamentID = tournamentID
		r.seasonID = seasonID
		r.mu.Unlock()
	}
}

func (r *TournamentRepository) CreateTournament(_ context.Context, t tournament.Tournament) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tournaments[t.ID] = t
	r.tournamentID = append(r.tournamentID, t.ID)
	return nil
}

func (r *TournamentRepository) GetTournament(_ context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tournaments[tournamentID]
	if !ok || !t.Active {
		return tournament.Tournament{}, false, nil
	}

	return t, true, nil
}

func (r *TournamentRepository) GetTournamentByName(_ context.Context, organizerID, name string) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.tournamentID {
		t := r.tournaments[id]
		if t.Active && t.OrganizerID == organizerID && strings.EqualFold(t.Name, name) {
			return t, true, nil
		}
	}

	return tournament.Tournament{}, false, nil
}

func (r *TournamentRepository) ListTournamentsByOrganizer(_ context.Context, organizerID string) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0)
	for _, id := range r.tournamentID {
		t := r.tournaments[id]
		if t.Active && t.OrganizerID == organizerID {
			out = append(out, t)
		}
	}

	return out, nil
}

func (r *TournamentRepository) CreateSeason(_ context.Context, s tournament.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons[s.ID] = s
	r.seasonID = append(r.seasonID, s.ID)
	return nil
}

func (r *TournamentRepository) GetSeason(_ context.Context, seasonID string) (tournament.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.seasons[seasonID]
	if !ok {
		return tournament.Season{}, false, nil
	}

	return s, true, nil
}

func (r *TournamentRepository) UpdateSeason(_ context.Context, s tournament.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.seasons[s.ID]; !ok {
		return nil
	}
	r.seasons[s.ID] = s
	return nil
}

func (r *TournamentRepository) ListSeasonsByTournament(_ context.Context, tournamentID string) ([]tournament.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Season, 0)
	for _, id := range r.seasonID {
		s := r.seasons[id]
		if s.Active && s.TournamentID == tournamentID {
			out = append(out, s)
		}
	}

	return out, nil
}

func (r *TournamentRepository) ListSeasonsByOrganizer(_ context.Context, organizerID string) ([]tournament.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Season, 0)
	for _, id := range r.seasonID {
		s := r.seasons[id]
		if s.Active && s.OrganizerID == organizerID {
			out = append(out, s)
		}
	}

	return out, nil
}
