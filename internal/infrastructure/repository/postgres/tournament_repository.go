package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nikunj436/cricketAuction/internal/domain/tournament"
)

const tournamentColumns = `id, name, description, logo_url, category, organizer_id, is_active, created_at, updated_at`

const seasonColumns = `id, tournament_id, name, year, organizer_id, registration_open, is_active,
base_price, max_players_per_team, budget_per_team, auction_configured, auction_started,
auction_mode, current_round, created_at, updated_at`

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) CreateTournament(ctx context.Context, t tournament.Tournament) error {
	const query = `
INSERT INTO tournaments (id, name, description, logo_url, category, organizer_id, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		t.ID, t.Name, t.Description, t.LogoURL, string(t.Category), t.OrganizerID, t.Active, t.CreatedAt, t.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert tournament: %w", err)
	}

	return nil
}

func (r *TournamentRepository) GetTournament(ctx context.Context, tournamentID string) (tournament.Tournament, bool, error) {
	const query = `
SELECT ` + tournamentColumns + `
FROM tournaments
WHERE id = $1
  AND is_active`

	var row tournamentRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, tournamentID); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TournamentRepository) GetTournamentByName(ctx context.Context, organizerID, name string) (tournament.Tournament, bool, error) {
	const query = `
SELECT ` + tournamentColumns + `
FROM tournaments
WHERE organizer_id = $1
  AND lower(name) = lower($2)
  AND is_active`

	var row tournamentRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, organizerID, name); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("get tournament by name: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TournamentRepository) ListTournamentsByOrganizer(ctx context.Context, organizerID string) ([]tournament.Tournament, error) {
	const query = `
SELECT ` + tournamentColumns + `
FROM tournaments
WHERE organizer_id = $1
  AND is_active
ORDER BY created_at`

	var rows []tournamentRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, organizerID); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TournamentRepository) CreateSeason(ctx context.Context, s tournament.Season) error {
	const query = `
INSERT INTO seasons (id, tournament_id, name, year, organizer_id, registration_open, is_active,
                     base_price, max_players_per_team, budget_per_team, auction_configured,
                     auction_started, auction_mode, current_round, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		s.ID, s.TournamentID, s.Name, s.Year, s.OrganizerID, s.RegistrationOpen, s.Active,
		s.BasePrice, s.MaxPlayersPerTeam, s.BudgetPerTeam, s.Configured,
		s.AuctionStarted, string(s.AuctionMode), s.CurrentRound, s.CreatedAt, s.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert season: %w", err)
	}

	return nil
}

func (r *TournamentRepository) GetSeason(ctx context.Context, seasonID string) (tournament.Season, bool, error) {
	const query = `
SELECT ` + seasonColumns + `
FROM seasons
WHERE id = $1`

	var row seasonRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, seasonID); err != nil {
		if isNotFound(err) {
			return tournament.Season{}, false, nil
		}
		return tournament.Season{}, false, fmt.Errorf("get season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TournamentRepository) UpdateSeason(ctx context.Context, s tournament.Season) error {
	const query = `
UPDATE seasons
SET name = $2,
    year = $3,
    registration_open = $4,
    is_active = $5,
    base_price = $6,
    max_players_per_team = $7,
    budget_per_team = $8,
    auction_configured = $9,
    auction_started = $10,
    auction_mode = $11,
    current_round = $12,
    updated_at = $13
WHERE id = $1`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		s.ID, s.Name, s.Year, s.RegistrationOpen, s.Active,
		s.BasePrice, s.MaxPlayersPerTeam, s.BudgetPerTeam, s.Configured,
		s.AuctionStarted, string(s.AuctionMode), s.CurrentRound, s.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update season: %w", err)
	}

	return nil
}

func (r *TournamentRepository) ListSeasonsByTournament(ctx context.Context, tournamentID string) ([]tournament.Season, error) {
	const query = `
SELECT ` + seasonColumns + `
FROM seasons
WHERE tournament_id = $1
  AND is_active
ORDER BY year, created_at`

	var rows []seasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, tournamentID); err != nil {
		return nil, fmt.Errorf("list seasons by tournament: %w", err)
	}

	out := make([]tournament.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TournamentRepository) ListSeasonsByOrganizer(ctx context.Context, organizerID string) ([]tournament.Season, error) {
	const query = `
SELECT ` + seasonColumns + `
FROM seasons
WHERE organizer_id = $1
  AND is_active
ORDER BY year, created_at`

	var rows []seasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, organizerID); err != nil {
		return nil, fmt.Errorf("list seasons by organizer: %w", err)
	}

	out := make([]tournament.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
