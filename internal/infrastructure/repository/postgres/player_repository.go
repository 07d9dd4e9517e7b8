package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/nikunj436/cricketAuction/internal/domain/player"
)

const playerColumns = `id, first_name, last_name, village, mobile, photo_url, is_wicketkeeper,
is_batsman, is_bowler, batting_style, bowling_style, role, is_active, created_at, updated_at`

const playerSeasonColumns = `id, player_id, season_id, is_selected_for_auction, auction_status,
auction_round, registered_at, is_active`

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	const query = `
INSERT INTO players (id, first_name, last_name, village, mobile, photo_url, is_wicketkeeper,
                     is_batsman, is_bowler, batting_style, bowling_style, role, is_active,
                     created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Village, p.Mobile, p.PhotoURL, p.Wicketkeeper,
		p.Batsman, p.Bowler, p.BattingStyle, p.BowlingStyle, string(p.Role), p.Active,
		p.CreatedAt, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	const query = `
UPDATE players
SET first_name = $2,
    last_name = $3,
    village = $4,
    photo_url = $5,
    is_wicketkeeper = $6,
    is_batsman = $7,
    is_bowler = $8,
    batting_style = $9,
    bowling_style = $10,
    role = $11,
    is_active = $12,
    updated_at = $13
WHERE id = $1`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Village, p.PhotoURL, p.Wicketkeeper,
		p.Batsman, p.Bowler, p.BattingStyle, p.BowlingStyle, string(p.Role), p.Active, p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Get(ctx context.Context, playerID string) (player.Player, bool, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE id = $1
  AND is_active`

	var row playerRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, playerID); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetByMobile(ctx context.Context, mobile string) (player.Player, bool, error) {
	const query = `
SELECT ` + playerColumns + `
FROM players
WHERE mobile = $1
  AND is_active`

	var row playerRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, mobile); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by mobile: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) CreateSeasonEntry(ctx context.Context, entry player.SeasonEntry) error {
	const query = `
INSERT INTO player_seasons (id, player_id, season_id, is_selected_for_auction, auction_status,
                            auction_round, registered_at, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		entry.ID, entry.PlayerID, entry.SeasonID, entry.Selected, string(entry.Status),
		entry.Round, entry.RegisteredAt, entry.Active,
	); err != nil {
		return fmt.Errorf("insert player season: %w", err)
	}

	return nil
}

func (r *PlayerRepository) UpdateSeasonEntry(ctx context.Context, entry player.SeasonEntry) error {
	const query = `
UPDATE player_seasons
SET is_selected_for_auction = $2,
    auction_status = $3,
    auction_round = $4,
    is_active = $5
WHERE id = $1`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		entry.ID, entry.Selected, string(entry.Status), entry.Round, entry.Active,
	); err != nil {
		return fmt.Errorf("update player season: %w", err)
	}

	return nil
}

func (r *PlayerRepository) GetSeasonEntry(ctx context.Context, seasonID, playerID string) (player.SeasonEntry, bool, error) {
	const query = `
SELECT ` + playerSeasonColumns + `
FROM player_seasons
WHERE season_id = $1
  AND player_id = $2
  AND is_active`

	var row playerSeasonRowModel
	if err := sqlx.GetContext(ctx, querier(ctx, r.db), &row, query, seasonID, playerID); err != nil {
		if isNotFound(err) {
			return player.SeasonEntry{}, false, nil
		}
		return player.SeasonEntry{}, false, fmt.Errorf("get player season: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) ListBySeason(ctx context.Context, seasonID string) ([]player.SeasonEntry, error) {
	const query = `
SELECT ` + playerSeasonColumns + `
FROM player_seasons
WHERE season_id = $1
  AND is_active
ORDER BY registered_at`

	var rows []playerSeasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, seasonID); err != nil {
		return nil, fmt.Errorf("list player seasons: %w", err)
	}

	return seasonEntriesToDomain(rows), nil
}

func (r *PlayerRepository) ListByStatus(ctx context.Context, seasonID string, status auction.Status) ([]player.SeasonEntry, error) {
	const query = `
SELECT ` + playerSeasonColumns + `
FROM player_seasons
WHERE season_id = $1
  AND auction_status = $2
  AND is_active
ORDER BY registered_at`

	var rows []playerSeasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, seasonID, string(status)); err != nil {
		return nil, fmt.Errorf("list player seasons by status: %w", err)
	}

	return seasonEntriesToDomain(rows), nil
}

func (r *PlayerRepository) ListPendingAtRound(ctx context.Context, seasonID string, round int) ([]player.SeasonEntry, error) {
	const query = `
SELECT ` + playerSeasonColumns + `
FROM player_seasons
WHERE season_id = $1
  AND auction_round = $2
  AND auction_status = $3
  AND is_selected_for_auction
  AND is_active
ORDER BY registered_at`

	var rows []playerSeasonRowModel
	if err := sqlx.SelectContext(ctx, querier(ctx, r.db), &rows, query, seasonID, round, string(auction.StatusPending)); err != nil {
		return nil, fmt.Errorf("list pending players: %w", err)
	}

	return seasonEntriesToDomain(rows), nil
}

func (r *PlayerRepository) MarkIconPlayers(ctx context.Context, seasonID string, playerIDs []string) error {
	const query = `
UPDATE player_seasons
SET auction_status = $3
WHERE season_id = $1
  AND player_id = ANY($2)
  AND is_active`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		seasonID, pq.Array(playerIDs), string(auction.StatusIconPlayer),
	); err != nil {
		return fmt.Errorf("mark icon players: %w", err)
	}

	return nil
}

func (r *PlayerRepository) StampRound(ctx context.Context, seasonID string, round int) error {
	const query = `
UPDATE player_seasons
SET auction_round = $2
WHERE season_id = $1
  AND auction_status = $3
  AND is_selected_for_auction
  AND is_active`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query,
		seasonID, round, string(auction.StatusPending),
	); err != nil {
		return fmt.Errorf("stamp round: %w", err)
	}

	return nil
}

func (r *PlayerRepository) AdvanceUnsold(ctx context.Context, seasonID string, round int) (int, error) {
	const query = `
UPDATE player_seasons
SET auction_status = $3,
    auction_round = $2
WHERE season_id = $1
  AND auction_status = $4
  AND is_selected_for_auction
  AND is_active`

	result, err := querier(ctx, r.db).ExecContext(ctx, query,
		seasonID, round, string(auction.StatusPending), string(auction.StatusUnsold),
	)
	if err != nil {
		return 0, fmt.Errorf("advance unsold players: %w", err)
	}

	moved, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count advanced players: %w", err)
	}

	return int(moved), nil
}

func (r *PlayerRepository) SetAuctionSelection(ctx context.Context, seasonID string, playerIDs []string) error {
	const query = `
UPDATE player_seasons
SET is_selected_for_auction = (player_id = ANY($2))
WHERE season_id = $1
  AND is_active`

	if _, err := querier(ctx, r.db).ExecContext(ctx, query, seasonID, pq.Array(playerIDs)); err != nil {
		return fmt.Errorf("set auction selection: %w", err)
	}

	return nil
}

func seasonEntriesToDomain(rows []playerSeasonRowModel) []player.SeasonEntry {
	out := make([]player.SeasonEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
