package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golftracker/internal/models"
)

type RoundRepository struct {
	db *sql.DB
}

func NewRoundRepository(db *sql.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

var _ Rounds = (*RoundRepository)(nil)

const (
	insertRoundSQL = `
		INSERT INTO golf_rounds
			(user_id, date, course_name, score, fairways_hit, total_fairways, greens_in_regulation, total_greens, total_putts)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	roundColumns = `id, user_id, date, course_name, score, fairways_hit, total_fairways, greens_in_regulation, total_greens, total_putts`

	selectRoundsByUserSQL = `
		SELECT ` + roundColumns + `
		FROM golf_rounds WHERE user_id = ?
		ORDER BY date DESC LIMIT ? OFFSET ?
	`

	selectRoundByIDSQL = `
		SELECT ` + roundColumns + `
		FROM golf_rounds WHERE id = ? AND user_id = ?
	`

	deleteRoundSQL = `DELETE FROM golf_rounds WHERE id = ? AND user_id = ?`

	// Same year-extraction filter SQLite applies to its own TIMESTAMP format.
	selectRoundsByYearSQL = `
		SELECT ` + roundColumns + `
		FROM golf_rounds WHERE user_id = ? AND strftime('%Y', date) = ?
	`
)

// Create inserts a new round for its owning user and returns it with the
// server-assigned id. Date is persisted in SQLite TIMESTAMP format, UTC.
func (r *RoundRepository) Create(ctx context.Context, round models.GolfRound) (models.GolfRound, error) {
	round.Date = round.Date.UTC().Truncate(time.Second)

	res, err := r.db.ExecContext(ctx, insertRoundSQL,
		round.UserID,
		round.Date.Format(timestampLayout),
		round.CourseName,
		round.Score,
		round.FairwaysHit,
		round.TotalFairways,
		round.GreensInRegulation,
		round.TotalGreens,
		round.TotalPutts,
	)
	if err != nil {
		return models.GolfRound{}, fmt.Errorf("insert round for user %d: %w", round.UserID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return models.GolfRound{}, fmt.Errorf("get last insert id for round: %w", err)
	}
	round.ID = int(lastID)
	return round, nil
}

// ListByUser returns the user's rounds ordered by date descending,
// applying offset then limit.
func (r *RoundRepository) ListByUser(ctx context.Context, userID, offset, limit int) ([]models.GolfRound, error) {
	rows, err := r.db.QueryContext(ctx, selectRoundsByUserSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select rounds for user %d: %w", userID, err)
	}
	return scanRounds(rows)
}

// GetByID fetches one round, scoped to its owner. Returns (nil, nil) when
// the round does not exist or belongs to a different user.
func (r *RoundRepository) GetByID(ctx context.Context, userID, roundID int) (*models.GolfRound, error) {
	row := r.db.QueryRowContext(ctx, selectRoundByIDSQL, roundID, userID)

	var g models.GolfRound
	if err := scanRound(row.Scan, &g); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select round %d for user %d: %w", roundID, userID, err)
	}
	return &g, nil
}

// Delete removes one round, scoped to its owner. Returns false when no
// row matched (absent or owned by someone else).
func (r *RoundRepository) Delete(ctx context.Context, userID, roundID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteRoundSQL, roundID, userID)
	if err != nil {
		return false, fmt.Errorf("delete round %d for user %d: %w", roundID, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for round %d: %w", roundID, err)
	}
	return affected > 0, nil
}

// ListByYear returns all of the user's rounds dated within the given
// calendar year, in storage order (aggregation doesn't care).
func (r *RoundRepository) ListByYear(ctx context.Context, userID, year int) ([]models.GolfRound, error) {
	rows, err := r.db.QueryContext(ctx, selectRoundsByYearSQL, userID, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("select rounds for user %d in year %d: %w", userID, year, err)
	}
	return scanRounds(rows)
}

func scanRound(scan func(dest ...any) error, g *models.GolfRound) error {
	if err := scan(
		&g.ID,
		&g.UserID,
		&g.Date,
		&g.CourseName,
		&g.Score,
		&g.FairwaysHit,
		&g.TotalFairways,
		&g.GreensInRegulation,
		&g.TotalGreens,
		&g.TotalPutts,
	); err != nil {
		return err
	}
	g.Date = g.Date.UTC()
	return nil
}

func scanRounds(rows *sql.Rows) ([]models.GolfRound, error) {
	defer rows.Close()

	out := make([]models.GolfRound, 0, 16)
	for rows.Next() {
		var g models.GolfRound
		if err := scanRound(rows.Scan, &g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
