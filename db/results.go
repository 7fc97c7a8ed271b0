// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/models"
)

const selectResults = `
	SELECT r.id, r.team_id, t.name, r.raw_value, r.reveal_at, r.created_at, r.updated_at
	FROM result r
	JOIN team t ON t.id = r.team_id
`

type scanner interface {
	Scan(dest ...any) error
}

// scanResult reads one row. A reveal_at that is not canonical comes back
// wrapping civil.ErrMalformedTimestamp.
func scanResult(row scanner) (models.ResultRecord, error) {
	var rec models.ResultRecord
	err := row.Scan(&rec.ID, &rec.TeamID, &rec.TeamName, &rec.RawValue,
		&rec.RevealAt, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (s *Store) queryResults(ctx context.Context, where string, args ...any) ([]models.ResultRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(selectResults+where+`
		ORDER BY r.reveal_at, t.name, r.id
	`), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	records := []models.ResultRecord{}
	for rows.Next() {
		rec, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}
	return records, nil
}

// ListResults returns every result ordered by reveal time.
func (s *Store) ListResults(ctx context.Context) ([]models.ResultRecord, error) {
	return s.queryResults(ctx, "")
}

// ResultsByTeam returns every result for the named team, on any date.
func (s *Store) ResultsByTeam(ctx context.Context, teamName string) ([]models.ResultRecord, error) {
	return s.queryResults(ctx, "WHERE t.name = ?", teamName)
}

// ResultsOnDay returns results whose reveal time falls on day's IST date.
// Rows whose reveal_at is not canonical length are selected too, so a
// corrupt value fails the scan instead of falling outside the range unseen.
func (s *Store) ResultsOnDay(ctx context.Context, day civil.Civil) ([]models.ResultRecord, error) {
	start, end := civil.DayBounds(day)
	return s.queryResults(ctx, `WHERE (r.reveal_at >= ? AND r.reveal_at <= ?)
		OR length(r.reveal_at) <> ?`, start, end, len(civil.Layout))
}

// GetResult returns one result by id.
func (s *Store) GetResult(ctx context.Context, id string) (models.ResultRecord, error) {
	return s.getResult(ctx, s.db, id)
}

func (s *Store) getResult(ctx context.Context, q querier, id string) (models.ResultRecord, error) {
	rec, err := scanResult(q.QueryRowContext(ctx, s.rebind(selectResults+"WHERE r.id = ?"), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResultRecord{}, ErrNotFound
	}
	if err != nil {
		return models.ResultRecord{}, fmt.Errorf("failed to query result: %w", err)
	}
	return rec, nil
}

// CreateResult stores a new result. The team must already exist.
func (s *Store) CreateResult(ctx context.Context, in models.ResultInput, now civil.Civil) (models.ResultRecord, error) {
	rec := models.ResultRecord{
		ID:        uuid.NewString(),
		TeamName:  in.TeamName,
		RawValue:  in.RawValue,
		RevealAt:  in.RevealAt,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		teamID, err := s.teamIDByName(ctx, tx, in.TeamName)
		if err != nil {
			return err
		}
		if teamID == "" {
			return fmt.Errorf("%w: %q", ErrUnknownTeam, in.TeamName)
		}
		rec.TeamID = teamID

		_, err = tx.ExecContext(ctx, s.rebind(`
			INSERT INTO result (id, team_id, raw_value, reveal_at, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`), rec.ID, rec.TeamID, rec.RawValue, rec.RevealAt, rec.CreatedAt, rec.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert result: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.ResultRecord{}, err
	}
	return rec, nil
}

// UpdateResult replaces team, value and reveal time. Edits are allowed in
// any visibility state.
func (s *Store) UpdateResult(ctx context.Context, id string, in models.ResultInput, now civil.Civil) (models.ResultRecord, error) {
	var rec models.ResultRecord
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		// Only created_at is carried over, so a record with a corrupt
		// reveal_at can still be repaired by an edit.
		err := tx.QueryRowContext(ctx, s.rebind(`SELECT created_at FROM result WHERE id = ?`), id).
			Scan(&rec.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query result: %w", err)
		}

		teamID, err := s.teamIDByName(ctx, tx, in.TeamName)
		if err != nil {
			return err
		}
		if teamID == "" {
			return fmt.Errorf("%w: %q", ErrUnknownTeam, in.TeamName)
		}

		_, err = tx.ExecContext(ctx, s.rebind(`
			UPDATE result
			SET team_id = ?, raw_value = ?, reveal_at = ?, updated_at = ?
			WHERE id = ?
		`), teamID, in.RawValue, in.RevealAt, now, id)
		if err != nil {
			return fmt.Errorf("failed to update result: %w", err)
		}

		rec.ID = id
		rec.TeamID = teamID
		rec.TeamName = in.TeamName
		rec.RawValue = in.RawValue
		rec.RevealAt = in.RevealAt
		rec.UpdatedAt = now
		return nil
	})
	if err != nil {
		return models.ResultRecord{}, err
	}
	return rec, nil
}

// DeleteResult removes a result regardless of its visibility.
func (s *Store) DeleteResult(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM result WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
