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

// ListTeams returns every team ordered by name.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(`
		SELECT id, name, created_at
		FROM team
		ORDER BY name
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := []models.Team{}
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}
	return teams, nil
}

// GetTeam returns the team with the given id.
func (s *Store) GetTeam(ctx context.Context, id string) (models.Team, error) {
	return s.getTeam(ctx, s.db, id)
}

func (s *Store) getTeam(ctx context.Context, q querier, id string) (models.Team, error) {
	var team models.Team
	err := q.QueryRowContext(ctx, s.rebind(`
		SELECT id, name, created_at FROM team WHERE id = ?
	`), id).Scan(&team.ID, &team.Name, &team.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Team{}, ErrNotFound
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to query team: %w", err)
	}
	return team, nil
}

// teamIDByName returns "" when no team has that name.
func (s *Store) teamIDByName(ctx context.Context, q querier, name string) (string, error) {
	var id string
	err := q.QueryRowContext(ctx, s.rebind(`SELECT id FROM team WHERE name = ?`), name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query team by name: %w", err)
	}
	return id, nil
}

// CreateTeam inserts a team. Names are unique.
func (s *Store) CreateTeam(ctx context.Context, name string, now civil.Civil) (models.Team, error) {
	team := models.Team{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		existing, err := s.teamIDByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if existing != "" {
			return ErrDuplicateTeam
		}

		return s.insertTeam(ctx, tx, team)
	})
	if err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// insertTeam writes team. A concurrent create can pass the name check in
// CreateTeam, so the constraint error is mapped as well.
func (s *Store) insertTeam(ctx context.Context, q querier, team models.Team) error {
	_, err := q.ExecContext(ctx, s.rebind(`
		INSERT INTO team (id, name, created_at)
		VALUES (?, ?, ?)
	`), team.ID, team.Name, team.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateTeam
	}
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

// UpdateTeam renames a team. Results follow because they reference the id.
func (s *Store) UpdateTeam(ctx context.Context, id, name string) (models.Team, error) {
	var team models.Team
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		team, err = s.getTeam(ctx, tx, id)
		if err != nil {
			return err
		}

		existing, err := s.teamIDByName(ctx, tx, name)
		if err != nil {
			return err
		}
		if existing != "" && existing != id {
			return ErrDuplicateTeam
		}

		_, err = tx.ExecContext(ctx, s.rebind(`UPDATE team SET name = ? WHERE id = ?`), name, id)
		if isUniqueViolation(err) {
			return ErrDuplicateTeam
		}
		if err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team.Name = name
		return nil
	})
	if err != nil {
		return models.Team{}, err
	}
	return team, nil
}

// DeleteTeam removes a team together with its results.
func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM result WHERE team_id = ?`), id); err != nil {
			return fmt.Errorf("failed to delete team results: %w", err)
		}

		res, err := tx.ExecContext(ctx, s.rebind(`DELETE FROM team WHERE id = ?`), id)
		if err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
