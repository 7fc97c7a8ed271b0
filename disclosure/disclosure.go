// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package disclosure

import (
	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/models"
)

// State is derived from the reveal time on every read. It is never stored.
type State string

const (
	StatePending   State = "pending"
	StatePublished State = "published"
)

// PendingValue replaces the raw value while a result is pending.
const PendingValue = models.PendingValue

// Projection is the reader-facing view of one record.
type Projection struct {
	ID           string
	Team         string
	State        State
	DisplayValue string
	RevealAt     civil.Civil
}

// StateAt reports whether a result revealed at revealAt is visible at now.
// Equality counts as revealed.
func StateAt(revealAt, now civil.Civil) State {
	if civil.Compare(revealAt, now) == civil.After {
		return StatePending
	}
	return StatePublished
}

// Project masks rec unless its reveal time has been reached.
func Project(rec models.ResultRecord, now civil.Civil) Projection {
	p := Projection{
		ID:       rec.ID,
		Team:     rec.TeamName,
		State:    StateAt(rec.RevealAt, now),
		RevealAt: rec.RevealAt,
	}
	if p.State == StatePublished {
		p.DisplayValue = rec.RawValue
	} else {
		p.DisplayValue = PendingValue
	}
	return p
}

// ProjectAll projects each record independently, preserving order.
func ProjectAll(records []models.ResultRecord, now civil.Civil) []Projection {
	out := make([]Projection, 0, len(records))
	for _, rec := range records {
		out = append(out, Project(rec, now))
	}
	return out
}

// Today projects the records whose reveal time falls on now's IST date.
func Today(records []models.ResultRecord, now civil.Civil) []Projection {
	out := []Projection{}
	for _, rec := range records {
		if civil.SameDay(rec.RevealAt, now) {
			out = append(out, Project(rec, now))
		}
	}
	return out
}

// ByTeam projects the records belonging to team, on any date.
func ByTeam(records []models.ResultRecord, team string, now civil.Civil) []Projection {
	out := []Projection{}
	for _, rec := range records {
		if rec.TeamName == team {
			out = append(out, Project(rec, now))
		}
	}
	return out
}

// Counts tallies projections by state.
type Counts struct {
	Pending   int
	Published int
}

func Summarize(projections []Projection) Counts {
	var c Counts
	for _, p := range projections {
		if p.State == StatePublished {
			c.Published++
		} else {
			c.Pending++
		}
	}
	return c
}
