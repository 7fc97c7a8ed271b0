// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/danielhkuo/resultboard/civil"
)

// PendingValue is shown instead of a result that has not been revealed yet.
// Validation keeps it out of the space of real results.
const PendingValue = "-1"

var ErrValidation = errors.New("validation failed")

// ValidationError names the offending request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Non-negative decimal, no exponent or sign.
var resultPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ResultValue accepts either a JSON number or a JSON string and keeps the
// exact text so the stored value is what the operator typed.
type ResultValue string

func (v *ResultValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ResultValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return &ValidationError{Field: "result", Message: "must be a number"}
	}
	*v = ResultValue(n.String())
	return nil
}

// NormalizeTeamName trims name and rejects empty names.
func NormalizeTeamName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "is required"}
	}
	return name, nil
}

// NormalizeRawValue checks that v is a non-negative decimal number.
func NormalizeRawValue(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", &ValidationError{Field: "result", Message: "is required"}
	}
	if v == PendingValue || strings.HasPrefix(v, "-") {
		return "", &ValidationError{Field: "result", Message: "must not be negative"}
	}
	if !resultPattern.MatchString(v) {
		return "", &ValidationError{Field: "result", Message: fmt.Sprintf("%q is not a number", v)}
	}
	return v, nil
}

// Normalize validates r and converts its reveal time to the canonical form.
// Time errors wrap civil.ErrInvalidTimeInput; everything else wraps
// ErrValidation.
func (r ResultRequest) Normalize() (ResultInput, error) {
	team := strings.TrimSpace(r.Team)
	if team == "" {
		return ResultInput{}, &ValidationError{Field: "team", Message: "is required"}
	}

	raw, err := NormalizeRawValue(string(r.Result))
	if err != nil {
		return ResultInput{}, err
	}

	if strings.TrimSpace(r.ResultTime) == "" {
		return ResultInput{}, &ValidationError{Field: "result_time", Message: "is required"}
	}
	revealAt, err := civil.FromWallClock(r.ResultTime)
	if err != nil {
		return ResultInput{}, err
	}

	// Whatever is stored must read back as the same instant.
	if back, err := civil.Parse(civil.Format(revealAt)); err != nil || back != revealAt {
		return ResultInput{}, fmt.Errorf("%w: %q does not round-trip", civil.ErrInvalidTimeInput, r.ResultTime)
	}

	return ResultInput{TeamName: team, RawValue: raw, RevealAt: revealAt}, nil
}
