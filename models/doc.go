// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - LoginRequest: accessKey, password
  - TeamRequest: name
  - ResultRequest: team, result (number or string), result_time

# Response Types

  - LoginResponse: token, expires_at
  - PublicResult: id, team, visible_result, result_time, result_time_display, status
  - AdminResult: PublicResult plus result, reveals, created_at, updated_at
  - TodayResponse: date, results, pending and published counts
  - ErrorResponse: error, message

# Domain Types

  - Team: reference entity with a unique name
  - ResultRecord: stored result with its raw value and reveal time
  - ResultInput: validated, normalized result ready to store

# Validation

ResultRequest.Normalize trims and checks every field. Validation failures
wrap ErrValidation and carry the field name:

	in, err := req.Normalize()
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		// verr.Field, verr.Message
	}

Results must be non-negative decimals, so they can never collide with
PendingValue ("-1").
*/
package models
