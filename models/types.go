// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"github.com/danielhkuo/resultboard/civil"
)

// Request types

type LoginRequest struct {
	AccessKey string `json:"accessKey"`
	Password  string `json:"password"`
}

type TeamRequest struct {
	Name string `json:"name"`
}

// ResultRequest is the body of POST /admin/results and PUT /admin/results/{id}.
// ResultTime is operator wall-clock input and is normalized before storage.
type ResultRequest struct {
	Team       string      `json:"team"`
	Result     ResultValue `json:"result"`
	ResultTime string      `json:"result_time"`
}

// Response types

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt civil.Civil `json:"expires_at"`
}

// PublicResult is what unauthenticated readers see. VisibleResult is "-1"
// while the result is pending.
type PublicResult struct {
	ID                string      `json:"id"`
	Team              string      `json:"team"`
	VisibleResult     string      `json:"visible_result"`
	ResultTime        civil.Civil `json:"result_time"`
	ResultTimeDisplay string      `json:"result_time_display"`
	Status            string      `json:"status"`
}

// AdminResult adds the raw value and bookkeeping fields for operators.
type AdminResult struct {
	PublicResult
	Result    string      `json:"result"`
	Reveals   string      `json:"reveals"`
	CreatedAt civil.Civil `json:"created_at"`
	UpdatedAt civil.Civil `json:"updated_at"`
}

type TodayResponse struct {
	Date      string         `json:"date"`
	Results   []PublicResult `json:"results"`
	Pending   int            `json:"pending"`
	Published int            `json:"published"`
}

// Domain types

type Team struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CreatedAt civil.Civil `json:"created_at"`
}

// ResultRecord is a stored result. RawValue is kept verbatim whether or not
// it has been revealed; there is deliberately no published flag.
type ResultRecord struct {
	ID        string
	TeamID    string
	TeamName  string
	RawValue  string
	RevealAt  civil.Civil
	CreatedAt civil.Civil
	UpdatedAt civil.Civil
}

// ResultInput is a validated, normalized result ready for the store.
type ResultInput struct {
	TeamName string
	RawValue string
	RevealAt civil.Civil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
