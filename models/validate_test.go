// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/danielhkuo/resultboard/civil"
)

func TestResultValueUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    ResultValue
		wantErr bool
	}{
		{"number", `{"result": 42}`, "42", false},
		{"decimal number keeps text", `{"result": 12.50}`, "12.50", false},
		{"string", `{"result": "7"}`, "7", false},
		{"null", `{"result": null}`, "", false},
		{"bool", `{"result": true}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ResultRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Result != tt.want {
				t.Errorf("Result = %q, want %q", req.Result, tt.want)
			}
		})
	}
}

func TestNormalizeRawValue(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{" 15 ", "15", false},
		{"3.75", "3.75", false},
		{"", "", true},
		{"-1", "", true},
		{"-0.5", "", true},
		{"abc", "", true},
		{"1e5", "", true},
		{"NaN", "", true},
		{"Inf", "", true},
		{"1.", "", true},
		{".5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeRawValue(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Errorf("expected ErrValidation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeTeamName(t *testing.T) {
	name, err := NormalizeTeamName("  Kolkata Knights ")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Kolkata Knights" {
		t.Errorf("got %q", name)
	}

	_, err = NormalizeTeamName("   ")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Errorf("expected name validation error, got %v", err)
	}
}

func TestResultRequestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		req       ResultRequest
		wantField string
		wantTime  bool
		want      string
	}{
		{
			name: "valid wall clock",
			req:  ResultRequest{Team: " Alpha ", Result: "10", ResultTime: "2024-03-05T14:30"},
			want: "2024-03-05 14:30:00",
		},
		{
			name: "valid instant from another zone",
			req:  ResultRequest{Team: "Alpha", Result: "10", ResultTime: "2024-03-05T09:00:00Z"},
			want: "2024-03-05 14:30:00",
		},
		{
			name:      "missing team",
			req:       ResultRequest{Result: "10", ResultTime: "2024-03-05 14:30:00"},
			wantField: "team",
		},
		{
			name:      "non numeric result",
			req:       ResultRequest{Team: "Alpha", Result: "ten", ResultTime: "2024-03-05 14:30:00"},
			wantField: "result",
		},
		{
			name:      "sentinel result",
			req:       ResultRequest{Team: "Alpha", Result: "-1", ResultTime: "2024-03-05 14:30:00"},
			wantField: "result",
		},
		{
			name:      "missing reveal time",
			req:       ResultRequest{Team: "Alpha", Result: "10"},
			wantField: "result_time",
		},
		{
			name:     "garbage reveal time",
			req:      ResultRequest{Team: "Alpha", Result: "10", ResultTime: "next friday"},
			wantTime: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := tt.req.Normalize()

			switch {
			case tt.wantField != "":
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
				}
			case tt.wantTime:
				if !errors.Is(err, civil.ErrInvalidTimeInput) {
					t.Errorf("expected ErrInvalidTimeInput, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if civil.Format(in.RevealAt) != tt.want {
					t.Errorf("RevealAt = %s, want %s", civil.Format(in.RevealAt), tt.want)
				}
				if in.TeamName != "Alpha" {
					t.Errorf("TeamName = %q", in.TeamName)
				}
			}
		})
	}
}
