// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package civil

import "time"

// Clock supplies the current instant. Callers pass one in; nothing in this
// module reads time.Now directly outside SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }

// Now samples clk and normalizes the reading to IST.
func Now(clk Clock) (Civil, error) {
	return FromInstant(clk.Now())
}
