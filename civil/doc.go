// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package civil normalizes instants to Indian Standard Time and encodes them
in the canonical form used for storage, comparison and the wire.

# Canonical Form

Every stored or transmitted timestamp is exactly

	YYYY-MM-DD HH:MM:SS

in IST (UTC+05:30) with no zone suffix. The form is fixed-width, so string
order equals chronological order.

	c, err := civil.FromWallClock("2024-03-05T14:30")   // picker input, IST wall clock
	c, err := civil.FromWallClock("2024-03-05T09:00:00Z") // absolute instant
	s := civil.Format(c)                                  // "2024-03-05 14:30:00"
	c, err = civil.Parse(s)                               // strict inverse

Parse rejects anything that is not byte-for-byte canonical with
ErrMalformedTimestamp. FromWallClock rejects unreadable input with
ErrInvalidTimeInput.

# Ordering

Compare orders two values at one-second resolution. Both sides are already
IST, so the caller's local zone never participates.

# Clock

The current instant always comes from a Clock passed in by the caller:

	now, err := civil.Now(civil.SystemClock{})
*/
package civil
