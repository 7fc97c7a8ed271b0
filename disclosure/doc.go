// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package disclosure decides what readers may see of a stored result.

A result is Published once its reveal time is at or before now, and
Pending otherwise. A Pending projection shows PendingValue ("-1") in place
of the raw value:

	now, _ := civil.Now(clock)
	p := disclosure.Project(record, now)
	// p.State, p.DisplayValue

Nothing here stores or caches state. Every call derives it from the
record's reveal time and the now it is given, so an edited reveal time takes
effect on the next read. All functions are pure and safe for concurrent use.

Today and ByTeam are filters in front of ProjectAll; they apply the same
visibility rule.
*/
package disclosure
