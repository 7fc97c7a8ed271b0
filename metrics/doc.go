// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics holds the Prometheus collectors for the HTTP layer, result
// projections, store writes and authentication. Each Manager owns a private
// registry served by Manager.Handler.
package metrics
