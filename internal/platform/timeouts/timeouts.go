// Package timeouts defines shared timeout constants used by the console and
// the operator CLI so both talk to the backend with the same budget.
package timeouts

import "time"

// APIRequest caps a single call from the console to the staffing backend,
// including reading the response body.
const APIRequest = 10 * time.Second

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// CacheSweep is the interval between removals of expired query-cache rows.
const CacheSweep = time.Minute
