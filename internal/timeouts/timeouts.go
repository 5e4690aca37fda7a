// Package timeouts defines the fixed delays and deadlines used by the dashboard.
package timeouts

import "time"

// SearchDebounce is how long free-text search input must be idle before a
// request is issued.
const SearchDebounce = 300 * time.Millisecond

// CompletionClose is how long the roster view stays open after a successful
// "submit for completion" before closing itself.
const CompletionClose = 1500 * time.Millisecond

// APIRequest caps a single request to the accreditation API.
const APIRequest = 15 * time.Second

// TelemetryShutdown caps the flush of pending spans on exit.
const TelemetryShutdown = 5 * time.Second
