// Package network provides a pre-configured HTTP client shared by all upstream API calls.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// The tool performs one short-lived authenticated GET per pipeline run,
// so the pool is kept small and timeouts conservative.
var Client = &http.Client{
	Timeout:   30 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 15 * time.Second
	return t
}
