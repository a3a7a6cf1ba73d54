// Package server provides the HTTP boundary of the paineis dashboard.
//
// This package is internal to paineis and handles all HTTP concerns:
//
//   - Pages: any other GET path is a navigation event; the response is the
//     rendered page layout with the active slots' figures embedded as JSON
//   - REST API: "/api/page?path=<route>" returns one navigation's result
//     for every known slot, "/api/pages" lists the page catalogue
//   - Health: "/healthz" for liveness probes
//
// Each browser gets a session cookie so its active route is tracked
// separately from every other session.
//
// The server supports graceful shutdown via context cancellation, with a
// 5-second timeout for in-flight requests.
package server
