// Package store keeps the per-session navigation state of the dashboard.
//
// This package is internal to paineis. Each browser session owns exactly one
// active route; navigating overwrites it (last write wins, no history).
// Sessions are independent of each other, so concurrent users never observe
// one another's route.
//
// The main components are:
//
//   - [Store]: Interface defining session operations
//   - [MemoryStore]: In-memory implementation of Store
//   - [Session]: The active route of one session
//
// Users of the paineis library should not need to interact with this
// package directly. Sessions are managed by the router.
package store
