// Package page holds the static page catalogue of the dashboard.
//
// A [Registry] maps route paths to [Page] descriptors. Resolution is an exact
// match; every other input, including the empty path, resolves to the home
// page. The registry is read-only after [NewRegistry] returns and is safe for
// concurrent use.
package page
