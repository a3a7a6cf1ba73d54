// Package dashboard provides the embedded web UI assets for paineis.
//
// This package uses Go's embed directive to include the page template at
// compile time. This enables single-binary deployment without external
// asset files.
//
// The template is rendered by the server package for every navigation.
// Users of the paineis library should not need to interact with this
// package directly.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the dashboard web UI.
//
// The filesystem structure is:
//
//	assets/
//	  index.html    - html/template page layout; figures are drawn client-side
//
//go:embed assets/*
var Assets embed.FS
