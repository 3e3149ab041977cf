// Package app provides the orchestration layer for the foyer application.
//
// # Overview
//
// This package wires together configuration, preferences, the content
// client, the asset cache, and the Steam resolver to create the complete
// foyer TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/foyer/config.yml with FOYER_*
//     environment overrides
//  2. Load user preferences (theme, notice dismissal) from prefs.toml
//  3. Initialize the HTTP content client for the configured URL
//  4. Create the asset cache resolving against the content URL
//  5. Build the Steam handoff resolver with the configured window
//  6. Start the TUI and block until user exits or context cancels
//
// Command-line overrides (content URL, theme, modal to open) are applied
// here so the ui package only ever sees resolved options. A fragment on
// the content URL doubles as a modal deep link unless an explicit modal
// id was requested.
package app
