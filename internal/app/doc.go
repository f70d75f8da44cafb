// Package app bootstraps gridctl: it loads configuration, applies command
// line overrides and runs either the terminal grid or a headless snapshot.
package app
