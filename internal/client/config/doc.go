// Package config loads the client's runtime settings from three layered
// sources: built-in defaults, an optional JSON file (-c/-config), and
// command-line flags. Later sources take precedence.
package config
