// Package config loads editor settings from a TOML file.
//
// The file is optional. Missing files and missing keys fall back to
// Default. Unknown keys are rejected by Parse; bad values are reported by
// Validate, which runs after command-line overrides are applied.
//
//	[log]
//	level = "info"     # debug, info, warn or error
//	file  = ""         # empty discards log output
//
//	[theme]
//	border = "#5f87af" # hex foreground colors; empty keeps the terminal default
//	text   = ""
//	status = "#87af87"
//
// Key bindings are fixed and have no settings.
package config
