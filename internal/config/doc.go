// Package config loads action sheet presentation settings from TOML.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/actionsheet/config.toml
//  3. If the file doesn't exist, fall back to sheet.DefaultConfig
//  4. Fields that are absent or blank keep their defaults
//
// # TOML Format
//
//	log_file = "~/.local/state/actionsheet/actionsheet.log"
//	log_level = "info"
//
//	[sheet]
//	button_height = 3
//	vertical_spacing = 1
//	bottom_margin = 1
//	horizontal_inset = 2
//	corner_radius = 1
//	font_color = "#808080"
//	font_bold = false
//	background_color = "#d3d3d3"
//	border_color = "#808080"
//	overlay_color = "#000000"
//	overlay_opacity = 0.5
//	cancel_enabled = true
//	cancel_label = "Cancel"
//	open_duration = "200ms"
//	close_duration = "200ms"
//	close_on_tap = true
//
// Sizes are terminal cells. Durations use time.ParseDuration syntax.
// Negative sizes or durations and opacities outside [0, 1] are rejected.
package config
