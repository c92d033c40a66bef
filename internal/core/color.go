package core

// Color is a palette slot for a screen cell. The terminal frontend maps
// slots to ANSI 256-color codes.
type Color uint8

// Kitchen palette.
const (
	ColorDefault Color = iota
	ColorFloor
	ColorWall
	ColorStation
	ColorStationLabel
	ColorActor
	ColorShadow
	ColorMarker
	ColorPrompt
	ColorHUD
)
