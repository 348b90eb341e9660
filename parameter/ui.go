package parameter

import "time"

// Dashboard Timing
const (
	// AutoplayInterval is the delay between generations while autoplay is on
	AutoplayInterval = 400 * time.Millisecond

	// FrameUpdateInterval is the redraw interval of the dashboard
	FrameUpdateInterval = 50 * time.Millisecond

	// EventBufferSize is the capacity of the input event channel
	EventBufferSize = 64
)

// Dashboard Layout
const (
	// LabelWidth is the column width reserved for row labels
	LabelWidth = 20

	// BarMinWidth is the narrowest bar drawn before bars are hidden
	BarMinWidth = 10

	// HistoryRows is the number of past generations listed under the bars
	HistoryRows = 12

	// BarChar fills the proportion part of a bar
	BarChar = '█'

	// BarEmptyChar fills the remainder of a bar
	BarEmptyChar = '░'
)

// Dashboard Palette (hex, blended in HCL space)
const (
	ColorLowShare  = "#3d9970"
	ColorHighShare = "#ff4136"
	ColorMale      = "#0074d9"
	ColorFemale    = "#b10dc9"
)

// Logging
const (
	// LogDir receives the debug log when -debug is set
	LogDir = "logs"

	// LogFileName is the active debug log file inside LogDir
	LogFileName = "colorsim.log"

	// MaxLogSize triggers rotation of the debug log
	MaxLogSize = 10 * 1024 * 1024
)
