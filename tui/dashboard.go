// Package tui renders a live population dashboard on a tcell screen
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/colorsim/parameter"
	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/report"
)

// Action is the dashboard's interpretation of an input event
type Action int

const (
	ActionNone Action = iota
	ActionAdvance
	ActionToggleAutoplay
	ActionQuit
	ActionResize
)

// historyEntry is one line of the scrolling history panel
type historyEntry struct {
	generation int
	size       int
	colorblind float64
}

// Dashboard is a population observer that draws the latest snapshot
// Not safe for concurrent use; Update and Draw run on the event loop
type Dashboard struct {
	screen        tcell.Screen
	width, height int
	title         string

	snapshot population.State
	history  []historyEntry
	peak     int

	autoplay bool
	limit    int

	lowColor, highColor colorful.Color
	maleStyle           tcell.Style
	femaleStyle         tcell.Style
}

// New creates a dashboard on an initialized screen
// limit caps the generation count shown in the status line (0 for none)
func New(screen tcell.Screen, title string, limit int) *Dashboard {
	d := &Dashboard{
		screen:    screen,
		title:     title,
		limit:     limit,
		history:   make([]historyEntry, 0, parameter.HistoryRows),
		lowColor:  mustHex(parameter.ColorLowShare),
		highColor: mustHex(parameter.ColorHighShare),
	}
	d.maleStyle = tcell.StyleDefault.Foreground(toTcell(mustHex(parameter.ColorMale)))
	d.femaleStyle = tcell.StyleDefault.Foreground(toTcell(mustHex(parameter.ColorFemale)))
	d.width, d.height = screen.Size()
	return d
}

// Update records a snapshot; implements population.Observer
func (d *Dashboard) Update(s population.State) {
	d.snapshot = s

	d.history = append(d.history, historyEntry{
		generation: s.Generation,
		size:       s.PopulationSize,
		colorblind: report.Percent(s.Colorblind(), s.PopulationSize),
	})
	if len(d.history) > parameter.HistoryRows {
		d.history = d.history[len(d.history)-parameter.HistoryRows:]
	}
	if s.PopulationSize > d.peak {
		d.peak = s.PopulationSize
	}

	if d.Finished() {
		d.autoplay = false
	}
}

// Snapshot returns the last recorded state
func (d *Dashboard) Snapshot() population.State {
	return d.snapshot
}

// Autoplay reports whether generations advance on a timer
func (d *Dashboard) Autoplay() bool {
	return d.autoplay
}

// Finished reports whether no further generations should be produced
func (d *Dashboard) Finished() bool {
	if d.limit > 0 && d.snapshot.Generation >= d.limit {
		return true
	}
	return d.snapshot.Generation > 0 && d.snapshot.Extinct()
}

// HandleEvent maps input to an action and applies dashboard-local effects
func (d *Dashboard) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return ActionQuit
			case ' ', 'n':
				if d.Finished() {
					return ActionNone
				}
				return ActionAdvance
			case 'a':
				if d.Finished() {
					d.autoplay = false
					return ActionNone
				}
				d.autoplay = !d.autoplay
				return ActionToggleAutoplay
			}
		}

	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.screen.Sync()
		return ActionResize
	}

	return ActionNone
}

// Draw renders the last snapshot and shows the frame
func (d *Dashboard) Draw() {
	d.screen.Clear()

	s := d.snapshot
	y := 0

	header := fmt.Sprintf("%s  generation %d", d.title, s.Generation)
	if d.limit > 0 {
		header = fmt.Sprintf("%s/%d", header, d.limit)
	}
	d.drawText(0, y, header, tcell.StyleDefault.Bold(true))
	y += 2

	d.drawText(0, y, pad("Population")+fmt.Sprintf("%d", s.PopulationSize), tcell.StyleDefault)
	y++

	d.drawBar(y, "Males", s.Males, s.PopulationSize, d.maleStyle)
	y++
	d.drawBar(y, "Females", s.Females, s.PopulationSize, d.femaleStyle)
	y += 2

	d.drawBar(y, "Colorblind", s.Colorblind(), s.PopulationSize, d.shareStyle(s.Colorblind(), s.PopulationSize))
	y++
	d.drawBar(y, "Colorblind males", s.ColorblindMales, s.Males, d.shareStyle(s.ColorblindMales, s.Males))
	y++
	d.drawBar(y, "Colorblind females", s.ColorblindFemales, s.Females, d.shareStyle(s.ColorblindFemales, s.Females))
	y++
	d.drawBar(y, "Carrier females", s.CarrierFemales, s.Females, d.shareStyle(s.CarrierFemales, s.Females))
	y += 2

	d.drawText(0, y, "History", tcell.StyleDefault.Underline(true))
	y++
	for i := len(d.history) - 1; i >= 0 && y < d.height-1; i-- {
		d.drawHistory(y, d.history[i])
		y++
	}

	d.drawStatus()
	d.screen.Show()
}

func (d *Dashboard) drawBar(y int, label string, part, whole int, style tcell.Style) {
	pct := report.Percent(part, whole)
	suffix := fmt.Sprintf(" %6.2f%% (%d)", pct, part)

	barWidth := max(parameter.BarMinWidth, d.width-parameter.LabelWidth-runewidth.StringWidth(suffix))
	filled := int(float64(barWidth) * pct / 100.0)

	x := d.drawText(0, y, pad(label), tcell.StyleDefault)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			d.screen.SetContent(x+i, y, parameter.BarChar, nil, style)
		} else {
			d.screen.SetContent(x+i, y, parameter.BarEmptyChar, nil, tcell.StyleDefault.Dim(true))
		}
	}
	d.drawText(x+barWidth, y, suffix, tcell.StyleDefault)
}

func (d *Dashboard) drawHistory(y int, h historyEntry) {
	line := fmt.Sprintf("gen %4d  size %6d  colorblind %6.2f%%  ", h.generation, h.size, h.colorblind)
	x := d.drawText(0, y, line, tcell.StyleDefault)

	if d.peak == 0 {
		return
	}
	sparkWidth := max(0, d.width-x)
	n := h.size * sparkWidth / d.peak
	style := d.gradient(h.colorblind / 100.0)
	for i := 0; i < n; i++ {
		d.screen.SetContent(x+i, y, parameter.BarChar, nil, style)
	}
}

func (d *Dashboard) drawStatus() {
	mode := "off"
	if d.autoplay {
		mode = "on"
	}
	status := fmt.Sprintf("space/n: next  a: autoplay [%s]  q: quit", mode)

	style := tcell.StyleDefault.Reverse(true)
	switch {
	case d.snapshot.Generation > 0 && d.snapshot.Extinct():
		status += "  EXTINCT"
		style = style.Foreground(toTcell(d.highColor))
	case d.Finished():
		status += "  DONE"
	}
	d.drawText(0, d.height-1, runewidth.FillRight(status, d.width), style)
}

// drawText writes s at (x, y) and returns the column after it
func (d *Dashboard) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= d.width {
			break
		}
		d.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (d *Dashboard) shareStyle(part, whole int) tcell.Style {
	return d.gradient(report.Percent(part, whole) / 100.0)
}

// gradient colours t in [0, 1] between the low and high share colours
func (d *Dashboard) gradient(t float64) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(d.lowColor.BlendHcl(d.highColor, t).Clamped()))
}

func pad(label string) string {
	return runewidth.FillRight(runewidth.Truncate(label, parameter.LabelWidth, ""), parameter.LabelWidth)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("tui: bad color %q: %v", s, err))
	}
	return c
}
