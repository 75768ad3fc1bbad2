package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"habitat/pkg/engine/terminal"
	"habitat/pkg/engine/world"
	"habitat/pkg/game/colonist"
	"habitat/pkg/game/renderer"
	"habitat/pkg/game/state"
)

// Viewport reservations: header, resources, roster, messages and prompt
const (
	ViewportTopMargin  = 18
	ViewportSideMargin = 2
	barWidth           = 10
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	styles         map[renderer.TextStyle]color.Style
	emotionColors  map[colonist.Emotion]color.Style
	colorHeader    color.Style
	colorLabel     color.Style
	colorBarFull   color.Style
	colorBarLow    color.Style
	fixedRows      int
	fixedCols      int
	useTerminalDim bool
}

// New creates a TUI renderer that writes to stdout and sizes the map to the terminal
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, useTerminalDim: true}
}

// NewWithWriter creates a TUI renderer with a fixed map area, for dumps and tests
func NewWithWriter(w io.Writer, rows, cols int) *TUIRenderer {
	return &TUIRenderer{out: w, fixedRows: rows, fixedCols: cols}
}

// Init initializes the palettes
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleNormal:    {},
		renderer.StyleWall:      {color.FgWhite, color.OpBold},
		renderer.StyleDoor:      {color.FgYellow, color.OpBold},
		renderer.StyleAirlock:   {color.FgCyan, color.OpBold},
		renderer.StyleBlueprint: {color.FgBlue},
		renderer.StyleMarked:    {color.FgRed, color.OpBold},
		renderer.StyleFloor:     {color.FgGray},
		renderer.StyleObject:    {color.FgMagenta, color.OpBold},
		renderer.StyleAsteroid:  {color.FgYellow},
		renderer.StyleColonist:  {color.FgGreen, color.OpBold},
		renderer.StyleSelected:  {color.FgGreen, color.BgBlack, color.OpBold, color.OpReverse},
		renderer.StyleDead:      {color.FgRed},
		renderer.StyleDenied:    {color.FgRed, color.OpBold},
		renderer.StyleSubtle:    {color.FgGray, color.OpBold},
		renderer.StyleAirLow:    {color.FgRed},
		renderer.StyleAirMid:    {color.FgYellow},
		renderer.StyleAirHigh:   {color.FgCyan},
	}
	t.emotionColors = map[colonist.Emotion]color.Style{
		colonist.EmotionNeutral:   {color.FgWhite},
		colonist.EmotionAngry:     {color.FgRed, color.OpBold},
		colonist.EmotionDepressed: {color.FgBlue},
		colonist.EmotionStressed:  {color.FgYellow},
		colonist.EmotionInspired:  {color.FgGreen, color.OpBold},
		colonist.EmotionDeceased:  {color.FgGray},
	}
	t.colorHeader = color.Style{color.FgCyan, color.OpBold}
	t.colorLabel = color.Style{color.FgGray}
	t.colorBarFull = color.Style{color.FgGreen}
	t.colorBarLow = color.Style{color.FgRed}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	if t.out != os.Stdout {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok && len(s) > 0 {
		return s.Sprint(text)
	}
	return text
}

// ShowMessage prints a message on its own line
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, msg)
}

// RenderFrame draws the whole colony
func (t *TUIRenderer) RenderFrame(snap state.Snapshot, view renderer.View) {
	if t.styles == nil {
		t.Init()
	}
	var b strings.Builder
	t.printHeader(&b, snap, view)
	t.printResources(&b, snap)
	b.WriteString("\n")
	t.printMap(&b, snap)
	b.WriteString("\n")
	t.printRoster(&b, snap)
	t.printSelected(&b, snap)
	t.printMessagesPane(&b, snap)
	if view.Prompt {
		b.WriteString("> ")
	}
	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) printHeader(b *strings.Builder, snap state.Snapshot, view renderer.View) {
	speed := fmt.Sprintf("x%g", view.Scale)
	if view.Paused {
		speed = t.StyleText(renderer.Label("PAUSED", "PAUSED"), renderer.StyleDenied)
	}
	tool := view.Tool
	if tool == "" {
		tool = renderer.Label("TOOL_SELECT", "select")
	}
	fmt.Fprintf(b, "%s  t=%.1fs  %s  %s: %s\n",
		t.colorHeader.Sprint(renderer.Label("TITLE", "Habitat")),
		snap.Elapsed, speed,
		t.colorLabel.Sprint(renderer.Label("TOOL", "Tool")), tool)
}

func (t *TUIRenderer) printResources(b *strings.Builder, snap state.Snapshot) {
	r := snap.Resources
	power := t.StyleText(renderer.Label("POWER_ON", "powered"), renderer.StyleAirHigh)
	if !snap.Powered {
		power = t.StyleText(renderer.Label("POWER_OFF", "no power"), renderer.StyleDenied)
	}
	fmt.Fprintf(b, "%s %.0f  %s %.0f/%.0f  %s %.0f/%.0f  %s %.0f  %s\n",
		t.colorLabel.Sprint(renderer.Label("MATTER", "Matter")), r.Matter,
		t.colorLabel.Sprint(renderer.Label("ENERGY", "Energy")), r.Energy, r.MaxEnergy,
		t.colorLabel.Sprint(renderer.Label("OXYGEN", "O2")), r.Oxygen, r.MaxOxygen,
		t.colorLabel.Sprint(renderer.Label("CREDITS", "Credits")), r.Credits,
		power)
}

// mapArea returns the rows and columns of cells to draw
func (t *TUIRenderer) mapArea() (rows, cols int) {
	if t.useTerminalDim {
		return terminal.MapArea(ViewportTopMargin, ViewportSideMargin)
	}
	return t.fixedRows, t.fixedCols
}

func (t *TUIRenderer) printMap(b *strings.Builder, snap state.Snapshot) {
	lo, hi, ok := snap.Bounds()
	if !ok {
		b.WriteString(t.StyleText(renderer.Label("EMPTY_COLONY", "(empty)"), renderer.StyleSubtle) + "\n")
		return
	}
	rows, cols := t.mapArea()
	// center the viewport on the occupied area
	midX := (lo.X + hi.X) / 2
	midZ := (lo.Z + hi.Z) / 2
	origin := world.SnapXZ(float64(midX-cols/2*world.Pitch), float64(midZ-rows/2*world.Pitch))

	layers := t.layers(snap)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := world.Cell{X: origin.X + c*world.Pitch, Z: origin.Z + r*world.Pitch}
			b.WriteString(layers.glyph(t, cell))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
}

type mapLayers struct {
	agents     map[world.Cell]state.AgentView
	structures map[world.Cell]state.StructureView
	objects    map[world.Cell]state.ObjectView
	floors     map[world.Cell]bool
	marked     map[world.Cell]bool
	o2         map[world.Cell]float64
}

func (t *TUIRenderer) layers(snap state.Snapshot) mapLayers {
	l := mapLayers{
		agents:     make(map[world.Cell]state.AgentView),
		structures: make(map[world.Cell]state.StructureView),
		objects:    make(map[world.Cell]state.ObjectView),
		floors:     make(map[world.Cell]bool),
		marked:     renderer.Marked(snap),
		o2:         snap.O2,
	}
	// living colonists draw over the dead
	for _, a := range snap.Agents {
		if prev, ok := l.agents[a.Cell]; ok && prev.Emotion != colonist.EmotionDeceased {
			continue
		}
		l.agents[a.Cell] = a
	}
	for _, s := range snap.Structures {
		l.structures[s.Cell] = s
	}
	for _, o := range snap.Objects {
		l.objects[o.Cell] = o
	}
	for _, f := range snap.Floors {
		l.floors[f] = true
	}
	return l
}

func (l mapLayers) glyph(t *TUIRenderer, cell world.Cell) string {
	if a, ok := l.agents[cell]; ok {
		switch {
		case a.Selected:
			return t.StyleText(renderer.IconColonist, renderer.StyleSelected)
		case a.Emotion == colonist.EmotionDeceased:
			return t.StyleText(renderer.IconDead, renderer.StyleDead)
		}
		return t.emotionColors[a.Emotion].Sprint(renderer.IconColonist)
	}
	if s, ok := l.structures[cell]; ok {
		if l.marked[cell] {
			return t.StyleText(renderer.StructureGlyph(s), renderer.StyleMarked)
		}
		return t.StyleText(renderer.StructureGlyph(s), renderer.StructureStyle(s))
	}
	if o, ok := l.objects[cell]; ok {
		style := renderer.StyleObject
		if l.marked[cell] {
			style = renderer.StyleMarked
		} else if o.Matter > 0 {
			style = renderer.StyleAsteroid
		}
		return t.StyleText(renderer.ObjectGlyph(o), style)
	}
	if l.floors[cell] {
		if l.marked[cell] {
			return t.StyleText(renderer.IconMarked, renderer.StyleMarked)
		}
		return t.StyleText(renderer.IconFloor, renderer.AirStyle(l.o2[cell]))
	}
	return renderer.IconVoid
}

func (t *TUIRenderer) printRoster(b *strings.Builder, snap state.Snapshot) {
	for _, a := range snap.Agents {
		st := renderer.Label(a.State.LabelKey(), a.State.String())
		if a.EnRoute {
			st = "→ " + st
		}
		fmt.Fprintf(b, "%-16s %-9s %-10s %-18s %s  H%s T%s E%s S%s F%s\n",
			a.Name,
			renderer.Label(a.Role.LabelKey(), a.Role.String()),
			renderer.Label(a.Trait.LabelKey(), a.Trait.String()),
			st,
			t.emotionColors[a.Emotion].Sprint(renderer.Label(a.Emotion.LabelKey(), a.Emotion.String())),
			t.bar(a.Needs[colonist.NeedHunger], 5),
			t.bar(a.Needs[colonist.NeedThirst], 5),
			t.bar(a.Needs[colonist.NeedEnergy], 5),
			t.bar(a.Needs[colonist.NeedSocial], 5),
			t.bar(a.Needs[colonist.NeedFun], 5),
		)
	}
}

func (t *TUIRenderer) printSelected(b *strings.Builder, snap state.Snapshot) {
	for _, a := range snap.Agents {
		if !a.Selected {
			continue
		}
		b.WriteString("\n")
		fmt.Fprintf(b, "%s %s (%s)\n", t.colorHeader.Sprint(a.Name), a.ID.String()[:8], a.Cell)
		for _, k := range colonist.AllNeeds() {
			label := renderer.Label("NEED_"+strings.ToUpper(k.String()), k.String())
			fmt.Fprintf(b, "  %-8s %s %5.1f\n", label, t.bar(a.Needs[k], barWidth), a.Needs[k])
		}
		fmt.Fprintf(b, "  %-8s %5.1f  %s %.0f", renderer.Label("HAPPINESS", "Happy"), a.Happiness,
			renderer.Label("SUIT", "Suit"), a.SuitOxygen)
		if a.Cargo > 0 {
			fmt.Fprintf(b, "  %s %d", renderer.Label("CARGO", "Cargo"), a.Cargo)
		}
		b.WriteString("\n")
	}
}

// bar draws a need as a fixed-width gauge
func (t *TUIRenderer) bar(v float64, width int) string {
	filled := int(v/colonist.MaxNeed*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	s := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if v < 30 {
		return t.colorBarLow.Sprint(s)
	}
	return t.colorBarFull.Sprint(s)
}

func (t *TUIRenderer) printMessagesPane(b *strings.Builder, snap state.Snapshot) {
	if len(snap.Messages) == 0 {
		return
	}
	b.WriteString("\n")
	for _, m := range snap.Messages {
		b.WriteString(t.colorLabel.Sprint("- ") + m + "\n")
	}
}
