// Package tui prints a colony map and its connectivity summary to a terminal.
package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"outpost/pkg/engine/terminal"
	"outpost/pkg/engine/world"
	"outpost/pkg/game/colony"
	"outpost/pkg/game/connectivity"
	"outpost/pkg/game/entities"
)

// Terrain and tube icons
const (
	IconRock       = "▒"
	IconGround     = "·"
	IconMine       = "◊"
	IconTubeCross  = "┼"
	IconTubeEW     = "─"
	IconTubeNS     = "│"
	IconReached    = "○"
	IconWalkStart  = "@"
	mapLeftPadding = "  "
)

// dynamicGet is used for runtime translation key lookups.
// Keys come from markup and structure tables, so they are never constant.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal renderer for colony maps
type TUIRenderer struct {
	out   io.Writer
	width int

	colorTitle        color.Style
	colorConnected    color.Style
	colorDisconnected color.Style
	colorTube         color.Style
	colorRock         color.Style
	colorGround       color.Style
	colorMine         color.Style
	colorSubtle       color.Style
	colorReached      color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer writing to out
func New(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes colors and picks up the terminal width
func (t *TUIRenderer) Init() {
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorConnected = color.Style{color.FgGreen, color.OpBold}
	t.colorDisconnected = color.Style{color.FgRed, color.OpBold}
	t.colorTube = color.Style{color.FgCyan}
	t.colorRock = color.Style{color.FgGray}
	t.colorGround = color.Style{color.FgGray, color.OpBold}
	t.colorMine = color.Style{color.FgYellow}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorReached = color.Style{color.FgBlue, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([a-z A-Z0-9_,:.\-]+)}`)

	if t.width == 0 {
		t.width = terminal.GetWidth()
	}
}

// SetWidth overrides the detected terminal width
func (t *TUIRenderer) SetWidth(width int) {
	t.width = width
}

// FormatText formats a message with the markup system:
// GT{KEY} translates, OK{text} and DENIED{text} color. Unknown markup is left as is.
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	for _, match := range t.regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function := match[1]
		operand := match[2]

		var val string
		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "OK":
			val = t.colorConnected.Sprint(operand)
		case "DENIED":
			val = t.colorDenied(operand)
		default:
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

func (t *TUIRenderer) colorDenied(s string) string {
	return t.colorDisconnected.Sprint(s)
}

func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

// RenderFrame prints the title, map, legend, structure summary and messages
func (t *TUIRenderer) RenderFrame(c *colony.Colony) {
	fmt.Fprint(t.out, t.colorTitle.Sprint(c.Name))
	t.printString(" - GT{TURN} %d\n\n", c.Turn)
	t.RenderMap(c, nil)
	fmt.Fprintln(t.out)
	t.printLegend()
	fmt.Fprintln(t.out)
	t.printSummary(c)
	t.printMessagesPane(c)
}

// RenderMap prints the tile map. When reached is non-nil its coordinates are
// overlaid, with the first one marked as the walk start.
func (t *TUIRenderer) RenderMap(c *colony.Colony, reached *connectivity.ReachableSet) {
	var start world.MapCoordinate
	hasStart := reached != nil && reached.Len() > 0
	if hasStart {
		start = reached.Coordinates()[0]
	}

	cols := c.Map.Width()
	if maxCols := t.width - len(mapLeftPadding); t.width > 0 && cols > maxCols {
		cols = maxCols
	}

	for y := 0; y < c.Map.Height(); y++ {
		var b strings.Builder
		b.WriteString(mapLeftPadding)
		for x := 0; x < cols; x++ {
			pos := world.At(x, y)
			switch {
			case hasStart && pos == start:
				b.WriteString(t.colorReached.Sprint(IconWalkStart))
			case reached != nil && reached.Has(pos) && c.StructureAt(pos) == nil:
				b.WriteString(t.colorReached.Sprint(IconReached))
			default:
				b.WriteString(t.TileIcon(c, pos))
			}
		}
		fmt.Fprintln(t.out, b.String())
	}
	if cols < c.Map.Width() {
		t.printString("%sGT{MAP_CLIPPED}\n", mapLeftPadding)
	}
}

// TileIcon returns the colored icon for the tile at pos
func (t *TUIRenderer) TileIcon(c *colony.Colony, pos world.MapCoordinate) string {
	tile := c.Map.GetTile(pos)
	switch {
	case tile == nil:
		return " "
	case !tile.Excavated:
		return t.colorRock.Sprint(IconRock)
	case tile.Mine:
		return t.colorMine.Sprint(IconMine)
	}

	s := c.StructureAt(pos)
	if s == nil {
		return t.colorGround.Sprint(IconGround)
	}

	style := t.colorConnected
	if !s.Connected() {
		style = t.colorDisconnected
	} else if s.IsTube() {
		style = t.colorTube
	}
	return style.Sprint(StructureIcon(s))
}

// StructureIcon returns the uncolored icon of a structure
func StructureIcon(s *entities.Structure) string {
	if !s.IsTube() {
		return s.Info().Icon
	}
	switch s.Connector {
	case entities.ConnectorEastWest:
		return IconTubeEW
	case entities.ConnectorNorthSouth:
		return IconTubeNS
	default:
		return IconTubeCross
	}
}

func (t *TUIRenderer) printLegend() {
	t.printString("GT{LEGEND}\n")
	for _, kind := range legendOrder {
		s := entities.NewStructure(kind)
		fmt.Fprintf(t.out, "%s%s %s\n", mapLeftPadding, StructureIcon(s), dynamicGet(s.Name()))
	}
	fmt.Fprintf(t.out, "%s%s%s%s %s\n", mapLeftPadding, IconTubeCross, IconTubeEW, IconTubeNS, dynamicGet("STRUCTURE_TUBE"))
	fmt.Fprintf(t.out, "%s%s %s  %s %s  %s %s\n", mapLeftPadding,
		IconRock, dynamicGet("TERRAIN_ROCK"), IconGround, dynamicGet("TERRAIN_GROUND"), IconMine, dynamicGet("TERRAIN_MINE"))
}

var legendOrder = []entities.StructureKind{
	entities.KindCommandCenter,
	entities.KindSolarPanelArray,
	entities.KindSeedFactory,
	entities.KindSurfaceFactory,
	entities.KindAgridome,
	entities.KindResidence,
	entities.KindStorageTanks,
	entities.KindSmelter,
}

func (t *TUIRenderer) printSummary(c *colony.Colony) {
	if c.CommandCenter() == nil {
		fmt.Fprintln(t.out, t.colorDenied(dynamicGet("NO_COMMAND_CENTER")))
	}

	connected := c.ConnectedStructures()
	disconnected := c.DisconnectedStructures()
	t.printString("GT{CONNECTED_STRUCTURES}: OK{%d}\n", len(connected))
	t.printString("GT{DISCONNECTED_STRUCTURES}: DENIED{%d}\n", len(disconnected))
	for _, s := range disconnected {
		if s.IsTube() {
			continue
		}
		fmt.Fprintf(t.out, "- %s %s\n", t.colorDenied(dynamicGet(s.Name())), t.colorSubtle.Sprintf("(%v)", s.Position))
	}
}

func (t *TUIRenderer) printMessagesPane(c *colony.Colony) {
	if len(c.Messages) == 0 {
		return
	}
	fmt.Fprintln(t.out)
	t.printString("GT{MESSAGES}\n")
	for _, msg := range c.Messages {
		fmt.Fprintln(t.out, t.FormatText("%s", msg))
	}
}

// RenderReachable prints the reached coordinates of a walk, one per line, in visit order
func (t *TUIRenderer) RenderReachable(reached *connectivity.ReachableSet) {
	t.printString("GT{REACHABLE_TILES}: %d\n", reached.Len())
	reached.Each(func(pos world.MapCoordinate) {
		fmt.Fprintf(t.out, "%s%v\n", mapLeftPadding, pos)
	})
}
