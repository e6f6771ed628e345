package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/arcanaland/arachne/internal/card"
	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"
)

// fourColorPalette follows the usual four-color deck: green clubs, blue
// diamonds, red hearts, and spades left near-white for dark terminals.
var fourColorPalette = map[card.Suit]string{
	card.Club:    "#2fa35a",
	card.Diamond: "#2f6fd6",
	card.Heart:   "#d8383a",
	card.Spade:   "#d0d0d0",
}

var faceDownGrey = colorful.Color{R: 0.35, G: 0.35, B: 0.35}

// painter colors card labels for the terminal
type painter struct {
	fourColor bool
}

func newPainter(fourColor bool) painter {
	return painter{fourColor: fourColor}
}

// label returns a colored card label; face-down cards are bracketed and dimmed
func (p painter) label(c *card.PlayableCard) string {
	if c == nil || c.Card == nil {
		return "??"
	}

	text := c.Card.String()
	if !c.FaceUp {
		text = "[" + text + "]"
	}

	if colorize.NoColor {
		return text
	}

	if p.fourColor {
		col, err := colorful.Hex(fourColorPalette[c.Suit])
		if err != nil {
			return text
		}
		if !c.FaceUp {
			col = col.BlendLab(faceDownGrey, 0.6)
		}
		return trueColor(col, text)
	}

	attrs := []colorize.Attribute{colorize.FgHiWhite}
	if c.Suit.Red() {
		attrs = []colorize.Attribute{colorize.FgHiRed}
	}
	if !c.FaceUp {
		attrs = append(attrs, colorize.Faint)
	}
	return colorize.New(attrs...).Sprint(text)
}

// trueColor wraps text in a 24-bit foreground escape
func trueColor(c colorful.Color, text string) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrapLabels joins labels with spaces, breaking lines at width. Visible width
// ignores ANSI escapes.
func wrapLabels(labels []string, width int) []string {
	if width < 10 {
		width = 40
	}

	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, l := range labels {
		w := visibleWidth(l)
		if currentWidth > 0 && currentWidth+1+w > width {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteByte(' ')
			currentWidth++
		}
		current.WriteString(l)
		currentWidth += w
	}

	if currentWidth > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// visibleWidth counts runes outside ANSI escape sequences
func visibleWidth(s string) int {
	n := 0
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			n++
		}
	}
	return n
}
