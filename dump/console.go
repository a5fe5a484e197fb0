package dump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/hideo55/go-popcount"
	"github.com/npillmayer/intmap"
	"golang.org/x/term"
)

// Config controls the console rendering of a map structure.
type Config struct {
	// Colorize switches ANSI coloring of branches and keys on or off.
	Colorize bool
	// LineWidth is the target output width; long value renderings are
	// truncated to it.
	LineWidth int
}

// ConfigFromTerminal is a simple helper for creating a dump Config.
// It checks whether stdout is a terminal, and if so enables colors and reads
// the terminal's width to set the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Colorize = true
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || w < 30 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 5
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

var (
	branchColor = color.New(color.FgCyan)
	keyColor    = color.New(color.FgYellow, color.Bold)
)

// Map writes an indented structural dump of m to w.
//
// Branch lines show the node's prefix, its branching mask and the bit
// position the mask selects; leaf lines show key and value. If config is
// nil, a heuristic config is created from the current terminal's properties.
//
//	· branch 0x0/0x4 (bit 2)
//	·   · 4 ↦ "four"
//	·   · branch 0x1/0x2 (bit 1)
//	·   ·   · 1 ↦ "one"
//	·   ·   · 3 ↦ "three"
func Map[V any](m intmap.Map[V], w io.Writer, config *Config) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	prevNoColor := color.NoColor
	color.NoColor = !config.Colorize
	defer func() { color.NoColor = prevNoColor }()

	m.Walk(
		func(prefix, bit uint64, depth int) {
			label := branchColor.Sprintf("branch %#x/%#x (bit %d)", prefix, bit, bitPosition(bit))
			fmt.Fprintf(w, "%s%s\n", indent(depth), label)
		},
		func(key int64, value V, depth int) {
			head := fmt.Sprintf("%s%d ↦ ", indent(depth), key)
			tail := clip(fmt.Sprintf("%v", value), config.LineWidth-utf8.RuneCountInString(head))
			fmt.Fprintf(w, "%s%s ↦ %s\n", indent(depth), keyColor.Sprintf("%d", key), tail)
		},
	)
}

// bitPosition returns the index of the single set bit of a branching mask.
func bitPosition(bit uint64) int {
	return int(popcount.Count(bit - 1))
}

func indent(depth int) string {
	return strings.Repeat("·   ", depth) + "· "
}

// clip truncates plain text to at most width runes. It must run before any
// coloring: truncating styled text could cut an escape sequence in half and
// lose the trailing reset.
func clip(s string, width int) string {
	if width <= 1 || len(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
