package seqsum

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// DumpConfig controls console dumps of sequences.
type DumpConfig struct {
	LineWidth int // target line length in fixed width ‘en’s
}

// Palette maps the entry classes of a sequence dump to console colors.
// It may be partially filled; missing colors mean uncolored output.
type Palette struct {
	Values    *color.Color
	Aggregate *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Values:    color.New(color.FgBlue),
		Aggregate: color.New(color.FgRed),
	}
}

// DumpSequence pretty-prints the elements of a sequence to w, wrapping
// lines at config.LineWidth and closing with an aggregate line (total
// sum and element count).
//
// If config is nil, a heuristic will create one from the current
// terminal's properties (if stdout is interactive). If palette is nil, a
// default palette is used. If w is nil, output goes to stdout.
func DumpSequence[T constraints.Signed](seq Sequence[T], w io.Writer, config *DumpConfig, palette *Palette) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	if palette == nil {
		palette = makeDefaultPalette()
	}
	if w == nil {
		w = os.Stdout
	}
	ccnt := 0
	for v := range seq.Range() {
		entry := fmt.Sprintf("%v ", v)
		if ccnt > 0 && ccnt+len(entry) > config.LineWidth {
			io.WriteString(w, "\n")
			ccnt = 0
		}
		colorize(palette.Values, w, entry)
		ccnt += len(entry)
	}
	if ccnt > 0 {
		io.WriteString(w, "\n")
	}
	colorize(palette.Aggregate, w, fmt.Sprintf("sum = %v  (%d elements)\n", seq.Sum(), seq.Len()))
}

func colorize(c *color.Color, w io.Writer, s string) {
	if c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// ConfigFromTerminal is a simple helper for creating a dump config.
// It checks wether stdout is a terminal, and if so it reads the
// terminal's width and sets the DumpConfig.LineWidth parameter
// accordingly.
func ConfigFromTerminal() *DumpConfig {
	config := &DumpConfig{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
