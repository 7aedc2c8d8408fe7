package formatter

/*
BSD 3-Clause License

Copyright (c) 2023–25, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/keyset"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Marking classifies a key within formatted output. Formatters may map
// markings to colors or other display attributes.
type Marking int

const (
	// PlainKey marks a key without special significance.
	PlainKey Marking = iota
	// CommonKey marks a key that is a member of every operand set.
	CommonKey
)

// Label produces the display string for a key. A nil Label falls back to
// fmt.Sprint.
type Label[K any] func(key K) string

func labelOrDefault[K any](label Label[K]) Label[K] {
	if label != nil {
		return label
	}
	return func(key K) string {
		return fmt.Sprint(key)
	}
}

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConsoleFixedWidth is a type for outputting key sets to a console with a
// fixed width font.
type ConsoleFixedWidth struct {
	colors map[Marking]*color.Color
	ccnt   int // number of character cells already printed for the line
}

// NewConsoleFixedWidth creates a new formatter. It is to be used for
// consoles with a fixed width font.
//
// colors is a map from markings to colors, used for display. It may contain
// just a subset of the markings produced by the formatting functions; keys
// with unmapped markings are printed unstyled. A nil colors map selects a
// default palette.
func NewConsoleFixedWidth(colors map[Marking]*color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{}
	if colors == nil {
		fw.colors = makeDefaultPalette()
	} else {
		fw.colors = colors
	}
	return fw
}

func makeDefaultPalette() map[Marking]*color.Color {
	palette := map[Marking]*color.Color{
		PlainKey:  color.New(color.FgBlue),
		CommonKey: color.New(color.FgGreen, color.Bold),
	}
	return palette
}

// MarkedKey is called by the formatting functions to output a single key
// label. It uses colors to visualize markings.
func (fw *ConsoleFixedWidth) MarkedKey(s string, marking Marking, w io.Writer) {
	c, ok := fw.colors[marking]
	if ok {
		c.Fprint(w, s)
		return
	}
	w.Write([]byte(s))
}

// FormatSet outputs the keys of a set in ascending order, wrapped to the
// configured line width.
//
// Neither out nor fw may be nil. If config is nil, a heuristic will create
// a config from the current terminal's properties (if stdout is
// interactive); config.Context set to nil selects uax11.LatinContext.
func FormatSet[K any](set keyset.Sorted[K], label Label[K], out io.Writer, config *Config, fw *ConsoleFixedWidth) error {
	config, err := checkConfig(config, fw, out)
	if err != nil {
		return err
	}
	label = labelOrDefault(label)
	fw.ccnt = 0
	for key := range set.All() {
		fw.emit(label(key), PlainKey, out, config)
	}
	fw.newline(out)
	return nil
}

// FormatIntersection outputs two operand sets and their intersection.
//
// Both operands are listed with keys common to a and b highlighted with the
// CommonKey marking; the third output line lists the intersection itself.
// The key type must be comparable so common keys can be recognized while
// walking the ascending materializations in lock-step.
//
// Configuration rules are those of FormatSet.
func FormatIntersection[K comparable](a, b keyset.Sorted[K], label Label[K], out io.Writer, config *Config, fw *ConsoleFixedWidth) error {
	config, err := checkConfig(config, fw, out)
	if err != nil {
		return err
	}
	label = labelOrDefault(label)
	common := keyset.Intersect(a, b)
	T().Debugf("formatting intersection of %d and %d keys, %d common", a.Len(), b.Len(), common.Len())
	for _, operand := range []keyset.Sorted[K]{a, b} {
		fw.ccnt = 0
		// common materializes as an ascending subsequence of the operand,
		// so a single index pointer finds every common key
		commonKeys := common.Keys()
		i := 0
		for key := range operand.All() {
			marking := PlainKey
			if i < len(commonKeys) && key == commonKeys[i] {
				marking = CommonKey
				i++
			}
			fw.emit(label(key), marking, out, config)
		}
		fw.newline(out)
	}
	fw.ccnt = 0
	for key := range common.All() {
		fw.emit(label(key), CommonKey, out, config)
	}
	fw.newline(out)
	return nil
}

// emit writes one key label, breaking the line first if the label would
// overflow the line width.
func (fw *ConsoleFixedWidth) emit(s string, marking Marking, w io.Writer, config *Config) {
	gstr := grapheme.StringFromString(s)
	cells := uax11.StringWidth(gstr, config.Context)
	if fw.ccnt > 0 {
		if fw.ccnt+1+cells > config.LineWidth {
			fw.newline(w)
		} else {
			w.Write([]byte{' '})
			fw.ccnt++
		}
	}
	fw.MarkedKey(s, marking, w)
	fw.ccnt += cells
}

func (fw *ConsoleFixedWidth) newline(w io.Writer) {
	w.Write([]byte{'\n'})
	fw.ccnt = 0
}

func checkConfig(config *Config, fw *ConsoleFixedWidth, out io.Writer) (*Config, error) {
	if fw == nil || out == nil {
		return nil, errors.New("illegal argument: nil")
	}
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.LineWidth <= 0 {
		config.LineWidth = 65
	}
	return config, nil
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
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
