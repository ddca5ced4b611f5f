package visual

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/deque"
	"golang.org/x/term"
)

// Role classifies a cell of the layout for display.
type Role int

// Roles of layout cells.
const (
	SentinelRole  Role = iota // head or tail sentinel block
	BlockRole                 // block within the size bounds
	MergeableRole             // block which could be merged with its successor
	OverflowRole              // block which reached the split limit
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int  // wrap output at this many fixed width positions
	MaxValues int  // print at most this many values per block; 0 prints sizes only
	Colors    bool // use the console palette; plain text otherwise
}

// Console renders block layouts to a console with a fixed width font.
type Console struct {
	colors map[Role]*color.Color
	ccnt   int // number of character positions already printed for line
}

// NewConsole creates a console renderer. colors maps cell roles to colors;
// it may contain a subset of the roles. If colors is nil, a default palette
// is used.
func NewConsole(colors map[Role]*color.Color) *Console {
	c := &Console{colors: colors}
	if colors == nil {
		c.colors = makeDefaultPalette()
	}
	return c
}

func makeDefaultPalette() map[Role]*color.Color {
	return map[Role]*color.Color{
		SentinelRole:  color.New(color.Faint),
		BlockRole:     color.New(color.FgBlue),
		MergeableRole: color.New(color.FgYellow),
		OverflowRole:  color.New(color.FgRed, color.Bold),
	}
}

// Print renders the layout of d to stdout. If config is nil, a config is
// derived from the current terminal.
func Print[T any](d *deque.Deque[T], console *Console, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return Render(d, os.Stdout, console, config)
}

// Render writes the block layout of d to w: a summary line followed by one
// cell per block, wrapped at config.LineWidth.
func Render[T any](d *deque.Deque[T], w io.Writer, console *Console, config *Config) error {
	if d == nil || w == nil || console == nil || config == nil {
		return errors.New("illegal argument: nil")
	}
	stats := d.Stats()
	fmt.Fprintf(w, "n=%d blocks=%d merge<=%.2f split>=%.2f\n",
		stats.Total, len(stats.Sizes), stats.MergeLimit, stats.SplitLimit)
	console.ccnt = 0
	console.cell("|<", SentinelRole, w, config)
	i := 0
	for seg := range d.Segments() {
		role := BlockRole
		if float64(len(seg)) >= stats.SplitLimit {
			role = OverflowRole
		} else if i+1 < len(stats.Sizes) && float64(len(seg)+stats.Sizes[i+1]) <= stats.MergeLimit {
			role = MergeableRole
		}
		console.cell(blockLabel(seg, config.MaxValues), role, w, config)
		i++
	}
	console.cell(">|", SentinelRole, w, config)
	_, err := io.WriteString(w, "\n")
	return err
}

// cell outputs s in the color for role, breaking the line first if s would
// not fit.
func (c *Console) cell(s string, role Role, w io.Writer, config *Config) {
	n := utf8.RuneCountInString(s)
	if c.ccnt > 0 {
		if config.LineWidth > 0 && c.ccnt+1+n > config.LineWidth {
			io.WriteString(w, "\n")
			c.ccnt = 0
		} else {
			io.WriteString(w, " ")
			c.ccnt++
		}
	}
	c.ccnt += n
	if config.Colors {
		if col, ok := c.colors[role]; ok {
			col.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

func blockLabel[T any](seg []T, maxValues int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d", len(seg))
	if maxValues > 0 {
		sb.WriteByte(':')
		for i, v := range seg {
			if i == maxValues {
				sb.WriteString(" …")
				break
			}
			fmt.Fprintf(&sb, " %v", v)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are enabled
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 80, MaxValues: 4}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = !color.NoColor
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = max(w-2, 20)
		}
	}
	T().P("render", "console").Infof("setting line width to %d en", config.LineWidth)
	return config
}
