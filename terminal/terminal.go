// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package terminal

import (
	"os"

	"golang.org/x/term"

	"github.com/Lexer747/scanview/terminal/ansi"
	"github.com/Lexer747/scanview/utils/errors"
)

type ColourMode int

const (
	// Auto colours output only when it is going to a terminal.
	Auto ColourMode = iota
	Always
	Never
)

var ColourModes = []string{"auto", "always", "never"}

func (m ColourMode) String() string { return ColourModes[m] }

func ParseColourMode(s string) (ColourMode, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	default:
		return Auto, errors.Errorf("unknown colour mode %q, expected one of %v", s, ColourModes)
	}
}

// IsTerminal reports whether [f] is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Styler returns [style] if output to [f] should be coloured under [mode], otherwise [ansi.Plain].
func Styler(mode ColourMode, f *os.File, style ansi.Style) ansi.Style {
	switch mode {
	case Always:
		return style
	case Never:
		return ansi.Plain
	default:
		if f != nil && IsTerminal(f) {
			return style
		}
		return ansi.Plain
	}
}
