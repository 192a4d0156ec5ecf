// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package ansi

const (
	// Control Sequence Introducer | Starts most of the useful sequences, terminated by a byte in the range
	// 0x40 through 0x7E.
	CSI = "\033["

	// FormattingReset turns all attributes off, including colour, bold, etc.
	FormattingReset = CSI + "0m"
)

var r = FormattingReset

// Style is any of the colour or font functions in this package.
type Style func(s string) string

// Plain is the Style which leaves text alone, for output which is not going to a terminal.
func Plain(s string) string { return s }

// Colours Section:

func Cyan(s string) string  { return CSI + "96m" + s + r }
func Gray(s string) string  { return CSI + "90m" + s + r }
func Green(s string) string { return CSI + "92m" + s + r }
func Red(s string) string   { return CSI + "91m" + s + r }

// Fonts:

func Bold(s string) string { return CSI + "1m" + s + r }
