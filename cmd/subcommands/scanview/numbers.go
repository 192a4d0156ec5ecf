// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scanview

import (
	"bufio"
	"io"
	"iter"
	"strconv"

	"github.com/Lexer747/scanview/terminal/ansi"
	"github.com/Lexer747/scanview/utils/errors"
	"github.com/Lexer747/scanview/utils/sliceutils"
)

// ParseNumbers parses every arg as a base 10 integer, stopping at the first which isn't one.
func ParseNumbers(args []string) ([]int64, error) {
	ret := make([]int64, 0, len(args))
	for _, arg := range args {
		v, err := parseNumber(arg)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func parseNumber(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	return v, errors.Wrapf(err, "failed to parse %q as a number", s)
}

// Format writes values the way a list literal is written, "[1, 3, 6]", each value styled by [style].
func Format(values []int64, style ansi.Style) string {
	return "[" + sliceutils.JoinFunc(values, func(v int64) string {
		return style(strconv.FormatInt(v, 10))
	}, ", ") + "]"
}

// numberReader lazily parses whitespace separated integers, the first error stops the sequence and is kept
// for [numberReader.Err].
type numberReader struct {
	r   io.Reader
	err error
}

func newNumberReader(r io.Reader) *numberReader {
	return &numberReader{r: r}
}

func (n *numberReader) All() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		s := bufio.NewScanner(n.r)
		s.Split(bufio.ScanWords)
		for s.Scan() {
			v, err := parseNumber(s.Text())
			if err != nil {
				n.err = err
				return
			}
			if !yield(v) {
				return
			}
		}
		n.err = errors.Wrap(s.Err(), "failed to read numbers")
	}
}

// Err is only meaningful once the sequence from [numberReader.All] has finished.
func (n *numberReader) Err() error { return n.err }
