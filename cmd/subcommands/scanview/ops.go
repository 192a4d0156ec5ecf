// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package scanview

import (
	"strings"

	"github.com/Lexer747/scanview/scan"
	"github.com/Lexer747/scanview/utils/errors"
)

var ErrUnknownOp = errors.New("unknown operator")

// OpNames in the order they are listed in the usage text.
var OpNames = []string{"sum", "product", "max", "min"}

var ops = map[string]scan.Op[int64, int64]{
	"sum":     scan.Plus[int64](),
	"product": scan.Times[int64](),
	"max":     scan.Max[int64](),
	"min":     scan.Min[int64](),
}

// LookupOp returns the operator called [name], the error matches [ErrUnknownOp] if there is no such operator.
func LookupOp(name string) (scan.Op[int64, int64], error) {
	op, ok := ops[name]
	if !ok {
		return nil, errors.Errorf("%w %q, expected one of: %s", ErrUnknownOp, name, strings.Join(OpNames, ", "))
	}
	return op, nil
}
