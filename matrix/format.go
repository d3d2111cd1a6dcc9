// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvmath/num"
)

// ---------- Formatting literals ----------
const (
	_fmtEntry    = "%.3f"
	_fmtRowOpen  = "| "
	_fmtRowClose = " |"
	_fmtSep      = "  "
	_fmtRowSep   = "\n"
	_fmtPosInf   = "inf"
	_fmtNegInf   = "-inf"
	_fmtNaN      = "NaN"
)

// String renders the matrix as Rows() lines of the form
//
//	| e0  e1  ...  en-1 |
//
// Every entry is formatted with three decimals and left-padded with spaces
// to the width of the longest formatted entry of the whole matrix. Non-finite
// entries render as inf, -inf and NaN. Rows are
// separated by a newline; there is no trailing newline.
// Complexity: O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}

	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		cells[i] = formatEntry(v)
		width = max(width, len(cells[i]))
	}

	var b strings.Builder
	b.Grow(m.r * (len(_fmtRowOpen) + m.c*(width+len(_fmtSep)) + len(_fmtRowSep)))
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			cell := cells[i*m.c+j]
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatEntry renders one entry with three decimals, or its non-finite name.
func formatEntry(v num.Real) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return _fmtNaN
	case math.IsInf(f, 1):
		return _fmtPosInf
	case math.IsInf(f, -1):
		return _fmtNegInf
	}

	return fmt.Sprintf(_fmtEntry, v)
}
