/*
Package formatter outputs key sets to fixed-width displays.

Formatting a key set means printing its key labels in ascending key order,
wrapped to a line width measured in fixed-width character cells. Key labels
are arbitrary strings (capability mnemonics, permission names) and may
contain non-Latin script, which is why cell widths are computed with UAX#11
East Asian width rules rather than byte or rune counts.

Besides plain set listings the package renders intersections: both operand
sets are listed with their common keys highlighted, followed by the
resulting intersection set.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
