/*
Package setfile provides API helpers to load capability-set tables as
sorted key lists.

A set table is a UTF-8 text file declaring one named key set per line.
Loading opens the file synchronously but parses and validates it in the
background while preserving a synchronous `Load` API; finished entries are
broadcast to subscribers as they become available.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package setfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'keyset'
func tracer() tracing.Trace {
	return tracing.Select("keyset")
}
