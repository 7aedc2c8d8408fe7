/*
Package keyset provides verified sorted lists of keys.

# Key Sets

A key set is a small, fixed collection of distinct, totally ordered keys:
think of hardware feature sets or permission sets, where membership and
overlap have to be computable and trustworthy before any of the keys are
acted upon. Clients assemble an unconstrained List of keys, pass it once
through a validation gate, and from then on hold a Sorted value whose
strict-ascending, duplicate-free invariant is guaranteed by construction.

The two interesting operations are

  - Validate, which proves a List to be strictly ascending and wraps it as
    a Sorted without copying keys, and
  - Intersect, which merges two Sorted values into the Sorted set of their
    common keys in a single linear pass.

Because both inputs of Intersect are already sorted, the merge advances
monotonically through both chains and the result is sorted by construction;
it is never re-validated. This is what buys the O(|a|+|b|) bound instead of
pairwise membership testing.

All values in this package have value semantics and are immutable after
construction. Lists may be used concurrently without coordination.

Sortedness is never established on behalf of the caller: a List that is not
strictly ascending is rejected, not sorted. Callers own the ordering of
their input.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2023–25, Norbert Pillmayer

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
package keyset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'keyset'
func tracer() tracing.Trace {
	return tracing.Select("keyset")
}

// KeySetError is an error type for the keyset module
type KeySetError string

func (e KeySetError) Error() string {
	return string(e)
}

// ErrNotSorted signals that a list of keys is not in strictly ascending
// order. Errors returned by Validate match ErrNotSorted under errors.Is.
const ErrNotSorted = KeySetError("keys are not in strictly ascending order")

// ErrKeySetCompleted signals that a builder has already completed a list and
// it's illegal to further add keys.
const ErrKeySetCompleted = KeySetError("forbidden to add keys; list has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = KeySetError("illegal arguments")
