// Package body implements token accumulation for the body regions of a
// markup document.
//
// A reader scanning free text owns two accumulators: a [StringAcc]
// holding the run of characters currently being scanned, and a [Body]
// holding the classified tokens already produced. The Dump operations
// fold the current run into the token sequence, splitting positional
// whitespace and splicing embedded forms as they go.
//
// [Body.Finalize] hands the ordered token sequence to postprocessing.
package body
