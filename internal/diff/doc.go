// Package diff holds the alignment core of the side-by-side word diff: a
// sequence aligner, a line-pair expander, and a word classifier.
//
// Alignment: Align works over ordered []string token sequences and is used
// twice per run — once over whole lines, then again over the words of each
// changed line pair. It returns ordered, contiguous AlignOp ranges that
// partition both sequences into equal/replace/insert/delete sub-ranges;
// concatenating the ranges reconstructs each input sequence exactly.
//
// Expansion: ExpandChangedPairs walks a line-level alignment, skips equal
// ranges entirely, and pairs the remaining lines positionally (shorter side
// padded with empty lines). Pairing is deliberately positional rather than
// best-match; see the LinePair docs.
//
// Classification: ClassifyWords word-diffs a single pair and tags every
// emitted token with a StyleClass. Classification is presentation-free: it
// never knows about colors or widths, only classes. Rendering those classes
// is the render package's job.
//
// All functions here are pure; there is no shared state between calls and
// no I/O.
package diff
