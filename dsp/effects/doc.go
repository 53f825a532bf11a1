// Package effects provides block-based audio effects built on the dsp
// primitives of this module.
//
//   - FeedbackDelay: echo with a circular multi-channel history, a fixed
//     read offset, and a double write per block (dry, then dry+wet) whose
//     gain sets how quickly repeats decay.
//
// Effects are prepared once per stream and then process host blocks in
// place without allocating.
package effects
