// Package delay implements a multi-channel circular history buffer for
// block-based delay effects.
//
// A Line holds one fixed-length ring per channel and a single write cursor
// shared by all of them, so every channel is always written and read at the
// same ring position. WriteBlock overwrites ring contents starting at the
// cursor, ReadBlock mixes delayed history into a destination block, and
// Advance moves the cursor once per processed block. Both block operations
// split into at most two contiguous runs when they cross the ring boundary and
// apply one linear gain ramp across the whole logical block.
//
// The ring is allocated by New and never resized. Block operations do not
// allocate.
package delay
