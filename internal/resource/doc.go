// Package resource owns the exclusive-ownership primitives.
//
// Ownership boundary:
// - the Resource value and its destroyed sentinel
// - the single-capacity Slot
//
// A Resource lives in exactly one Slot at a time. Transfer happens only by
// taking it out of one slot and filling it into another; destruction happens
// only when a holding slot is dropped. The compiler cannot enforce this, so
// the slot rejects states that would break the one-owner discipline.
package resource
