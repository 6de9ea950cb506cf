// Package lifecycle owns the observable record of resource lifetimes.
//
// Ownership boundary:
// - event kinds emitted by the handoff roles
// - append-only journal primitives
//
// The journal is observational only and must never affect handoff behavior.
package lifecycle
