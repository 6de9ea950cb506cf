// Package handoff owns the three collaborating roles of the demonstration.
//
// Ownership boundary:
// - Producer: constructs the resource and orchestrates both transfers
// - Relay: borrows through the owner's slot and may claim
// - Sink: terminal owner, mandatory transfer
//
// Transfer discipline:
// - lending passes *resource.Slot: the callee may or may not empty it
// - consuming passes *resource.Resource taken out of the slot: the caller
//   has already given ownership up by the time the callee runs
//
// The relay silently keeping the resource is a valid branch of the
// demonstration, not a fault. The producer must branch on slot occupancy
// after lending and never forward an empty slot as populated.
package handoff
