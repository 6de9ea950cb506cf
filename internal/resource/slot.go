package resource

import "errors"

var (
	ErrSlotOccupied      = errors.New("resource: slot already occupied")
	ErrAbsentResource    = errors.New("resource: absent resource")
	ErrResourceDestroyed = errors.New("resource: resource already destroyed")
)

// Slot is a single-capacity exclusive owner: empty, or holding exactly one
// live resource. The zero value is an empty slot.
type Slot struct {
	held *Resource
}

// Fill places a resource under this slot's ownership. Filling an occupied
// slot would create a second claim on whatever it holds, so it is rejected.
func (s *Slot) Fill(r *Resource) error {
	if r == nil {
		return ErrAbsentResource
	}
	if r.destroyed {
		return ErrResourceDestroyed
	}
	if s.held != nil {
		return ErrSlotOccupied
	}
	s.held = r
	return nil
}

// Take transfers the resource out, leaving the slot empty. Returns nil when
// there is nothing to take; callers must treat that as a valid state.
func (s *Slot) Take() *Resource {
	r := s.held
	s.held = nil
	return r
}

// Peek returns the held resource without transferring ownership, or nil.
func (s *Slot) Peek() *Resource {
	return s.held
}

// Holding reports whether the slot currently owns a resource.
func (s *Slot) Holding() bool {
	return s.held != nil
}

// Drop ends the held resource's lifetime and empties the slot. Dropping an
// empty slot is a no-op. This is the only way a resource is destroyed:
// relinquishing ownership without transferring it.
func (s *Slot) Drop() {
	if s.held == nil {
		return
	}
	s.held.destroy()
	s.held = nil
}
