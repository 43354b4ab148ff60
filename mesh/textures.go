// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// TextureSlot binds a sampler uniform of a shader to a texture unit.
type TextureSlot struct {

	// name of the sampler uniform
	Name string

	// texture unit the sampler reads from
	Unit uint32
}

// TextureSlots is the list of samplers of a mesh.
type TextureSlots struct {
	slots []TextureSlot
}

// Add binds the named sampler to the given unit.
func (ts *TextureSlots) Add(name string, unit uint32) {
	ts.slots = append(ts.slots, TextureSlot{Name: name, Unit: unit})
}

// AddNext binds the named sampler to the lowest unit not already used,
// and returns that unit.
func (ts *TextureSlots) AddNext(name string) uint32 {
	used := make(map[uint32]bool, len(ts.slots))
	for _, s := range ts.slots {
		used[s.Unit] = true
	}
	var unit uint32
	for used[unit] {
		unit++
	}
	ts.Add(name, unit)
	return unit
}

// Slots returns the sampler bindings in the order they were added.
func (ts *TextureSlots) Slots() []TextureSlot {
	return ts.slots
}

// Len returns the number of sampler bindings.
func (ts *TextureSlots) Len() int {
	return len(ts.slots)
}
