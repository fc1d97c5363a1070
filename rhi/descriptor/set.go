package descriptor

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// Set is a single descriptor set: either a native hal.BindGroup (ClassicSets
// model) or a byte range inside a DescriptorHeap (DescriptorBuffer model).
type Set struct {
	model  Model
	layout *SetLayout
	pool   *DescriptorPool

	// ModelDescriptorSets.
	bg hal.BindGroup

	// ModelDescriptorBuffer.
	heap       *DescriptorHeap
	byteOffset uint64
}

// Layout returns the SetLayout this set was allocated against.
func (s *Set) Layout() *SetLayout { return s.layout }

// BindGroup returns the backing hal.BindGroup for the ClassicSets model, or
// nil if this set hasn't been written yet or belongs to the DescriptorBuffer
// model.
func (s *Set) BindGroup() hal.BindGroup { return s.bg }

// ByteOffset returns this set's byte offset into its DescriptorHeap, valid
// only for the DescriptorBuffer model.
func (s *Set) ByteOffset() uint64 { return s.byteOffset }

// destroyBackingLocked releases the set's native resources. Callers must
// hold the owning pool's lock.
func (s *Set) destroyBackingLocked() {
	if s.model == ModelDescriptorSets && s.bg != nil {
		s.layout.Device().DestroyBindGroup(s.bg)
		s.bg = nil
	}
}

// Write updates a set's bindings in a single operation.
//
// hal's bind groups are immutable once created (a WebGPU-style API, unlike
// Vulkan's incrementally-writable descriptor sets), so on the ClassicSets
// model Write constructs a fresh hal.BindGroup from entries and destroys
// the previous one. This preserves write_set's "replace all bindings in one
// call" semantics even though the underlying primitive differs from the
// teacher's vkUpdateDescriptorSets.
func (s *Set) Write(entries []gputypes.BindGroupEntry) error {
	switch s.model {
	case ModelDescriptorSets:
		old := s.bg
		bg, err := s.layout.Device().CreateBindGroup(&hal.BindGroupDescriptor{
			Label:   s.layout.Label(),
			Layout:  s.layout.HAL(),
			Entries: entries,
		})
		if err != nil {
			return fmt.Errorf("descriptor: write_set: %w", err)
		}
		s.bg = bg
		if old != nil {
			s.layout.Device().DestroyBindGroup(old)
		}
		return nil
	case ModelDescriptorBuffer:
		return s.writeRaw(entries)
	default:
		return fmt.Errorf("descriptor: write_set: unknown model %d", s.model)
	}
}

// writeRaw encodes entries as raw descriptor bytes at
// heap.mapped_ptr + set.byte_offset + i*descriptor_size, one entry per
// binding slot in declaration order. hal exposes no hardware descriptor
// encoding hook (Vulkan's VK_EXT_descriptor_buffer vkGetDescriptorEXT or the
// DX12 equivalent), so the payload written here is the resource's native
// handle rather than a true hardware descriptor; see DESIGN.md's Open
// Question decisions, item 8.
func (s *Set) writeRaw(entries []gputypes.BindGroupEntry) error {
	size := s.heap.DescriptorSize()
	for i, e := range entries {
		slot, err := s.heap.ByteRange(s.byteOffset+uint64(i)*size, size)
		if err != nil {
			return fmt.Errorf("descriptor: write_set: %w", err)
		}
		var handle uint64
		switch r := e.Resource.(type) {
		case gputypes.BufferBinding:
			handle = uint64(r.Buffer)
		case gputypes.SamplerBinding:
			handle = uint64(r.Sampler)
		case gputypes.TextureViewBinding:
			handle = uint64(r.TextureView)
		}
		binary.LittleEndian.PutUint64(slot[:8], handle)
		for b := 8; b < len(slot); b++ {
			slot[b] = 0
		}
	}
	return nil
}

// WriteSets writes multiple sets in one logical batch: write_sets(sets,
// writes) applies writes[i] to sets[i]. hal has no batched
// vkUpdateDescriptorSets-equivalent, so this issues one Write per set rather
// than one native call for the whole batch; see DESIGN.md's Open Question
// decisions, item 7.
func WriteSets(sets []*Set, writes [][]gputypes.BindGroupEntry) error {
	if len(sets) != len(writes) {
		return fmt.Errorf("descriptor: write_sets: %d sets but %d write lists", len(sets), len(writes))
	}
	for i, s := range sets {
		if err := s.Write(writes[i]); err != nil {
			return fmt.Errorf("descriptor: write_sets[%d]: %w", i, err)
		}
	}
	return nil
}
