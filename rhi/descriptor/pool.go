package descriptor

import (
	"fmt"
	"sync"
)

// Model selects which binding model a DescriptorPool serves.
type Model uint8

const (
	// ModelDescriptorSets is the classic model: one native bind group per
	// allocated set.
	ModelDescriptorSets Model = iota
	// ModelDescriptorBuffer is the modern model: sets are byte ranges
	// inside a DescriptorHeap, written directly with no native set object.
	ModelDescriptorBuffer
)

// Policy controls whether individual sets/slots may be freed independently.
type Policy uint8

const (
	// Linear pools never free individual sets; the whole pool resets at
	// once (typically once per frame/submission). FreeSet on a Linear
	// pool panics.
	Linear Policy = iota
	// Pool (a.k.a. individual-free) pools track a free list and support
	// freeing individual sets/slots out of order.
	Pool
)

// DescriptorPool is a discriminated union over the two binding models and
// two free policies, matching the spec's { DESCRIPTOR_SETS, DESCRIPTOR_BUFFER }
// x { LINEAR, POOL } design. Exactly one model and one policy apply to a
// given pool, fixed at construction.
type DescriptorPool struct {
	mu     sync.Mutex
	model  Model
	policy Policy
	layout *SetLayout

	// ModelDescriptorSets bookkeeping.
	allocated uint32
	capacity  uint32
	freeSets  []*Set // Pool policy: sets destroyed and available for reuse bookkeeping

	// ModelDescriptorBuffer bookkeeping.
	heap        *DescriptorHeap
	strideBytes uint64
	writeOffset uint64   // Linear bump pointer, in descriptor-slot units
	freeSlots   []uint32 // Pool policy freelist of slot indices
	nextSlot    uint32
}

// NewClassicPool creates a pool allocating native descriptor sets (hal bind
// groups) built over layout, with room for capacity sets.
func NewClassicPool(layout *SetLayout, capacity uint32, policy Policy) *DescriptorPool {
	return &DescriptorPool{
		model:    ModelDescriptorSets,
		policy:   policy,
		layout:   layout,
		capacity: capacity,
	}
}

// alignUp256 rounds n up to the next multiple of 256, the spec's
// conservative fallback alignment for descriptor-buffer set strides.
func alignUp256(n uint64) uint64 {
	const align = 256
	return (n + align - 1) &^ (align - 1)
}

// strideForLayout computes stride_per_set as sum(binding.count * descriptor_size)
// aligned to 256 bytes, where descriptor_size is the heap's single per-slot
// size for every binding type; runtime-sized bindings count as one slot.
// No per-binding-type size is queried from the backend.
func strideForLayout(layout *SetLayout, descriptorSize uint64) uint64 {
	var total uint64
	for _, e := range layout.Entries() {
		count := uint64(e.Count)
		if count == 0 || e.Count == CountUnbounded {
			count = 1
		}
		total += count * descriptorSize
	}
	return alignUp256(total)
}

// NewDescriptorBufferPool creates a pool over a region of heap sized for
// capacity sets built from layout. No native descriptor pool or descriptor
// set object is created; allocation only reserves byte ranges in the heap.
func NewDescriptorBufferPool(heap *DescriptorHeap, layout *SetLayout, capacity uint32, policy Policy) *DescriptorPool {
	return &DescriptorPool{
		model:       ModelDescriptorBuffer,
		policy:      policy,
		layout:      layout,
		capacity:    capacity,
		heap:        heap,
		strideBytes: strideForLayout(layout, heap.DescriptorSize()),
	}
}

// Model returns the pool's binding model.
func (p *DescriptorPool) Model() Model { return p.model }

// Policy returns the pool's free policy.
func (p *DescriptorPool) Policy() Policy { return p.policy }

// AllocateSet allocates a single set from the pool.
func (p *DescriptorPool) AllocateSet() (*Set, error) {
	sets, err := p.AllocateSets(1)
	if err != nil {
		return nil, err
	}
	return sets[0], nil
}

// AllocateSets allocates n sets from the pool in one logical call, mirroring
// the spec's single allocate_sets batching at this layer. hal has no
// batched bind-group allocation primitive, so each set still issues one
// hal.Device.CreateBindGroup (deferred until the first Write, since
// hal.BindGroup is immutable-once-created) rather than one native call for
// the whole batch; see DESIGN.md's Open Question decisions, item 7.
func (p *DescriptorPool) AllocateSets(n int) ([]*Set, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*Set, n)
	for i := 0; i < n; i++ {
		switch p.model {
		case ModelDescriptorSets:
			if len(p.freeSets) > 0 {
				s := p.freeSets[len(p.freeSets)-1]
				p.freeSets = p.freeSets[:len(p.freeSets)-1]
				p.allocated++
				out[i] = s
				continue
			}
			if p.allocated >= p.capacity {
				return nil, fmt.Errorf("descriptor: pool exhausted: %d/%d sets allocated", p.allocated, p.capacity)
			}
			p.allocated++
			out[i] = &Set{model: ModelDescriptorSets, layout: p.layout, pool: p}
		case ModelDescriptorBuffer:
			var slot uint32
			switch p.policy {
			case Pool:
				if len(p.freeSlots) > 0 {
					slot = p.freeSlots[len(p.freeSlots)-1]
					p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]
				} else {
					if p.nextSlot >= p.capacity {
						return nil, fmt.Errorf("descriptor: pool exhausted: %d/%d slots allocated", p.nextSlot, p.capacity)
					}
					slot = p.nextSlot
					p.nextSlot++
				}
			default: // Linear
				if uint64(p.writeOffset+1) > uint64(p.capacity) {
					return nil, fmt.Errorf("descriptor: pool exhausted: %d/%d slots allocated", p.writeOffset, p.capacity)
				}
				slot = uint32(p.writeOffset)
				p.writeOffset++
			}
			out[i] = &Set{
				model:      ModelDescriptorBuffer,
				layout:     p.layout,
				pool:       p,
				heap:       p.heap,
				byteOffset: uint64(slot) * p.strideBytes,
			}
		}
	}
	return out, nil
}

// FreeSet returns a set to the pool. On a Linear pool this panics, matching
// the spec's documented "free_set on LINEAR asserts" behavior: Linear pools
// are only ever reclaimed in bulk via Reset.
func (p *DescriptorPool) FreeSet(s *Set) {
	if p.policy == Linear {
		panic("descriptor: FreeSet called on a LINEAR pool")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.model {
	case ModelDescriptorSets:
		s.destroyBackingLocked()
		p.allocated--
		p.freeSets = append(p.freeSets, s)
	case ModelDescriptorBuffer:
		slot := uint32(s.byteOffset / p.strideBytes)
		p.freeSlots = append(p.freeSlots, slot)
	}
}

// Reset reclaims every set/slot allocated from a Linear pool in bulk. As
// with the staging allocator (rhi/upload), callers must only reset a pool
// once the timeline value associated with its last use has completed.
func (p *DescriptorPool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range p.freeSets {
		s.destroyBackingLocked()
	}
	p.allocated = 0
	p.freeSets = nil
	p.writeOffset = 0
	p.nextSlot = 0
	p.freeSlots = nil
}

// Stats reports current pool utilization.
type Stats struct {
	Allocated uint32
	Capacity  uint32
}

// Stats returns the pool's current allocation statistics.
func (p *DescriptorPool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.model == ModelDescriptorBuffer {
		if p.policy == Linear {
			return Stats{Allocated: uint32(p.writeOffset), Capacity: p.capacity}
		}
		return Stats{Allocated: p.nextSlot - uint32(len(p.freeSlots)), Capacity: p.capacity}
	}
	return Stats{Allocated: p.allocated, Capacity: p.capacity}
}
