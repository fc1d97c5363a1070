// Package descriptor implements the set-layout / descriptor-pool / descriptor-set
// binding subsystem on top of hal.Device, plus the legacy ResourceGroup façade.
//
// Two binding models coexist, mirroring real Vulkan/DX12 practice: classic
// descriptor sets (grounded on hal/vulkan/descriptor.go's DescriptorAllocator,
// whose on-demand pool growth this package's ClassicSets pool mirrors at the
// frontend level) and descriptor-buffer / bindless (no teacher analogue; the
// heap and raw-write model follow the VK_Resource_Bindings.cpp / VK_ResourceGroups.cpp
// design referenced in original_source).
package descriptor

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// CountUnbounded marks a binding as runtime-sized ("bindless"): the shader
// indexes an unbounded array of descriptors at that slot.
const CountUnbounded = ^uint32(0)

// MaxBindings is the maximum number of binding slots a SetLayout may declare.
const MaxBindings = 32

// BindingEntry describes a single binding slot in a SetLayout. It extends
// gputypes.BindGroupLayoutEntry with the array count and update-after-bind
// flag that drive PARTIALLY_BOUND / VARIABLE_DESCRIPTOR_COUNT derivation.
type BindingEntry struct {
	gputypes.BindGroupLayoutEntry

	// Count is the number of descriptors at this slot. 1 for a scalar
	// binding, CountUnbounded for a bindless runtime array.
	Count uint32

	// UpdateAfterBind requests UPDATE_AFTER_BIND for this binding. Any
	// bindless (CountUnbounded) binding implies this regardless of the
	// value set here.
	UpdateAfterBind bool
}

// SetLayout describes the shape of a descriptor set: its binding slots and
// the flags derived from them. It owns the backing hal.BindGroupLayout.
type SetLayout struct {
	device hal.Device
	hal    hal.BindGroupLayout

	label     string
	entries   []BindingEntry
	total     uint32
	hasUAB    bool
	hasVarCnt bool
}

// NewSetLayout builds a SetLayout from up to MaxBindings entries and creates
// the backing hal.BindGroupLayout.
func NewSetLayout(device hal.Device, label string, entries []BindingEntry) (*SetLayout, error) {
	if len(entries) > MaxBindings {
		return nil, fmt.Errorf("descriptor: set layout %q declares %d bindings, max is %d", label, len(entries), MaxBindings)
	}

	l := &SetLayout{
		device:  device,
		label:   label,
		entries: append([]BindingEntry(nil), entries...),
	}

	halEntries := make([]gputypes.BindGroupLayoutEntry, len(entries))
	for i, e := range entries {
		count := e.Count
		if count == 0 {
			count = 1
		}
		if count == CountUnbounded {
			l.hasVarCnt = true
			// A runtime-sized array forces UPDATE_AFTER_BIND and
			// PARTIALLY_BOUND on the classic-sets backend.
			l.hasUAB = true
			count = 1
		} else if e.UpdateAfterBind {
			l.hasUAB = true
		}
		l.total += count
		halEntries[i] = e.BindGroupLayoutEntry
	}

	backing, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: halEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("descriptor: create set layout %q: %w", label, err)
	}
	l.hal = backing
	return l, nil
}

// HasUpdateAfterBind reports whether any binding requires UPDATE_AFTER_BIND.
func (l *SetLayout) HasUpdateAfterBind() bool { return l.hasUAB }

// HasVariableDescriptorCount reports whether any binding is runtime-sized.
func (l *SetLayout) HasVariableDescriptorCount() bool { return l.hasVarCnt }

// TotalDescriptors returns the total descriptor count across all bindings.
// Bindless (runtime-sized) slots count as 1 towards this total.
func (l *SetLayout) TotalDescriptors() uint32 { return l.total }

// Entries returns the binding entries that make up this layout.
func (l *SetLayout) Entries() []BindingEntry { return l.entries }

// Label returns the layout's debug name.
func (l *SetLayout) Label() string { return l.label }

// HAL exposes the backing hal.BindGroupLayout, e.g. for PipelineLayout construction.
func (l *SetLayout) HAL() hal.BindGroupLayout { return l.hal }

// Device returns the device this layout was created against.
func (l *SetLayout) Device() hal.Device { return l.device }

// Destroy releases the backing hal.BindGroupLayout.
func (l *SetLayout) Destroy() {
	if l.hal != nil {
		l.device.DestroyBindGroupLayout(l.hal)
		l.hal = nil
	}
}
