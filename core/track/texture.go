package track

import (
	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// TextureUses represents internal texture usage states for tracking.
// These are more granular than gputypes.TextureUsage for precise barrier
// insertion. The image layout and owning queue family are tracked beside
// the usage in SubresourceState since, unlike buffers, both participate in
// whether a texture transition needs a barrier.
type TextureUses uint32

// Texture usage flags for state tracking.
const (
	TextureUsesNone            TextureUses = 0
	TextureUsesCopySrc         TextureUses = 1 << 0
	TextureUsesCopyDst         TextureUses = 1 << 1
	TextureUsesSampled         TextureUses = 1 << 2
	TextureUsesStorageRead     TextureUses = 1 << 3
	TextureUsesStorageWrite    TextureUses = 1 << 4
	TextureUsesColorTarget     TextureUses = 1 << 5
	TextureUsesDepthStencilRO  TextureUses = 1 << 6
	TextureUsesDepthStencilRW  TextureUses = 1 << 7
	TextureUsesPresent         TextureUses = 1 << 8
)

// IsReadOnly returns true if the usage contains only read-only operations.
func (u TextureUses) IsReadOnly() bool {
	writeUsages := TextureUsesCopyDst | TextureUsesStorageWrite | TextureUsesColorTarget | TextureUsesDepthStencilRW
	return u&writeUsages == 0
}

// IsEmpty returns true if no usage flags are set.
func (u TextureUses) IsEmpty() bool {
	return u == TextureUsesNone
}

// Contains returns true if all flags in other are present in u.
func (u TextureUses) Contains(other TextureUses) bool {
	return u&other == other
}

// IsCompatible returns true if two usages can coexist without a barrier.
func (u TextureUses) IsCompatible(other TextureUses) bool {
	if u.IsEmpty() || other.IsEmpty() {
		return true
	}
	if u.IsReadOnly() && other.IsReadOnly() {
		return true
	}
	return u == other
}

// ToTextureUsage converts internal uses to gputypes.TextureUsage, for
// callers on the root-package side of the façade and for building
// hal.TextureBarrier values that talk directly to a backend.
func (u TextureUses) ToTextureUsage() gputypes.TextureUsage {
	var result gputypes.TextureUsage
	if u&TextureUsesCopySrc != 0 {
		result |= gputypes.TextureUsageCopySrc
	}
	if u&TextureUsesCopyDst != 0 {
		result |= gputypes.TextureUsageCopyDst
	}
	if u&TextureUsesSampled != 0 {
		result |= gputypes.TextureUsageTextureBinding
	}
	if u&(TextureUsesStorageRead|TextureUsesStorageWrite) != 0 {
		result |= gputypes.TextureUsageStorageBinding
	}
	if u&(TextureUsesColorTarget|TextureUsesDepthStencilRO|TextureUsesDepthStencilRW) != 0 {
		result |= gputypes.TextureUsageRenderAttachment
	}
	return result
}

// Layout is an abstract image layout tag. The Vulkan backend maps these to
// VkImageLayout values; other backends may ignore layout entirely.
type Layout uint32

// QueueFamilyIgnored marks a subresource state as not owned by any
// particular queue family (no ownership transfer required).
const QueueFamilyIgnored uint32 = 0xFFFFFFFF

// SubresourceState is the tracked state of one texture subresource (or the
// global default covering all subresources without an override).
type SubresourceState struct {
	Usage       TextureUses
	Layout      Layout
	QueueFamily uint32
}

// NeedsBarrier reports whether transitioning a subresource from `from` to
// `to` requires an explicit barrier. A pure read-only-to-read-only stage
// change needs no barrier; anything else that changes usage, layout, or
// queue-family ownership does.
func NeedsBarrier(from, to SubresourceState) bool {
	if from.Usage == to.Usage && from.Layout == to.Layout && from.QueueFamily == to.QueueFamily {
		return false
	}
	if from.QueueFamily != to.QueueFamily && from.QueueFamily != QueueFamilyIgnored && to.QueueFamily != QueueFamilyIgnored {
		return true
	}
	if from.Layout != to.Layout {
		return true
	}
	if from.Usage.IsReadOnly() && to.Usage.IsReadOnly() {
		return false
	}
	return true
}

// SparseTextureState is the per-texture tracked state: a global state that
// covers every subresource by default, plus sparse per-subresource
// overrides. Most textures never acquire an override.
type SparseTextureState struct {
	Global    SubresourceState
	overrides map[uint32]SubresourceState
}

// NewSparseTextureState creates tracking state with the given initial
// global usage/layout/queue-family applied uniformly.
func NewSparseTextureState(initial SubresourceState) *SparseTextureState {
	return &SparseTextureState{Global: initial}
}

// subresourceIndex linearizes a (mip, layer) pair for the overrides map.
func subresourceIndex(mip, layer uint32) uint32 {
	return mip<<16 | (layer & 0xFFFF)
}

// StateAt returns the effective state for one subresource: the override if
// present, otherwise the global state.
func (s *SparseTextureState) StateAt(mip, layer uint32) SubresourceState {
	if s.overrides != nil {
		if st, ok := s.overrides[subresourceIndex(mip, layer)]; ok {
			return st
		}
	}
	return s.Global
}

// SetAt records an explicit per-subresource override.
func (s *SparseTextureState) SetAt(mip, layer uint32, state SubresourceState) {
	if s.overrides == nil {
		s.overrides = make(map[uint32]SubresourceState)
	}
	s.overrides[subresourceIndex(mip, layer)] = state
}

// SetGlobal replaces the default state and drops all per-subresource
// overrides, since they no longer diverge from anything meaningful once
// the whole texture moves to a single new state.
func (s *SparseTextureState) SetGlobal(state SubresourceState) {
	s.Global = state
	s.overrides = nil
}

// TextureState holds the tracked state for a single texture, indexed by
// TrackerIndex, mirroring BufferTracker's shape.
type TextureState struct {
	sparse *SparseTextureState
}

// TextureTracker tracks texture usage states for a device.
type TextureTracker struct {
	states   []TextureState
	metadata ResourceMetadata
}

// NewTextureTracker creates a new texture tracker.
func NewTextureTracker() *TextureTracker {
	return &TextureTracker{
		states:   make([]TextureState, 0, 64),
		metadata: NewResourceMetadata(),
	}
}

// InsertSingle tracks a new texture with an initial uniform usage/layout.
func (t *TextureTracker) InsertSingle(index TrackerIndex, initial SubresourceState) {
	t.ensureSize(int(index) + 1)
	t.states[index] = TextureState{sparse: NewSparseTextureState(initial)}
	t.metadata.SetOwned(index, true)
}

// Remove stops tracking a texture.
func (t *TextureTracker) Remove(index TrackerIndex) {
	if int(index) < len(t.states) {
		t.states[index] = TextureState{}
		t.metadata.SetOwned(index, false)
	}
}

// Get returns the sparse state tracker for a texture, or nil if untracked.
func (t *TextureTracker) Get(index TrackerIndex) *SparseTextureState {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		return t.states[index].sparse
	}
	return nil
}

// IsTracked returns true if the texture is being tracked.
func (t *TextureTracker) IsTracked(index TrackerIndex) bool {
	return int(index) < len(t.states) && t.metadata.IsOwned(index)
}

// Size returns the number of tracked textures.
func (t *TextureTracker) Size() int {
	return t.metadata.Count()
}

func (t *TextureTracker) ensureSize(size int) {
	for len(t.states) < size {
		t.states = append(t.states, TextureState{})
	}
}

// PendingTextureTransition mirrors PendingTransition for textures.
type PendingTextureTransition struct {
	Index TrackerIndex
	Range hal.TextureRange
	From  SubresourceState
	To    SubresourceState
}

// IntoHAL converts a pending transition to a HAL texture barrier.
func (p PendingTextureTransition) IntoHAL(texture hal.Texture) hal.TextureBarrier {
	return hal.TextureBarrier{
		Texture: texture,
		Range:   p.Range,
		Usage: hal.TextureUsageTransition{
			OldUsage: p.From.Usage.ToTextureUsage(),
			NewUsage: p.To.Usage.ToTextureUsage(),
		},
	}
}
