package descriptor

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// HeapType selects what kind of descriptors a DescriptorHeap stores.
type HeapType uint8

const (
	// HeapResources holds buffer/texture descriptors.
	HeapResources HeapType = iota
	// HeapSamplers holds sampler descriptors.
	HeapSamplers
)

// DefaultDescriptorSize is used when a backend-specific descriptor size
// isn't known. Real hardware sizes vary (Vulkan's VK_EXT_descriptor_buffer
// reports them per binding type via vkGetDescriptorSetLayoutSizeEXT); hal
// does not currently expose that query, so callers may override via
// NewDescriptorHeap's descriptorSize argument.
const DefaultDescriptorSize = 16

// DescriptorHeap is a flat buffer of raw descriptor bytes addressed by byte
// offset, backing the descriptor-buffer / bindless model. It is backed by a
// host-visible hal.Buffer so descriptor writes are plain memory stores.
//
// hal has no backend hook for encoding hardware descriptor bytes (the
// Vulkan VK_EXT_descriptor_buffer / DX12 equivalent), so writes in this
// package store a native-handle placeholder rather than true hardware
// descriptor bytes. See DESIGN.md's Open Question decisions, item 8.
type DescriptorHeap struct {
	device hal.Device
	buffer hal.Buffer
	mapped []byte

	label          string
	heapType       HeapType
	descriptorSize uint64
	capacity       uint32
	shaderVisible  bool
}

// dataBuffer is implemented by backends whose buffers expose their mapped
// backing storage directly (currently only hal/noop, used by tests).
type dataBuffer interface {
	Data() []byte
}

// NewDescriptorHeap creates a heap of capacity descriptors, each
// descriptorSize bytes wide (pass 0 to use DefaultDescriptorSize).
func NewDescriptorHeap(device hal.Device, label string, heapType HeapType, capacity uint32, descriptorSize uint64, shaderVisible bool) (*DescriptorHeap, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("descriptor: heap %q capacity must be > 0", label)
	}
	if descriptorSize == 0 {
		descriptorSize = DefaultDescriptorSize
	}
	if descriptorSize < 8 {
		return nil, fmt.Errorf("descriptor: heap %q descriptor size %d is too small (min 8 bytes)", label, descriptorSize)
	}

	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label:            label,
		Size:             uint64(capacity) * descriptorSize,
		Usage:            gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
		MappedAtCreation: true,
	})
	if err != nil {
		return nil, fmt.Errorf("descriptor: create heap %q backing buffer: %w", label, err)
	}

	h := &DescriptorHeap{
		device:         device,
		buffer:         buf,
		label:          label,
		heapType:       heapType,
		descriptorSize: descriptorSize,
		capacity:       capacity,
		shaderVisible:  shaderVisible,
	}
	if db, ok := buf.(dataBuffer); ok {
		h.mapped = db.Data()
	}
	return h, nil
}

// DescriptorSize returns the byte size of a single descriptor slot.
func (h *DescriptorHeap) DescriptorSize() uint64 { return h.descriptorSize }

// Capacity returns the number of descriptor slots in the heap.
func (h *DescriptorHeap) Capacity() uint32 { return h.capacity }

// Type returns the heap's descriptor type.
func (h *DescriptorHeap) Type() HeapType { return h.heapType }

// GetDescriptorHeapPtr returns the CPU pointer (nil if not host-visible),
// a GPU virtual address placeholder, and the descriptor size for the slot
// at index. hal does not expose device addresses, so the GPU address is
// always reported as 0; callers needing it must query the backend directly.
func (h *DescriptorHeap) GetDescriptorHeapPtr(index uint32) (cpuPtr []byte, gpuAddress uint64, descriptorSize uint64) {
	if index >= h.capacity {
		return nil, 0, h.descriptorSize
	}
	start := uint64(index) * h.descriptorSize
	if h.mapped == nil {
		return nil, 0, h.descriptorSize
	}
	return h.mapped[start : start+h.descriptorSize], 0, h.descriptorSize
}

// ByteRange returns the mapped slice [offset, offset+size), for backends
// that address the heap by arbitrary byte offset (e.g. a DescriptorPool's
// set stride) rather than by fixed-size descriptor slot index.
func (h *DescriptorHeap) ByteRange(offset, size uint64) ([]byte, error) {
	if h.mapped == nil {
		return nil, fmt.Errorf("descriptor: heap %q is not host-visible", h.label)
	}
	if offset+size > uint64(len(h.mapped)) {
		return nil, fmt.Errorf("descriptor: heap %q byte range [%d,%d) out of bounds (capacity %d bytes)", h.label, offset, offset+size, len(h.mapped))
	}
	return h.mapped[offset : offset+size], nil
}

// Destroy releases the heap's backing buffer.
func (h *DescriptorHeap) Destroy() {
	if h.buffer != nil {
		h.device.DestroyBuffer(h.buffer)
		h.buffer = nil
		h.mapped = nil
	}
}
