// Package upload implements the RHI core's transient and deferred upload
// paths (spec §4.D–§4.F): a chunked bump allocator for staging memory, a
// fence-synchronous immediate uploader for small one-shot writes, and a
// queued deferred uploader that batches writes and flushes them through a
// rhi/sync.CommandQueue timeline.
//
// The staging allocator mirrors the suballocation discipline of
// hal/vulkan/memory.GpuAllocator (bump-allocate within a block, fall back to
// a dedicated block for oversize requests) and the recycling discipline of
// hal/vulkan's fencePool (track in-flight allocations by submission value,
// recycle once the GPU-reported completed value passes them) — but at the
// staging-buffer granularity rather than VkDeviceMemory, since spec §4.D
// staging chunks are themselves just host-visible hal.Buffers bump-allocated
// from, not raw device memory.
package upload

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// DefaultChunkSize is the staging allocator's default block size (64 MiB),
// matching the spec's recommended default.
const DefaultChunkSize = 64 << 20

// DefaultAlignment is the minimum alignment staging offsets are rounded up
// to, satisfying every backend's buffer-copy alignment requirement.
const DefaultAlignment = 256

var (
	// ErrZeroSize is returned when an allocation of size 0 is requested.
	ErrZeroSize = errors.New("upload: allocation size must be > 0")
)

// Allocation is a range of a staging chunk ready to be written into and used
// as the source of a CopyBufferToBuffer/CopyBufferToTexture region.
type Allocation struct {
	Buffer hal.Buffer
	Offset uint64
	Size   uint64

	chunk *chunk
}

// chunk is one staging buffer, bump-allocated from front to back.
type chunk struct {
	buffer   hal.Buffer
	size     uint64
	used     uint64
	dedicated bool

	// submission is the timeline value this chunk's writes were last
	// submitted under; 0 means the chunk has no outstanding GPU reads and
	// is free to reset and reuse.
	submission uint64
}

func (c *chunk) reset() {
	c.used = 0
	c.submission = 0
}

// StagingAllocator is a chunked bump allocator over host-visible
// hal.Buffers, used by ImmediateUploader and DeferredUploader as the source
// of copy-to-device-memory regions.
//
// Allocator access is single-threaded per the spec's description of one
// staging allocator per transfer context; callers needing concurrent
// uploaders should use one StagingAllocator per uploader.
type StagingAllocator struct {
	mu sync.Mutex

	device    hal.Device
	chunkSize uint64
	alignment uint64

	active  *chunk
	retired []*chunk // submitted, awaiting retirement
	free    []*chunk // reset and ready for reuse
}

// NewStagingAllocator creates a staging allocator that carves allocations out
// of chunkSize-byte host-visible buffers. A chunkSize of 0 uses
// DefaultChunkSize.
func NewStagingAllocator(device hal.Device, chunkSize uint64) *StagingAllocator {
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	return &StagingAllocator{
		device:    device,
		chunkSize: chunkSize,
		alignment: DefaultAlignment,
	}
}

func alignUp(v, align uint64) uint64 {
	return (v + align - 1) &^ (align - 1)
}

// Alloc reserves size bytes of staging memory, creating a new chunk if the
// active one cannot satisfy the request. Requests larger than the chunk size
// get their own dedicated, single-use chunk rather than fragmenting the
// regular pool.
func (a *StagingAllocator) Alloc(size uint64) (*Allocation, error) {
	if size == 0 {
		return nil, ErrZeroSize
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if size > a.chunkSize {
		c, err := a.newChunk(size)
		if err != nil {
			return nil, err
		}
		c.dedicated = true
		c.used = size
		a.retired = append(a.retired, c)
		return &Allocation{Buffer: c.buffer, Offset: 0, Size: size, chunk: c}, nil
	}

	if a.active == nil || alignUp(a.active.used, a.alignment)+size > a.active.size {
		if a.active != nil {
			a.retired = append(a.retired, a.active)
		}
		c, err := a.acquireChunk()
		if err != nil {
			return nil, err
		}
		a.active = c
	}

	offset := alignUp(a.active.used, a.alignment)
	a.active.used = offset + size
	return &Allocation{Buffer: a.active.buffer, Offset: offset, Size: size, chunk: a.active}, nil
}

// acquireChunk pops a reusable chunk off the free list, or allocates a new
// chunkSize-byte one.
func (a *StagingAllocator) acquireChunk() (*chunk, error) {
	if n := len(a.free); n > 0 {
		c := a.free[n-1]
		a.free = a.free[:n-1]
		c.reset()
		return c, nil
	}
	return a.newChunk(a.chunkSize)
}

func (a *StagingAllocator) newChunk(size uint64) (*chunk, error) {
	buf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label:            "staging chunk",
		Size:             size,
		Usage:            gputypes.BufferUsageCopySrc | gputypes.BufferUsageMapWrite,
		MappedAtCreation: true,
	})
	if err != nil {
		return nil, fmt.Errorf("upload: allocate staging chunk: %w", err)
	}
	return &chunk{buffer: buf, size: size}, nil
}

// Write copies data into the region reserved by alloc via the transfer
// queue's mapped-memory write path.
func (a *StagingAllocator) Write(queue hal.Queue, alloc *Allocation, data []byte) {
	queue.WriteBuffer(alloc.Buffer, alloc.Offset, data)
}

// Submit marks every chunk written to since the last Submit as in flight
// under the given timeline value, and starts a fresh active chunk for
// subsequent allocations.
func (a *StagingAllocator) Submit(value uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active != nil {
		a.active.submission = value
		a.retired = append(a.retired, a.active)
		a.active = nil
	}
	for _, c := range a.retired {
		if c.submission == 0 {
			c.submission = value
		}
	}
}

// Retire releases every chunk whose submission has completed (submission <=
// completed) back to the free list, destroying dedicated oversize chunks
// instead of recycling them.
func (a *StagingAllocator) Retire(completed uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	n := 0
	for _, c := range a.retired {
		if c.submission != 0 && c.submission <= completed {
			if c.dedicated {
				c.buffer.Destroy()
			} else {
				c.reset()
				a.free = append(a.free, c)
			}
			continue
		}
		a.retired[n] = c
		n++
	}
	a.retired = a.retired[:n]
}

// Destroy releases every chunk the allocator owns. The caller must ensure no
// submissions referencing these chunks are still in flight.
func (a *StagingAllocator) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.active != nil {
		a.active.buffer.Destroy()
		a.active = nil
	}
	for _, c := range a.retired {
		c.buffer.Destroy()
	}
	a.retired = nil
	for _, c := range a.free {
		c.buffer.Destroy()
	}
	a.free = nil
}
