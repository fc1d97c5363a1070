package upload

import (
	"fmt"
	"sync"

	"github.com/gorhi/rhi/hal"
	rsync "github.com/gorhi/rhi/rhi/sync"
)

// DeferredUpload is a queued buffer write waiting for the next flush.
type DeferredUpload struct {
	Dst       hal.Buffer
	DstOffset uint64
	Data      []byte
}

// DeferredTextureUpload is a queued texture write waiting for the next
// flush.
type DeferredTextureUpload struct {
	Dst      hal.Texture
	Data     []byte
	Layout   hal.ImageDataLayout
	Size     hal.Extent3D
	MipLevel uint32
	Origin   hal.Origin3D
}

// DeferredUploader accumulates writes across a frame (or any caller-defined
// window) and submits them as one batch on Flush, returning the timeline
// value that reaching it proves the uploads landed (spec §4.F). Unlike
// ImmediateUploader, Flush does not block — callers wait on the returned
// Timeline only when they actually need the data visible.
type DeferredUploader struct {
	mu sync.Mutex

	device  hal.Device
	queue   *rsync.CommandQueue
	staging *StagingAllocator

	buffers  []DeferredUpload
	textures []DeferredTextureUpload
}

// NewDeferredUploader creates an uploader that flushes through queue, a
// rhi/sync.CommandQueue providing the timeline this package's Submit/Retire
// calls are keyed on.
func NewDeferredUploader(device hal.Device, queue *rsync.CommandQueue) *DeferredUploader {
	return &DeferredUploader{
		device:  device,
		queue:   queue,
		staging: NewStagingAllocator(device, DefaultChunkSize),
	}
}

// UploadBuffer queues a buffer write for the next Flush.
func (u *DeferredUploader) UploadBuffer(dst hal.Buffer, dstOffset uint64, data []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.buffers = append(u.buffers, DeferredUpload{Dst: dst, DstOffset: dstOffset, Data: data})
}

// UploadTexture queues a texture write for the next Flush.
func (u *DeferredUploader) UploadTexture(upload DeferredTextureUpload) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.textures = append(u.textures, upload)
}

// Pending reports how many writes are queued and not yet flushed.
func (u *DeferredUploader) Pending() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.buffers) + len(u.textures)
}

// Flush records every queued write into one command buffer, submits it on
// the uploader's queue, and returns the resulting timeline. The staging
// chunks backing this flush are retired once the caller reports completion
// via Retire. An empty queue is a no-op that returns the zero Timeline.
func (u *DeferredUploader) Flush() (rsync.Timeline, error) {
	u.mu.Lock()
	buffers := u.buffers
	textures := u.textures
	u.buffers = nil
	u.textures = nil
	u.mu.Unlock()

	if len(buffers) == 0 && len(textures) == 0 {
		return rsync.Timeline{}, nil
	}

	enc, err := u.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "deferred upload"})
	if err != nil {
		return rsync.Timeline{}, fmt.Errorf("upload: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding("deferred upload"); err != nil {
		return rsync.Timeline{}, fmt.Errorf("upload: begin encoding: %w", err)
	}

	rawQueue := u.queue.Raw()
	b := &Batch{encoder: enc, staging: u.staging, queue: rawQueue}
	for _, w := range buffers {
		b.UploadBuffer(w.Dst, w.DstOffset, w.Data)
	}
	for _, w := range textures {
		b.UploadTexture(w.Dst, w.Data, w.Layout, w.Size, w.MipLevel, w.Origin)
	}

	cmd, err := enc.EndEncoding()
	if err != nil {
		return rsync.Timeline{}, fmt.Errorf("upload: end encoding: %w", err)
	}

	tl, err := u.queue.Submit(rsync.SubmitInfo{CommandBuffers: []hal.CommandBuffer{cmd}})
	if err != nil {
		return rsync.Timeline{}, fmt.Errorf("upload: submit: %w", err)
	}
	u.staging.Submit(tl.Value)
	return tl, nil
}

// Retire releases staging chunks for every flush whose timeline value has
// completed. Callers typically call this once per frame with
// queue.Completed().
func (u *DeferredUploader) Retire(completed uint64) {
	u.staging.Retire(completed)
}

// Destroy releases the uploader's staging chunks. The caller must have
// waited for every flushed timeline to complete first.
func (u *DeferredUploader) Destroy() {
	u.staging.Destroy()
}
