package upload

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorhi/rhi/hal"
)

// ImmediateUploader performs synchronous, fence-blocking uploads: each call
// records a copy command, submits it, and waits for GPU completion before
// returning. It exists for call sites that need data resident before the
// next line of code runs (spec §4.E), as opposed to DeferredUploader's
// queue-and-flush-later model (§4.F).
//
// Only one transfer is in flight at a time; concurrent callers serialize on
// mu the same way a single dedicated transfer queue would.
type ImmediateUploader struct {
	mu sync.Mutex

	device  hal.Device
	queue   hal.Queue
	staging *StagingAllocator
	fence   hal.Fence
	value   uint64
}

// NewImmediateUploader creates an uploader that issues its own command
// encoders against device/queue, backed by a dedicated staging allocator.
func NewImmediateUploader(device hal.Device, queue hal.Queue) (*ImmediateUploader, error) {
	fence, err := device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("upload: create immediate uploader fence: %w", err)
	}
	return &ImmediateUploader{
		device:  device,
		queue:   queue,
		staging: NewStagingAllocator(device, DefaultChunkSize),
		fence:   fence,
	}, nil
}

// UploadBuffer copies data into dst starting at dstOffset, blocking until
// the GPU has applied the copy.
func (u *ImmediateUploader) UploadBuffer(dst hal.Buffer, dstOffset uint64, data []byte) error {
	return u.Batch(func(b *Batch) error {
		b.UploadBuffer(dst, dstOffset, data)
		return nil
	})
}

// UploadTexture copies data into a texture region, blocking until the GPU
// has applied the copy.
func (u *ImmediateUploader) UploadTexture(dst hal.Texture, data []byte, layout hal.ImageDataLayout, size hal.Extent3D, mipLevel uint32, origin hal.Origin3D) error {
	return u.Batch(func(b *Batch) error {
		b.UploadTexture(dst, data, layout, size, mipLevel, origin)
		return nil
	})
}

// Batch lets a caller stage several writes into one command buffer and
// submit them together, still blocking until the whole batch completes —
// the spec's "batch mode" for the immediate uploader.
func (u *ImmediateUploader) Batch(fn func(*Batch) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	enc, err := u.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "immediate upload"})
	if err != nil {
		return fmt.Errorf("upload: create command encoder: %w", err)
	}
	if err := enc.BeginEncoding("immediate upload"); err != nil {
		return fmt.Errorf("upload: begin encoding: %w", err)
	}

	b := &Batch{encoder: enc, staging: u.staging, queue: u.queue}
	if err := fn(b); err != nil {
		enc.DiscardEncoding()
		return err
	}

	cmd, err := enc.EndEncoding()
	if err != nil {
		return fmt.Errorf("upload: end encoding: %w", err)
	}

	u.value++
	value := u.value
	if err := u.queue.Submit([]hal.CommandBuffer{cmd}, u.fence, value); err != nil {
		return fmt.Errorf("upload: submit: %w", err)
	}
	u.staging.Submit(value)

	ok, err := u.device.Wait(u.fence, value, 5*time.Second)
	if err != nil {
		return fmt.Errorf("upload: wait: %w", err)
	}
	if !ok {
		return fmt.Errorf("upload: timed out waiting for immediate upload to complete")
	}
	u.staging.Retire(value)
	return nil
}

// Destroy releases the uploader's fence and staging chunks. The caller must
// not have any Batch/UploadBuffer/UploadTexture call in flight.
func (u *ImmediateUploader) Destroy() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.staging.Destroy()
	if u.fence != nil {
		u.device.DestroyFence(u.fence)
		u.fence = nil
	}
}

// Batch accumulates copy commands against one command encoder, staging
// their source data through a StagingAllocator.
type Batch struct {
	encoder hal.CommandEncoder
	staging *StagingAllocator
	queue   hal.Queue
}

// UploadBuffer stages data and records a buffer-to-buffer copy into dst.
func (b *Batch) UploadBuffer(dst hal.Buffer, dstOffset uint64, data []byte) {
	alloc, err := b.staging.Alloc(uint64(len(data)))
	if err != nil {
		return
	}
	b.staging.Write(b.queue, alloc, data)
	b.encoder.CopyBufferToBuffer(alloc.Buffer, dst, []hal.BufferCopy{{
		SrcOffset: alloc.Offset,
		DstOffset: dstOffset,
		Size:      alloc.Size,
	}})
}

// UploadTexture stages data and records a buffer-to-texture copy into dst.
func (b *Batch) UploadTexture(dst hal.Texture, data []byte, layout hal.ImageDataLayout, size hal.Extent3D, mipLevel uint32, origin hal.Origin3D) {
	alloc, err := b.staging.Alloc(uint64(len(data)))
	if err != nil {
		return
	}
	b.staging.Write(b.queue, alloc, data)
	layout.Offset += alloc.Offset
	b.encoder.CopyBufferToTexture(alloc.Buffer, dst, []hal.BufferTextureCopy{{
		BufferLayout: layout,
		TextureBase: hal.ImageCopyTexture{
			Texture:  dst,
			MipLevel: mipLevel,
			Origin:   origin,
		},
		Size: size,
	}})
}
