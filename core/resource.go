package core

import (
	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
)

// Adapter represents a physical GPU.
//
// The legacy ID-based API (adapter.go) only populates Info/Features/Limits/
// Backend. The HAL-based API additionally wires halAdapter/halCapabilities so
// Device creation can open a real GPU device through HasHAL/HALAdapter.
type Adapter struct {
	Info     gputypes.AdapterInfo
	Features gputypes.Features
	Limits   gputypes.Limits
	Backend  gputypes.Backend

	halAdapter      hal.Adapter
	halCapabilities *hal.Capabilities
}

// HasHAL reports whether this adapter is backed by a real HAL adapter,
// as opposed to a mock adapter created when no GPU backend is available.
func (a *Adapter) HasHAL() bool {
	return a.halAdapter != nil
}

// HALAdapter returns the underlying HAL adapter, or nil if this adapter
// has no HAL integration.
func (a *Adapter) HALAdapter() hal.Adapter {
	return a.halAdapter
}

// Capabilities returns the adapter's detailed HAL capabilities, or nil if
// this adapter has no HAL integration.
func (a *Adapter) Capabilities() *hal.Capabilities {
	return a.halCapabilities
}

// Device represents a logical GPU device.
//
// The legacy ID-based API (device.go) only populates Adapter/Label/Features/
// Limits/Queue. The HAL-based API additionally wires snatchLock/raw so
// resources created through Device.CreateBuffer talk to a real HAL device.
type Device struct {
	Adapter  AdapterID
	Label    string
	Features gputypes.Features
	Limits   gputypes.Limits
	Queue    QueueID

	adapter           *Adapter
	associatedQueue   *Queue
	snatchLock        *SnatchLock
	raw               *Snatchable[hal.Device]
	errorScopeManager *ErrorScopeManager
}

// NewDevice wraps an opened HAL device for use through the HAL-based API.
//
// adapter is the adapter the device was opened from. features and limits
// are the features and limits the device was opened with.
func NewDevice(halDevice hal.Device, adapter *Adapter, features gputypes.Features, limits gputypes.Limits, label string) *Device {
	return &Device{
		Label:      label,
		Features:   features,
		Limits:     limits,
		adapter:    adapter,
		snatchLock: NewSnatchLock(),
		raw:        NewSnatchable(halDevice),
	}
}

// HasHAL reports whether this device is backed by a real HAL device.
func (d *Device) HasHAL() bool {
	return d.raw != nil
}

// SnatchLock returns the device's snatch lock, used to guard access to the
// underlying HAL device and the resources created from it.
func (d *Device) SnatchLock() *SnatchLock {
	return d.snatchLock
}

// Raw returns the underlying HAL device, or nil if the device has been
// destroyed or has no HAL integration. The caller must hold a SnatchGuard
// obtained from SnatchLock().
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	halDevice := d.raw.Get(guard)
	if halDevice == nil {
		return nil
	}
	return *halDevice
}

// SetAssociatedQueue records the queue created alongside this device.
func (d *Device) SetAssociatedQueue(queue *Queue) {
	d.associatedQueue = queue
}

// AssociatedQueue returns the queue created alongside this device, or nil
// if none has been set.
func (d *Device) AssociatedQueue() *Queue {
	return d.associatedQueue
}

// checkValid returns an error if the device has no HAL integration or has
// already been destroyed.
func (d *Device) checkValid() error {
	if d.raw == nil || d.raw.IsSnatched() {
		return ErrDeviceDestroyed
	}
	return nil
}

// CreateBuffer creates a GPU buffer through the underlying HAL device.
func (d *Device) CreateBuffer(desc *gputypes.BufferDescriptor) (*Buffer, error) {
	if err := d.checkValid(); err != nil {
		return nil, err
	}

	guard := d.snatchLock.Read()
	defer guard.Release()

	halDevice := d.Raw(guard)
	if halDevice == nil {
		return nil, ErrDeviceDestroyed
	}

	halBuffer, err := halDevice.CreateBuffer(&hal.BufferDescriptor{
		Label:            desc.Label,
		Size:             desc.Size,
		Usage:            desc.Usage,
		MappedAtCreation: desc.MappedAtCreation,
	})
	if err != nil {
		return nil, err
	}

	return &Buffer{
		raw:    NewSnatchable(halBuffer),
		size:   desc.Size,
		usage:  desc.Usage,
		label:  desc.Label,
		device: d,
	}, nil
}

// Destroy releases the HAL device. After calling this, HasHAL returns
// false and Raw returns nil. Safe to call more than once.
func (d *Device) Destroy() {
	if d.raw == nil {
		return
	}

	guard := d.snatchLock.Write()
	halDevice := d.raw.Snatch(guard)
	guard.Release()

	if halDevice != nil {
		(*halDevice).Destroy()
	}
}

// Queue represents a command queue for a device.
type Queue struct {
	Device DeviceID
	Label  string
}

// Buffer represents a GPU buffer.
//
// The legacy ID-based API (device.go) registers placeholder buffers with
// no fields set. The HAL-based API (Device.CreateBuffer) populates raw/
// size/usage/label/device so resources can be destroyed and their HAL
// handle retrieved for command recording.
type Buffer struct {
	raw    *Snatchable[hal.Buffer]
	size   uint64
	usage  gputypes.BufferUsage
	label  string
	device *Device
}

// Size returns the buffer's size in bytes.
func (b *Buffer) Size() uint64 {
	return b.size
}

// Usage returns the buffer's usage flags.
func (b *Buffer) Usage() gputypes.BufferUsage {
	return b.usage
}

// Label returns the buffer's debug label.
func (b *Buffer) Label() string {
	return b.label
}

// HasHAL reports whether this buffer is backed by a real HAL buffer.
func (b *Buffer) HasHAL() bool {
	return b.raw != nil
}

// IsDestroyed reports whether the buffer's HAL resource has been released.
func (b *Buffer) IsDestroyed() bool {
	if b.raw == nil {
		return true
	}
	return b.raw.IsSnatched()
}

// Raw returns the underlying HAL buffer, or nil if the buffer has been
// destroyed or has no HAL integration. The caller must hold a SnatchGuard
// obtained from the owning device's SnatchLock().
func (b *Buffer) Raw(guard *SnatchGuard) hal.Buffer {
	if b.raw == nil {
		return nil
	}
	halBuffer := b.raw.Get(guard)
	if halBuffer == nil {
		return nil
	}
	return *halBuffer
}

// Destroy releases the buffer's HAL resource. Safe to call more than once.
func (b *Buffer) Destroy() {
	if b.raw == nil || b.device == nil {
		return
	}

	writeGuard := b.device.snatchLock.Write()
	halBuffer := b.raw.Snatch(writeGuard)
	writeGuard.Release()

	if halBuffer == nil {
		return
	}

	readGuard := b.device.snatchLock.Read()
	halDevice := b.device.Raw(readGuard)
	readGuard.Release()

	if halDevice != nil {
		halDevice.DestroyBuffer(*halBuffer)
	}
}

// Texture represents a GPU texture.
type Texture struct{}

// TextureView represents a view into a texture.
type TextureView struct{}

// Sampler represents a texture sampler.
type Sampler struct{}

// BindGroupLayout represents the layout of a bind group.
type BindGroupLayout struct{}

// PipelineLayout represents the layout of a pipeline.
type PipelineLayout struct{}

// BindGroup represents a collection of resources bound together.
type BindGroup struct{}

// ShaderModule represents a compiled shader module.
type ShaderModule struct{}

// RenderPipeline represents a render pipeline.
type RenderPipeline struct{}

// ComputePipeline represents a compute pipeline.
type ComputePipeline struct{}

// CommandEncoder represents a command encoder.
type CommandEncoder struct{}

// CommandBuffer represents a recorded command buffer.
type CommandBuffer struct{}

// QuerySet represents a set of queries.
type QuerySet struct{}

// Surface represents a rendering surface.
type Surface struct{}
