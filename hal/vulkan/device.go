// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"errors"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
	"github.com/gorhi/rhi/hal/vulkan/memory"
	"github.com/gorhi/rhi/hal/vulkan/vk"
)

// Device implements hal.Device for Vulkan.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // Primary command pool for encoder allocation
	timeline       *deviceFence   // Submission synchronization; timeline semaphore or fence pool fallback.
	descAllocator  *DescriptorAllocator
}

// initDescriptorAllocator lazily creates the device's descriptor set
// allocator, shared by every CreateBindGroup call.
func (d *Device) initDescriptorAllocator() {
	d.descAllocator = NewDescriptorAllocator(d.handle, d.cmds, DefaultDescriptorAllocatorConfig())
}

// initTimeline picks the device's submission synchronization strategy: a
// VK_KHR_timeline_semaphore if the driver exposes one, otherwise the binary
// fencePool fallback. Called once, right after device creation.
func (d *Device) initTimeline() {
	if fence, err := initTimelineFence(d.cmds, d.handle); err == nil {
		d.timeline = fence
		return
	}
	d.timeline = initBinaryFence()
}

// initAllocator initializes the memory allocator for this device.
func (d *Device) initAllocator() error {
	// Get physical device memory properties
	var vkProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(&d.instance.cmds, d.physicalDevice, &vkProps)

	// Convert to our format
	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}

	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}

	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	// Create allocator with default config
	allocator, err := memory.NewGpuAllocator(d.handle, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to create memory allocator: %w", err)
	}

	d.allocator = allocator

	// Set device commands for memory operations
	vk.SetDeviceCommands(d.cmds)

	return nil
}

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	// Convert usage flags
	vkUsage := bufferUsageToVk(desc.Usage)

	// Create VkBuffer (without memory)
	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       vkUsage,
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	result := vk.CreateBuffer(d.handle, &createInfo, nil, &buffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateBuffer failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(d.handle, buffer, &memReqs)

	// Determine usage flags for memory allocation
	memUsage := memory.UsageFastDeviceAccess
	if desc.Usage&(gputypes.BufferUsageMapRead|gputypes.BufferUsageMapWrite) != 0 {
		memUsage = memory.UsageHostAccess
		if desc.Usage&gputypes.BufferUsageMapRead != 0 {
			memUsage |= memory.UsageDownload
		}
		if desc.Usage&gputypes.BufferUsageMapWrite != 0 {
			memUsage |= memory.UsageUpload
		}
	}
	if desc.MappedAtCreation {
		// A buffer requested pre-mapped needs host-visible memory even if
		// its steady-state usage is GPU-only (e.g. a vertex buffer whose
		// initial contents are written once at creation time).
		memUsage |= memory.UsageHostAccess | memory.UsageUpload
	}

	// Allocate memory
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memUsage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate buffer memory: %w", err)
	}

	// Bind memory to buffer
	result = vk.BindBufferMemory(d.handle, buffer, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: vkBindBufferMemory failed: %d", result)
	}

	return &Buffer{
		handle: buffer,
		memory: memBlock,
		size:   desc.Size,
		usage:  desc.Usage,
		device: d,
	}, nil
}

// DestroyBuffer destroys a GPU buffer.
func (d *Device) DestroyBuffer(buffer hal.Buffer) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer == nil {
		return
	}

	if vkBuffer.handle != 0 {
		vk.DestroyBuffer(d.handle, vkBuffer.handle, nil)
		vkBuffer.handle = 0
	}

	if vkBuffer.memory != nil {
		_ = d.allocator.Free(vkBuffer.memory)
		vkBuffer.memory = nil
	}

	vkBuffer.device = nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: texture descriptor is nil")
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("vulkan: texture size must be > 0")
	}

	// Convert parameters
	vkFormat := textureFormatToVk(desc.Format)
	vkUsage := textureUsageToVk(desc.Usage)
	imageType := textureDimensionToVkImageType(desc.Dimension)

	// Determine depth/array layers
	depth := desc.Size.DepthOrArrayLayers
	if depth == 0 {
		depth = 1
	}
	mipLevels := desc.MipLevelCount
	if mipLevels == 0 {
		mipLevels = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}

	// Create VkImage (without memory)
	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		ImageType: imageType,
		Format:    vkFormat,
		Extent: vk.Extent3D{
			Width:  desc.Size.Width,
			Height: desc.Size.Height,
			Depth:  depth,
		},
		MipLevels:     mipLevels,
		ArrayLayers:   1, // TODO: Support array textures
		Samples:       vk.SampleCountFlagBits(samples),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         vkUsage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	result := vk.CreateImage(d.handle, &createInfo, nil, &image)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImage failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(d.handle, image, &memReqs)

	// Allocate memory (textures always use device-local)
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate texture memory: %w", err)
	}

	// Bind memory to image
	result = vk.BindImageMemory(d.handle, image, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: vkBindImageMemory failed: %d", result)
	}

	return &Texture{
		handle:    image,
		memory:    memBlock,
		size:      Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, Depth: depth},
		format:    desc.Format,
		usage:     desc.Usage,
		mipLevels: mipLevels,
		samples:   samples,
		dimension: desc.Dimension,
		device:    d,
	}, nil
}

// DestroyTexture destroys a GPU texture.
func (d *Device) DestroyTexture(texture hal.Texture) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return
	}

	if vkTexture.handle != 0 && !vkTexture.isExternal {
		vk.DestroyImage(d.handle, vkTexture.handle, nil)
		vkTexture.handle = 0
	}

	if vkTexture.memory != nil {
		_ = d.allocator.Free(vkTexture.memory)
		vkTexture.memory = nil
	}

	vkTexture.device = nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return nil, fmt.Errorf("vulkan: invalid texture")
	}
	if desc == nil {
		desc = &hal.TextureViewDescriptor{}
	}

	format := desc.Format
	if format == 0 {
		format = vkTexture.format
	}

	viewType := textureDimensionToViewType(vkTexture.dimension)
	if desc.Dimension != 0 {
		viewType = textureViewDimensionToVk(desc.Dimension)
	}

	levelCount := desc.MipLevelCount
	if levelCount == 0 {
		levelCount = vkTexture.mipLevels - desc.BaseMipLevel
	}
	layerCount := desc.ArrayLayerCount
	if layerCount == 0 {
		layerCount = 1
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    vkTexture.handle,
		ViewType: viewType,
		Format:   textureFormatToVk(format),
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     textureAspectToVk(desc.Aspect, format),
			BaseMipLevel:   desc.BaseMipLevel,
			LevelCount:     levelCount,
			BaseArrayLayer: desc.BaseArrayLayer,
			LayerCount:     layerCount,
		},
	}

	var view vk.ImageView
	result := vkCreateImageView(d.cmds, d.handle, &createInfo, nil, &view)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImageView failed: %d", result)
	}

	return &TextureView{
		handle:  view,
		texture: vkTexture,
		device:  d,
	}, nil
}

// DestroyTextureView destroys a texture view.
func (d *Device) DestroyTextureView(view hal.TextureView) {
	vkView, ok := view.(*TextureView)
	if !ok || vkView == nil {
		return
	}
	if vkView.handle != 0 {
		vkDestroyImageView(d.cmds, d.handle, vkView.handle, nil)
		vkView.handle = 0
	}
	vkView.device = nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	if desc == nil {
		desc = &hal.SamplerDescriptor{}
	}

	maxLod := desc.LodMaxClamp
	if maxLod == 0 {
		maxLod = 1000 // No mip levels realistically exceed this ceiling.
	}

	anisotropyEnable := vk.Bool32(vk.False)
	maxAnisotropy := float32(1)
	if desc.Anisotropy > 1 {
		anisotropyEnable = vk.Bool32(vk.True)
		maxAnisotropy = float32(desc.Anisotropy)
	}

	compareEnable := vk.Bool32(vk.False)
	if desc.Compare != 0 {
		compareEnable = vk.Bool32(vk.True)
	}

	createInfo := vk.SamplerCreateInfo{
		SType:            vk.StructureTypeSamplerCreateInfo,
		MagFilter:        filterModeToVk(desc.MagFilter),
		MinFilter:        filterModeToVk(desc.MinFilter),
		MipmapMode:       mipmapFilterModeToVk(desc.MipmapFilter),
		AddressModeU:     addressModeToVk(desc.AddressModeU),
		AddressModeV:     addressModeToVk(desc.AddressModeV),
		AddressModeW:     addressModeToVk(desc.AddressModeW),
		AnisotropyEnable: anisotropyEnable,
		MaxAnisotropy:    maxAnisotropy,
		CompareEnable:    compareEnable,
		CompareOp:        compareFunctionToVk(desc.Compare),
		MinLod:           desc.LodMinClamp,
		MaxLod:           maxLod,
	}

	var sampler vk.Sampler
	result := vkCreateSampler(d.cmds, d.handle, &createInfo, nil, &sampler)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSampler failed: %d", result)
	}

	return &Sampler{handle: sampler, device: d}, nil
}

// DestroySampler destroys a sampler.
func (d *Device) DestroySampler(sampler hal.Sampler) {
	vkSampler, ok := sampler.(*Sampler)
	if !ok || vkSampler == nil {
		return
	}
	if vkSampler.handle != 0 {
		vkDestroySampler(d.cmds, d.handle, vkSampler.handle, nil)
		vkSampler.handle = 0
	}
	vkSampler.device = nil
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	if desc == nil {
		desc = &hal.BindGroupLayoutDescriptor{}
	}

	bindings := make([]vk.DescriptorSetLayoutBinding, len(desc.Entries))
	var counts DescriptorCounts
	for i, e := range desc.Entries {
		descType := bindGroupLayoutEntryToVk(e)
		bindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         e.Binding,
			DescriptorType:  descType,
			DescriptorCount: 1,
			StageFlags:      shaderStagesToVk(e.Visibility),
		}
		counts.addOne(descType)
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		createInfo.PBindings = uintptr(unsafe.Pointer(&bindings[0]))
	}

	var layout vk.DescriptorSetLayout
	result := vkCreateDescriptorSetLayout(d.cmds, d.handle, &createInfo, nil, &layout)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout failed: %d", result)
	}

	return &BindGroupLayout{
		handle:  layout,
		counts:  counts,
		entries: append([]gputypes.BindGroupLayoutEntry(nil), desc.Entries...),
		device:  d,
	}, nil
}

// DestroyBindGroupLayout destroys a bind group layout.
func (d *Device) DestroyBindGroupLayout(layout hal.BindGroupLayout) {
	vkLayout, ok := layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return
	}
	if vkLayout.handle != 0 {
		vkDestroyDescriptorSetLayout(d.cmds, d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateBindGroup creates a bind group.
func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group descriptor is nil")
	}
	vkLayout, ok := desc.Layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return nil, fmt.Errorf("vulkan: invalid bind group layout")
	}

	if d.descAllocator == nil {
		d.initDescriptorAllocator()
	}

	set, pool, err := d.descAllocator.Allocate(vkLayout.handle, vkLayout.counts)
	if err != nil {
		return nil, fmt.Errorf("vulkan: failed to allocate descriptor set: %w", err)
	}

	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(desc.Entries))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(desc.Entries))
	writes := make([]vk.WriteDescriptorSet, 0, len(desc.Entries))

	for _, entry := range desc.Entries {
		layoutEntry, found := vkLayout.entryAt(entry.Binding)
		if !found {
			continue
		}
		descType := bindGroupLayoutEntryToVk(layoutEntry)

		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set,
			DstBinding:      entry.Binding,
			DescriptorCount: 1,
			DescriptorType:  descType,
		}

		switch res := entry.Resource.(type) {
		case gputypes.BufferBinding:
			byteRange := vk.DeviceSize(res.Size)
			if res.Size == 0 {
				byteRange = vk.WholeSize
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{
				Buffer: vk.Buffer(res.Buffer),
				Offset: vk.DeviceSize(res.Offset),
				Range:  byteRange,
			})
			write.PBufferInfo = uintptr(unsafe.Pointer(&bufferInfos[len(bufferInfos)-1]))
		case gputypes.SamplerBinding:
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				Sampler: vk.Sampler(res.Sampler),
			})
			write.PImageInfo = uintptr(unsafe.Pointer(&imageInfos[len(imageInfos)-1]))
		case gputypes.TextureViewBinding:
			imageLayout := vk.ImageLayoutShaderReadOnlyOptimal
			if descType == vk.DescriptorTypeStorageImage {
				imageLayout = vk.ImageLayoutGeneral
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				ImageView:   vk.ImageView(res.TextureView),
				ImageLayout: imageLayout,
			})
			write.PImageInfo = uintptr(unsafe.Pointer(&imageInfos[len(imageInfos)-1]))
		default:
			continue
		}

		writes = append(writes, write)
	}

	if len(writes) > 0 {
		d.cmds.UpdateDescriptorSets(d.handle, uint32(len(writes)), &writes[0], 0, nil)
	}

	return &BindGroup{
		handle: set,
		pool:   pool,
		device: d,
	}, nil
}

// DestroyBindGroup destroys a bind group.
func (d *Device) DestroyBindGroup(group hal.BindGroup) {
	vkGroup, ok := group.(*BindGroup)
	if !ok || vkGroup == nil {
		return
	}
	if vkGroup.pool != nil && vkGroup.handle != 0 && d.descAllocator != nil {
		_ = d.descAllocator.Free(vkGroup.pool, vkGroup.handle)
	}
	vkGroup.handle = 0
	vkGroup.device = nil
}

// CreatePipelineLayout creates a pipeline layout.
func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	if desc == nil {
		desc = &hal.PipelineLayoutDescriptor{}
	}

	setLayouts := make([]vk.DescriptorSetLayout, len(desc.BindGroupLayouts))
	for i, l := range desc.BindGroupLayouts {
		vkLayout, ok := l.(*BindGroupLayout)
		if !ok || vkLayout == nil {
			return nil, fmt.Errorf("vulkan: invalid bind group layout at index %d", i)
		}
		setLayouts[i] = vkLayout.handle
	}

	pushRanges := make([]vk.PushConstantRange, len(desc.PushConstantRanges))
	for i, r := range desc.PushConstantRanges {
		pushRanges[i] = vk.PushConstantRange{
			StageFlags: shaderStagesToVk(r.Stages),
			Offset:     r.Range.Start,
			Size:       r.Range.End - r.Range.Start,
		}
	}

	createInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(setLayouts)),
		PushConstantRangeCount: uint32(len(pushRanges)),
	}
	if len(setLayouts) > 0 {
		createInfo.PSetLayouts = uintptr(unsafe.Pointer(&setLayouts[0]))
	}
	if len(pushRanges) > 0 {
		createInfo.PPushConstantRanges = uintptr(unsafe.Pointer(&pushRanges[0]))
	}

	var layout vk.PipelineLayout
	result := vkCreatePipelineLayout(d.cmds, d.handle, &createInfo, nil, &layout)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreatePipelineLayout failed: %d", result)
	}

	return &PipelineLayout{handle: layout, device: d}, nil
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout hal.PipelineLayout) {
	vkLayout, ok := layout.(*PipelineLayout)
	if !ok || vkLayout == nil {
		return
	}
	if vkLayout.handle != 0 {
		vkDestroyPipelineLayout(d.cmds, d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateShaderModule creates a shader module from SPIR-V bytecode. WGSL
// source is not accepted here; frontends that accept WGSL must compile it
// to SPIR-V before reaching the Vulkan backend.
func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: shader module descriptor is nil")
	}
	spirv := desc.Source.SPIRV
	if len(spirv) == 0 {
		return nil, fmt.Errorf("vulkan: shader module requires SPIR-V bytecode")
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(spirv)) * 4,
		PCode:    uintptr(unsafe.Pointer(&spirv[0])),
	}

	var module vk.ShaderModule
	result := vkCreateShaderModule(d.cmds, d.handle, &createInfo, nil, &module)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateShaderModule failed: %d", result)
	}

	return &ShaderModule{handle: module, device: d}, nil
}

// DestroyShaderModule destroys a shader module.
func (d *Device) DestroyShaderModule(module hal.ShaderModule) {
	vkModule, ok := module.(*ShaderModule)
	if !ok || vkModule == nil {
		return
	}
	if vkModule.handle != 0 {
		vkDestroyShaderModule(d.cmds, d.handle, vkModule.handle, nil)
		vkModule.handle = 0
	}
	vkModule.device = nil
}

// CreateRenderPipeline, DestroyRenderPipeline, CreateComputePipeline and
// DestroyComputePipeline are implemented in pipeline.go.

// CreateCommandEncoder creates a command encoder.
func (d *Device) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	// Ensure command pool exists
	if d.commandPool == 0 {
		if err := d.initCommandPool(); err != nil {
			return nil, err
		}
	}

	// Allocate command buffer
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}

	var cmdBuffer vk.CommandBuffer
	result := vkAllocateCommandBuffers(d.cmds, d.handle, &allocInfo, &cmdBuffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", result)
	}

	pool := &CommandPool{
		handle: d.commandPool,
		device: d,
	}

	return &CommandEncoder{
		device:    d,
		pool:      pool,
		cmdBuffer: cmdBuffer,
		label:     desc.Label,
	}, nil
}

// initCommandPool initializes the device command pool.
func (d *Device) initCommandPool() error {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	result := vkCreateCommandPool(d.cmds, d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", result)
	}

	d.commandPool = pool
	return nil
}

// CreateFence creates a handle onto the device's submission timeline. The
// device has exactly one timeline (a semaphore or, as fallback, a fence
// pool); CreateFence hands out a reference to it rather than a fresh
// independent primitive, matching how Queue.Submit's fenceValue addresses
// a point on that single timeline.
func (d *Device) CreateFence() (hal.Fence, error) {
	if d.timeline == nil {
		d.initTimeline()
	}
	return &Fence{device: d}, nil
}

// DestroyFence releases a fence handle. The underlying timeline is owned by
// the device and torn down in Destroy, so this just unlinks the handle.
func (d *Device) DestroyFence(fence hal.Fence) {
	if f, ok := fence.(*Fence); ok {
		f.device = nil
	}
}

// Wait blocks until the device's timeline reaches the specified value, or
// until timeout elapses. Returns true if the value was reached.
func (d *Device) Wait(fence hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	if d.timeline == nil {
		return false, fmt.Errorf("vulkan: device timeline not initialized")
	}
	err := d.timeline.waitForValue(d.cmds, d.handle, value, uint64(timeout.Nanoseconds()))
	if errors.Is(err, errWaitTimeout) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// WaitIdle blocks until all queues on this device have completed their
// submitted work.
func (d *Device) WaitIdle() error {
	result := vkDeviceWaitIdle(d)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkDeviceWaitIdle failed: %d", result)
	}
	return nil
}

// Destroy releases the device.
func (d *Device) Destroy() {
	if d.commandPool != 0 {
		vkDestroyCommandPool(d.cmds, d.handle, d.commandPool, nil)
		d.commandPool = 0
	}

	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}

	if d.descAllocator != nil {
		d.descAllocator.Destroy()
		d.descAllocator = nil
	}

	if d.timeline != nil {
		d.timeline.destroy(d.cmds, d.handle)
		d.timeline = nil
	}

	if d.handle != 0 {
		vkDestroyDevice(d.handle, nil)
		d.handle = 0
	}
}

// Vulkan function wrapper

func vkDestroyDevice(device vk.Device, allocator unsafe.Pointer) {
	proc := uintptr(vk.GetInstanceProcAddr(0, "vkDestroyDevice"))
	if proc == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(proc,
		uintptr(device),
		uintptr(allocator))
}

func vkCreateCommandPool(cmds *vk.Commands, device vk.Device, createInfo *vk.CommandPoolCreateInfo, allocator unsafe.Pointer, pool *vk.CommandPool) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateCommandPool(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(pool)))
	return vk.Result(ret)
}

func vkDestroyCommandPool(cmds *vk.Commands, device vk.Device, pool vk.CommandPool, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyCommandPool(),
		uintptr(device),
		uintptr(pool),
		uintptr(allocator))
}

func vkAllocateCommandBuffers(cmds *vk.Commands, device vk.Device, allocInfo *vk.CommandBufferAllocateInfo, cmdBuffers *vk.CommandBuffer) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.AllocateCommandBuffers(),
		uintptr(device),
		uintptr(unsafe.Pointer(allocInfo)),
		uintptr(unsafe.Pointer(cmdBuffers)))
	return vk.Result(ret)
}

func vkCreateImageView(cmds *vk.Commands, device vk.Device, createInfo *vk.ImageViewCreateInfo, allocator unsafe.Pointer, view *vk.ImageView) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateImageView(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(view)))
	return vk.Result(ret)
}

func vkDestroyImageView(cmds *vk.Commands, device vk.Device, view vk.ImageView, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyImageView(),
		uintptr(device),
		uintptr(view),
		uintptr(allocator))
}

func vkCreateSampler(cmds *vk.Commands, device vk.Device, createInfo *vk.SamplerCreateInfo, allocator unsafe.Pointer, sampler *vk.Sampler) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateSampler(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(sampler)))
	return vk.Result(ret)
}

func vkDestroySampler(cmds *vk.Commands, device vk.Device, sampler vk.Sampler, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroySampler(),
		uintptr(device),
		uintptr(sampler),
		uintptr(allocator))
}

func vkCreateDescriptorSetLayout(cmds *vk.Commands, device vk.Device, createInfo *vk.DescriptorSetLayoutCreateInfo, allocator unsafe.Pointer, layout *vk.DescriptorSetLayout) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateDescriptorSetLayout(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(layout)))
	return vk.Result(ret)
}

func vkDestroyDescriptorSetLayout(cmds *vk.Commands, device vk.Device, layout vk.DescriptorSetLayout, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyDescriptorSetLayout(),
		uintptr(device),
		uintptr(layout),
		uintptr(allocator))
}

func vkCreatePipelineLayout(cmds *vk.Commands, device vk.Device, createInfo *vk.PipelineLayoutCreateInfo, allocator unsafe.Pointer, layout *vk.PipelineLayout) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreatePipelineLayout(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(layout)))
	return vk.Result(ret)
}

func vkDestroyPipelineLayout(cmds *vk.Commands, device vk.Device, layout vk.PipelineLayout, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyPipelineLayout(),
		uintptr(device),
		uintptr(layout),
		uintptr(allocator))
}

func vkCreateShaderModule(cmds *vk.Commands, device vk.Device, createInfo *vk.ShaderModuleCreateInfo, allocator unsafe.Pointer, module *vk.ShaderModule) vk.Result {
	ret, _, _ := syscall.SyscallN(cmds.CreateShaderModule(),
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		uintptr(allocator),
		uintptr(unsafe.Pointer(module)))
	return vk.Result(ret)
}

func vkDestroyShaderModule(cmds *vk.Commands, device vk.Device, module vk.ShaderModule, allocator unsafe.Pointer) {
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(cmds.DestroyShaderModule(),
		uintptr(device),
		uintptr(module),
		uintptr(allocator))
}
