// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Geometry and region types.

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type Offset2D struct {
	X int32
	Y int32
}

type Offset3D struct {
	X int32
	Y int32
	Z int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type ComponentMapping struct {
	R ComponentSwizzle
	G ComponentSwizzle
	B ComponentSwizzle
	A ComponentSwizzle
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

// ClearValue is a 16-byte union matching VkClearValue; use ClearValueColor /
// ClearValueDepthStencil (const_ext.go) to populate it and GetColorFloat32 /
// GetDepthStencil to read it back.
type ClearValue [4]uint32

// AllocationCallbacks mirrors VkAllocationCallbacks. This package never
// installs custom host allocators; a *AllocationCallbacks is always nil at
// the call sites that accept one, but the type exists so those call sites
// type-check against the real Vulkan signature.
type AllocationCallbacks struct {
	PUserData             uintptr
	PfnAllocation         uintptr
	PfnReallocation       uintptr
	PfnFree               uintptr
	PfnInternalAllocation uintptr
	PfnInternalFree       uintptr
}

// Instance and device creation.

type ApplicationInfo struct {
	SType              StructureType
	PNext              uintptr
	PApplicationName   uintptr
	ApplicationVersion uint32
	PEngineName        uintptr
	EngineVersion      uint32
	ApiVersion         uint32
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   uint32
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities uintptr
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       uintptr
	EnabledLayerCount       uint32
	PpEnabledLayerNames     uintptr
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames uintptr
	PEnabledFeatures        *PhysicalDeviceFeatures
}

// Physical device introspection.

type PhysicalDeviceFeatures struct {
	RobustBufferAccess                     Bool32
	FullDrawIndexUint32                    Bool32
	ImageCubeArray                         Bool32
	IndependentBlend                       Bool32
	GeometryShader                         Bool32
	TessellationShader                     Bool32
	SampleRateShading                      Bool32
	DualSrcBlend                           Bool32
	LogicOp                                Bool32
	MultiDrawIndirect                      Bool32
	DrawIndirectFirstInstance              Bool32
	DepthClamp                             Bool32
	DepthBiasClamp                         Bool32
	FillModeNonSolid                       Bool32
	DepthBounds                            Bool32
	WideLines                              Bool32
	LargePoints                            Bool32
	AlphaToOne                             Bool32
	MultiViewport                          Bool32
	SamplerAnisotropy                      Bool32
	TextureCompressionETC2                 Bool32
	TextureCompressionASTC_LDR             Bool32
	TextureCompressionBC                   Bool32
	OcclusionQueryPrecise                  Bool32
	PipelineStatisticsQuery                Bool32
	VertexPipelineStoresAndAtomics         Bool32
	FragmentStoresAndAtomics               Bool32
	ShaderTessellationAndGeometryPointSize Bool32
	ShaderImageGatherExtended              Bool32
	ShaderStorageImageExtendedFormats      Bool32
	ShaderStorageImageMultisample          Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing Bool32
	ShaderClipDistance                     Bool32
	ShaderCullDistance                     Bool32
	ShaderFloat64                          Bool32
	ShaderInt64                            Bool32
	ShaderInt16                            Bool32
	SparseBinding                          Bool32
	SparseResidencyBuffer                  Bool32
	SparseResidencyImage2D                 Bool32
	SparseResidencyImage3D                 Bool32
	InheritedQueries                       Bool32
}

type PhysicalDeviceLimits struct {
	MaxImageDimension1D                     uint32
	MaxImageDimension2D                     uint32
	MaxImageDimension3D                     uint32
	MaxImageArrayLayers                     uint32
	MaxVertexInputAttributes                uint32
	MaxVertexInputBindings                  uint32
	MaxVertexInputBindingStride             uint32
	MaxFramebufferWidth                     uint32
	MaxFramebufferHeight                    uint32
	MaxColorAttachments                     uint32
	MaxBoundDescriptorSets                  uint32
	MaxPerStageDescriptorSamplers           uint32
	MaxPerStageDescriptorUniformBuffers     uint32
	MaxPerStageDescriptorStorageBuffers     uint32
	MaxPerStageDescriptorSampledImages      uint32
	MaxPerStageDescriptorStorageImages      uint32
	MaxDescriptorSetSamplers                uint32
	MaxDescriptorSetUniformBuffers          uint32
	MaxDescriptorSetStorageBuffers          uint32
	MaxDescriptorSetSampledImages           uint32
	MaxDescriptorSetStorageImages           uint32
	MaxFragmentOutputAttachments            uint32
	MaxComputeSharedMemorySize              uint32
	MaxComputeWorkGroupCount                [3]uint32
	MaxComputeWorkGroupInvocations          uint32
	MaxComputeWorkGroupSize                 [3]uint32
	MaxViewports                            uint32
	MaxPushConstantsSize                    uint32
	MinMemoryMapAlignment                   uint64
	MinUniformBufferOffsetAlignment         uint64
	MinStorageBufferOffsetAlignment         uint64
	MaxTexelBufferElements                  uint32
	MaxUniformBufferRange                   uint32
	MaxStorageBufferRange                   uint32
	OptimalBufferCopyOffsetAlignment        uint64
	OptimalBufferCopyRowPitchAlignment      uint64
	MaxSamplerAnisotropy                    float32
}

type PhysicalDeviceProperties struct {
	ApiVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [256]byte
	PipelineCacheUUID [16]byte
	Limits            PhysicalDeviceLimits
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

// Memory, buffers and images.

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           uintptr
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

type MappedMemoryRange struct {
	SType  StructureType
	PNext  uintptr
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}

type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 uint32
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   uintptr
}

type BufferViewCreateInfo struct {
	SType  StructureType
	PNext  uintptr
	Flags  uint32
	Buffer Buffer
	Format Format
	Offset DeviceSize
	Range  DeviceSize
}

type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 uint32
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlagBits
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   uintptr
	InitialLayout         ImageLayout
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            uint32
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   uint32
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             uint32
	UnnormalizedCoordinates Bool32
}

// Copies, barriers.

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type MemoryBarrier struct {
	SType         StructureType
	PNext         uintptr
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               uintptr
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

// Synchronization primitives.

type FenceCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          uintptr
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    uintptr
	PValues        uintptr
}

type EventCreateInfo struct {
	SType StructureType
	PNext uintptr
	Flags uint32
}

// Queries.

type QueryPoolCreateInfo struct {
	SType              StructureType
	PNext              uintptr
	Flags              uint32
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics uint32
}

// Commands and submission.

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferInheritanceInfo struct {
	SType                StructureType
	PNext                uintptr
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           uint32
	PipelineStatistics   uint32
}

type CommandBufferBeginInfo struct {
	SType            StructureType
	PNext            uintptr
	Flags            CommandBufferUsageFlags
	PInheritanceInfo *CommandBufferInheritanceInfo
}

type SubmitInfo struct {
	SType                StructureType
	PNext                uintptr
	WaitSemaphoreCount   uint32
	PWaitSemaphores      uintptr
	PWaitDstStageMask    uintptr
	CommandBufferCount   uint32
	PCommandBuffers      uintptr
	SignalSemaphoreCount uint32
	PSignalSemaphores    uintptr
}

// Descriptors.

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers uintptr
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        uintptr
	Flags        uint32
	BindingCount uint32
	PBindings    uintptr
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    uintptr
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              uintptr
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        uintptr
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type WriteDescriptorSet struct {
	SType            StructureType
	PNext            uintptr
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       uintptr
	PBufferInfo      uintptr
	PTexelBufferView uintptr
}

type CopyDescriptorSet struct {
	SType           StructureType
	PNext           uintptr
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

// Render passes and framebuffers.

type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       uintptr
	ColorAttachmentCount    uint32
	PColorAttachments       uintptr
	PResolveAttachments     uintptr
	PDepthStencilAttachment uintptr
	PreserveAttachmentCount uint32
	PPreserveAttachments    uintptr
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	AttachmentCount uint32
	PAttachments    uintptr
	SubpassCount    uint32
	PSubpasses      uintptr
	DependencyCount uint32
	PDependencies   uintptr
}

type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    uintptr
	Width           uint32
	Height          uint32
	Layers          uint32
}

// Dynamic rendering (VK_KHR_dynamic_rendering / Vulkan 1.3).

type RenderingAttachmentInfo struct {
	SType              StructureType
	PNext              uintptr
	ImageView          ImageView
	ImageLayout        ImageLayout
	ResolveMode        ResolveModeFlagBits
	ResolveImageView   ImageView
	ResolveImageLayout ImageLayout
	LoadOp             AttachmentLoadOp
	StoreOp            AttachmentStoreOp
	ClearValue         ClearValue
}

type RenderingInfo struct {
	SType                StructureType
	PNext                uintptr
	Flags                uint32
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    uintptr
	PDepthAttachment     *RenderingAttachmentInfo
	PStencilAttachment   *RenderingAttachmentInfo
}

type PipelineRenderingCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	ViewMask                uint32
	ColorAttachmentCount    uint32
	PColorAttachmentFormats uintptr
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
}

// Shaders and pipelines.

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    uintptr
	Flags    uint32
	CodeSize uintptr
	PCode    uintptr
}

type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Flags               uint32
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               uintptr
	PSpecializationInfo uintptr
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           uintptr
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      uintptr
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    uintptr
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Flags                  uint32
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         uintptr
	Flags         uint32
	ViewportCount uint32
	PViewports    uintptr
	ScissorCount  uint32
	PScissors     uintptr
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   uintptr
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 uint32
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           uintptr
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	LogicOpEnable   Bool32
	LogicOp         uint32
	AttachmentCount uint32
	PAttachments    uintptr
	BlendConstants  [4]float32
}

type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             uintptr
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    uintptr
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  uintptr
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            uintptr
	PushConstantRangeCount uint32
	PPushConstantRanges    uintptr
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineCacheCreateInfo struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	InitialDataSize uintptr
	PInitialData    uintptr
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               uintptr
	Flags               uint32
	StageCount          uint32
	PStages             uintptr
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  uintptr
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              uintptr
	Flags              uint32
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

// WSI: surfaces, swapchains, presentation.

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 uintptr
	Flags                 uint32
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   uintptr
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

type PresentInfoKHR struct {
	SType              StructureType
	PNext              uintptr
	WaitSemaphoreCount uint32
	PWaitSemaphores    uintptr
	SwapchainCount     uint32
	PSwapchains        uintptr
	PImageIndices      uintptr
	PResults           uintptr
}

type Win32SurfaceCreateInfoKHR struct {
	SType     StructureType
	PNext     uintptr
	Flags     uint32
	Hinstance uintptr
	Hwnd      uintptr
}

type WaylandSurfaceCreateInfoKHR struct {
	SType   StructureType
	PNext   uintptr
	Flags   uint32
	Display uintptr
	Surface uintptr
}

type XlibSurfaceCreateInfoKHR struct {
	SType  StructureType
	PNext  uintptr
	Flags  uint32
	Dpy    uintptr
	Window XlibWindow
}

type MetalSurfaceCreateInfoEXT struct {
	SType  StructureType
	PNext  uintptr
	Flags  uint32
	PLayer CAMetalLayer
}

// Debug utils.

type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        uintptr
	ObjectType   ObjectType
	ObjectHandle uint64
	PObjectName  uintptr
}

type DebugUtilsMessengerCallbackDataEXT struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	PMessageIdName  uintptr
	MessageIdNumber int32
	PMessage        uintptr
	QueueLabelCount uint32
	PQueueLabels    uintptr
	CmdBufLabelCount uint32
	PCmdBufLabels   uintptr
	ObjectCount     uint32
	PObjects        uintptr
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           uintptr
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	PUserData       uintptr
}
