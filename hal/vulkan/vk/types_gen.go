// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Dispatchable and non-dispatchable handles. Vulkan defines dispatchable
// handles as opaque pointers and non-dispatchable handles as opaque
// 64-bit integers on most platforms; both are represented here as uintptr
// since every use in this package is either a syscall.SyscallN argument or
// a pointer-sized resource name.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr

	Buffer               uintptr
	BufferView           uintptr
	Image                uintptr
	ImageView            uintptr
	ShaderModule         uintptr
	Pipeline             uintptr
	PipelineLayout       uintptr
	PipelineCache        uintptr
	RenderPass           uintptr
	Framebuffer          uintptr
	DescriptorSetLayout  uintptr
	DescriptorPool       uintptr
	DescriptorSet        uintptr
	Sampler              uintptr
	DeviceMemory         uintptr
	Fence                uintptr
	Semaphore            uintptr
	Event                uintptr
	QueryPool            uintptr
	CommandPool          uintptr
	SurfaceKHR           uintptr
	SwapchainKHR         uintptr
	DebugUtilsMessengerEXT uintptr
)

// Scalar aliases matching the Vulkan ABI.
type (
	Bool32     uint32
	DeviceSize uint64
	SampleMask uint32
	Result     int32
)

const (
	False Bool32 = 0
	True  Bool32 = 1
)

const WholeSize DeviceSize = ^DeviceSize(0)

const (
	RemainingMipLevels   uint32 = ^uint32(0)
	RemainingArrayLayers uint32 = ^uint32(0)
	QueueFamilyIgnored   uint32 = ^uint32(0)
	AttachmentUnused     uint32 = ^uint32(0)
	SubpassExternal      uint32 = ^uint32(0)
)

// Timeout is the sentinel passed to wait calls to block indefinitely.
const Timeout uint64 = ^uint64(0)

// Result codes. Values match the Vulkan registry so callers can format them
// directly against the spec when debugging a driver failure.
const (
	Success                     Result = 0
	NotReady                    Result = 1
	Timeout_                    Result = 2 // VK_TIMEOUT; Timeout above already names the uint64 sentinel
	EventSet                    Result = 3
	EventReset                  Result = 4
	Incomplete                  Result = 5
	ErrorOutOfHostMemory        Result = -1
	ErrorOutOfDeviceMemory      Result = -2
	ErrorInitializationFailed   Result = -3
	ErrorDeviceLost             Result = -4
	ErrorMemoryMapFailed        Result = -5
	ErrorLayerNotPresent        Result = -6
	ErrorExtensionNotPresent    Result = -7
	ErrorFeatureNotPresent      Result = -8
	ErrorIncompatibleDriver     Result = -9
	ErrorTooManyObjects         Result = -10
	ErrorFormatNotSupported     Result = -11
	ErrorFragmentedPool         Result = -12
	ErrorUnknown                Result = -13
	ErrorOutOfPoolMemory        Result = -1000069000
	ErrorInvalidExternalHandle  Result = -1000072003
	ErrorSurfaceLostKhr         Result = -1000000000
	ErrorNativeWindowInUseKhr   Result = -1000000001
	SuboptimalKhr               Result = 1000001003
	ErrorOutOfDateKhr           Result = -1000001004
	ErrorValidationFailedExt    Result = -1000011001
)

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case NotReady:
		return "VK_NOT_READY"
	case Timeout_:
		return "VK_TIMEOUT"
	case EventSet:
		return "VK_EVENT_SET"
	case EventReset:
		return "VK_EVENT_RESET"
	case Incomplete:
		return "VK_INCOMPLETE"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrorMemoryMapFailed:
		return "VK_ERROR_MEMORY_MAP_FAILED"
	case ErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case ErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case ErrorFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case ErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case ErrorTooManyObjects:
		return "VK_ERROR_TOO_MANY_OBJECTS"
	case ErrorFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case ErrorFragmentedPool:
		return "VK_ERROR_FRAGMENTED_POOL"
	case ErrorOutOfPoolMemory:
		return "VK_ERROR_OUT_OF_POOL_MEMORY"
	case ErrorInvalidExternalHandle:
		return "VK_ERROR_INVALID_EXTERNAL_HANDLE"
	case ErrorSurfaceLostKhr:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case ErrorNativeWindowInUseKhr:
		return "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"
	case SuboptimalKhr:
		return "VK_SUBOPTIMAL_KHR"
	case ErrorOutOfDateKhr:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case ErrorValidationFailedExt:
		return "VK_ERROR_VALIDATION_FAILED_EXT"
	default:
		return "VK_ERROR_UNKNOWN"
	}
}

// StructureType tags every pNext-chainable struct. const_ext.go adds the
// Vulkan 1.1+ promoted and extension values on top of this core set.
type StructureType uint32

const (
	StructureTypeApplicationInfo                         StructureType = 0
	StructureTypeInstanceCreateInfo                       StructureType = 1
	StructureTypeDeviceQueueCreateInfo                    StructureType = 2
	StructureTypeDeviceCreateInfo                         StructureType = 3
	StructureTypeSubmitInfo                               StructureType = 4
	StructureTypeMemoryAllocateInfo                       StructureType = 5
	StructureTypeFenceCreateInfo                          StructureType = 8
	StructureTypeSemaphoreCreateInfo                      StructureType = 9
	StructureTypeEventCreateInfo                          StructureType = 10
	StructureTypeQueryPoolCreateInfo                      StructureType = 11
	StructureTypeBufferCreateInfo                         StructureType = 12
	StructureTypeBufferViewCreateInfo                     StructureType = 13
	StructureTypeImageCreateInfo                          StructureType = 14
	StructureTypeImageViewCreateInfo                      StructureType = 15
	StructureTypeShaderModuleCreateInfo                   StructureType = 16
	StructureTypePipelineCacheCreateInfo                  StructureType = 17
	StructureTypePipelineShaderStageCreateInfo            StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo       StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo     StructureType = 20
	StructureTypePipelineTessellationStateCreateInfo      StructureType = 21
	StructureTypePipelineViewportStateCreateInfo          StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo     StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo       StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo      StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo        StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo           StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo               StructureType = 28
	StructureTypeComputePipelineCreateInfo                StructureType = 29
	StructureTypePipelineLayoutCreateInfo                 StructureType = 30
	StructureTypeSamplerCreateInfo                        StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo            StructureType = 32
	StructureTypeDescriptorPoolCreateInfo                 StructureType = 33
	StructureTypeDescriptorSetAllocateInfo                StructureType = 34
	StructureTypeWriteDescriptorSet                       StructureType = 35
	StructureTypeCopyDescriptorSet                        StructureType = 36
	StructureTypeFramebufferCreateInfo                    StructureType = 37
	StructureTypeRenderPassCreateInfo                     StructureType = 38
	StructureTypeCommandPoolCreateInfo                    StructureType = 39
	StructureTypeCommandBufferAllocateInfo                StructureType = 40
	StructureTypeCommandBufferInheritanceInfo             StructureType = 41
	StructureTypeCommandBufferBeginInfo                   StructureType = 42
	StructureTypeMemoryBarrier                            StructureType = 46
	StructureTypeBufferMemoryBarrier                      StructureType = 44
	StructureTypeImageMemoryBarrier                       StructureType = 45
)

// WSI and debug-utils structure types, kept separate from the core block
// above since their numeric values come from extension ranges rather than
// the core registry.
const (
	StructureTypeSwapchainCreateInfoKhr         StructureType = 1000001000
	StructureTypePresentInfoKhr                 StructureType = 1000001001
	StructureTypeWin32SurfaceCreateInfoKhr      StructureType = 1000009000
	StructureTypeWaylandSurfaceCreateInfoKhr    StructureType = 1000006000
	StructureTypeXlibSurfaceCreateInfoKhr       StructureType = 1000004000
	StructureTypeMetalSurfaceCreateInfoExt      StructureType = 1000217000
	StructureTypeDebugUtilsObjectNameInfoExt    StructureType = 1000128000
	StructureTypeDebugUtilsMessengerCreateInfoExt StructureType = 1000128004
)

// PresentModeKHR selects the swapchain presentation algorithm.
type PresentModeKHR uint32

const (
	PresentModeImmediateKhr   PresentModeKHR = 0
	PresentModeMailboxKhr     PresentModeKHR = 1
	PresentModeFifoKhr        PresentModeKHR = 2
	PresentModeFifoRelaxedKhr PresentModeKHR = 3
)

// ColorSpaceKHR names the color space a swapchain's images are interpreted in.
type ColorSpaceKHR uint32

const ColorSpaceSrgbNonlinearKhr ColorSpaceKHR = 0

// CompositeAlphaFlagsKHR selects how a swapchain's alpha channel composites
// with the windowing system.
type CompositeAlphaFlagsKHR uint32

const (
	CompositeAlphaOpaqueBitKhr         CompositeAlphaFlagsKHR = 1 << 0
	CompositeAlphaPreMultipliedBitKhr  CompositeAlphaFlagsKHR = 1 << 1
	CompositeAlphaPostMultipliedBitKhr CompositeAlphaFlagsKHR = 1 << 2
	CompositeAlphaInheritBitKhr        CompositeAlphaFlagsKHR = 1 << 3
)

// SurfaceTransformFlagsKHR selects a pre-transform applied before presentation.
type SurfaceTransformFlagsKHR uint32

const SurfaceTransformIdentityBitKhr SurfaceTransformFlagsKHR = 1 << 0

// Format enumerates Vulkan image/buffer formats. Values match the registry.
type Format uint32

const (
	FormatUndefined Format = 0

	FormatR8Unorm Format = 9
	FormatR8Snorm Format = 10
	FormatR8Uint  Format = 13
	FormatR8Sint  Format = 14

	FormatR8g8Unorm Format = 16
	FormatR8g8Snorm Format = 17
	FormatR8g8Uint  Format = 20
	FormatR8g8Sint  Format = 21

	FormatR8g8b8a8Unorm Format = 37
	FormatR8g8b8a8Snorm Format = 38
	FormatR8g8b8a8Uint  Format = 41
	FormatR8g8b8a8Sint  Format = 42
	FormatR8g8b8a8Srgb  Format = 43

	FormatB8g8r8a8Unorm Format = 44
	FormatB8g8r8a8Srgb  Format = 50

	FormatA2b10g10r10UnormPack32 Format = 64
	FormatA2b10g10r10UintPack32  Format = 67

	FormatR16Uint   Format = 74
	FormatR16Sint   Format = 75
	FormatR16Sfloat Format = 76

	FormatR16g16Unorm  Format = 77
	FormatR16g16Snorm  Format = 79
	FormatR16g16Uint   Format = 81
	FormatR16g16Sint   Format = 82
	FormatR16g16Sfloat Format = 83

	FormatR16g16b16a16Unorm  Format = 91
	FormatR16g16b16a16Snorm  Format = 93
	FormatR16g16b16a16Uint   Format = 95
	FormatR16g16b16a16Sint   Format = 96
	FormatR16g16b16a16Sfloat Format = 97

	FormatR32Uint   Format = 98
	FormatR32Sint   Format = 99
	FormatR32Sfloat Format = 100

	FormatR32g32Uint   Format = 101
	FormatR32g32Sint   Format = 102
	FormatR32g32Sfloat Format = 103

	FormatR32g32b32Uint   Format = 104
	FormatR32g32b32Sint   Format = 105
	FormatR32g32b32Sfloat Format = 106

	FormatR32g32b32a32Uint   Format = 107
	FormatR32g32b32a32Sint   Format = 108
	FormatR32g32b32a32Sfloat Format = 109

	FormatB10g11r11UfloatPack32 Format = 122
	FormatE5b9g9r9UfloatPack32  Format = 123

	FormatD16Unorm         Format = 124
	FormatX8D24UnormPack32 Format = 125
	FormatD32Sfloat        Format = 126
	FormatS8Uint           Format = 127
	FormatD24UnormS8Uint   Format = 129
	FormatD32SfloatS8Uint  Format = 130

	FormatBc1RgbaUnormBlock Format = 135
	FormatBc1RgbaSrgbBlock  Format = 136
	FormatBc2UnormBlock     Format = 138
	FormatBc2SrgbBlock      Format = 139
	FormatBc3UnormBlock     Format = 141
	FormatBc3SrgbBlock      Format = 142
	FormatBc4UnormBlock     Format = 143
	FormatBc4SnormBlock     Format = 144
	FormatBc5UnormBlock     Format = 145
	FormatBc5SnormBlock     Format = 146
	FormatBc6hUfloatBlock   Format = 147
	FormatBc6hSfloatBlock   Format = 148
	FormatBc7UnormBlock     Format = 149
	FormatBc7SrgbBlock      Format = 150

	FormatEtc2R8g8b8UnormBlock   Format = 151
	FormatEtc2R8g8b8SrgbBlock    Format = 152
	FormatEtc2R8g8b8a1UnormBlock Format = 153
	FormatEtc2R8g8b8a1SrgbBlock  Format = 154
	FormatEtc2R8g8b8a8UnormBlock Format = 155
	FormatEtc2R8g8b8a8SrgbBlock  Format = 156
	FormatEacR11UnormBlock       Format = 157
	FormatEacR11SnormBlock       Format = 158
	FormatEacR11g11UnormBlock    Format = 159
	FormatEacR11g11SnormBlock    Format = 160

	FormatAstc4x4UnormBlock   Format = 161
	FormatAstc4x4SrgbBlock    Format = 162
	FormatAstc5x4UnormBlock   Format = 163
	FormatAstc5x4SrgbBlock    Format = 164
	FormatAstc5x5UnormBlock   Format = 165
	FormatAstc5x5SrgbBlock    Format = 166
	FormatAstc6x5UnormBlock   Format = 167
	FormatAstc6x5SrgbBlock    Format = 168
	FormatAstc6x6UnormBlock   Format = 169
	FormatAstc6x6SrgbBlock    Format = 170
	FormatAstc8x5UnormBlock   Format = 171
	FormatAstc8x5SrgbBlock    Format = 172
	FormatAstc8x6UnormBlock   Format = 173
	FormatAstc8x6SrgbBlock    Format = 174
	FormatAstc8x8UnormBlock   Format = 175
	FormatAstc8x8SrgbBlock    Format = 176
	FormatAstc10x5UnormBlock  Format = 177
	FormatAstc10x5SrgbBlock   Format = 178
	FormatAstc10x6UnormBlock  Format = 179
	FormatAstc10x6SrgbBlock   Format = 180
	FormatAstc10x8UnormBlock  Format = 181
	FormatAstc10x8SrgbBlock   Format = 182
	FormatAstc10x10UnormBlock Format = 183
	FormatAstc10x10SrgbBlock  Format = 184
	FormatAstc12x10UnormBlock Format = 185
	FormatAstc12x10SrgbBlock  Format = 186
	FormatAstc12x12UnormBlock Format = 187
	FormatAstc12x12SrgbBlock  Format = 188
)

// ImageType selects the dimensionality of an image resource.
type ImageType uint32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

// ImageViewType selects how an image view reinterprets its image's dimensions.
type ImageViewType uint32

const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

// ImageTiling selects how image texels are laid out in memory.
type ImageTiling uint32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

// ImageLayout names the access pattern an image's contents are optimized for.
type ImageLayout uint32

const (
	ImageLayoutUndefined                     ImageLayout = 0
	ImageLayoutGeneral                       ImageLayout = 1
	ImageLayoutColorAttachmentOptimal        ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal         ImageLayout = 5
	ImageLayoutTransferSrcOptimal            ImageLayout = 6
	ImageLayoutTransferDstOptimal            ImageLayout = 7
	ImageLayoutPreinitialized                ImageLayout = 8
	ImageLayoutPresentSrcKhr                 ImageLayout = 1000001002
)

// SharingMode selects whether a resource is accessed by one or many queue families.
type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

// SampleCountFlagBits selects a multisample rasterization rate.
type SampleCountFlagBits uint32

const (
	SampleCount1Bit  SampleCountFlagBits = 1 << 0
	SampleCount2Bit  SampleCountFlagBits = 1 << 1
	SampleCount4Bit  SampleCountFlagBits = 1 << 2
	SampleCount8Bit  SampleCountFlagBits = 1 << 3
	SampleCount16Bit SampleCountFlagBits = 1 << 4
	SampleCount32Bit SampleCountFlagBits = 1 << 5
	SampleCount64Bit SampleCountFlagBits = 1 << 6
)

// BufferUsageFlags selects how a buffer may be used.
type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit   BufferUsageFlags = 1 << 0
	BufferUsageTransferDstBit   BufferUsageFlags = 1 << 1
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 1 << 2
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 1 << 3
	BufferUsageUniformBufferBit  BufferUsageFlags = 1 << 4
	BufferUsageStorageBufferBit  BufferUsageFlags = 1 << 5
	BufferUsageIndexBufferBit    BufferUsageFlags = 1 << 6
	BufferUsageVertexBufferBit   BufferUsageFlags = 1 << 7
	BufferUsageIndirectBufferBit BufferUsageFlags = 1 << 8
)

// ImageUsageFlags selects how an image may be used.
type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 1 << 0
	ImageUsageTransferDstBit            ImageUsageFlags = 1 << 1
	ImageUsageSampledBit                ImageUsageFlags = 1 << 2
	ImageUsageStorageBit                ImageUsageFlags = 1 << 3
	ImageUsageColorAttachmentBit        ImageUsageFlags = 1 << 4
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 1 << 5
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 1 << 6
	ImageUsageInputAttachmentBit        ImageUsageFlags = 1 << 7
)

// ImageAspectFlags selects the aspect(s) of an image a view or barrier addresses.
type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 1 << 0
	ImageAspectDepthBit   ImageAspectFlags = 1 << 1
	ImageAspectStencilBit ImageAspectFlags = 1 << 2
)

// MemoryPropertyFlags selects the capabilities of a memory heap/type.
type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 1 << 0
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 1 << 1
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 1 << 2
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 1 << 3
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 1 << 4
)

// MemoryHeapFlags describes properties of a physical device memory heap.
type MemoryHeapFlags uint32

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 1 << 0

// QueueFlags selects the operations a queue family supports.
type QueueFlags uint32

const (
	QueueGraphicsBit      QueueFlags = 1 << 0
	QueueComputeBit       QueueFlags = 1 << 1
	QueueTransferBit      QueueFlags = 1 << 2
	QueueSparseBindingBit QueueFlags = 1 << 3
)

// PipelineStageFlags names a point in the graphics/compute pipeline for
// synchronization scopes.
type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit             PipelineStageFlags = 1 << 0
	PipelineStageDrawIndirectBit          PipelineStageFlags = 1 << 1
	PipelineStageVertexInputBit           PipelineStageFlags = 1 << 2
	PipelineStageVertexShaderBit          PipelineStageFlags = 1 << 3
	PipelineStageFragmentShaderBit        PipelineStageFlags = 1 << 7
	PipelineStageColorAttachmentOutputBit PipelineStageFlags = 1 << 10
	PipelineStageComputeShaderBit         PipelineStageFlags = 1 << 11
	PipelineStageTransferBit              PipelineStageFlags = 1 << 12
	PipelineStageBottomOfPipeBit          PipelineStageFlags = 1 << 13
	PipelineStageAllGraphicsBit           PipelineStageFlags = 1 << 15
	PipelineStageAllCommandsBit           PipelineStageFlags = 1 << 16
)

// AccessFlags names a memory access type for synchronization scopes.
type AccessFlags uint32

const (
	AccessIndirectCommandReadBit       AccessFlags = 1 << 0
	AccessIndexReadBit                 AccessFlags = 1 << 1
	AccessVertexAttributeReadBit       AccessFlags = 1 << 2
	AccessUniformReadBit               AccessFlags = 1 << 3
	AccessShaderReadBit                AccessFlags = 1 << 5
	AccessShaderWriteBit               AccessFlags = 1 << 6
	AccessColorAttachmentReadBit       AccessFlags = 1 << 7
	AccessColorAttachmentWriteBit      AccessFlags = 1 << 8
	AccessDepthStencilAttachmentReadBit  AccessFlags = 1 << 9
	AccessDepthStencilAttachmentWriteBit AccessFlags = 1 << 10
	AccessTransferReadBit              AccessFlags = 1 << 11
	AccessTransferWriteBit             AccessFlags = 1 << 12
	AccessHostReadBit                  AccessFlags = 1 << 13
	AccessHostWriteBit                 AccessFlags = 1 << 14
	AccessMemoryReadBit                AccessFlags = 1 << 15
	AccessMemoryWriteBit               AccessFlags = 1 << 16
)

// DependencyFlags modifies how a pipeline barrier's scopes are interpreted.
type DependencyFlags uint32

const DependencyByRegionBit DependencyFlags = 1 << 0

// ColorComponentFlags selects which color channels a blend attachment writes.
type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 1 << 0
	ColorComponentGBit ColorComponentFlags = 1 << 1
	ColorComponentBBit ColorComponentFlags = 1 << 2
	ColorComponentABit ColorComponentFlags = 1 << 3
)

// CullModeFlags selects which triangle winding(s) are culled.
type CullModeFlags uint32

const (
	CullModeNone     CullModeFlags = 0
	CullModeFrontBit CullModeFlags = 1 << 0
	CullModeBackBit  CullModeFlags = 1 << 1
	CullModeFrontAndBack CullModeFlags = 0x3
)

// FrontFace selects which triangle winding order is considered front-facing.
type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

// PolygonMode selects how rasterization fills a triangle's interior.
type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

// PrimitiveTopology selects how vertex input is assembled into primitives.
type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList     PrimitiveTopology = 0
	PrimitiveTopologyLineList      PrimitiveTopology = 1
	PrimitiveTopologyLineStrip     PrimitiveTopology = 2
	PrimitiveTopologyTriangleList  PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
	PrimitiveTopologyTriangleFan   PrimitiveTopology = 5
)

// VertexInputRate selects whether a vertex binding advances per-vertex or per-instance.
type VertexInputRate uint32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

// IndexType selects the element width of an index buffer.
type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

// CompareOp selects a depth/stencil comparison function.
type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

// StencilOp selects a stencil-test update operation.
type StencilOp uint32

const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

// StencilFaceFlags selects which stencil face(s) a dynamic state call targets.
type StencilFaceFlags uint32

const (
	StencilFaceFront       StencilFaceFlags = 1 << 0
	StencilFaceBack        StencilFaceFlags = 1 << 1
	StencilFaceFrontAndBack StencilFaceFlags = 0x3
)

// BlendFactor selects a source/destination blend weight.
type BlendFactor uint32

const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorConstantAlpha         BlendFactor = 12
	BlendFactorOneMinusConstantAlpha BlendFactor = 13
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
)

// BlendOp selects how source and destination blend terms combine.
type BlendOp uint32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

// DynamicState names a pipeline state left unbaked for per-draw override.
type DynamicState uint32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

// PipelineBindPoint selects the pipeline type a command operates against.
type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

// AttachmentLoadOp selects how a render pass attachment is initialized at
// subpass start.
type AttachmentLoadOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

// AttachmentStoreOp selects how a render pass attachment is preserved at
// subpass end.
type AttachmentStoreOp uint32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

// DescriptorType selects the resource kind a descriptor binds.
type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

// DescriptorPoolCreateFlags selects pool allocation behavior.
type DescriptorPoolCreateFlags uint32

const (
	DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 1 << 0
	DescriptorPoolCreateUpdateAfterBindBit   DescriptorPoolCreateFlags = 1 << 1
)

// ShaderStageFlags selects which shader stage(s) a binding or push constant
// range is visible to.
type ShaderStageFlags uint32

const (
	ShaderStageVertexBit   ShaderStageFlags = 1 << 0
	ShaderStageFragmentBit ShaderStageFlags = 1 << 4
	ShaderStageComputeBit  ShaderStageFlags = 1 << 5
	ShaderStageAllGraphics ShaderStageFlags = 0x1F
	ShaderStageAll         ShaderStageFlags = 0x7FFFFFFF
)

// QueryType selects what a query pool measures.
type QueryType uint32

const (
	QueryTypeOcclusion QueryType = 0
	QueryTypePipelineStatistics QueryType = 1
	QueryTypeTimestamp QueryType = 2
)

// SamplerAddressMode selects texture coordinate wrapping behavior.
type SamplerAddressMode uint32

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

// Filter selects a texture minification/magnification filter.
type Filter uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

// SamplerMipmapMode selects how mip levels are interpolated.
type SamplerMipmapMode uint32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

// ComponentSwizzle selects a channel remap for an image view.
type ComponentSwizzle uint32

const ComponentSwizzleIdentity ComponentSwizzle = 0

// ObjectType names the kind of object behind a debug-utils handle.
type ObjectType uint32

const (
	ObjectTypeUnknown      ObjectType = 0
	ObjectTypeInstance     ObjectType = 1
	ObjectTypePhysicalDevice ObjectType = 2
	ObjectTypeDevice       ObjectType = 3
	ObjectTypeQueue        ObjectType = 4
	ObjectTypeBuffer       ObjectType = 9
	ObjectTypeImage        ObjectType = 10
	ObjectTypeCommandBuffer ObjectType = 6
	ObjectTypePipeline     ObjectType = 18
	ObjectTypePipelineLayout ObjectType = 17
	ObjectTypeRenderPass   ObjectType = 21
	ObjectTypeFramebuffer  ObjectType = 23
	ObjectTypeQueryPool    ObjectType = 22
	ObjectTypeDescriptorSet ObjectType = 24
	ObjectTypeDescriptorSetLayout ObjectType = 20
	ObjectTypeSemaphore    ObjectType = 5
	ObjectTypeShaderModule ObjectType = 15
	ObjectTypeSampler      ObjectType = 26
)

// DebugUtilsMessageSeverityFlagsEXT/FlagBitsEXT select which severities a
// debug messenger callback is invoked for.
type (
	DebugUtilsMessageSeverityFlagsEXT   uint32
	DebugUtilsMessageSeverityFlagBitsEXT = DebugUtilsMessageSeverityFlagsEXT
)

const (
	DebugUtilsMessageSeverityVerboseBitExt DebugUtilsMessageSeverityFlagsEXT = 1 << 0
	DebugUtilsMessageSeverityInfoBitExt    DebugUtilsMessageSeverityFlagsEXT = 1 << 4
	DebugUtilsMessageSeverityWarningBitExt DebugUtilsMessageSeverityFlagsEXT = 1 << 8
	DebugUtilsMessageSeverityErrorBitExt   DebugUtilsMessageSeverityFlagsEXT = 1 << 12
)

// DebugUtilsMessageTypeFlagsEXT/FlagBitsEXT select which message categories a
// debug messenger callback is invoked for.
type (
	DebugUtilsMessageTypeFlagsEXT   uint32
	DebugUtilsMessageTypeFlagBitsEXT = DebugUtilsMessageTypeFlagsEXT
)

const (
	DebugUtilsMessageTypeGeneralBitExt     DebugUtilsMessageTypeFlagsEXT = 1 << 0
	DebugUtilsMessageTypeValidationBitExt  DebugUtilsMessageTypeFlagsEXT = 1 << 1
	DebugUtilsMessageTypePerformanceBitExt DebugUtilsMessageTypeFlagsEXT = 1 << 2
)

// PhysicalDeviceType categorizes the GPU backing a PhysicalDevice.
type PhysicalDeviceType uint32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

// CommandPoolCreateFlags selects command pool allocation/reset behavior.
type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 1 << 0
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 1 << 1
)

// CommandPoolResetFlags modifies vkResetCommandPool behavior.
type CommandPoolResetFlags uint32

const CommandPoolResetReleaseResourcesBit CommandPoolResetFlags = 1 << 0

// CommandBufferLevel selects whether a command buffer is primary or secondary.
type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

// CommandBufferUsageFlags selects recording/submission constraints for a
// command buffer.
type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 1 << 0
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 1 << 1
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 1 << 2
)

// SemaphoreType selects binary vs. timeline semaphore semantics.
type SemaphoreType uint32

const (
	SemaphoreTypeBinary   SemaphoreType = 0
	SemaphoreTypeTimeline SemaphoreType = 1
)

// ResolveModeFlagBits selects a depth/stencil resolve filter for dynamic
// rendering.
type ResolveModeFlagBits uint32

const (
	ResolveModeNone         ResolveModeFlagBits = 0
	ResolveModeAverageBit   ResolveModeFlagBits = 1 << 0
	ResolveModeMinBit       ResolveModeFlagBits = 1 << 1
	ResolveModeMaxBit       ResolveModeFlagBits = 1 << 2
)

// PipelineStageFlagBits names a single pipeline stage bit, as opposed to
// PipelineStageFlags which ORs several together.
type PipelineStageFlagBits = PipelineStageFlags

// QueryResultFlags selects how vkGetQueryPoolResults/vkCmdCopyQueryPoolResults
// format and wait for query results.
type QueryResultFlags uint32

const (
	QueryResult64Bit               QueryResultFlags = 1 << 0
	QueryResultWaitBit             QueryResultFlags = 1 << 1
	QueryResultWithAvailabilityBit QueryResultFlags = 1 << 2
	QueryResultPartialBit          QueryResultFlags = 1 << 3
)

// CAMetalLayer is an opaque reference to an Objective-C CAMetalLayer*, used
// only by VK_EXT_metal_surface on Darwin. It carries no Go-side behavior.
type CAMetalLayer = uintptr

// XlibWindow is an X11 Window ID, used only by VK_KHR_xlib_surface.
type XlibWindow = uint64
