// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"github.com/gogpu/gputypes"
	"github.com/gorhi/rhi/hal"
	"github.com/gorhi/rhi/hal/vulkan/vk"
)

// bufferUsageToVk converts WebGPU buffer usage flags to Vulkan buffer usage flags.
func bufferUsageToVk(usage gputypes.BufferUsage) vk.BufferUsageFlags {
	var flags vk.BufferUsageFlags

	if usage&gputypes.BufferUsageCopySrc != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageTransferSrcBit)
	}
	if usage&gputypes.BufferUsageCopyDst != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageTransferDstBit)
	}
	if usage&gputypes.BufferUsageIndex != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageIndexBufferBit)
	}
	if usage&gputypes.BufferUsageVertex != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageVertexBufferBit)
	}
	if usage&gputypes.BufferUsageUniform != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageUniformBufferBit)
	}
	if usage&gputypes.BufferUsageStorage != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageStorageBufferBit)
	}
	if usage&gputypes.BufferUsageIndirect != 0 {
		flags |= vk.BufferUsageFlags(vk.BufferUsageIndirectBufferBit)
	}

	return flags
}

// textureUsageToVk converts WebGPU texture usage flags to Vulkan image usage flags.
func textureUsageToVk(usage gputypes.TextureUsage) vk.ImageUsageFlags {
	var flags vk.ImageUsageFlags

	if usage&gputypes.TextureUsageCopySrc != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageTransferSrcBit)
	}
	if usage&gputypes.TextureUsageCopyDst != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageTransferDstBit)
	}
	if usage&gputypes.TextureUsageTextureBinding != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageSampledBit)
	}
	if usage&gputypes.TextureUsageStorageBinding != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageStorageBit)
	}
	if usage&gputypes.TextureUsageRenderAttachment != 0 {
		flags |= vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit)
	}

	return flags
}

// textureDimensionToVkImageType converts WebGPU texture dimension to Vulkan image type.
func textureDimensionToVkImageType(dim gputypes.TextureDimension) vk.ImageType {
	switch dim {
	case gputypes.TextureDimension1D:
		return vk.ImageType1d
	case gputypes.TextureDimension2D:
		return vk.ImageType2d
	case gputypes.TextureDimension3D:
		return vk.ImageType3d
	default:
		hal.Logger().Warn("vulkan: unknown texture dimension, defaulting to 2D", "dimension", dim)
		return vk.ImageType2d
	}
}

// textureDimensionToViewType converts a texture's dimension directly to the
// image view type a full-resource view over it would use. Distinct from
// textureViewDimensionToVk, which converts the view's own requested
// dimension (which may differ from the texture's, e.g. a 2D view of one
// layer of a 2D array texture).
func textureDimensionToViewType(dim gputypes.TextureDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureDimension2D:
		return vk.ImageViewType2d
	case gputypes.TextureDimension3D:
		return vk.ImageViewType3d
	default:
		hal.Logger().Warn("vulkan: unknown texture dimension, defaulting view type to 2D", "dimension", dim)
		return vk.ImageViewType2d
	}
}

// textureFormatToVk converts WebGPU texture format to Vulkan format.
// Uses a lookup table for efficient O(1) conversion.
func textureFormatToVk(format gputypes.TextureFormat) vk.Format {
	if f, ok := textureFormatMap[format]; ok {
		return f
	}
	hal.Logger().Warn("vulkan: unknown texture format, defaulting to undefined", "format", format)
	return vk.FormatUndefined
}

// isDepthStencilFormat reports whether format carries a depth and/or
// stencil component, as opposed to a color component.
func isDepthStencilFormat(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatDepth16Unorm,
		gputypes.TextureFormatDepth24Plus,
		gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float,
		gputypes.TextureFormatDepth32FloatStencil8,
		gputypes.TextureFormatStencil8:
		return true
	default:
		return false
	}
}

// hasStencilAspect reports whether format carries a stencil component.
func hasStencilAspect(format gputypes.TextureFormat) bool {
	switch format {
	case gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32FloatStencil8,
		gputypes.TextureFormatStencil8:
		return true
	default:
		return false
	}
}

// textureFormatMap maps WebGPU texture formats to Vulkan formats.
var textureFormatMap = map[gputypes.TextureFormat]vk.Format{
	// 8-bit formats
	gputypes.TextureFormatR8Unorm: vk.FormatR8Unorm,
	gputypes.TextureFormatR8Snorm: vk.FormatR8Snorm,
	gputypes.TextureFormatR8Uint:  vk.FormatR8Uint,
	gputypes.TextureFormatR8Sint:  vk.FormatR8Sint,

	// 16-bit formats
	gputypes.TextureFormatR16Uint:  vk.FormatR16Uint,
	gputypes.TextureFormatR16Sint:  vk.FormatR16Sint,
	gputypes.TextureFormatR16Float: vk.FormatR16Sfloat,
	gputypes.TextureFormatRG8Unorm: vk.FormatR8g8Unorm,
	gputypes.TextureFormatRG8Snorm: vk.FormatR8g8Snorm,
	gputypes.TextureFormatRG8Uint:  vk.FormatR8g8Uint,
	gputypes.TextureFormatRG8Sint:  vk.FormatR8g8Sint,

	// 32-bit formats
	gputypes.TextureFormatR32Uint:        vk.FormatR32Uint,
	gputypes.TextureFormatR32Sint:        vk.FormatR32Sint,
	gputypes.TextureFormatR32Float:       vk.FormatR32Sfloat,
	gputypes.TextureFormatRG16Uint:       vk.FormatR16g16Uint,
	gputypes.TextureFormatRG16Sint:       vk.FormatR16g16Sint,
	gputypes.TextureFormatRG16Float:      vk.FormatR16g16Sfloat,
	gputypes.TextureFormatRGBA8Unorm:     vk.FormatR8g8b8a8Unorm,
	gputypes.TextureFormatRGBA8UnormSrgb: vk.FormatR8g8b8a8Srgb,
	gputypes.TextureFormatRGBA8Snorm:     vk.FormatR8g8b8a8Snorm,
	gputypes.TextureFormatRGBA8Uint:      vk.FormatR8g8b8a8Uint,
	gputypes.TextureFormatRGBA8Sint:      vk.FormatR8g8b8a8Sint,
	gputypes.TextureFormatBGRA8Unorm:     vk.FormatB8g8r8a8Unorm,
	gputypes.TextureFormatBGRA8UnormSrgb: vk.FormatB8g8r8a8Srgb,

	// Packed formats
	gputypes.TextureFormatRGB9E5Ufloat:  vk.FormatE5b9g9r9UfloatPack32,
	gputypes.TextureFormatRGB10A2Uint:   vk.FormatA2b10g10r10UintPack32,
	gputypes.TextureFormatRGB10A2Unorm:  vk.FormatA2b10g10r10UnormPack32,
	gputypes.TextureFormatRG11B10Ufloat: vk.FormatB10g11r11UfloatPack32,

	// 64-bit formats
	gputypes.TextureFormatRG32Uint:    vk.FormatR32g32Uint,
	gputypes.TextureFormatRG32Sint:    vk.FormatR32g32Sint,
	gputypes.TextureFormatRG32Float:   vk.FormatR32g32Sfloat,
	gputypes.TextureFormatRGBA16Uint:  vk.FormatR16g16b16a16Uint,
	gputypes.TextureFormatRGBA16Sint:  vk.FormatR16g16b16a16Sint,
	gputypes.TextureFormatRGBA16Float: vk.FormatR16g16b16a16Sfloat,

	// 128-bit formats
	gputypes.TextureFormatRGBA32Uint:  vk.FormatR32g32b32a32Uint,
	gputypes.TextureFormatRGBA32Sint:  vk.FormatR32g32b32a32Sint,
	gputypes.TextureFormatRGBA32Float: vk.FormatR32g32b32a32Sfloat,

	// Depth/stencil formats
	gputypes.TextureFormatStencil8:             vk.FormatS8Uint,
	gputypes.TextureFormatDepth16Unorm:         vk.FormatD16Unorm,
	gputypes.TextureFormatDepth24Plus:          vk.FormatX8D24UnormPack32,
	gputypes.TextureFormatDepth24PlusStencil8:  vk.FormatD24UnormS8Uint,
	gputypes.TextureFormatDepth32Float:         vk.FormatD32Sfloat,
	gputypes.TextureFormatDepth32FloatStencil8: vk.FormatD32SfloatS8Uint,

	// BC compressed formats
	gputypes.TextureFormatBC1RGBAUnorm:     vk.FormatBc1RgbaUnormBlock,
	gputypes.TextureFormatBC1RGBAUnormSrgb: vk.FormatBc1RgbaSrgbBlock,
	gputypes.TextureFormatBC2RGBAUnorm:     vk.FormatBc2UnormBlock,
	gputypes.TextureFormatBC2RGBAUnormSrgb: vk.FormatBc2SrgbBlock,
	gputypes.TextureFormatBC3RGBAUnorm:     vk.FormatBc3UnormBlock,
	gputypes.TextureFormatBC3RGBAUnormSrgb: vk.FormatBc3SrgbBlock,
	gputypes.TextureFormatBC4RUnorm:        vk.FormatBc4UnormBlock,
	gputypes.TextureFormatBC4RSnorm:        vk.FormatBc4SnormBlock,
	gputypes.TextureFormatBC5RGUnorm:       vk.FormatBc5UnormBlock,
	gputypes.TextureFormatBC5RGSnorm:       vk.FormatBc5SnormBlock,
	gputypes.TextureFormatBC6HRGBUfloat:    vk.FormatBc6hUfloatBlock,
	gputypes.TextureFormatBC6HRGBFloat:     vk.FormatBc6hSfloatBlock,
	gputypes.TextureFormatBC7RGBAUnorm:     vk.FormatBc7UnormBlock,
	gputypes.TextureFormatBC7RGBAUnormSrgb: vk.FormatBc7SrgbBlock,

	// ETC2 compressed formats
	gputypes.TextureFormatETC2RGB8Unorm:       vk.FormatEtc2R8g8b8UnormBlock,
	gputypes.TextureFormatETC2RGB8UnormSrgb:   vk.FormatEtc2R8g8b8SrgbBlock,
	gputypes.TextureFormatETC2RGB8A1Unorm:     vk.FormatEtc2R8g8b8a1UnormBlock,
	gputypes.TextureFormatETC2RGB8A1UnormSrgb: vk.FormatEtc2R8g8b8a1SrgbBlock,
	gputypes.TextureFormatETC2RGBA8Unorm:      vk.FormatEtc2R8g8b8a8UnormBlock,
	gputypes.TextureFormatETC2RGBA8UnormSrgb:  vk.FormatEtc2R8g8b8a8SrgbBlock,
	gputypes.TextureFormatEACR11Unorm:         vk.FormatEacR11UnormBlock,
	gputypes.TextureFormatEACR11Snorm:         vk.FormatEacR11SnormBlock,
	gputypes.TextureFormatEACRG11Unorm:        vk.FormatEacR11g11UnormBlock,
	gputypes.TextureFormatEACRG11Snorm:        vk.FormatEacR11g11SnormBlock,

	// ASTC compressed formats
	gputypes.TextureFormatASTC4x4Unorm:       vk.FormatAstc4x4UnormBlock,
	gputypes.TextureFormatASTC4x4UnormSrgb:   vk.FormatAstc4x4SrgbBlock,
	gputypes.TextureFormatASTC5x4Unorm:       vk.FormatAstc5x4UnormBlock,
	gputypes.TextureFormatASTC5x4UnormSrgb:   vk.FormatAstc5x4SrgbBlock,
	gputypes.TextureFormatASTC5x5Unorm:       vk.FormatAstc5x5UnormBlock,
	gputypes.TextureFormatASTC5x5UnormSrgb:   vk.FormatAstc5x5SrgbBlock,
	gputypes.TextureFormatASTC6x5Unorm:       vk.FormatAstc6x5UnormBlock,
	gputypes.TextureFormatASTC6x5UnormSrgb:   vk.FormatAstc6x5SrgbBlock,
	gputypes.TextureFormatASTC6x6Unorm:       vk.FormatAstc6x6UnormBlock,
	gputypes.TextureFormatASTC6x6UnormSrgb:   vk.FormatAstc6x6SrgbBlock,
	gputypes.TextureFormatASTC8x5Unorm:       vk.FormatAstc8x5UnormBlock,
	gputypes.TextureFormatASTC8x5UnormSrgb:   vk.FormatAstc8x5SrgbBlock,
	gputypes.TextureFormatASTC8x6Unorm:       vk.FormatAstc8x6UnormBlock,
	gputypes.TextureFormatASTC8x6UnormSrgb:   vk.FormatAstc8x6SrgbBlock,
	gputypes.TextureFormatASTC8x8Unorm:       vk.FormatAstc8x8UnormBlock,
	gputypes.TextureFormatASTC8x8UnormSrgb:   vk.FormatAstc8x8SrgbBlock,
	gputypes.TextureFormatASTC10x5Unorm:      vk.FormatAstc10x5UnormBlock,
	gputypes.TextureFormatASTC10x5UnormSrgb:  vk.FormatAstc10x5SrgbBlock,
	gputypes.TextureFormatASTC10x6Unorm:      vk.FormatAstc10x6UnormBlock,
	gputypes.TextureFormatASTC10x6UnormSrgb:  vk.FormatAstc10x6SrgbBlock,
	gputypes.TextureFormatASTC10x8Unorm:      vk.FormatAstc10x8UnormBlock,
	gputypes.TextureFormatASTC10x8UnormSrgb:  vk.FormatAstc10x8SrgbBlock,
	gputypes.TextureFormatASTC10x10Unorm:     vk.FormatAstc10x10UnormBlock,
	gputypes.TextureFormatASTC10x10UnormSrgb: vk.FormatAstc10x10SrgbBlock,
	gputypes.TextureFormatASTC12x10Unorm:     vk.FormatAstc12x10UnormBlock,
	gputypes.TextureFormatASTC12x10UnormSrgb: vk.FormatAstc12x10SrgbBlock,
	gputypes.TextureFormatASTC12x12Unorm:     vk.FormatAstc12x12UnormBlock,
	gputypes.TextureFormatASTC12x12UnormSrgb: vk.FormatAstc12x12SrgbBlock,
}

// addressModeToVk converts a sampler's edge addressing mode.
func addressModeToVk(mode gputypes.AddressMode) vk.SamplerAddressMode {
	switch mode {
	case gputypes.AddressModeClampToEdge:
		return vk.SamplerAddressModeClampToEdge
	case gputypes.AddressModeRepeat:
		return vk.SamplerAddressModeRepeat
	case gputypes.AddressModeMirrorRepeat:
		return vk.SamplerAddressModeMirroredRepeat
	default:
		hal.Logger().Warn("vulkan: unknown address mode, defaulting to clamp-to-edge", "mode", mode)
		return vk.SamplerAddressModeClampToEdge
	}
}

// filterModeToVk converts a sampler's min/mag filter.
func filterModeToVk(mode gputypes.FilterMode) vk.Filter {
	switch mode {
	case gputypes.FilterModeLinear:
		return vk.FilterLinear
	case gputypes.FilterModeNearest:
		return vk.FilterNearest
	default:
		hal.Logger().Warn("vulkan: unknown filter mode, defaulting to nearest", "mode", mode)
		return vk.FilterNearest
	}
}

// mipmapFilterModeToVk converts a sampler's mipmap filter.
func mipmapFilterModeToVk(mode gputypes.FilterMode) vk.SamplerMipmapMode {
	switch mode {
	case gputypes.FilterModeLinear:
		return vk.SamplerMipmapModeLinear
	case gputypes.FilterModeNearest:
		return vk.SamplerMipmapModeNearest
	default:
		hal.Logger().Warn("vulkan: unknown mipmap filter mode, defaulting to nearest", "mode", mode)
		return vk.SamplerMipmapModeNearest
	}
}

// compareFunctionToVk converts a sampler or depth-test comparison function.
func compareFunctionToVk(fn gputypes.CompareFunction) vk.CompareOp {
	switch fn {
	case gputypes.CompareFunctionNever:
		return vk.CompareOpNever
	case gputypes.CompareFunctionLess:
		return vk.CompareOpLess
	case gputypes.CompareFunctionEqual:
		return vk.CompareOpEqual
	case gputypes.CompareFunctionLessEqual:
		return vk.CompareOpLessOrEqual
	case gputypes.CompareFunctionGreater:
		return vk.CompareOpGreater
	case gputypes.CompareFunctionNotEqual:
		return vk.CompareOpNotEqual
	case gputypes.CompareFunctionGreaterEqual:
		return vk.CompareOpGreaterOrEqual
	case gputypes.CompareFunctionAlways:
		return vk.CompareOpAlways
	default:
		hal.Logger().Warn("vulkan: unknown compare function, defaulting to never", "fn", fn)
		return vk.CompareOpNever
	}
}

// shaderStagesToVk converts a WebGPU shader stage mask to a Vulkan stage flag set.
func shaderStagesToVk(stages gputypes.ShaderStages) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags

	if stages&gputypes.ShaderStageVertex != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageVertexBit)
	}
	if stages&gputypes.ShaderStageFragment != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageFragmentBit)
	}
	if stages&gputypes.ShaderStageCompute != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageComputeBit)
	}

	return flags
}

// bufferBindingTypeToVk converts a buffer binding's access mode to a Vulkan
// descriptor type. Read-only storage buffers still map to a storage buffer
// descriptor; the read-only constraint is enforced at the shader/pipeline
// layer, not the descriptor type.
func bufferBindingTypeToVk(bindingType gputypes.BufferBindingType) vk.DescriptorType {
	switch bindingType {
	case gputypes.BufferBindingTypeUniform:
		return vk.DescriptorTypeUniformBuffer
	case gputypes.BufferBindingTypeStorage, gputypes.BufferBindingTypeReadOnlyStorage:
		return vk.DescriptorTypeStorageBuffer
	default:
		hal.Logger().Warn("vulkan: unknown buffer binding type, defaulting to uniform buffer", "bindingType", bindingType)
		return vk.DescriptorTypeUniformBuffer
	}
}

// bindGroupLayoutEntryToVk converts a binding's resource kind to a Vulkan
// descriptor type. Exactly one of Buffer/Sampler/Texture/StorageTexture is
// set on a well-formed entry; an entry with none set falls back to a
// uniform buffer descriptor.
func bindGroupLayoutEntryToVk(entry gputypes.BindGroupLayoutEntry) vk.DescriptorType {
	switch {
	case entry.Buffer != nil:
		return bufferBindingTypeToVk(entry.Buffer.Type)
	case entry.Sampler != nil:
		return vk.DescriptorTypeSampler
	case entry.Texture != nil:
		return vk.DescriptorTypeSampledImage
	case entry.StorageTexture != nil:
		return vk.DescriptorTypeStorageImage
	default:
		hal.Logger().Warn("vulkan: bind group layout entry has no resource kind set, defaulting to uniform buffer", "binding", entry.Binding)
		return vk.DescriptorTypeUniformBuffer
	}
}

// vertexStepModeToVk converts a vertex buffer's per-vertex/per-instance stepping.
func vertexStepModeToVk(mode gputypes.VertexStepMode) vk.VertexInputRate {
	switch mode {
	case gputypes.VertexStepModeVertex:
		return vk.VertexInputRateVertex
	case gputypes.VertexStepModeInstance:
		return vk.VertexInputRateInstance
	default:
		hal.Logger().Warn("vulkan: unknown vertex step mode, defaulting to per-vertex", "mode", mode)
		return vk.VertexInputRateVertex
	}
}

// vertexFormatToVk converts a vertex attribute format. An unrecognized
// format defaults to Float32x4, the widest common vertex format, rather
// than Undefined, since a malformed vertex layout must still produce a
// structurally valid (if wrong) pipeline create-info.
func vertexFormatToVk(format gputypes.VertexFormat) vk.Format {
	switch format {
	case gputypes.VertexFormatUint8x2:
		return vk.FormatR8g8Uint
	case gputypes.VertexFormatUint8x4:
		return vk.FormatR8g8b8a8Uint
	case gputypes.VertexFormatSint8x2:
		return vk.FormatR8g8Sint
	case gputypes.VertexFormatSint8x4:
		return vk.FormatR8g8b8a8Sint
	case gputypes.VertexFormatUnorm8x2:
		return vk.FormatR8g8Unorm
	case gputypes.VertexFormatUnorm8x4:
		return vk.FormatR8g8b8a8Unorm
	case gputypes.VertexFormatSnorm8x2:
		return vk.FormatR8g8Snorm
	case gputypes.VertexFormatSnorm8x4:
		return vk.FormatR8g8b8a8Snorm
	case gputypes.VertexFormatUint16x2:
		return vk.FormatR16g16Uint
	case gputypes.VertexFormatUint16x4:
		return vk.FormatR16g16b16a16Uint
	case gputypes.VertexFormatSint16x2:
		return vk.FormatR16g16Sint
	case gputypes.VertexFormatSint16x4:
		return vk.FormatR16g16b16a16Sint
	case gputypes.VertexFormatUnorm16x2:
		return vk.FormatR16g16Unorm
	case gputypes.VertexFormatUnorm16x4:
		return vk.FormatR16g16b16a16Unorm
	case gputypes.VertexFormatSnorm16x2:
		return vk.FormatR16g16Snorm
	case gputypes.VertexFormatSnorm16x4:
		return vk.FormatR16g16b16a16Snorm
	case gputypes.VertexFormatFloat16x2:
		return vk.FormatR16g16Sfloat
	case gputypes.VertexFormatFloat16x4:
		return vk.FormatR16g16b16a16Sfloat
	case gputypes.VertexFormatFloat32:
		return vk.FormatR32Sfloat
	case gputypes.VertexFormatFloat32x2:
		return vk.FormatR32g32Sfloat
	case gputypes.VertexFormatFloat32x3:
		return vk.FormatR32g32b32Sfloat
	case gputypes.VertexFormatFloat32x4:
		return vk.FormatR32g32b32a32Sfloat
	case gputypes.VertexFormatUint32:
		return vk.FormatR32Uint
	case gputypes.VertexFormatUint32x2:
		return vk.FormatR32g32Uint
	case gputypes.VertexFormatUint32x3:
		return vk.FormatR32g32b32Uint
	case gputypes.VertexFormatUint32x4:
		return vk.FormatR32g32b32a32Uint
	case gputypes.VertexFormatSint32:
		return vk.FormatR32Sint
	case gputypes.VertexFormatSint32x2:
		return vk.FormatR32g32Sint
	case gputypes.VertexFormatSint32x3:
		return vk.FormatR32g32b32Sint
	case gputypes.VertexFormatSint32x4:
		return vk.FormatR32g32b32a32Sint
	case gputypes.VertexFormatUnorm1010102:
		return vk.FormatA2b10g10r10UnormPack32
	default:
		hal.Logger().Warn("vulkan: unknown vertex format, defaulting to float32x4", "format", format)
		return vk.FormatR32g32b32a32Sfloat
	}
}

// primitiveTopologyToVk converts the primitive assembly topology.
func primitiveTopologyToVk(topology gputypes.PrimitiveTopology) vk.PrimitiveTopology {
	switch topology {
	case gputypes.PrimitiveTopologyPointList:
		return vk.PrimitiveTopologyPointList
	case gputypes.PrimitiveTopologyLineList:
		return vk.PrimitiveTopologyLineList
	case gputypes.PrimitiveTopologyLineStrip:
		return vk.PrimitiveTopologyLineStrip
	case gputypes.PrimitiveTopologyTriangleList:
		return vk.PrimitiveTopologyTriangleList
	case gputypes.PrimitiveTopologyTriangleStrip:
		return vk.PrimitiveTopologyTriangleStrip
	default:
		hal.Logger().Warn("vulkan: unknown primitive topology, defaulting to triangle list", "topology", topology)
		return vk.PrimitiveTopologyTriangleList
	}
}

// cullModeToVk converts the rasterizer's face culling mode.
func cullModeToVk(mode gputypes.CullMode) vk.CullModeFlags {
	switch mode {
	case gputypes.CullModeNone:
		return vk.CullModeFlags(vk.CullModeNone)
	case gputypes.CullModeFront:
		return vk.CullModeFlags(vk.CullModeFrontBit)
	case gputypes.CullModeBack:
		return vk.CullModeFlags(vk.CullModeBackBit)
	default:
		hal.Logger().Warn("vulkan: unknown cull mode, defaulting to none", "mode", mode)
		return vk.CullModeFlags(vk.CullModeNone)
	}
}

// frontFaceToVk converts the rasterizer's front-face winding order.
func frontFaceToVk(face gputypes.FrontFace) vk.FrontFace {
	switch face {
	case gputypes.FrontFaceCCW:
		return vk.FrontFaceCounterClockwise
	case gputypes.FrontFaceCW:
		return vk.FrontFaceClockwise
	default:
		hal.Logger().Warn("vulkan: unknown front face winding, defaulting to counter-clockwise", "face", face)
		return vk.FrontFaceCounterClockwise
	}
}

// colorWriteMaskToVk converts a color target's write mask.
func colorWriteMaskToVk(mask gputypes.ColorWriteMask) vk.ColorComponentFlags {
	var flags vk.ColorComponentFlags

	if mask&gputypes.ColorWriteMaskRed != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentRBit)
	}
	if mask&gputypes.ColorWriteMaskGreen != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentGBit)
	}
	if mask&gputypes.ColorWriteMaskBlue != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentBBit)
	}
	if mask&gputypes.ColorWriteMaskAlpha != 0 {
		flags |= vk.ColorComponentFlags(vk.ColorComponentABit)
	}

	return flags
}

// blendFactorToVk converts a color/alpha blend factor.
func blendFactorToVk(factor gputypes.BlendFactor) vk.BlendFactor {
	switch factor {
	case gputypes.BlendFactorZero:
		return vk.BlendFactorZero
	case gputypes.BlendFactorOne:
		return vk.BlendFactorOne
	case gputypes.BlendFactorSrc:
		return vk.BlendFactorSrcColor
	case gputypes.BlendFactorOneMinusSrc:
		return vk.BlendFactorOneMinusSrcColor
	case gputypes.BlendFactorSrcAlpha:
		return vk.BlendFactorSrcAlpha
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return vk.BlendFactorOneMinusSrcAlpha
	case gputypes.BlendFactorDst:
		return vk.BlendFactorDstColor
	case gputypes.BlendFactorOneMinusDst:
		return vk.BlendFactorOneMinusDstColor
	case gputypes.BlendFactorDstAlpha:
		return vk.BlendFactorDstAlpha
	case gputypes.BlendFactorOneMinusDstAlpha:
		return vk.BlendFactorOneMinusDstAlpha
	case gputypes.BlendFactorSrcAlphaSaturated:
		return vk.BlendFactorSrcAlphaSaturate
	case gputypes.BlendFactorConstant:
		return vk.BlendFactorConstantColor
	case gputypes.BlendFactorOneMinusConstant:
		return vk.BlendFactorOneMinusConstantColor
	default:
		hal.Logger().Warn("vulkan: unknown blend factor, defaulting to one", "factor", factor)
		return vk.BlendFactorOne
	}
}

// blendOperationToVk converts a color/alpha blend operation.
func blendOperationToVk(op gputypes.BlendOperation) vk.BlendOp {
	switch op {
	case gputypes.BlendOperationAdd:
		return vk.BlendOpAdd
	case gputypes.BlendOperationSubtract:
		return vk.BlendOpSubtract
	case gputypes.BlendOperationReverseSubtract:
		return vk.BlendOpReverseSubtract
	case gputypes.BlendOperationMin:
		return vk.BlendOpMin
	case gputypes.BlendOperationMax:
		return vk.BlendOpMax
	default:
		hal.Logger().Warn("vulkan: unknown blend operation, defaulting to add", "op", op)
		return vk.BlendOpAdd
	}
}

// stencilOperationToVk converts a single stencil test outcome operation.
func stencilOperationToVk(op hal.StencilOperation) vk.StencilOp {
	switch op {
	case hal.StencilOperationKeep:
		return vk.StencilOpKeep
	case hal.StencilOperationZero:
		return vk.StencilOpZero
	case hal.StencilOperationReplace:
		return vk.StencilOpReplace
	case hal.StencilOperationInvert:
		return vk.StencilOpInvert
	case hal.StencilOperationIncrementClamp:
		return vk.StencilOpIncrementAndClamp
	case hal.StencilOperationDecrementClamp:
		return vk.StencilOpDecrementAndClamp
	case hal.StencilOperationIncrementWrap:
		return vk.StencilOpIncrementAndWrap
	case hal.StencilOperationDecrementWrap:
		return vk.StencilOpDecrementAndWrap
	default:
		hal.Logger().Warn("vulkan: unknown stencil operation, defaulting to keep", "op", op)
		return vk.StencilOpKeep
	}
}

// stencilFaceStateToVk converts one face's stencil test configuration.
// CompareMask and WriteMask are shared between both faces at the
// DepthStencilState level, so callers set them on the returned value.
func stencilFaceStateToVk(state hal.StencilFaceState) vk.StencilOpState {
	return vk.StencilOpState{
		FailOp:      stencilOperationToVk(state.FailOp),
		PassOp:      stencilOperationToVk(state.PassOp),
		DepthFailOp: stencilOperationToVk(state.DepthFailOp),
		CompareOp:   compareFunctionToVk(state.Compare),
	}
}

// textureViewDimensionToVk converts a texture view's requested dimension.
func textureViewDimensionToVk(dim gputypes.TextureViewDimension) vk.ImageViewType {
	switch dim {
	case gputypes.TextureViewDimension1D:
		return vk.ImageViewType1d
	case gputypes.TextureViewDimension2D:
		return vk.ImageViewType2d
	case gputypes.TextureViewDimension2DArray:
		return vk.ImageViewType2dArray
	case gputypes.TextureViewDimensionCube:
		return vk.ImageViewTypeCube
	case gputypes.TextureViewDimensionCubeArray:
		return vk.ImageViewTypeCubeArray
	case gputypes.TextureViewDimension3D:
		return vk.ImageViewType3d
	default:
		hal.Logger().Warn("vulkan: unknown texture view dimension, defaulting to 2D", "dimension", dim)
		return vk.ImageViewType2d
	}
}

// textureAspectToVk converts a requested texture aspect, resolving
// TextureAspectAll against format so a depth-stencil format yields both
// planes while a color format yields the color plane.
func textureAspectToVk(aspect gputypes.TextureAspect, format gputypes.TextureFormat) vk.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case gputypes.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	case gputypes.TextureAspectAll:
		if !isDepthStencilFormat(format) {
			return vk.ImageAspectFlags(vk.ImageAspectColorBit)
		}
		flags := vk.ImageAspectFlags(vk.ImageAspectDepthBit)
		if hasStencilAspect(format) {
			flags |= vk.ImageAspectFlags(vk.ImageAspectStencilBit)
		}
		return flags
	default:
		hal.Logger().Warn("vulkan: unknown texture aspect, defaulting to color", "aspect", aspect)
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

// textureAspectToVkSimple converts a requested texture aspect without
// format context, for call sites (e.g. barrier subresource ranges on an
// already-known-format texture) that only have the aspect in hand.
func textureAspectToVkSimple(aspect gputypes.TextureAspect) vk.ImageAspectFlags {
	switch aspect {
	case gputypes.TextureAspectDepthOnly:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case gputypes.TextureAspectStencilOnly:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	default:
		hal.Logger().Warn("vulkan: unknown texture aspect, defaulting to color", "aspect", aspect)
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}
