// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"syscall"
	"unsafe"
)

// Typed convenience methods on *Commands for callers that pass Go structs
// directly rather than marshaling syscall.SyscallN arguments themselves.
// These mirror the free-function style of memory.go, just bound to the
// loaded Commands instance instead of the package-level deviceCmds.

func pAlloc(allocator *AllocationCallbacks) uintptr {
	if allocator == nil {
		return 0
	}
	return uintptr(unsafe.Pointer(allocator))
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func (c *Commands) CreateDescriptorPool(device Device, createInfo *DescriptorPoolCreateInfo, allocator *AllocationCallbacks, pool *DescriptorPool) Result {
	if c.createDescriptorPool == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(
		c.createDescriptorPool,
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAlloc(allocator),
		uintptr(unsafe.Pointer(pool)),
	)
	return Result(ret)
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func (c *Commands) DestroyDescriptorPool(device Device, pool DescriptorPool, allocator *AllocationCallbacks) {
	if c.destroyDescriptorPool == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(
		c.destroyDescriptorPool,
		uintptr(device),
		uintptr(pool),
		pAlloc(allocator),
	)
}

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func (c *Commands) AllocateDescriptorSets(device Device, allocInfo *DescriptorSetAllocateInfo, sets *DescriptorSet) Result {
	if c.allocateDescriptorSets == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(
		c.allocateDescriptorSets,
		uintptr(device),
		uintptr(unsafe.Pointer(allocInfo)),
		uintptr(unsafe.Pointer(sets)),
	)
	return Result(ret)
}

// FreeDescriptorSets wraps vkFreeDescriptorSets.
func (c *Commands) FreeDescriptorSets(device Device, pool DescriptorPool, count uint32, sets *DescriptorSet) Result {
	if c.freeDescriptorSets == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(
		c.freeDescriptorSets,
		uintptr(device),
		uintptr(pool),
		uintptr(count),
		uintptr(unsafe.Pointer(sets)),
	)
	return Result(ret)
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets.
func (c *Commands) UpdateDescriptorSets(device Device, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet) {
	if c.updateDescriptorSets == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(
		c.updateDescriptorSets,
		uintptr(device),
		uintptr(writeCount),
		uintptr(unsafe.Pointer(writes)),
		uintptr(copyCount),
		uintptr(unsafe.Pointer(copies)),
	)
}

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, createInfo *RenderPassCreateInfo, allocator *AllocationCallbacks, renderPass *RenderPass) Result {
	if c.createRenderPass == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(
		c.createRenderPass,
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAlloc(allocator),
		uintptr(unsafe.Pointer(renderPass)),
	)
	return Result(ret)
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, allocator *AllocationCallbacks) {
	if c.destroyRenderPass == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(
		c.destroyRenderPass,
		uintptr(device),
		uintptr(renderPass),
		pAlloc(allocator),
	)
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, createInfo *FramebufferCreateInfo, allocator *AllocationCallbacks, framebuffer *Framebuffer) Result {
	if c.createFramebuffer == 0 {
		return ErrorInitializationFailed
	}
	ret, _, _ := syscall.SyscallN(
		c.createFramebuffer,
		uintptr(device),
		uintptr(unsafe.Pointer(createInfo)),
		pAlloc(allocator),
		uintptr(unsafe.Pointer(framebuffer)),
	)
	return Result(ret)
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, allocator *AllocationCallbacks) {
	if c.destroyFramebuffer == 0 {
		return
	}
	//nolint:errcheck // Vulkan void function, no return value to check
	syscall.SyscallN(
		c.destroyFramebuffer,
		uintptr(device),
		uintptr(framebuffer),
		pAlloc(allocator),
	)
}

// HasDebugUtils reports whether VK_EXT_debug_utils object naming was loaded
// for this instance. Debug labeling is best-effort: callers must treat a
// false return (and any failing Result from SetDebugUtilsObjectNameEXT) as
// non-fatal, since the extension is absent on many drivers.
func (c *Commands) HasDebugUtils() bool {
	return c.setDebugUtilsObjectNameEXT != 0
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, nameInfo *DebugUtilsObjectNameInfoEXT) Result {
	if c.setDebugUtilsObjectNameEXT == 0 {
		return ErrorExtensionNotPresent
	}
	ret, _, _ := syscall.SyscallN(
		c.setDebugUtilsObjectNameEXT,
		uintptr(device),
		uintptr(unsafe.Pointer(nameInfo)),
	)
	return Result(ret)
}
