// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// This file contains manual function pointer loading for Vulkan commands.
// The Commands struct fields are defined in commands_gen.go (auto-generated).
//
// # Function Loading Hierarchy
//
// Vulkan functions are loaded in three stages:
//
//  1. LoadGlobal() — Functions callable without instance (pre-instance)
//     - vkCreateInstance
//     - vkEnumerateInstanceVersion
//     - vkEnumerateInstanceLayerProperties
//     - vkEnumerateInstanceExtensionProperties
//
//  2. LoadInstance(instance) — Instance-level functions
//     - Core: vkDestroyInstance, vkEnumeratePhysicalDevices, vkCreateDevice
//     - WSI:  vkCreateWin32SurfaceKHR, vkGetPhysicalDeviceSurfaceSupportKHR, etc.
//     - Note: Also call SetDeviceProcAddr(instance) for Intel compatibility
//
//  3. LoadDevice(device) — Device-level functions
//     - Memory: vkAllocateMemory, vkFreeMemory, vkMapMemory
//     - Buffers: vkCreateBuffer, vkDestroyBuffer
//     - Images: vkCreateImage, vkCreateImageView
//     - Pipelines: vkCreateGraphicsPipelines, vkCreateComputePipelines
//     - Commands: vkBeginCommandBuffer, vkCmdDraw, etc.
//     - Swapchain: vkCreateSwapchainKHR, vkAcquireNextImageKHR, vkQueuePresentKHR
//
// # Intel Driver Notes
//
// Intel Iris Xe drivers require special handling:
//   - vkGetInstanceProcAddr(NULL, "vkGetDeviceProcAddr") returns NULL
//   - Must call SetDeviceProcAddr(instance) after creating instance
//   - See loader.go for details

import (
	"fmt"
	"unsafe"
)

// NewCommands creates a new Commands instance.
// Function pointers must be loaded via LoadGlobal() and LoadInstance() before use.
func NewCommands() *Commands {
	return &Commands{}
}

// LoadGlobal loads global Vulkan function pointers.
// These are functions that can be called without an instance (like vkCreateInstance).
func (c *Commands) LoadGlobal() error {
	// Load vkCreateInstance
	c.createInstance = uintptr(GetInstanceProcAddr(0, "vkCreateInstance"))
	if c.createInstance == 0 {
		return fmt.Errorf("failed to load vkCreateInstance")
	}

	// Load vkEnumerateInstanceVersion
	c.enumerateInstanceVersion = uintptr(GetInstanceProcAddr(0, "vkEnumerateInstanceVersion"))

	// Load vkEnumerateInstanceLayerProperties
	c.enumerateInstanceLayerProperties = uintptr(GetInstanceProcAddr(0, "vkEnumerateInstanceLayerProperties"))

	// Load vkEnumerateInstanceExtensionProperties
	c.enumerateInstanceExtensionProperties = uintptr(GetInstanceProcAddr(0, "vkEnumerateInstanceExtensionProperties"))

	return nil
}

// LoadInstance loads instance-level Vulkan function pointers.
// Must be called after vkCreateInstance succeeds.
func (c *Commands) LoadInstance(instance Instance) error {
	if instance == 0 {
		return fmt.Errorf("invalid instance handle")
	}

	// Load all instance-level functions
	c.destroyInstance = uintptr(GetInstanceProcAddr(instance, "vkDestroyInstance"))
	c.enumeratePhysicalDevices = uintptr(GetInstanceProcAddr(instance, "vkEnumeratePhysicalDevices"))
	c.getPhysicalDeviceProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceProperties"))
	c.getPhysicalDeviceQueueFamilyProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceQueueFamilyProperties"))
	c.getPhysicalDeviceMemoryProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceMemoryProperties"))
	c.getPhysicalDeviceFeatures = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceFeatures"))
	c.getPhysicalDeviceFormatProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceFormatProperties"))
	c.getPhysicalDeviceImageFormatProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceImageFormatProperties"))
	c.createDevice = uintptr(GetInstanceProcAddr(instance, "vkCreateDevice"))
	c.getDeviceProcAddr = uintptr(GetInstanceProcAddr(instance, "vkGetDeviceProcAddr"))
	c.enumerateDeviceLayerProperties = uintptr(GetInstanceProcAddr(instance, "vkEnumerateDeviceLayerProperties"))
	c.enumerateDeviceExtensionProperties = uintptr(GetInstanceProcAddr(instance, "vkEnumerateDeviceExtensionProperties"))
	c.getPhysicalDeviceSparseImageFormatProperties = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSparseImageFormatProperties"))

	// Load WSI (Window System Integration) functions
	c.destroySurfaceKHR = uintptr(GetInstanceProcAddr(instance, "vkDestroySurfaceKHR"))
	c.getPhysicalDeviceSurfaceSupportKHR = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceSupportKHR"))
	c.getPhysicalDeviceSurfaceCapabilitiesKHR = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceCapabilitiesKHR"))
	c.getPhysicalDeviceSurfaceFormatsKHR = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfaceFormatsKHR"))
	c.getPhysicalDeviceSurfacePresentModesKHR = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceSurfacePresentModesKHR"))

	// Platform-specific surface creation
	c.createWin32SurfaceKHR = uintptr(GetInstanceProcAddr(instance, "vkCreateWin32SurfaceKHR"))

	// Vulkan 1.1+ instance functions
	c.getPhysicalDeviceFeatures2 = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceFeatures2"))
	c.getPhysicalDeviceProperties2 = uintptr(GetInstanceProcAddr(instance, "vkGetPhysicalDeviceProperties2"))

	// VK_EXT_debug_utils, absent unless the instance was created with the
	// extension and a compatible layer; HasDebugUtils reports availability.
	c.setDebugUtilsObjectNameEXT = uintptr(GetInstanceProcAddr(instance, "vkSetDebugUtilsObjectNameEXT"))

	// Verify critical functions loaded
	if c.destroyInstance == 0 || c.enumeratePhysicalDevices == 0 || c.createDevice == 0 {
		return fmt.Errorf("failed to load critical instance functions")
	}

	return nil
}

// LoadDevice loads device-level Vulkan function pointers.
// Must be called after vkCreateDevice succeeds.
func (c *Commands) LoadDevice(device Device) error {
	if device == 0 {
		return fmt.Errorf("invalid device handle")
	}

	// Load device-level functions via vkGetDeviceProcAddr
	// For now, use GetDeviceProcAddr from loader.go
	c.destroyDevice = uintptr(GetDeviceProcAddr(device, "vkDestroyDevice"))
	c.getDeviceQueue = uintptr(GetDeviceProcAddr(device, "vkGetDeviceQueue"))
	c.queueSubmit = uintptr(GetDeviceProcAddr(device, "vkQueueSubmit"))
	c.queueWaitIdle = uintptr(GetDeviceProcAddr(device, "vkQueueWaitIdle"))
	c.deviceWaitIdle = uintptr(GetDeviceProcAddr(device, "vkDeviceWaitIdle"))
	c.allocateMemory = uintptr(GetDeviceProcAddr(device, "vkAllocateMemory"))
	c.freeMemory = uintptr(GetDeviceProcAddr(device, "vkFreeMemory"))
	c.mapMemory = uintptr(GetDeviceProcAddr(device, "vkMapMemory"))
	c.unmapMemory = uintptr(GetDeviceProcAddr(device, "vkUnmapMemory"))
	c.flushMappedMemoryRanges = uintptr(GetDeviceProcAddr(device, "vkFlushMappedMemoryRanges"))
	c.invalidateMappedMemoryRanges = uintptr(GetDeviceProcAddr(device, "vkInvalidateMappedMemoryRanges"))
	c.getDeviceMemoryCommitment = uintptr(GetDeviceProcAddr(device, "vkGetDeviceMemoryCommitment"))
	c.getBufferMemoryRequirements = uintptr(GetDeviceProcAddr(device, "vkGetBufferMemoryRequirements"))
	c.bindBufferMemory = uintptr(GetDeviceProcAddr(device, "vkBindBufferMemory"))
	c.getImageMemoryRequirements = uintptr(GetDeviceProcAddr(device, "vkGetImageMemoryRequirements"))
	c.bindImageMemory = uintptr(GetDeviceProcAddr(device, "vkBindImageMemory"))
	c.getImageSparseMemoryRequirements = uintptr(GetDeviceProcAddr(device, "vkGetImageSparseMemoryRequirements"))
	c.queueBindSparse = uintptr(GetDeviceProcAddr(device, "vkQueueBindSparse"))
	c.createFence = uintptr(GetDeviceProcAddr(device, "vkCreateFence"))
	c.destroyFence = uintptr(GetDeviceProcAddr(device, "vkDestroyFence"))
	c.resetFences = uintptr(GetDeviceProcAddr(device, "vkResetFences"))
	c.getFenceStatus = uintptr(GetDeviceProcAddr(device, "vkGetFenceStatus"))
	c.waitForFences = uintptr(GetDeviceProcAddr(device, "vkWaitForFences"))
	c.createSemaphore = uintptr(GetDeviceProcAddr(device, "vkCreateSemaphore"))
	c.destroySemaphore = uintptr(GetDeviceProcAddr(device, "vkDestroySemaphore"))
	c.createEvent = uintptr(GetDeviceProcAddr(device, "vkCreateEvent"))
	c.destroyEvent = uintptr(GetDeviceProcAddr(device, "vkDestroyEvent"))
	c.getEventStatus = uintptr(GetDeviceProcAddr(device, "vkGetEventStatus"))
	c.setEvent = uintptr(GetDeviceProcAddr(device, "vkSetEvent"))
	c.resetEvent = uintptr(GetDeviceProcAddr(device, "vkResetEvent"))
	c.createQueryPool = uintptr(GetDeviceProcAddr(device, "vkCreateQueryPool"))
	c.destroyQueryPool = uintptr(GetDeviceProcAddr(device, "vkDestroyQueryPool"))
	c.getQueryPoolResults = uintptr(GetDeviceProcAddr(device, "vkGetQueryPoolResults"))
	c.resetQueryPool = uintptr(GetDeviceProcAddr(device, "vkResetQueryPool"))
	c.createBuffer = uintptr(GetDeviceProcAddr(device, "vkCreateBuffer"))
	c.destroyBuffer = uintptr(GetDeviceProcAddr(device, "vkDestroyBuffer"))
	c.createBufferView = uintptr(GetDeviceProcAddr(device, "vkCreateBufferView"))
	c.destroyBufferView = uintptr(GetDeviceProcAddr(device, "vkDestroyBufferView"))
	c.createImage = uintptr(GetDeviceProcAddr(device, "vkCreateImage"))
	c.destroyImage = uintptr(GetDeviceProcAddr(device, "vkDestroyImage"))
	c.getImageSubresourceLayout = uintptr(GetDeviceProcAddr(device, "vkGetImageSubresourceLayout"))
	c.createImageView = uintptr(GetDeviceProcAddr(device, "vkCreateImageView"))
	c.destroyImageView = uintptr(GetDeviceProcAddr(device, "vkDestroyImageView"))
	c.createShaderModule = uintptr(GetDeviceProcAddr(device, "vkCreateShaderModule"))
	c.destroyShaderModule = uintptr(GetDeviceProcAddr(device, "vkDestroyShaderModule"))
	c.createPipelineCache = uintptr(GetDeviceProcAddr(device, "vkCreatePipelineCache"))
	c.destroyPipelineCache = uintptr(GetDeviceProcAddr(device, "vkDestroyPipelineCache"))
	c.getPipelineCacheData = uintptr(GetDeviceProcAddr(device, "vkGetPipelineCacheData"))
	c.mergePipelineCaches = uintptr(GetDeviceProcAddr(device, "vkMergePipelineCaches"))
	c.createGraphicsPipelines = uintptr(GetDeviceProcAddr(device, "vkCreateGraphicsPipelines"))
	c.createComputePipelines = uintptr(GetDeviceProcAddr(device, "vkCreateComputePipelines"))
	c.destroyPipeline = uintptr(GetDeviceProcAddr(device, "vkDestroyPipeline"))
	c.createPipelineLayout = uintptr(GetDeviceProcAddr(device, "vkCreatePipelineLayout"))
	c.destroyPipelineLayout = uintptr(GetDeviceProcAddr(device, "vkDestroyPipelineLayout"))
	c.createSampler = uintptr(GetDeviceProcAddr(device, "vkCreateSampler"))
	c.destroySampler = uintptr(GetDeviceProcAddr(device, "vkDestroySampler"))
	c.createDescriptorSetLayout = uintptr(GetDeviceProcAddr(device, "vkCreateDescriptorSetLayout"))
	c.destroyDescriptorSetLayout = uintptr(GetDeviceProcAddr(device, "vkDestroyDescriptorSetLayout"))
	c.createDescriptorPool = uintptr(GetDeviceProcAddr(device, "vkCreateDescriptorPool"))
	c.destroyDescriptorPool = uintptr(GetDeviceProcAddr(device, "vkDestroyDescriptorPool"))
	c.resetDescriptorPool = uintptr(GetDeviceProcAddr(device, "vkResetDescriptorPool"))
	c.allocateDescriptorSets = uintptr(GetDeviceProcAddr(device, "vkAllocateDescriptorSets"))
	c.freeDescriptorSets = uintptr(GetDeviceProcAddr(device, "vkFreeDescriptorSets"))
	c.updateDescriptorSets = uintptr(GetDeviceProcAddr(device, "vkUpdateDescriptorSets"))
	c.createFramebuffer = uintptr(GetDeviceProcAddr(device, "vkCreateFramebuffer"))
	c.destroyFramebuffer = uintptr(GetDeviceProcAddr(device, "vkDestroyFramebuffer"))
	c.createRenderPass = uintptr(GetDeviceProcAddr(device, "vkCreateRenderPass"))
	c.destroyRenderPass = uintptr(GetDeviceProcAddr(device, "vkDestroyRenderPass"))
	c.getRenderAreaGranularity = uintptr(GetDeviceProcAddr(device, "vkGetRenderAreaGranularity"))
	c.createCommandPool = uintptr(GetDeviceProcAddr(device, "vkCreateCommandPool"))
	c.destroyCommandPool = uintptr(GetDeviceProcAddr(device, "vkDestroyCommandPool"))
	c.resetCommandPool = uintptr(GetDeviceProcAddr(device, "vkResetCommandPool"))
	c.allocateCommandBuffers = uintptr(GetDeviceProcAddr(device, "vkAllocateCommandBuffers"))
	c.freeCommandBuffers = uintptr(GetDeviceProcAddr(device, "vkFreeCommandBuffers"))
	c.beginCommandBuffer = uintptr(GetDeviceProcAddr(device, "vkBeginCommandBuffer"))
	c.endCommandBuffer = uintptr(GetDeviceProcAddr(device, "vkEndCommandBuffer"))
	c.resetCommandBuffer = uintptr(GetDeviceProcAddr(device, "vkResetCommandBuffer"))
	c.cmdBindPipeline = uintptr(GetDeviceProcAddr(device, "vkCmdBindPipeline"))
	c.cmdSetViewport = uintptr(GetDeviceProcAddr(device, "vkCmdSetViewport"))
	c.cmdSetScissor = uintptr(GetDeviceProcAddr(device, "vkCmdSetScissor"))
	c.cmdSetLineWidth = uintptr(GetDeviceProcAddr(device, "vkCmdSetLineWidth"))
	c.cmdSetDepthBias = uintptr(GetDeviceProcAddr(device, "vkCmdSetDepthBias"))
	c.cmdSetBlendConstants = uintptr(GetDeviceProcAddr(device, "vkCmdSetBlendConstants"))
	c.cmdSetDepthBounds = uintptr(GetDeviceProcAddr(device, "vkCmdSetDepthBounds"))
	c.cmdSetStencilCompareMask = uintptr(GetDeviceProcAddr(device, "vkCmdSetStencilCompareMask"))
	c.cmdSetStencilWriteMask = uintptr(GetDeviceProcAddr(device, "vkCmdSetStencilWriteMask"))
	c.cmdSetStencilReference = uintptr(GetDeviceProcAddr(device, "vkCmdSetStencilReference"))
	c.cmdBindDescriptorSets = uintptr(GetDeviceProcAddr(device, "vkCmdBindDescriptorSets"))
	c.cmdBindIndexBuffer = uintptr(GetDeviceProcAddr(device, "vkCmdBindIndexBuffer"))
	c.cmdBindVertexBuffers = uintptr(GetDeviceProcAddr(device, "vkCmdBindVertexBuffers"))
	c.cmdDraw = uintptr(GetDeviceProcAddr(device, "vkCmdDraw"))
	c.cmdDrawIndexed = uintptr(GetDeviceProcAddr(device, "vkCmdDrawIndexed"))
	c.cmdDrawIndirect = uintptr(GetDeviceProcAddr(device, "vkCmdDrawIndirect"))
	c.cmdDrawIndexedIndirect = uintptr(GetDeviceProcAddr(device, "vkCmdDrawIndexedIndirect"))
	c.cmdDispatch = uintptr(GetDeviceProcAddr(device, "vkCmdDispatch"))
	c.cmdDispatchIndirect = uintptr(GetDeviceProcAddr(device, "vkCmdDispatchIndirect"))
	c.cmdCopyBuffer = uintptr(GetDeviceProcAddr(device, "vkCmdCopyBuffer"))
	c.cmdCopyImage = uintptr(GetDeviceProcAddr(device, "vkCmdCopyImage"))
	c.cmdBlitImage = uintptr(GetDeviceProcAddr(device, "vkCmdBlitImage"))
	c.cmdCopyBufferToImage = uintptr(GetDeviceProcAddr(device, "vkCmdCopyBufferToImage"))
	c.cmdCopyImageToBuffer = uintptr(GetDeviceProcAddr(device, "vkCmdCopyImageToBuffer"))
	c.cmdUpdateBuffer = uintptr(GetDeviceProcAddr(device, "vkCmdUpdateBuffer"))
	c.cmdFillBuffer = uintptr(GetDeviceProcAddr(device, "vkCmdFillBuffer"))
	c.cmdClearColorImage = uintptr(GetDeviceProcAddr(device, "vkCmdClearColorImage"))
	c.cmdClearDepthStencilImage = uintptr(GetDeviceProcAddr(device, "vkCmdClearDepthStencilImage"))
	c.cmdClearAttachments = uintptr(GetDeviceProcAddr(device, "vkCmdClearAttachments"))
	c.cmdResolveImage = uintptr(GetDeviceProcAddr(device, "vkCmdResolveImage"))
	c.cmdSetEvent = uintptr(GetDeviceProcAddr(device, "vkCmdSetEvent"))
	c.cmdResetEvent = uintptr(GetDeviceProcAddr(device, "vkCmdResetEvent"))
	c.cmdWaitEvents = uintptr(GetDeviceProcAddr(device, "vkCmdWaitEvents"))
	c.cmdPipelineBarrier = uintptr(GetDeviceProcAddr(device, "vkCmdPipelineBarrier"))
	c.cmdBeginQuery = uintptr(GetDeviceProcAddr(device, "vkCmdBeginQuery"))
	c.cmdEndQuery = uintptr(GetDeviceProcAddr(device, "vkCmdEndQuery"))
	c.cmdResetQueryPool = uintptr(GetDeviceProcAddr(device, "vkCmdResetQueryPool"))
	c.cmdWriteTimestamp = uintptr(GetDeviceProcAddr(device, "vkCmdWriteTimestamp"))
	c.cmdCopyQueryPoolResults = uintptr(GetDeviceProcAddr(device, "vkCmdCopyQueryPoolResults"))
	c.cmdPushConstants = uintptr(GetDeviceProcAddr(device, "vkCmdPushConstants"))
	c.cmdBeginRenderPass = uintptr(GetDeviceProcAddr(device, "vkCmdBeginRenderPass"))
	c.cmdNextSubpass = uintptr(GetDeviceProcAddr(device, "vkCmdNextSubpass"))
	c.cmdEndRenderPass = uintptr(GetDeviceProcAddr(device, "vkCmdEndRenderPass"))
	c.cmdExecuteCommands = uintptr(GetDeviceProcAddr(device, "vkCmdExecuteCommands"))

	// Vulkan 1.2+ timeline semaphore functions
	c.getSemaphoreCounterValue = uintptr(GetDeviceProcAddr(device, "vkGetSemaphoreCounterValue"))
	c.waitSemaphores = uintptr(GetDeviceProcAddr(device, "vkWaitSemaphores"))
	c.signalSemaphore = uintptr(GetDeviceProcAddr(device, "vkSignalSemaphore"))

	// Vulkan 1.3 dynamic rendering and synchronization2 functions
	c.cmdBeginRendering = uintptr(GetDeviceProcAddr(device, "vkCmdBeginRendering"))
	c.cmdEndRendering = uintptr(GetDeviceProcAddr(device, "vkCmdEndRendering"))
	c.cmdPipelineBarrier2 = uintptr(GetDeviceProcAddr(device, "vkCmdPipelineBarrier2"))

	// Swapchain functions (WSI)
	c.createSwapchainKHR = uintptr(GetDeviceProcAddr(device, "vkCreateSwapchainKHR"))
	c.destroySwapchainKHR = uintptr(GetDeviceProcAddr(device, "vkDestroySwapchainKHR"))
	c.getSwapchainImagesKHR = uintptr(GetDeviceProcAddr(device, "vkGetSwapchainImagesKHR"))
	c.acquireNextImageKHR = uintptr(GetDeviceProcAddr(device, "vkAcquireNextImageKHR"))
	c.queuePresentKHR = uintptr(GetDeviceProcAddr(device, "vkQueuePresentKHR"))

	// Verify critical functions loaded
	if c.destroyDevice == 0 || c.getDeviceQueue == 0 || c.queueSubmit == 0 {
		return fmt.Errorf("failed to load critical device functions")
	}

	return nil
}

// HasTimelineSemaphore returns true if timeline semaphore functions were loaded.
// These are Vulkan 1.2 core functions and should be available on all conformant drivers.
func (c *Commands) HasTimelineSemaphore() bool {
	return c.getSemaphoreCounterValue != 0 &&
		c.waitSemaphores != 0 &&
		c.signalSemaphore != 0
}

// HasPhysicalDeviceFeatures2 returns true if vkGetPhysicalDeviceFeatures2 is available.
// This is a Vulkan 1.1 core function used to query extended feature support via PNext chains.
func (c *Commands) HasPhysicalDeviceFeatures2() bool {
	return c.getPhysicalDeviceFeatures2 != 0
}

// DebugFunctionPointer returns the address of the specified Vulkan function.
// This is only for debugging purposes.
func (c *Commands) DebugFunctionPointer(name string) unsafe.Pointer {
	switch name {
	case "vkCreateGraphicsPipelines":
		return unsafe.Pointer(c.createGraphicsPipelines)
	case "vkCreateComputePipelines":
		return unsafe.Pointer(c.createComputePipelines)
	case "vkCreateRenderPass":
		return unsafe.Pointer(c.createRenderPass)
	default:
		return nil
	}
}
