// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// TimelineSemaphoreSubmitInfo extends SubmitInfo via PNext to carry the
// wait/signal values for timeline semaphores referenced by that submit's
// PWaitSemaphores/PSignalSemaphores. Mirrors VkTimelineSemaphoreSubmitInfo.
type TimelineSemaphoreSubmitInfo struct {
	SType                     StructureType
	PNext                     *uintptr
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    *uint64
}
