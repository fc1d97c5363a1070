// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package allbackends imports all HAL backend implementations.
//
// Import this package for side effects to register all available backends:
//
//	import (
//		_ "github.com/gorhi/rhi/hal/allbackends"
//	)
//
// This will register:
//   - Vulkan backend (Windows, Linux, macOS via MoltenVK)
//   - OpenGL ES backend (Linux)
//   - No-op backend (all platforms, for testing)
//
// No Metal or DX12 backend is included. On Windows the OpenGL ES package is
// imported but does not register itself.
//
// After importing, use hal.GetBackend or hal.SelectBestBackend to access backends.
//
// Per-platform files (register_linux.go, register_windows.go,
// register_darwin.go) choose the backends by build constraint. The Linux
// file is excluded on Android, so there only the no-op backend is registered.
//
// Example usage:
//
//	import (
//		_ "github.com/gorhi/rhi/hal/allbackends"
//		"github.com/gorhi/rhi/core"
//	)
//
//	func main() {
//		// Instance will now enumerate real GPUs
//		instance := core.NewInstance(nil)
//		adapters := instance.EnumerateAdapters()
//		for _, a := range adapters {
//			fmt.Println(a) // adapter IDs
//		}
//	}
package allbackends
