// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package allbackends

import (
	// Vulkan backend - primary backend on Windows.
	_ "github.com/gorhi/rhi/hal/vulkan"

	// OpenGL ES backend package. It has no Windows init, so this import
	// does not register a backend. The RHI core recognizes only Vulkan and
	// OpenGL as backends; a native DX12 backend is out of scope for this core.
	_ "github.com/gorhi/rhi/hal/gles"
)
