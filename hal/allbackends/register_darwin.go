// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package allbackends

import (
	// Vulkan backend - available via MoltenVK on macOS. The RHI core
	// recognizes only Vulkan and OpenGL as backends (hal.APIVulkan /
	// hal.APIOpenGL); a native Metal backend is out of scope for this core.
	_ "github.com/gorhi/rhi/hal/vulkan"
)
