// Package rhi is a backend-agnostic Rendering Hardware Interface: application
// code describes pipelines, resources, command lists, and submission
// dependencies once, and this package dispatches them to whichever concrete
// backend (currently Vulkan; OpenGL is a partial sketch) was selected at
// init time. It wraps the lower-level hal/ and core/ packages into the
// public façade described by the RHI core: typed opaque handles, a
// descriptor/binding model spanning classic descriptor sets and
// descriptor-buffer/bindless, timeline-based multi-queue synchronization,
// and a transient + deferred upload system.
//
// # Quick Start
//
// Import this package and a backend registration package:
//
//	import (
//	    "github.com/gorhi/rhi"
//	    _ "github.com/gorhi/rhi/hal/allbackends"
//	)
//
//	instance, err := rhi.CreateInstance(nil)
//	// ...
//
// # Resource Lifecycle
//
// All GPU resources must be explicitly released with Release().
// Release destroys the backing HAL object directly and is idempotent.
// Calls on a released Instance, Adapter or Device return ErrReleased.
//
// # Backend Registration
//
// Backends are registered via blank imports:
//
//	_ "github.com/gorhi/rhi/hal/allbackends"  // all available backends
//	_ "github.com/gorhi/rhi/hal/vulkan"        // Vulkan only
//	_ "github.com/gorhi/rhi/hal/gles"          // OpenGL ES, partial
//	_ "github.com/gorhi/rhi/hal/noop"          // testing
//
// # Thread Safety
//
// Instance, Adapter, and Device are safe for concurrent use.
// Encoders (CommandEncoder, RenderPassEncoder, ComputePassEncoder) are NOT thread-safe.
package rhi
