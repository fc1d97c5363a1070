// Package sync layers the RHI core's explicit multi-queue timeline model
// (spec §4.K) on top of the single-queue hal.Queue/hal.Fence primitives.
// Each CommandQueue owns one hal.Fence used as a monotonically increasing
// timeline: every Submit assigns the next integer value and signals the
// fence with it; once the fence has been destroyed, Submit returns
// ErrNoFence. Cross-queue ordering is the
// caller's responsibility, expressed as a list of QueueDependency values
// that Submit waits on (CPU-side, via the dependency's own Device.Wait)
// before issuing this queue's submission — see the doc comment on
// Submit for why this is a deliberate simplification of the spec's
// GPU-side wait-before-execute semantics.
package sync

import (
	"errors"
	"sync"
	"time"

	"github.com/gorhi/rhi/hal"
)

// Type identifies the role of a CommandQueue, mirroring the RHI core's
// queue-type enum (GRAPHICS/COMPUTE/TRANSFER).
type Type int

const (
	Graphics Type = iota
	Compute
	Transfer
)

func (t Type) String() string {
	switch t {
	case Graphics:
		return "graphics"
	case Compute:
		return "compute"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Timeline is a monotonically increasing value tied to one CommandQueue's
// timeline fence. Submitted values are always >= previously observed
// completed values for the same queue.
type Timeline struct {
	Value uint64
}

// IsZero reports whether the timeline was never assigned a submission.
func (t Timeline) IsZero() bool { return t.Value == 0 }

// QueueDependency declares that a submission must not be considered
// started until the named queue's timeline has reached Value. This is the
// frontend's equivalent of the spec's submit-time wait/signal dependency
// graph edge.
type QueueDependency struct {
	Queue *CommandQueue
	Value uint64
}

// SubmitInfo describes one submission: the command buffers to run, the
// cross-queue dependencies that must be satisfied first, and whether this
// submission produces a swapchain image that will be presented.
type SubmitInfo struct {
	CommandBuffers    []hal.CommandBuffer
	Waits             []QueueDependency
	WritesToSwapchain bool
}

// CommandQueue wraps a hal.Queue with the bookkeeping the spec requires:
// a private timeline fence, a submitted counter assigned as the next
// signal value, and a cached completed value refreshed by Poll/Wait.
type CommandQueue struct {
	mu sync.Mutex

	kind   Type
	device hal.Device
	hal    hal.Queue
	fence  hal.Fence

	submitted uint64
	completed uint64
}

// New creates a CommandQueue of the given type over an already-opened
// hal.Device/hal.Queue pair, allocating the timeline fence that backs it.
func New(kind Type, device hal.Device, queue hal.Queue) (*CommandQueue, error) {
	fence, err := device.CreateFence()
	if err != nil {
		return nil, err
	}
	return &CommandQueue{kind: kind, device: device, hal: queue, fence: fence}, nil
}

// Type returns the queue's role.
func (q *CommandQueue) Type() Type { return q.kind }

// Raw returns the underlying hal.Queue for operations sync does not wrap
// directly (WriteBuffer, WriteTexture, Present).
func (q *CommandQueue) Raw() hal.Queue { return q.hal }

// Submit implements the spec's five-step submit algorithm:
//  1. wait on every declared QueueDependency,
//  2. assign the next timeline value,
//  3. submit the command buffers, signaling the timeline fence with that
//     value,
//  4. swapchain synchronization (step 4 of the spec) is handled by the
//     caller via hal.Queue.Present / SubmitForPresent — WritesToSwapchain
//     is recorded here only as a marker for callers that need to assert
//     the ordering invariant from §5 ("Present must be preceded on the
//     same queue by a submit with writes_to_swapchain = true"),
//  5. return the resulting Timeline.
//
// Step 1 is a CPU-side blocking wait on each dependency's own fence rather
// than a GPU-side semaphore wait chained into this submission. hal.Queue's
// Submit signature (inherited from the single-queue WebGPU model the
// teacher implements) has no wait-semaphore parameter, and threading one
// through every backend (vulkan/gles/noop) was judged out of proportion
// to the rest of this core's scope; the CPU-side wait still gives the
// correct *ordering* guarantee (§5: "the only ordering is the union of
// declared QueueDependency edges"), at the cost of serializing submission
// rather than overlapping it with the dependency's GPU execution.
func (q *CommandQueue) Submit(info SubmitInfo) (Timeline, error) {
	for _, dep := range info.Waits {
		if dep.Queue == nil {
			continue
		}
		if _, err := dep.Queue.Wait(Timeline{Value: dep.Value}, -1); err != nil {
			return Timeline{}, err
		}
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.fence == nil {
		return Timeline{}, ErrNoFence
	}

	q.submitted++
	value := q.submitted

	if err := q.hal.Submit(info.CommandBuffers, q.fence, value); err != nil {
		q.submitted--
		return Timeline{}, err
	}

	return Timeline{Value: value}, nil
}

// Wait blocks until the queue's timeline reaches t.Value, or timeout
// elapses. A negative timeout waits indefinitely (UINT64_MAX in the
// source API). Returns false (no error) on timeout.
func (q *CommandQueue) Wait(t Timeline, timeout time.Duration) (bool, error) {
	if t.Value == 0 {
		return true, nil
	}
	if q.fence == nil {
		return false, ErrNoFence
	}
	d := timeout
	if timeout < 0 {
		d = time.Duration(1<<63 - 1)
	}
	ok, err := q.device.Wait(q.fence, t.Value, d)
	if err != nil {
		return false, err
	}
	if ok {
		q.noteCompleted(t.Value)
	}
	return ok, nil
}

// Poll refreshes the cached completed value and reports whether the
// timeline has already reached t.Value, without blocking.
func (q *CommandQueue) Poll(t Timeline) bool {
	if q.fence == nil {
		return false
	}
	ok, err := q.device.Wait(q.fence, t.Value, 0)
	if err != nil {
		return false
	}
	if ok {
		q.noteCompleted(t.Value)
	}
	return ok
}

// Completed returns the highest timeline value known to have finished.
func (q *CommandQueue) Completed() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.completed
}

// Submitted returns the last timeline value assigned by Submit.
func (q *CommandQueue) Submitted() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.submitted
}

// WaitIdle blocks until every submission issued so far has completed.
func (q *CommandQueue) WaitIdle() error {
	_, err := q.Wait(Timeline{Value: q.Submitted()}, -1)
	return err
}

// Destroy releases the timeline fence. The caller must have waited idle
// first; destroying a queue with outstanding work is a contract
// violation, matching §7's treatment of such misuse as a bug rather than
// a runtime error.
func (q *CommandQueue) Destroy() {
	if q.fence != nil {
		q.device.DestroyFence(q.fence)
		q.fence = nil
	}
}

func (q *CommandQueue) noteCompleted(v uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if v > q.completed {
		q.completed = v
	}
}

// ErrNoFence is returned by Submit/Wait when the queue has no timeline
// fence, either because it was already Destroy'd or, in principle, because
// one was never assigned.
var ErrNoFence = errors.New("sync: queue has no timeline fence")
