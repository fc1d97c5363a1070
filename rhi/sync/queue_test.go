package sync_test

import (
	"testing"
	"time"

	"github.com/gorhi/rhi/hal"
	"github.com/gorhi/rhi/hal/noop"
	"github.com/gorhi/rhi/rhi/sync"
)

func newTestQueue(t *testing.T, kind sync.Type) *sync.CommandQueue {
	t.Helper()
	device := &noop.Device{}
	q, err := sync.New(kind, device, &noop.Queue{})
	if err != nil {
		t.Fatalf("sync.New: %v", err)
	}
	return q
}

func TestSubmitAssignsMonotonicTimelines(t *testing.T) {
	q := newTestQueue(t, sync.Graphics)

	t1, err := q.Submit(sync.SubmitInfo{})
	if err != nil {
		t.Fatalf("submit 1: %v", err)
	}
	t2, err := q.Submit(sync.SubmitInfo{})
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}

	if t1.Value != 1 || t2.Value != 2 {
		t.Fatalf("want timelines 1,2; got %d,%d", t1.Value, t2.Value)
	}
	if !(t1.Value < t2.Value) {
		t.Fatalf("timeline values must be strictly increasing")
	}
}

func TestCompletedIsMonotoneNonDecreasing(t *testing.T) {
	q := newTestQueue(t, sync.Transfer)

	tl, err := q.Submit(sync.SubmitInfo{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if ok, err := q.Wait(tl, time.Second); err != nil || !ok {
		t.Fatalf("wait: ok=%v err=%v", ok, err)
	}
	if got := q.Completed(); got != tl.Value {
		t.Fatalf("completed = %d, want %d", got, tl.Value)
	}

	tl2, err := q.Submit(sync.SubmitInfo{})
	if err != nil {
		t.Fatalf("submit 2: %v", err)
	}
	if ok, _ := q.Wait(tl2, time.Second); !ok {
		t.Fatal("expected wait to succeed")
	}
	if got := q.Completed(); got < tl.Value {
		t.Fatalf("completed regressed: %d < %d", got, tl.Value)
	}
}

func TestCrossQueueDependencyOrdering(t *testing.T) {
	compute := newTestQueue(t, sync.Compute)
	graphics := newTestQueue(t, sync.Graphics)

	tc, err := compute.Submit(sync.SubmitInfo{})
	if err != nil {
		t.Fatalf("compute submit: %v", err)
	}

	tg, err := graphics.Submit(sync.SubmitInfo{
		Waits: []sync.QueueDependency{{Queue: compute, Value: tc.Value}},
	})
	if err != nil {
		t.Fatalf("graphics submit: %v", err)
	}

	ok, err := graphics.Wait(tg, time.Second)
	if err != nil || !ok {
		t.Fatalf("wait on graphics: ok=%v err=%v", ok, err)
	}
	if compute.Completed() < tc.Value {
		t.Fatalf("compute queue must have completed its dependency: got %d, want >= %d",
			compute.Completed(), tc.Value)
	}
}

func TestWaitIdleWaitsForLastSubmission(t *testing.T) {
	q := newTestQueue(t, sync.Graphics)
	for i := 0; i < 3; i++ {
		if _, err := q.Submit(sync.SubmitInfo{}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if err := q.WaitIdle(); err != nil {
		t.Fatalf("wait idle: %v", err)
	}
	if q.Completed() != q.Submitted() {
		t.Fatalf("completed %d != submitted %d after WaitIdle", q.Completed(), q.Submitted())
	}
}

func TestZeroTimelineWaitIsNoOp(t *testing.T) {
	q := newTestQueue(t, sync.Graphics)
	ok, err := q.Wait(sync.Timeline{}, 0)
	if err != nil || !ok {
		t.Fatalf("waiting on the zero timeline should trivially succeed: ok=%v err=%v", ok, err)
	}
}

func TestSubmitAndWaitAfterDestroyReturnErrNoFence(t *testing.T) {
	q := newTestQueue(t, sync.Graphics)
	q.Destroy()

	if _, err := q.Submit(sync.SubmitInfo{}); err != sync.ErrNoFence {
		t.Fatalf("submit after destroy: err = %v, want ErrNoFence", err)
	}
	if _, err := q.Wait(sync.Timeline{Value: 1}, time.Second); err != sync.ErrNoFence {
		t.Fatalf("wait after destroy: err = %v, want ErrNoFence", err)
	}
	if q.Poll(sync.Timeline{Value: 1}) {
		t.Fatalf("poll after destroy should report not-yet-completed")
	}
}

var _ hal.Queue = (*noop.Queue)(nil)
