package upload_test

import (
	"testing"
	"time"

	"github.com/gorhi/rhi/hal"
	"github.com/gorhi/rhi/hal/noop"
	"github.com/gorhi/rhi/rhi/sync"
	"github.com/gorhi/rhi/rhi/upload"
)

func newDeferredTestQueue(t *testing.T) *sync.CommandQueue {
	t.Helper()
	q, err := sync.New(sync.Transfer, &noop.Device{}, &noop.Queue{})
	if err != nil {
		t.Fatalf("sync.New: %v", err)
	}
	return q
}

func TestDeferredFlushIsNoOpWhenEmpty(t *testing.T) {
	device := &noop.Device{}
	q := newDeferredTestQueue(t)
	u := upload.NewDeferredUploader(device, q)
	defer u.Destroy()

	tl, err := u.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if !tl.IsZero() {
		t.Fatalf("expected zero timeline for an empty flush, got %+v", tl)
	}
}

func TestDeferredFlushSubmitsQueuedWrites(t *testing.T) {
	device := &noop.Device{}
	q := newDeferredTestQueue(t)
	u := upload.NewDeferredUploader(device, q)
	defer u.Destroy()

	dst, err := device.CreateBuffer(&hal.BufferDescriptor{Size: 8, MappedAtCreation: true})
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}

	u.UploadBuffer(dst, 0, []byte("deferred"))
	if got := u.Pending(); got != 1 {
		t.Fatalf("Pending() = %d, want 1", got)
	}

	tl, err := u.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if tl.IsZero() {
		t.Fatalf("expected a non-zero timeline after flushing queued writes")
	}
	if u.Pending() != 0 {
		t.Fatalf("Flush should drain the pending queue")
	}

	ok, err := q.Wait(tl, time.Second)
	if err != nil || !ok {
		t.Fatalf("wait on flushed timeline: ok=%v err=%v", ok, err)
	}
	u.Retire(q.Completed())
}
