package async

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestPromiseReturnsValue(t *testing.T) {
	p := Promise(func() int { return 42 })
	if got := <-p; got != 42 {
		t.Fatalf("got %d want 42", got)
	}
}

func TestGatherNPreservesOrder(t *testing.T) {
	c1 := Promise(func() int { time.Sleep(30 * time.Millisecond); return 1 })
	c2 := Promise(func() int { return 2 })
	c3 := Promise(func() int { time.Sleep(10 * time.Millisecond); return 3 })

	got := <-GatherN(c1, c2, c3)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got, want)
		}
	}
}

func TestRunBoundedPreservesOrderAndCompletesAll(t *testing.T) {
	items := []int{5, 4, 3, 2, 1, 0}
	results := RunBounded(items, 2, func(n int) int {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * n
	})
	for i, item := range items {
		if results[i] != item*item {
			t.Fatalf("index %d: got %d want %d", i, results[i], item*item)
		}
	}
}

func TestRunBoundedRespectsLimit(t *testing.T) {
	var current, max int32
	items := make([]int, 10)

	RunBounded(items, 3, func(int) struct{} {
		n := atomic.AddInt32(&current, 1)
		for {
			m := atomic.LoadInt32(&max)
			if n <= m || atomic.CompareAndSwapInt32(&max, m, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt32(&current, -1)
		return struct{}{}
	})

	if max > 3 {
		t.Fatalf("observed concurrency %d exceeds limit 3", max)
	}
}

func TestRunBoundedZeroLimitMeansUnbounded(t *testing.T) {
	items := []int{1, 2, 3}
	results := RunBounded(items, 0, func(n int) int { return n + 1 })
	want := []int{2, 3, 4}
	for i := range want {
		if results[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, results, want)
		}
	}
}

func TestRunBoundedEmptyInput(t *testing.T) {
	results := RunBounded([]int{}, 2, func(n int) int { return n })
	if len(results) != 0 {
		t.Fatalf("expected empty result slice, got %v", results)
	}
}
