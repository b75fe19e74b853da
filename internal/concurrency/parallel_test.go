package concurrency

import (
	"reflect"
	"sync/atomic"
	"testing"
)

func TestMapPreservesOrder(t *testing.T) {
	items := []int{5, 3, 8, 1, 9, 2}

	got := Map(items, 4, func(_ int, item int) int {
		return item * 10
	})

	want := []int{50, 30, 80, 10, 90, 20}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

func TestMapEmptyInput(t *testing.T) {
	got := Map(nil, 4, func(_ int, item int) int { return item })
	if got != nil {
		t.Errorf("results = %v, want nil", got)
	}
}

func TestMapBoundsWorkers(t *testing.T) {
	var active, peak int64

	items := make([]int, 100)

	Map(items, 3, func(_ int, item int) int {
		n := atomic.AddInt64(&active, 1)

		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}

		atomic.AddInt64(&active, -1)

		return item
	})

	if p := atomic.LoadInt64(&peak); p > 3 {
		t.Errorf("peak concurrent workers = %d, want at most 3", p)
	}
}

func TestMapNonPositiveWorkers(t *testing.T) {
	got := Map([]int{1, 2, 3}, 0, func(i int, item int) int {
		return i + item
	})

	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

func TestMapPassesIndex(t *testing.T) {
	got := Map([]string{"a", "b"}, 2, func(i int, _ string) int {
		return i
	})

	if !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("indexes = %v, want [0 1]", got)
	}
}
