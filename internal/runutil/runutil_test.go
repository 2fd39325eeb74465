package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 means all CPUs → want %d, got %d", runtime.NumCPU(), got)
	}
	if got := EffectiveThreads(-4); got != runtime.NumCPU() {
		t.Fatalf("negative means all CPUs → want %d, got %d", runtime.NumCPU(), got)
	}
}

func TestBufSize(t *testing.T) {
	if got := BufSize(1); got != 16 {
		t.Fatalf("floor is 16, got %d", got)
	}
	if got := BufSize(8); got != 32 {
		t.Fatalf("expect 8*4=32, got %d", got)
	}
}

func TestThreadWarnings(t *testing.T) {
	if w := ThreadWarnings(4, true, 10); len(w) != 1 {
		t.Fatalf("lookup with threads should warn, got %v", w)
	}
	if w := ThreadWarnings(8, false, 2); len(w) != 1 {
		t.Fatalf("idle workers should warn, got %v", w)
	}
	if w := ThreadWarnings(1, false, 2); len(w) != 0 {
		t.Fatalf("serial run should not warn, got %v", w)
	}
	if w := ThreadWarnings(4, false, 100); len(w) != 0 {
		t.Fatalf("busy pool should not warn, got %v", w)
	}
}
