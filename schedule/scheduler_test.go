package schedule

import (
	"sync/atomic"
	"testing"
)

func TestParallelForRunsEachIndexOnce(t *testing.T) {
	const n = 17
	var seen [n]int32
	ParallelFor(n, func(idx int) {
		atomic.AddInt32(&seen[idx], 1)
	})
	for i, v := range seen {
		if v != 1 {
			t.Errorf("index %d ran %d times, want 1", i, v)
		}
	}
}

func TestParallelForSingleRunsInline(t *testing.T) {
	ran := false
	ParallelFor(1, func(idx int) {
		if idx != 0 {
			t.Errorf("idx = %d, want 0", idx)
		}
		ran = true
	})
	if !ran {
		t.Fatalf("body never ran")
	}
}

func TestParallelForZeroIsNoop(t *testing.T) {
	ParallelFor(0, func(idx int) {
		t.Fatalf("body should not run for n=0")
	})
}

func TestForEachRowBandCoversEveryRowExactlyOnce(t *testing.T) {
	height := 101
	var coverage [101]int32
	ForEachRowBand(256, height, FixedPolicy(8), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			atomic.AddInt32(&coverage[y], 1)
		}
	})
	for y, v := range coverage {
		if v != 1 {
			t.Errorf("row %d covered %d times, want 1", y, v)
		}
	}
}

func TestForEachRowBandSinglePolicyIsOneBand(t *testing.T) {
	var calls int
	ForEachRowBand(64, 64, SinglePolicy(), func(y0, y1 int) {
		calls++
		if y0 != 0 || y1 != 64 {
			t.Errorf("band = [%d,%d), want [0,64)", y0, y1)
		}
	})
	if calls != 1 {
		t.Errorf("body called %d times, want 1", calls)
	}
}

func TestResolveWorkersClampsToAvailableCores(t *testing.T) {
	p := FixedPolicy(1 << 20)
	if got := p.ResolveWorkers(10, 10); got < 1 {
		t.Errorf("ResolveWorkers = %d, want >= 1", got)
	}
}

func TestAdaptiveReservePolicyLeavesCoresFree(t *testing.T) {
	p := AdaptiveReservePolicy(1)
	full := AdaptivePolicy()
	got := p.ResolveWorkers(4096, 4096)
	fullWorkers := full.ResolveWorkers(4096, 4096)
	if fullWorkers > 1 && got >= fullWorkers {
		t.Errorf("reserve policy workers=%d should be < full adaptive workers=%d", got, fullWorkers)
	}
}
