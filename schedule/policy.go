// Package schedule partitions filter output into independent row bands
// for data-parallel execution and provides the ThreadingPolicy that
// picks how many workers to use.
//
// Goroutine lifecycle is managed with golang.org/x/sync/errgroup
// instead of a hand-rolled sync.WaitGroup, generalizing the teacher's
// blurWorker/wg.Wait() pattern into a single reusable helper.
package schedule

import "runtime"

// ThreadingPolicyKind is the closed set of threading policies.
type ThreadingPolicyKind int

const (
	Single ThreadingPolicyKind = iota
	Adaptive
	AdaptiveReserve
	Fixed
)

// ThreadingPolicy selects how many workers a call may use. Adaptive and
// AdaptiveReserve derive the count from the image size at dispatch
// time; Fixed and Single are constant.
type ThreadingPolicy struct {
	Kind    ThreadingPolicyKind
	Reserve int // used by AdaptiveReserve: cores held back for other work
	Fixed   int // used by Fixed: exact worker count
}

// SinglePolicy runs everything on the calling goroutine.
func SinglePolicy() ThreadingPolicy { return ThreadingPolicy{Kind: Single} }

// AdaptivePolicy scales worker count with image area.
func AdaptivePolicy() ThreadingPolicy { return ThreadingPolicy{Kind: Adaptive} }

// AdaptiveReservePolicy scales worker count with image area, leaving
// reserve cores unused.
func AdaptiveReservePolicy(reserve int) ThreadingPolicy {
	return ThreadingPolicy{Kind: AdaptiveReserve, Reserve: reserve}
}

// FixedPolicy always uses exactly n workers.
func FixedPolicy(n int) ThreadingPolicy { return ThreadingPolicy{Kind: Fixed, Fixed: n} }

// adaptiveWorkUnit is the area (in pixels) assigned to each adaptive
// worker before another one is recruited.
const adaptiveWorkUnit = 65536

// ResolveWorkers returns the number of workers policy implies for an
// image of the given width/height, clamped to [1, availableCores].
func (p ThreadingPolicy) ResolveWorkers(width, height int) int {
	cores := runtime.GOMAXPROCS(0)
	switch p.Kind {
	case Single:
		return 1
	case Fixed:
		return clamp(p.Fixed, 1, cores)
	case AdaptiveReserve:
		avail := cores - p.Reserve
		if avail < 1 {
			avail = 1
		}
		return clamp((width*height)/adaptiveWorkUnit, 1, avail)
	case Adaptive:
		fallthrough
	default:
		return clamp((width*height)/adaptiveWorkUnit, 1, cores)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
