package orrery

import (
	"fmt"
	"sync"

	"github.com/go-kit/kit/log"
)

// Tracker is the fail-safe façade over the pure position and geometry
// functions, for callers that render at frame rate and must never crash on a
// malformed body. Every failure degrades to the origin and is reported
// through the injected logger; a non-origin result therefore does not imply
// valid input. Paths and perihelia are memoized per body since elements are
// static for the lifetime of a catalog; positions never are.
//
// A Tracker is safe for concurrent use.
type Tracker struct {
	logger log.Logger

	mu        sync.RWMutex
	paths     map[string][][]float64
	perihelia map[string][]float64
}

// NewTracker returns a tracker logging through the provided logger. A nil
// logger discards all diagnostics.
func NewTracker(logger log.Logger) *Tracker {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Tracker{
		logger:    logger,
		paths:     make(map[string][][]float64),
		perihelia: make(map[string][]float64),
	}
}

// Position returns the heliocentric position of the body at the provided
// Julian Day, or the origin if the computation fails.
func (t *Tracker) Position(b Body, jd float64) []float64 {
	R, err := Position(b.Elements, jd)
	if err != nil {
		t.logger.Log("op", "position", "body", b.Name, "jd", jd, "err", err)
		return origin()
	}
	return R
}

// RelativePosition returns the vector from body a to body b at the provided
// Julian Day, or the origin if either position fails.
func (t *Tracker) RelativePosition(a, b Body, jd float64) []float64 {
	R, err := RelativePosition(a.Elements, b.Elements, jd)
	if err != nil {
		t.logger.Log("op", "relative", "from", a.Name, "to", b.Name, "jd", jd, "err", err)
		return origin()
	}
	return R
}

// Path returns the closed orbital polyline of the body sampled with the
// provided segment count. Results are memoized: the second call for the same
// body and segment count returns the cached polyline. On failure the loop
// degenerates to segments+1 origin points.
func (t *Tracker) Path(b Body, segments int) [][]float64 {
	key := fmt.Sprintf("%s/%d", b.Name, segments)
	t.mu.RLock()
	if path, ok := t.paths[key]; ok {
		t.mu.RUnlock()
		return path
	}
	t.mu.RUnlock()
	path, err := GeneratePath(b.Elements, segments)
	if err != nil {
		t.logger.Log("op", "path", "body", b.Name, "segments", segments, "err", err)
		if segments < 0 {
			segments = 0
		}
		path = make([][]float64, segments+1)
		for k := range path {
			path[k] = origin()
		}
	}
	t.mu.Lock()
	t.paths[key] = path
	t.mu.Unlock()
	return path
}

// Perihelion returns the memoized point of closest approach of the body, or
// the origin on failure.
func (t *Tracker) Perihelion(b Body) []float64 {
	t.mu.RLock()
	if pt, ok := t.perihelia[b.Name]; ok {
		t.mu.RUnlock()
		return pt
	}
	t.mu.RUnlock()
	pt, err := Perihelion(b.Elements)
	if err != nil {
		t.logger.Log("op", "perihelion", "body", b.Name, "err", err)
		pt = origin()
	}
	t.mu.Lock()
	t.perihelia[b.Name] = pt
	t.mu.Unlock()
	return pt
}
