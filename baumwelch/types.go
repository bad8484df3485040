// Package baumwelch defines training options and sentinel errors.
package baumwelch

import (
	"errors"
	"fmt"

	"github.com/KommuSoft/fsmarkov/cycles"
	"github.com/KommuSoft/fsmarkov/transition"
)

var (
	// ErrNilModel is returned when a nil *hmm.Model is supplied.
	ErrNilModel = errors.New("baumwelch: model is nil")

	// ErrNilGraph is returned when a nil *transition.Graph is supplied.
	ErrNilGraph = errors.New("baumwelch: graph is nil")

	// ErrSampleLength indicates a non-positive SampleLength.
	ErrSampleLength = errors.New("baumwelch: sample length must be > 0")

	// ErrSupportLength indicates a support vector whose length differs
	// from the graph size.
	ErrSupportLength = errors.New("baumwelch: support length mismatch")

	// ErrNegativeWeight indicates a negative entry in the support vector.
	ErrNegativeWeight = errors.New("baumwelch: negative support weight")

	// ErrAlphabet indicates the graph emits labels outside the model's
	// output alphabet.
	ErrAlphabet = errors.New("baumwelch: graph labels exceed model alphabet")

	// ErrMaxSweeps indicates a non-positive sweep budget passed to Train.
	ErrMaxSweeps = errors.New("baumwelch: max sweeps must be > 0")
)

// Options configures one training call.
type Options struct {
	// SampleLength is the number of labels taken from each walk. It must
	// be positive and should stay fixed across sweeps for the monotone
	// convergence guarantee to hold.
	SampleLength int
}

// DefaultOptions derives a SampleLength from the structure of g:
// MaxGroupDistance + 2·GlobalPeriod over the groups reachable from the
// positive entries of support (all groups when support is nil). The
// longest transient is always consumed plus two full periods, so every
// cyclic label pattern appears at least twice in the sample.
// Complexity: O(n).
func DefaultOptions(g *transition.Graph, support []float64) (Options, error) {
	if g == nil {
		return Options{}, fmt.Errorf("DefaultOptions: %w", ErrNilGraph)
	}

	a, err := cycles.Analyze(g)
	if err != nil {
		return Options{}, fmt.Errorf("DefaultOptions: %w", err)
	}

	period := a.GlobalPeriod()
	if support != nil {
		if period, err = a.GlobalPeriodFor(support); err != nil {
			return Options{}, fmt.Errorf("DefaultOptions: %w", err)
		}
	}

	return Options{SampleLength: a.MaxDistance() + 2*period}, nil
}
