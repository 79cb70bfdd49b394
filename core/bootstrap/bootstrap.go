// core/bootstrap/bootstrap.go
package bootstrap

import (
	"errors"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoObservations = errors.New("no mutation observations")
	ErrBadParameters  = errors.New("genome length and generations must be > 0")
)

// Rate converts one mutation count into a per-site per-generation rate.
func Rate(mutations, genomeLength, generations int) float64 {
	return float64(mutations) / (float64(genomeLength) * float64(generations))
}

// Interval is a two-sided confidence interval.
type Interval struct {
	Lower, Upper float64
}

// Estimate is the observed mean rate with its bootstrap interval.
type Estimate struct {
	Mean       float64
	Confidence float64
	Interval   Interval
}

// CI estimates the mean mutation rate and its bootstrap confidence
// interval. Each resample draws len(mutations) counts with replacement
// from the observed counts; the per-resample statistic is the mean of
// the resampled rates. Bounds are the (1-c)/2 and 1-(1-c)/2 quantiles
// of the bootstrap means, linearly interpolated as numpy does.
func CI(mutations []int, genomeLength, generations, resamples int, confidence float64, rng *rand.Rand) (Estimate, error) {
	if len(mutations) == 0 {
		return Estimate{}, ErrNoObservations
	}
	if genomeLength <= 0 || generations <= 0 {
		return Estimate{}, ErrBadParameters
	}
	if resamples <= 0 {
		return Estimate{}, errors.New("bootstrap resamples must be > 0")
	}
	if confidence <= 0 || confidence >= 1 {
		return Estimate{}, errors.New("confidence must be in (0,1)")
	}

	observed := make([]float64, len(mutations))
	for i, m := range mutations {
		observed[i] = Rate(m, genomeLength, generations)
	}

	means := make([]float64, resamples)
	sample := make([]float64, len(mutations))
	for r := 0; r < resamples; r++ {
		for i := range sample {
			sample[i] = observed[rng.Intn(len(observed))]
		}
		means[r] = stat.Mean(sample, nil)
	}
	sort.Float64s(means)

	alpha := 1 - confidence
	return Estimate{
		Mean:       stat.Mean(observed, nil),
		Confidence: confidence,
		Interval: Interval{
			Lower: stat.Quantile(alpha/2, stat.LinInterp, means, nil),
			Upper: stat.Quantile(1-alpha/2, stat.LinInterp, means, nil),
		},
	}, nil
}
