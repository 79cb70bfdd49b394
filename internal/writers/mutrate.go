// internal/writers/mutrate.go
package writers

import (
	"fmt"
	"io"

	"seqlab-core/bootstrap"
	"seqlab/internal/jsonutil"
	"seqlab/pkg/api"
)

// WriteMutationRateText prints the observed mean and its interval in
// the two-line report format.
func WriteMutationRateText(w io.Writer, est bootstrap.Estimate) error {
	_, err := fmt.Fprintf(w,
		"Mean mutation rate observed: %.2e\n%g%% Confidence Interval: [%.1e, %.1e]\n",
		est.Mean, est.Confidence*100, est.Interval.Lower, est.Interval.Upper,
	)
	return err
}

// ToAPIMutationRate converts an estimate to the stable wire schema (v1).
func ToAPIMutationRate(est bootstrap.Estimate, observations, resamples int) api.MutationRateV1 {
	return api.MutationRateV1{
		MeanRate:     est.Mean,
		Confidence:   est.Confidence,
		CILower:      est.Interval.Lower,
		CIUpper:      est.Interval.Upper,
		Observations: observations,
		Resamples:    resamples,
	}
}

// WriteMutationRateJSON writes the v1 schema, pretty-indented.
func WriteMutationRateJSON(w io.Writer, est bootstrap.Estimate, observations, resamples int) error {
	return jsonutil.EncodePretty(w, ToAPIMutationRate(est, observations, resamples))
}
