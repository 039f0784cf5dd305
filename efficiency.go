package taueff

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/stat/distuv"
)

// OneSigma is the central confidence level of a one standard deviation
// Gaussian interval.
const OneSigma = 0.682689492137

// EffPoint is the efficiency measured in one bin.
type EffPoint struct {
	XLow, XHigh float64
	Pass, Total float64
	Eff         float64
	Low, High   float64 // interval bounds, not distances from Eff
}

// ClopperPearson returns the exact binomial confidence interval at the given
// level for pass successes out of total trials.
func ClopperPearson(pass, total, level float64) (low, high float64) {
	if total <= 0 {
		return 0, 1
	}
	alpha := (1 - level) / 2
	if pass > 0 {
		low = distuv.Beta{Alpha: pass, Beta: total - pass + 1}.Quantile(alpha)
	}
	high = 1
	if pass < total {
		high = distuv.Beta{Alpha: pass + 1, Beta: total - pass}.Quantile(1 - alpha)
	}
	return low, high
}

// Efficiency divides num by den bin by bin. Both histograms must share the
// same binning and num must be a subset of den. Bins with no denominator
// entries are reported with a zero efficiency and the full [0, 1] interval.
func Efficiency(num, den *hbook.H1D, level float64) ([]EffPoint, error) {
	nbins := den.Len()
	if num.Len() != nbins {
		return nil, fmt.Errorf("efficiency: binning mismatch (%d != %d)", num.Len(), nbins)
	}

	points := make([]EffPoint, nbins)
	for i := range points {
		nb := num.Binning.Bins[i]
		db := den.Binning.Bins[i]
		if nb.XMin() != db.XMin() || nb.XMax() != db.XMax() {
			return nil, fmt.Errorf("efficiency: bin %d edges differ", i)
		}

		pass, total := nb.SumW(), db.SumW()
		if pass > total {
			return nil, fmt.Errorf("efficiency: bin %d has %v passing out of %v", i, pass, total)
		}

		pt := EffPoint{XLow: db.XMin(), XHigh: db.XMax(), Pass: pass, Total: total}
		if total > 0 {
			pt.Eff = pass / total
		}
		pt.Low, pt.High = ClopperPearson(math.Round(pass), math.Round(total), level)
		points[i] = pt
	}
	return points, nil
}
