package taueff

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places labelled major ticks on round values and unlabelled
// minor ticks between them, aiming for about NSuggestedTicks labels.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	nTicks := t.NSuggestedTicks
	if nTicks < 2 {
		nTicks = 4
	}
	if !(max > min) {
		return nil
	}

	step := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / step
	for n < float64(nTicks-1) {
		step /= 10
		n = (max - min) / step
	}

	mult := int(n / float64(nTicks-1))
	switch mult {
	case 7:
		mult = 6
	case 9:
		mult = 8
	}
	major := float64(mult) * step
	prec := int(math.Ceil(math.Log10(math.Max(math.Abs(min), math.Abs(max))+major)) - math.Floor(math.Log10(major)))

	var ticks []plot.Tick
	first := math.Floor(min/major) * major
	for k := 0; first+float64(k)*major <= max; k++ {
		v := first + float64(k)*major
		if v < min {
			continue
		}
		r := roundTo(v, prec)
		ticks = append(ticks, plot.Tick{Value: r, Label: strconv.FormatFloat(r, 'g', -1, 64)})
	}

	minor := major / 2
	switch mult {
	case 3, 6:
		minor = major / 3
	case 5:
		minor = major / 5
	}
	nMajor := len(ticks)
	first = math.Floor(min/minor) * minor
	for k := 0; first+float64(k)*minor <= max; k++ {
		v := first + float64(k)*minor
		if v < min || hasTick(ticks[:nMajor], v, minor/1e3) {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

func hasTick(ticks []plot.Tick, v, tol float64) bool {
	for _, t := range ticks {
		if math.Abs(t.Value-v) < tol {
			return true
		}
	}
	return false
}

// roundTo rounds x to prec decimal places, never returning negative zero.
func roundTo(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	scaled := x * pow
	if math.IsInf(scaled, 0) {
		return x
	}
	r := math.Round(scaled) / pow
	if r == 0 {
		return 0
	}
	return r
}
