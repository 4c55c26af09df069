package engine

import (
	"sort"
	"time"

	apperrors "hedge-analyzer/internal/errors"
	"hedge-analyzer/internal/models"
)

// minReturnObservations is the smallest aligned return sample that beta
// can be estimated from.
const minReturnObservations = 2

// AlignSeries aligns two date-stamped value series onto the union of
// their dates. A date present in only one series forward-fills the last
// observed value of the other, so calendar gaps never read as a drop to
// zero. Dates before both series have started are skipped. The returned
// slices are parallel and equal length.
func AlignSeries(a, b []models.ValuePoint) ([]float64, []float64) {
	amap := make(map[time.Time]float64, len(a))
	bmap := make(map[time.Time]float64, len(b))
	dateSet := make(map[time.Time]bool, len(a)+len(b))
	for _, p := range a {
		amap[p.Date] = p.Value
		dateSet[p.Date] = true
	}
	for _, p := range b {
		bmap[p.Date] = p.Value
		dateSet[p.Date] = true
	}

	dates := make([]time.Time, 0, len(dateSet))
	for d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var av, bv []float64
	var lastA, lastB float64
	var haveA, haveB bool
	for _, d := range dates {
		if v, ok := amap[d]; ok {
			lastA, haveA = v, true
		}
		if v, ok := bmap[d]; ok {
			lastB, haveB = v, true
		}
		if haveA && haveB {
			av = append(av, lastA)
			bv = append(bv, lastB)
		}
	}
	return av, bv
}

// Returns computes simple period returns v[i]/v[i-1] − 1. A zero prior
// value has no defined return and contributes 0 rather than an infinity.
func Returns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			returns[i-1] = 0
			continue
		}
		returns[i-1] = values[i]/values[i-1] - 1
	}
	return returns
}

// PortfolioBeta estimates the sensitivity of portfolio returns to index
// returns: covariance over variance of the aligned return samples. A
// zero-variance index carries no hedge signal and yields beta 0.
func PortfolioBeta(portfolio, index []models.ValuePoint) (float64, error) {
	pv, iv := AlignSeries(portfolio, index)

	portfolioReturns := Returns(pv)
	indexReturns := Returns(iv)
	if len(indexReturns) < minReturnObservations {
		return 0, apperrors.NewInsufficientDataError(minReturnObservations, len(indexReturns))
	}

	indexVariance := variance(indexReturns)
	if indexVariance == 0 {
		return 0, nil
	}
	return covariance(portfolioReturns, indexReturns) / indexVariance, nil
}

// mean calculates the arithmetic mean of a slice of float64.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}

// variance calculates the population variance of a slice of float64.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var total float64
	for _, v := range values {
		diff := v - m
		total += diff * diff
	}
	return total / float64(len(values))
}

// covariance calculates the population covariance of two equal-length
// samples.
func covariance(a, b []float64) float64 {
	n := len(a)
	if n == 0 || n != len(b) {
		return 0
	}
	ma := mean(a)
	mb := mean(b)
	var total float64
	for i := 0; i < n; i++ {
		total += (a[i] - ma) * (b[i] - mb)
	}
	return total / float64(n)
}
