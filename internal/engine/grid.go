package engine

import (
	apperrors "hedge-analyzer/internal/errors"
)

// PriceGrid builds points evenly spaced values spanning
// [spot·lowFrac, spot·highFrac] inclusive.
func PriceGrid(spot, lowFrac, highFrac float64, points int) ([]float64, error) {
	if err := validateGrid(spot, lowFrac, highFrac, points); err != nil {
		return nil, err
	}

	low := spot * lowFrac
	high := spot * highFrac
	step := (high - low) / float64(points-1)

	grid := make([]float64, points)
	for i := range grid {
		grid[i] = low + step*float64(i)
	}
	// Land exactly on the upper bound regardless of rounding.
	grid[points-1] = high
	return grid, nil
}

func validateGrid(spot, lowFrac, highFrac float64, points int) error {
	switch {
	case spot <= 0:
		return &apperrors.InvalidRangeError{Spot: spot, LowFrac: lowFrac, HighFrac: highFrac, Points: points, Reason: "non-positive spot"}
	case lowFrac >= highFrac:
		return &apperrors.InvalidRangeError{Spot: spot, LowFrac: lowFrac, HighFrac: highFrac, Points: points, Reason: "inverted grid bounds"}
	case points < 2:
		return &apperrors.InvalidRangeError{Spot: spot, LowFrac: lowFrac, HighFrac: highFrac, Points: points, Reason: "fewer than 2 grid points"}
	}
	return nil
}
