package indicators

import (
	"fmt"

	"hedge-analyzer/internal/models"
)

// SMA calculates Simple Moving Average.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator.
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

func (s *SMA) Name() string {
	return fmt.Sprintf("SMA_%d", s.period)
}

func (s *SMA) Period() int {
	return s.period
}

func (s *SMA) Calculate(points []models.PricePoint) ([]float64, error) {
	if s.period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(points) < s.period {
		return nil, ErrInsufficientData
	}

	result := make([]float64, len(points))
	closes := closePrices(points)

	for i := s.period - 1; i < len(points); i++ {
		result[i] = mean(closes[i-s.period+1 : i+1])
	}

	return result, nil
}

// EMA calculates Exponential Moving Average.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator.
func NewEMA(period int) *EMA {
	return &EMA{period: period}
}

func (e *EMA) Name() string {
	return fmt.Sprintf("EMA_%d", e.period)
}

func (e *EMA) Period() int {
	return e.period
}

func (e *EMA) Calculate(points []models.PricePoint) ([]float64, error) {
	if e.period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(points) < e.period {
		return nil, ErrInsufficientData
	}

	result := make([]float64, len(points))
	closes := closePrices(points)
	multiplier := 2.0 / float64(e.period+1)

	// Seed with the SMA of the first period.
	result[e.period-1] = mean(closes[:e.period])
	for i := e.period; i < len(points); i++ {
		result[i] = (closes[i]-result[i-1])*multiplier + result[i-1]
	}

	return result, nil
}
