// Package indicators provides technical indicator calculations over
// canonical price series, with parallel evaluation for multi-indicator
// chart overlays.
package indicators

import (
	"context"
	"fmt"
	"sync"

	"hedge-analyzer/internal/models"
)

// Indicator defines the interface for single-value technical indicators.
type Indicator interface {
	Name() string
	Calculate(points []models.PricePoint) ([]float64, error)
	Period() int
}

// Engine evaluates registered indicators over a series using a worker
// pool.
type Engine struct {
	workers    int
	indicators map[string]Indicator
	mu         sync.RWMutex
}

// NewEngine creates a new indicator engine with the specified number of
// workers.
func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = 4
	}
	return &Engine{
		workers:    workers,
		indicators: make(map[string]Indicator),
	}
}

// Register registers an indicator.
func (e *Engine) Register(ind Indicator) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.indicators[ind.Name()] = ind
}

// Calculate evaluates a specific indicator by name.
func (e *Engine) Calculate(ctx context.Context, name string, points []models.PricePoint) ([]float64, error) {
	e.mu.RLock()
	ind, ok := e.indicators[name]
	e.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("indicator %s not found", name)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
		return ind.Calculate(points)
	}
}

// CalculateAll evaluates all registered indicators in parallel.
// Indicators that error (typically from insufficient history) are
// omitted from the result.
func (e *Engine) CalculateAll(ctx context.Context, points []models.PricePoint) (map[string][]float64, error) {
	e.mu.RLock()
	indicators := make([]Indicator, 0, len(e.indicators))
	for _, ind := range e.indicators {
		indicators = append(indicators, ind)
	}
	e.mu.RUnlock()

	results := make(map[string][]float64)
	var mu sync.Mutex
	var wg sync.WaitGroup

	work := make(chan Indicator, len(indicators))

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ind := range work {
				select {
				case <-ctx.Done():
					return
				default:
					values, err := ind.Calculate(points)
					if err == nil {
						mu.Lock()
						results[ind.Name()] = values
						mu.Unlock()
					}
				}
			}
		}()
	}

	for _, ind := range indicators {
		work <- ind
	}
	close(work)

	wg.Wait()

	return results, nil
}

// List returns the names of all registered indicators.
func (e *Engine) List() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.indicators))
	for name := range e.indicators {
		names = append(names, name)
	}
	return names
}

// DefaultEngine returns an engine loaded with the indicators the
// dashboard charts: 20/50-day SMA, 20-day EMA, 14-day RSI.
func DefaultEngine() *Engine {
	e := NewEngine(4)
	e.Register(NewSMA(20))
	e.Register(NewSMA(50))
	e.Register(NewEMA(20))
	e.Register(NewRSI(14))
	return e
}
