package cli

import (
	"fmt"
	"math"
	"strings"
)

const (
	chartWidth  = 64
	chartHeight = 16
)

// ChartSeries is one line on an ASCII payoff chart.
type ChartSeries struct {
	Label  string
	Values []float64
	Marker rune
}

// RenderPayoffChart draws profit/loss series over a price grid as an
// ASCII chart with a zero axis, the terminal stand-in for the
// dashboard's payoff plot.
func RenderPayoffChart(o *Output, prices []float64, series ...ChartSeries) {
	if len(prices) < 2 || len(series) == 0 {
		return
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	// Keep the zero axis on the canvas.
	lo = math.Min(lo, 0)
	hi = math.Max(hi, 0)

	canvas := make([][]rune, chartHeight)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", chartWidth))
	}

	rowFor := func(v float64) int {
		frac := (v - lo) / (hi - lo)
		row := chartHeight - 1 - int(math.Round(frac*float64(chartHeight-1)))
		if row < 0 {
			row = 0
		}
		if row >= chartHeight {
			row = chartHeight - 1
		}
		return row
	}

	zeroRow := rowFor(0)
	for col := 0; col < chartWidth; col++ {
		canvas[zeroRow][col] = '─'
	}

	for _, s := range series {
		for col := 0; col < chartWidth; col++ {
			idx := col * (len(s.Values) - 1) / (chartWidth - 1)
			canvas[rowFor(s.Values[idx])][col] = s.Marker
		}
	}

	for i, row := range canvas {
		label := "        "
		switch i {
		case 0:
			label = fmt.Sprintf("%7.0f ", hi)
		case zeroRow:
			label = "      0 "
		case chartHeight - 1:
			label = fmt.Sprintf("%7.0f ", lo)
		}
		o.Printf("%s│%s\n", label, string(row))
	}
	o.Printf("        └%s\n", strings.Repeat("─", chartWidth))
	o.Printf("        %-10.2f%*s%10.2f\n", prices[0], chartWidth-18, "", prices[len(prices)-1])

	legend := make([]string, 0, len(series))
	for _, s := range series {
		legend = append(legend, fmt.Sprintf("%c %s", s.Marker, s.Label))
	}
	o.Printf("        %s\n", strings.Join(legend, "   "))
}
