// Package curve turns magnitude responses into drawable response curves.
package curve

import (
	"math"
	"strings"
)

// Display range of the response curve in dB.
const (
	MinDB = -24.0
	MaxDB = 24.0
)

// Point is one vertex of a response polyline.
type Point struct {
	X, Y float64
}

// Map linearly maps db from [MinDB, MaxDB] onto [outMin, outMax]. Values
// outside the display range extrapolate.
func Map(db, outMin, outMax float64) float64 {
	return outMin + (db-MinDB)/(MaxDB-MinDB)*(outMax-outMin)
}

// Points returns one vertex per magnitude, starting at x and advancing one
// unit per point. bottom receives MinDB and top receives MaxDB.
func Points(mags []float64, x, top, bottom float64) []Point {
	pts := make([]Point, len(mags))
	for i, db := range mags {
		pts[i] = Point{X: x + float64(i), Y: Map(db, bottom, top)}
	}
	return pts
}

// Plot renders mags as a text chart of the given number of rows, one column
// per magnitude. Row 0 is MaxDB and the last row is MinDB; values outside
// the range are pinned to the edge rows. The 0 dB row is drawn as a rule.
func Plot(mags []float64, rows int) []string {
	if rows < 2 || len(mags) == 0 {
		return nil
	}

	grid := make([][]byte, rows)
	zero := rowOf(0, rows)
	for r := range grid {
		fill := byte(' ')
		if r == zero {
			fill = '-'
		}
		grid[r] = []byte(strings.Repeat(string(fill), len(mags)))
	}

	for col, db := range mags {
		grid[rowOf(db, rows)][col] = '*'
	}

	out := make([]string, rows)
	for r := range grid {
		out[r] = string(grid[r])
	}
	return out
}

func rowOf(db float64, rows int) int {
	if math.IsNaN(db) {
		db = MinDB
	}
	y := Map(db, float64(rows-1), 0)
	return int(math.Round(math.Min(math.Max(y, 0), float64(rows-1))))
}

// Resample reduces or stretches mags to width columns by nearest-point
// selection.
func Resample(mags []float64, width int) []float64 {
	if width <= 0 || len(mags) == 0 {
		return nil
	}
	out := make([]float64, width)
	for i := range out {
		out[i] = mags[i*len(mags)/width]
	}
	return out
}
