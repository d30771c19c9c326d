package tables

import (
	"math"

	"github.com/tsawler/grille/model"
)

// Nearest returns the column whose center is closest to x, and that
// distance. Columns are scanned in slice order and only a strictly smaller
// distance replaces the current best, so on a tie the earlier column wins;
// with header columns (sorted by CenterX) that is the leftmost one.
// The last result is false when columns is empty.
func Nearest(x float64, columns []model.ZoneColumn) (model.ZoneColumn, float64, bool) {
	if len(columns) == 0 {
		return model.ZoneColumn{}, math.Inf(1), false
	}

	best := columns[0]
	bestDist := model.DistanceX(columns[0].CenterX, x)
	for _, col := range columns[1:] {
		if d := model.DistanceX(col.CenterX, x); d < bestDist {
			best = col
			bestDist = d
		}
	}
	return best, bestDist, true
}

// Assign returns the nearest column to x if it lies within radius.
func Assign(x float64, columns []model.ZoneColumn, radius float64) (model.ZoneColumn, bool) {
	col, dist, ok := Nearest(x, columns)
	if !ok || dist > radius {
		return model.ZoneColumn{}, false
	}
	return col, true
}
