package tables

import (
	"testing"

	"github.com/tsawler/grille/model"
)

func TestNearest(t *testing.T) {
	columns := []model.ZoneColumn{
		{Code: "100", CenterX: 100},
		{Code: "200", CenterX: 200},
		{Code: "300", CenterX: 300},
	}

	tests := []struct {
		name     string
		x        float64
		wantCode string
		wantDist float64
	}{
		{"exact center", 200, "200", 0},
		{"left of first", 10, "100", 90},
		{"right of last", 390, "300", 90},
		{"closer to right neighbour", 160, "200", 40},
		{"tie goes to leftmost", 150, "100", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, dist, ok := Nearest(tt.x, columns)
			if !ok {
				t.Fatal("Expected a column")
			}
			if col.Code != tt.wantCode {
				t.Errorf("Expected column %s, got %s", tt.wantCode, col.Code)
			}
			if dist != tt.wantDist {
				t.Errorf("Expected distance %v, got %v", tt.wantDist, dist)
			}
		})
	}
}

func TestNearest_NoColumns(t *testing.T) {
	if _, _, ok := Nearest(100, nil); ok {
		t.Error("Expected no match without columns")
	}
}

func TestAssign_Radius(t *testing.T) {
	columns := []model.ZoneColumn{{Code: "100-Ia", CenterX: 220}, {Code: "101-Ib", CenterX: 320}}

	tests := []struct {
		name   string
		x      float64
		radius float64
		want   string
		ok     bool
	}{
		{"inside radius", 226, 45, "100-Ia", true},
		{"on the radius", 265, 45, "100-Ia", true},
		{"beyond radius", 100, 45, "", false},
		{"beyond radius on the right", 380, 55, "", false},
		{"margin radius reaches further", 370, 55, "101-Ib", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, ok := Assign(tt.x, columns, tt.radius)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if col.Code != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, col.Code)
			}
		})
	}
}
