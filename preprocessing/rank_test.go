package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestRank(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		want []float64
	}{
		{name: "empty", x: nil, want: []float64{}},
		{name: "single", x: []float64{42}, want: []float64{1}},
		{name: "already sorted", x: []float64{1, 2, 3}, want: []float64{1, 2, 3}},
		{name: "reversed", x: []float64{3, 2, 1}, want: []float64{3, 2, 1}},
		{name: "ties share mean rank", x: []float64{10, 20, 20, 30}, want: []float64{1, 2.5, 2.5, 4}},
		{name: "unsorted ties", x: []float64{6, 5, 6}, want: []float64{2.5, 1, 2.5}},
		{name: "all equal", x: []float64{7, 7, 7, 7}, want: []float64{2.5, 2.5, 2.5, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.x)
			if len(got) != len(tt.want) {
				t.Fatalf("Rank() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-12 {
					t.Errorf("Rank()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	x := []float64{3, 1, 2}
	Rank(x)
	if x[0] != 3 || x[1] != 1 || x[2] != 2 {
		t.Errorf("Rank() modified its input: %v", x)
	}
}

func TestExtent(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 0.2, -0.4,
		0.2, 1, math.NaN(),
		-0.4, math.Inf(1), 1,
	})

	tests := []struct {
		name    string
		skip    func(i, j int) bool
		wantMin float64
		wantMax float64
		wantOK  bool
	}{
		{name: "no mask", wantMin: -0.4, wantMax: 1, wantOK: true},
		{
			name:    "off diagonal only",
			skip:    func(i, j int) bool { return i == j },
			wantMin: -0.4, wantMax: 0.2, wantOK: true,
		},
		{
			name:   "everything masked",
			skip:   func(i, j int) bool { return true },
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max, ok := Extent(m, tt.skip)
			if ok != tt.wantOK {
				t.Fatalf("Extent() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("Extent() = (%v, %v), want (%v, %v)", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}
