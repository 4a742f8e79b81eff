package vector

import (
	"math"
	"testing"
)

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0, 0}, []float32{1, 0, 0}, 0},
		{"orthogonal unit", []float32{1, 0}, []float32{0, 1}, 2},
		{"opposite unit", []float32{1, 0}, []float32{-1, 0}, 4},
		{"simple", []float32{1, 2}, []float32{4, 6}, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SquaredDistance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SquaredDistance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	if s := Similarity(0); s != 1.0 {
		t.Errorf("Similarity(0) = %v, want 1", s)
	}
	if s := Similarity(1); math.Abs(s-0.5) > 1e-12 {
		t.Errorf("Similarity(1) = %v, want 0.5", s)
	}
	if Similarity(4) >= Similarity(2) {
		t.Error("similarity must decrease with distance")
	}
}
