package snap

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name       string
		sizes      []float64
		gap        float64
		wantStarts []float64
		wantTotal  float64
	}{
		{
			name:       "NoGap",
			sizes:      []float64{10, 20, 30},
			wantStarts: []float64{0, 10, 30},
			wantTotal:  60,
		},
		{
			name:       "WithGap",
			sizes:      []float64{10, 10},
			gap:        5,
			wantStarts: []float64{0, 15},
			wantTotal:  25,
		},
		{
			name:       "NegativeSizeTreatedAsZero",
			sizes:      []float64{10, -4, 10},
			wantStarts: []float64{0, 10, 10},
			wantTotal:  20,
		},
		{
			name:      "Empty",
			sizes:     nil,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides := Layout(tt.sizes, tt.gap)
			if len(slides) != len(tt.sizes) {
				t.Fatalf("len = %d, want %d", len(slides), len(tt.sizes))
			}
			for i, want := range tt.wantStarts {
				if !almostEqual(slides[i].Start, want) {
					t.Errorf("slide %d start = %v, want %v", i, slides[i].Start, want)
				}
			}
			if got := ContentSize(slides); !almostEqual(got, tt.wantTotal) {
				t.Errorf("ContentSize = %v, want %v", got, tt.wantTotal)
			}
		})
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name     string
		sizes    []float64
		viewport float64
		align    Align
		want     []float64
	}{
		{
			name:     "StartAlignment",
			sizes:    []float64{300, 300, 300},
			viewport: 300,
			align:    AlignStart,
			want:     []float64{0, 300, 600},
		},
		{
			// Raw start minus (viewport−size)/2, clamped to [0, 80].
			name:     "CenterAlignment",
			sizes:    []float64{20, 20, 20, 20, 20},
			viewport: 20,
			align:    AlignCenter,
			want:     []float64{0, 20, 40, 60, 80},
		},
		{
			name:     "CenterSmallSlides",
			sizes:    []float64{10, 10, 10, 10},
			viewport: 20,
			align:    AlignCenter,
			want:     []float64{0, 5, 15, 20},
		},
		{
			name:     "EndAlignment",
			sizes:    []float64{10, 10, 10},
			viewport: 20,
			align:    AlignEnd,
			want:     []float64{0, 0, 10},
		},
		{
			name:     "ContentFitsViewport",
			sizes:    []float64{5, 5},
			viewport: 40,
			align:    AlignCenter,
			want:     []float64{0, 0},
		},
		{
			name:     "Empty",
			sizes:    nil,
			viewport: 40,
			align:    AlignCenter,
			want:     []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Points(Layout(tt.sizes, 0), tt.viewport, tt.align)
			if len(points) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(points), len(tt.want))
			}
			for i, want := range tt.want {
				if !almostEqual(points[i], want) {
					t.Errorf("point %d = %v, want %v", i, points[i], want)
				}
			}
		})
	}
}

func TestCenterFormula(t *testing.T) {
	// Unclamped interior points must equal rawStart − (viewport−size)/2.
	slides := Layout([]float64{30, 30, 30, 30, 30}, 0)
	viewport := 50.0
	points := Points(slides, viewport, AlignCenter)

	for i := 1; i < 4; i++ {
		want := slides[i].Start - (viewport-slides[i].Size)/2
		if !almostEqual(points[i], want) {
			t.Errorf("point %d = %v, want %v", i, points[i], want)
		}
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		offset float64
		want   int
	}{
		{"Exact", []float64{0, 300, 600}, 300, 1},
		{"Below", []float64{0, 300, 600}, 120, 0},
		{"Above", []float64{0, 300, 600}, 480, 2},
		{"TieBreaksLow", []float64{0, 300, 600}, 150, 0},
		{"NegativeOffset", []float64{0, 300, 600}, -90, 0},
		{"BeyondRange", []float64{0, 300, 600}, 9000, 2},
		{"Empty", nil, 42, 0},
		{"DuplicatePointsTieBreaksLow", []float64{0, 0, 5}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nearest(tt.points, tt.offset); got != tt.want {
				t.Errorf("Nearest(%v, %v) = %d, want %d", tt.points, tt.offset, got, tt.want)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in     string
		want   Align
		wantOK bool
	}{
		{"start", AlignStart, true},
		{"center", AlignCenter, true},
		{"end", AlignEnd, true},
		{"", "", false},
		{"middle", "", false},
		{"Center", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseAlign(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAlign(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, count, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{-3, 5, 0},
		{2, 0, 0},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := ClampIndex(tt.i, tt.count); got != tt.want {
			t.Errorf("ClampIndex(%d, %d) = %d, want %d", tt.i, tt.count, got, tt.want)
		}
	}
}

func TestRange(t *testing.T) {
	if got := Range(100, 30); !almostEqual(got, 70) {
		t.Errorf("Range(100, 30) = %v, want 70", got)
	}
	if got := Range(20, 30); !almostEqual(got, 0) {
		t.Errorf("Range(20, 30) = %v, want 0", got)
	}
}
