package geometry

import "testing"

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)

	if r.Right != 110 || r.Bottom != 70 {
		t.Errorf("unexpected rect: %+v", r)
	}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("expected 100x50, got %vx%v", r.Width(), r.Height())
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlapping",
			a:    RectFromLTWH(0, 0, 100, 100),
			b:    RectFromLTWH(50, 50, 100, 100),
			want: Rect{Left: 50, Top: 50, Right: 100, Bottom: 100},
		},
		{
			name: "disjoint",
			a:    RectFromLTWH(0, 0, 10, 10),
			b:    RectFromLTWH(20, 20, 10, 10),
			want: Rect{},
		},
		{
			name: "touching edges",
			a:    RectFromLTWH(0, 0, 10, 10),
			b:    RectFromLTWH(10, 0, 10, 10),
			want: Rect{},
		},
		{
			name: "contained",
			a:    RectFromLTWH(0, 0, 100, 100),
			b:    RectFromLTWH(25, 25, 10, 10),
			want: Rect{Left: 25, Top: 25, Right: 35, Bottom: 35},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestVisibleFraction(t *testing.T) {
	viewport := RectFromLTWH(0, 0, 800, 600)

	tests := []struct {
		name   string
		target Rect
		want   float64
	}{
		{"fully inside", RectFromLTWH(100, 100, 50, 50), 1.0},
		{"fully outside", RectFromLTWH(0, 700, 50, 50), 0.0},
		{"half visible vertically", RectFromLTWH(0, 575, 100, 50), 0.5},
		{"quarter visible at corner", RectFromLTWH(775, 575, 50, 50), 0.25},
		{"empty target", Rect{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.target.VisibleFraction(viewport)
			if got != tt.want {
				t.Errorf("VisibleFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	r := RectFromLTWH(0, 0, 10, 10).Translate(5, -5)
	want := Rect{Left: 5, Top: -5, Right: 15, Bottom: 5}
	if r != want {
		t.Errorf("Translate() = %+v, want %+v", r, want)
	}
}
