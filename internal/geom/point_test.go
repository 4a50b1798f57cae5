package geom

import "testing"

func TestVector_Dimensions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        Vector
		expected int
	}{
		{name: "positive", v: NewVector([]float64{1, 2, 3, 4, 5}), expected: 5},
		{name: "empty", v: NewVector(nil), expected: 0},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cmp := test.v.Dimensions()
			if cmp != test.expected {
				t.Errorf("the comparison is incorrect got: %v, expected: %v", cmp, test.expected)
			}
		})
	}
}

func TestVector_Equal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        Vector
		v1       Vector
		expected bool
	}{
		{name: "positive", v: Vector{10, 10}, v1: Vector{10, 10}, expected: true},
		{name: "negative", v: Vector{10, 10}, v1: Vector{11, 10}, expected: false},
		{name: "negative_size", v: Vector{10, 10}, v1: Vector{10}, expected: false},
	}
	for _, test := range tests {
		if test.v.Equal(test.v1) != test.expected {
			t.Errorf("the comparison of vectors, got: %v, expected: %v", test.v.Equal(test.v1), test.expected)
		}
	}
}

func TestVector_Copy(t *testing.T) {
	t.Parallel()
	v := Vector{1, 2, 3}
	v1 := v.Copy()
	v1[0] = 100
	if v[0] != 1 {
		t.Errorf("copy shares memory with the source vector, got: %v", v)
	}
}

func TestVector_MapIdx(t *testing.T) {
	t.Parallel()
	v := Vector{1, 2, 3}
	got := v.MapIdx(func(idx int, value float64) float64 {
		return value * float64(idx)
	})
	if !got.Equal(Vector{0, 2, 6}) {
		t.Errorf("mapped vector got: %v, expected: %v", got, Vector{0, 2, 6})
	}
	if !v.Equal(Vector{1, 2, 3}) {
		t.Errorf("source vector modified, got: %v", v)
	}
}

func TestPoint_WithCoords(t *testing.T) {
	t.Parallel()
	p := NewPoint("7", Vector{1, 2}, "x")
	p1 := p.WithCoords(Vector{3, 4})
	if p1.Name != p.Name || p1.Label != p.Label {
		t.Errorf("name and label must be kept, got: %v", p1)
	}
	if !p.Coords.Equal(Vector{1, 2}) {
		t.Errorf("source point modified, got: %v", p)
	}
	if !p1.Coords.Equal(Vector{3, 4}) {
		t.Errorf("coordinates got: %v, expected: %v", p1.Coords, Vector{3, 4})
	}
}

func TestLabelsAndColumn(t *testing.T) {
	t.Parallel()
	points := []Point{
		NewPoint("0", Vector{1, 10}, "a"),
		NewPoint("1", Vector{2, 20}, "b"),
		NewPoint("2", Vector{3, 30}, "a"),
	}
	labels := Labels(points)
	expectedLabels := []string{"a", "b", "a"}
	for i := range expectedLabels {
		if labels[i] != expectedLabels[i] {
			t.Errorf("labels[%d] got: %v, expected: %v", i, labels[i], expectedLabels[i])
		}
	}
	col := Column(points, 1)
	if !Vector(col).Equal(Vector{10, 20, 30}) {
		t.Errorf("column got: %v, expected: %v", col, []float64{10, 20, 30})
	}
}
