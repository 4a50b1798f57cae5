package geom

// Vector is an ordered set of feature values.
type Vector []float64

func NewVector(vec []float64) Vector {
	return vec
}

func (v Vector) Dimensions() int {
	return len(v)
}

func (v Vector) Dim(idx int) float64 {
	return v[idx]
}

func (v Vector) Points() []float64 {
	return v
}

func (v Vector) Copy() Vector {
	var v1 = make(Vector, len(v))
	copy(v1, v)
	return v1
}

func (v Vector) SizeEqual(vec Vector) bool {
	return len(v) == len(vec)
}

func (v Vector) Equal(vec Vector) bool {
	if len(v) != len(vec) {
		return false
	}
	for i, value := range v {
		if vec[i] != value {
			return false
		}
	}
	return true
}

// MapIdx returns a new vector where every dimension is replaced by fn(idx, value).
func (v Vector) MapIdx(fn func(int, float64) float64) Vector {
	var v1 = make(Vector, len(v))
	for i := range v {
		v1[i] = fn(i, v[i])
	}
	return v1
}

// Point is a labeled vector. Name identifies the point in reports only.
type Point struct {
	Name   string
	Coords Vector
	Label  string
}

func NewPoint(name string, coords Vector, label string) Point {
	return Point{Name: name, Coords: coords, Label: label}
}

func (p Point) Dimensions() int {
	return p.Coords.Dimensions()
}

// WithCoords returns a copy of p carrying the given coordinates.
func (p Point) WithCoords(coords Vector) Point {
	return Point{Name: p.Name, Coords: coords, Label: p.Label}
}

// Labels returns the labels of points in order.
func Labels(points []Point) []string {
	labels := make([]string, len(points))
	for i := range points {
		labels[i] = points[i].Label
	}
	return labels
}

// Column returns dimension idx of every point.
func Column(points []Point, idx int) []float64 {
	col := make([]float64, len(points))
	for i := range points {
		col[i] = points[i].Coords[idx]
	}
	return col
}
