package normalize

import (
	"github.com/go-sod/knncv/internal/geom"
	"gonum.org/v1/gonum/floats"
)

var _ Normalizer = (*MinMax)(nil)

// MinMax maps every feature onto [0, 1] using the fitted minimum and maximum.
type MinMax struct {
	min []float64
	max []float64
}

func NewMinMax() *MinMax {
	return &MinMax{}
}

func (*MinMax) Name() string {
	return "MinMaxNormalizer"
}

func (m *MinMax) Fit(points []geom.Point) error {
	cols, err := columns(points)
	if err != nil {
		return err
	}
	mins, maxs := make([]float64, len(cols)), make([]float64, len(cols))
	for j := range cols {
		mins[j], maxs[j] = floats.Min(cols[j]), floats.Max(cols[j])
	}
	m.min, m.max = mins, maxs
	return nil
}

func (m *MinMax) Transform(points []geom.Point) ([]geom.Point, error) {
	if m.min == nil {
		return nil, ErrNotFitted
	}
	return transform(points, len(m.min), func(idx int, x float64) float64 {
		return (x - m.min[idx]) / (m.max[idx] - m.min[idx])
	})
}

func (m *MinMax) Bounds() (min, max []float64) {
	return m.min, m.max
}
