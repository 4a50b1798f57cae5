package normalize

import (
	"github.com/go-sod/knncv/internal/geom"
	"gonum.org/v1/gonum/floats"
)

var _ Normalizer = (*Sum)(nil)

// Sum divides every feature by the sum of its absolute values (L1 norm of the column).
type Sum struct {
	sums []float64
}

func NewSum() *Sum {
	return &Sum{}
}

func (*Sum) Name() string {
	return "SumNormalizer"
}

func (s *Sum) Fit(points []geom.Point) error {
	cols, err := columns(points)
	if err != nil {
		return err
	}
	sums := make([]float64, len(cols))
	for j := range cols {
		sums[j] = floats.Norm(cols[j], 1)
	}
	s.sums = sums
	return nil
}

func (s *Sum) Transform(points []geom.Point) ([]geom.Point, error) {
	if s.sums == nil {
		return nil, ErrNotFitted
	}
	return transform(points, len(s.sums), func(idx int, x float64) float64 {
		return x / s.sums[idx]
	})
}

// Sums returns the fitted per-feature sums of absolute values.
func (s *Sum) Sums() []float64 {
	return s.sums
}
