package normalize

import (
	"github.com/go-sod/knncv/internal/geom"
	"gonum.org/v1/gonum/stat"
)

var _ Normalizer = (*ZScore)(nil)

// ZScore centers every feature on its mean and scales it by the sample standard
// deviation (n-1 divisor).
type ZScore struct {
	mean []float64
	std  []float64
}

func NewZScore() *ZScore {
	return &ZScore{}
}

func (*ZScore) Name() string {
	return "ZNormalizer"
}

func (z *ZScore) Fit(points []geom.Point) error {
	cols, err := columns(points)
	if err != nil {
		return err
	}
	means, stds := make([]float64, len(cols)), make([]float64, len(cols))
	for j := range cols {
		means[j], stds[j] = stat.MeanStdDev(cols[j], nil)
	}
	z.mean, z.std = means, stds
	return nil
}

func (z *ZScore) Transform(points []geom.Point) ([]geom.Point, error) {
	if z.mean == nil {
		return nil, ErrNotFitted
	}
	return transform(points, len(z.mean), func(idx int, x float64) float64 {
		return (x - z.mean[idx]) / z.std[idx]
	})
}

func (z *ZScore) Stats() (mean, std []float64) {
	return z.mean, z.std
}
