// Package normalize rescales point coordinates feature by feature.
//
// Every normalizer learns per-feature statistics in Fit and applies them in
// Transform, which returns new points and leaves its input untouched. Statistics
// that make a feature degenerate (zero sum, zero range, zero deviation) are not
// rejected: the affected coordinates become ±Inf or NaN.
package normalize

import (
	"errors"
	"fmt"

	"github.com/go-sod/knncv/internal/geom"
)

var (
	ErrEmptySet  = errors.New("unable to fit on an empty point set")
	ErrNotFitted = errors.New("normalizer is not fitted")
)

type Type string

const (
	TypeIdentity Type = "IDENTITY"
	TypeSum      Type = "SUM"
	TypeMinMax   Type = "MIN_MAX"
	TypeZScore   Type = "Z_SCORE"
)

// Types lists every normalizer in report order.
var Types = []Type{TypeIdentity, TypeSum, TypeMinMax, TypeZScore}

type Normalizer interface {
	// Name is the normalizer name shown in reports.
	Name() string
	// Fit learns per-feature statistics from points.
	Fit(points []geom.Point) error
	// Transform maps points into normalized coordinates.
	Transform(points []geom.Point) ([]geom.Point, error)
}

func For(t Type) (Normalizer, error) {
	switch t {
	case TypeIdentity:
		return NewIdentity(), nil
	case TypeSum:
		return NewSum(), nil
	case TypeMinMax:
		return NewMinMax(), nil
	case TypeZScore:
		return NewZScore(), nil
	default:
		return nil, fmt.Errorf("unknown normalizer type: %s", t)
	}
}

// FitTransform fits n on points and returns the transformed points.
func FitTransform(n Normalizer, points []geom.Point) ([]geom.Point, error) {
	if err := n.Fit(points); err != nil {
		return nil, fmt.Errorf("%s fit: %w", n.Name(), err)
	}
	out, err := n.Transform(points)
	if err != nil {
		return nil, fmt.Errorf("%s transform: %w", n.Name(), err)
	}
	return out, nil
}

// columns returns the feature columns of a non-empty point set.
func columns(points []geom.Point) ([][]float64, error) {
	if len(points) == 0 {
		return nil, ErrEmptySet
	}
	dim := points[0].Dimensions()
	for i := range points {
		if points[i].Dimensions() != dim {
			return nil, fmt.Errorf("point %s has %d features, expected %d: %w",
				points[i].Name, points[i].Dimensions(), dim, geom.ErrDimNotEqual)
		}
	}
	cols := make([][]float64, dim)
	for j := range cols {
		cols[j] = geom.Column(points, j)
	}
	return cols, nil
}

// transform applies fn to every coordinate of points fitted with dim features.
func transform(points []geom.Point, dim int, fn func(idx int, x float64) float64) ([]geom.Point, error) {
	out := make([]geom.Point, len(points))
	for i := range points {
		if points[i].Dimensions() != dim {
			return nil, fmt.Errorf("point %s has %d features, fitted %d: %w",
				points[i].Name, points[i].Dimensions(), dim, geom.ErrDimNotEqual)
		}
		out[i] = points[i].WithCoords(points[i].Coords.MapIdx(fn))
	}
	return out, nil
}
