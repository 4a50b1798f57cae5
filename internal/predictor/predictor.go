package predictor

import (
	"errors"

	"github.com/go-sod/knncv/internal/geom"
)

var (
	// ErrInvalidK is returned when the neighbor count is not positive.
	ErrInvalidK = errors.New("k must be positive")
	// ErrNotTrained is returned by predictions made before a non-empty training set was stored.
	ErrNotTrained = errors.New("classifier is not trained")
)

// ProvideFn returns a new classifier consulting k neighbors.
type ProvideFn func(k int) (Classifier, error)

type PointsDistanceFn func(vec, vec1 []float64) (float64, error)

// Classifier is a supervised model over labeled points.
type Classifier interface {
	// Train replaces the reference set.
	Train(points []geom.Point)
	// Len returns the size of the reference set.
	Len() int
	// PredictOne returns the label assigned to the query point.
	PredictOne(query geom.Point) (string, error)
	// PredictMany applies PredictOne to every query, keeping the order.
	PredictMany(queries []geom.Point) ([]string, error)
}
