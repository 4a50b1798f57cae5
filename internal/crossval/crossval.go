// Package crossval evaluates classifiers with k-fold cross-validation.
//
// Folds are contiguous chunks of the input in its given order. When the point count
// is not a multiple of the fold count the first len%n folds hold one extra point.
package crossval

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sod/knncv/internal/geom"
	"github.com/go-sod/knncv/internal/logging"
	"github.com/go-sod/knncv/internal/predictor"
	"github.com/go-sod/knncv/internal/score"
)

var ErrInvalidFolds = errors.New("number of folds must be in [1, number of points]")

// FoldResult is the evaluation of one held-out fold.
type FoldResult struct {
	Index     int     `json:"index"`
	TrainSize int     `json:"trainSize"`
	TestSize  int     `json:"testSize"`
	Accuracy  float64 `json:"accuracy"`
}

// Result holds per-fold scores and their arithmetic mean.
type Result struct {
	Folds    []FoldResult `json:"folds"`
	Accuracy float64      `json:"accuracy"`
}

// FoldAccuracies returns the score of every fold in fold order.
func (r *Result) FoldAccuracies() []float64 {
	out := make([]float64, len(r.Folds))
	for i := range r.Folds {
		out[i] = r.Folds[i].Accuracy
	}
	return out
}

// Folds splits points into n contiguous folds whose sizes differ by at most one.
func Folds(points []geom.Point, n int) ([][]geom.Point, error) {
	if n <= 0 || n > len(points) {
		return nil, fmt.Errorf("%d folds over %d points: %w", n, len(points), ErrInvalidFolds)
	}
	size, extra := len(points)/n, len(points)%n
	folds := make([][]geom.Point, n)
	start := 0
	for f := 0; f < n; f++ {
		end := start + size
		if f < extra {
			end++
		}
		folds[f] = points[start:end:end]
		start = end
	}
	return folds, nil
}

// trainSet concatenates every fold except the held-out one, keeping fold order.
func trainSet(folds [][]geom.Point, heldOut int) []geom.Point {
	var n int
	for f := range folds {
		if f != heldOut {
			n += len(folds[f])
		}
	}
	train := make([]geom.Point, 0, n)
	for f := range folds {
		if f != heldOut {
			train = append(train, folds[f]...)
		}
	}
	return train
}

// Run trains classifier on all folds but one and scores it on the held-out fold, for
// every fold in order. The returned accuracy is the mean of the fold scores.
func Run(
	ctx context.Context,
	points []geom.Point,
	nFolds int,
	classifier predictor.Classifier,
	metric score.Fn,
) (*Result, error) {
	logger := logging.FromContext(ctx)
	folds, err := Folds(points, nFolds)
	if err != nil {
		return nil, err
	}

	result := &Result{Folds: make([]FoldResult, 0, nFolds)}
	var sum float64
	for f := range folds {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cross validation interrupted at fold %d: %w", f, err)
		}
		train := trainSet(folds, f)
		classifier.Train(train)
		predicted, err := classifier.PredictMany(folds[f])
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", f, err)
		}
		accuracy, err := metric(geom.Labels(folds[f]), predicted)
		if err != nil {
			return nil, fmt.Errorf("fold %d: %w", f, err)
		}
		logger.Debugf("fold %d: train=%d test=%d accuracy=%v", f, len(train), len(folds[f]), accuracy)
		result.Folds = append(result.Folds, FoldResult{
			Index:     f,
			TrainSize: len(train),
			TestSize:  len(folds[f]),
			Accuracy:  accuracy,
		})
		sum += accuracy
	}
	result.Accuracy = sum / float64(len(folds))
	return result, nil
}
