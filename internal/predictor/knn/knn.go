// Package knn implements a brute force k-nearest-neighbors classifier.
//
// Training points are ranked by Euclidean distance to the query. Points at equal
// distance keep their training-set order, so the k-th neighbor at a distance tie is
// the one stored first. The majority label among the k nearest wins; when several
// labels share the highest count the one met first in ranked order is returned.
package knn

import (
	"fmt"

	"github.com/go-sod/knncv/internal/geom"
	"github.com/go-sod/knncv/internal/predictor"
	"github.com/go-sod/knncv/pkg/pqueue"
)

var _ predictor.Classifier = (*KNN)(nil)

type Option func(*KNN)

// WithTrainSet stores points as the reference set at construction.
func WithTrainSet(points []geom.Point) Option {
	return func(m *KNN) {
		m.data = points
	}
}

// New returns a classifier consulting k neighbors.
func New(k int, opts ...Option) (*KNN, error) {
	if k <= 0 {
		return nil, fmt.Errorf("unable to create knn with k=%d: %w", k, predictor.ErrInvalidK)
	}
	m := &KNN{k: k, distFunc: geom.EuclideanDistance}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Provide is a predictor.ProvideFn building KNN classifiers.
func Provide(k int) (predictor.Classifier, error) {
	return New(k)
}

type KNN struct {
	k        int
	data     []geom.Point
	distFunc predictor.PointsDistanceFn
}

func (m *KNN) K() int {
	return m.k
}

func (m *KNN) Len() int {
	return len(m.data)
}

func (m *KNN) Train(points []geom.Point) {
	m.data = points
}

func (m *KNN) PredictOne(query geom.Point) (string, error) {
	if len(m.data) == 0 {
		return "", predictor.ErrNotTrained
	}
	nn, err := m.knn(query)
	if err != nil {
		return "", err
	}
	return vote(nn), nil
}

func (m *KNN) PredictMany(queries []geom.Point) ([]string, error) {
	labels := make([]string, len(queries))
	for i := range queries {
		label, err := m.PredictOne(queries[i])
		if err != nil {
			return nil, fmt.Errorf("unable to predict point %s: %w", queries[i].Name, err)
		}
		labels[i] = label
	}
	return labels, nil
}

// knn returns the k training points nearest to query, nearest first.
func (m *KNN) knn(query geom.Point) ([]geom.Point, error) {
	pq := pqueue.New(pqueue.WithCap(uint(m.k)))
	for i := range m.data {
		distance, err := m.distFunc(query.Coords, m.data[i].Coords)
		if err != nil {
			return nil, fmt.Errorf(
				"unable to compute distance between %v and %v: %w",
				query.Coords, m.data[i].Coords,
				err,
			)
		}
		pq.Push(m.data[i], distance)
	}
	nn := make([]geom.Point, pq.Len())
	for i, item := range pq.PopAll() {
		nn[i] = item.(geom.Point)
	}
	return nn, nil
}

// vote returns the most frequent label of neighbors, ties resolved by first appearance.
func vote(neighbors []geom.Point) string {
	counts := make(map[string]int, len(neighbors))
	order := make([]string, 0, len(neighbors))
	for _, n := range neighbors {
		if _, ok := counts[n.Label]; !ok {
			order = append(order, n.Label)
		}
		counts[n.Label]++
	}
	var (
		winner string
		best   int
	)
	for _, label := range order {
		if counts[label] > best {
			winner, best = label, counts[label]
		}
	}
	return winner
}
