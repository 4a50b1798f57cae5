// Package score compares predicted labels with true labels.
package score

import (
	"errors"
	"fmt"
)

var ErrLengthMismatch = errors.New("label sequences have different length")

// Fn scores predicted labels against true labels.
type Fn func(yTrue, yPred []string) (float64, error)

var _ Fn = Accuracy

// Accuracy returns the fraction of positions where both sequences hold the same label.
// Empty input yields NaN.
func Accuracy(yTrue, yPred []string) (float64, error) {
	if len(yTrue) != len(yPred) {
		return 0, fmt.Errorf("accuracy of %d true and %d predicted labels: %w", len(yTrue), len(yPred), ErrLengthMismatch)
	}
	var c int
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue)), nil
}
