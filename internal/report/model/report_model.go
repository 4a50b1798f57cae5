package model

import (
	"time"

	"github.com/google/uuid"
)

// Report is the outcome of one cross-validation run.
type Report struct {
	ID             uuid.UUID `json:"id"`
	Experiment     string    `json:"experiment"`
	Dataset        string    `json:"dataset"`
	K              int       `json:"k"`
	Folds          int       `json:"folds"`
	Normalizer     string    `json:"normalizer,omitempty"`
	FoldAccuracies []float64 `json:"foldAccuracies,omitempty"`
	Accuracy       float64   `json:"accuracy"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewReport(experiment, dataset string, k, folds int, normalizer string, foldAccuracies []float64, accuracy float64) Report {
	return Report{
		ID:             uuid.New(),
		Experiment:     experiment,
		Dataset:        dataset,
		K:              k,
		Folds:          folds,
		Normalizer:     normalizer,
		FoldAccuracies: foldAccuracies,
		Accuracy:       accuracy,
		CreatedAt:      time.Now().UTC(),
	}
}
