package experiment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-sod/knncv/internal/geom"
	"github.com/go-sod/knncv/internal/normalize"
	"github.com/go-sod/knncv/internal/predictor/knn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clusters returns two well separated groups interleaved so that every contiguous
// fold holds both labels.
func clusters(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		if i%2 == 0 {
			points[i] = geom.NewPoint(fmt.Sprint(i), geom.Vector{float64(i), 0}, "a")
		} else {
			points[i] = geom.NewPoint(fmt.Sprint(i), geom.Vector{float64(i), 1000}, "b")
		}
	}
	return points
}

func smallPlan() Plan {
	plan := DefaultPlan()
	plan.Quick.Folds = 4
	plan.LOOSweep = LOOSweepPlan{MinK: 1, MaxK: 3}
	plan.Folds = FoldsPlan{K: 3, Folds: []int{2, 4}, PrintFolds: true}
	plan.Normalizers.Ks = []int{1, 3}
	return plan
}

func TestRunner_Run(t *testing.T) {
	points := clusters(12)
	r, err := New(knn.Provide, smallPlan(), WithQuickK(3))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("quick", func(t *testing.T) {
		outcome, err := r.Run(ctx, NameQuick, points)
		require.NoError(t, err)
		require.NotNil(t, outcome.Sample)
		assert.Equal(t, Sample{Name: "0", Predicted: "a", True: "a"}, *outcome.Sample)
		require.Len(t, outcome.Runs, 1)
		assert.Equal(t, 3, outcome.Runs[0].K)
		assert.Len(t, outcome.Runs[0].Result.Folds, 4)
		assert.InDelta(t, 1, outcome.Runs[0].Result.Accuracy, 1e-12)
	})

	t.Run("resubstitution", func(t *testing.T) {
		outcome, err := r.Run(ctx, NameResubstitution, points)
		require.NoError(t, err)
		require.Len(t, outcome.Runs, 1)
		assert.Equal(t, 0, outcome.Runs[0].Folds)
		assert.InDelta(t, 1, outcome.Runs[0].Result.Accuracy, 1e-12)
	})

	t.Run("loo_sweep", func(t *testing.T) {
		outcome, err := r.Run(ctx, NameLOOSweep, points)
		require.NoError(t, err)
		require.Len(t, outcome.Runs, 3)
		for i, run := range outcome.Runs {
			assert.Equal(t, i+1, run.K)
			assert.Equal(t, len(points), run.Folds)
			assert.Len(t, run.Result.Folds, len(points))
		}
	})

	t.Run("folds", func(t *testing.T) {
		outcome, err := r.Run(ctx, NameFolds, points)
		require.NoError(t, err)
		require.Len(t, outcome.Runs, 2)
		assert.Equal(t, 2, outcome.Runs[0].Folds)
		assert.Len(t, outcome.Runs[1].Result.Folds, 4)
		assert.True(t, outcome.Runs[0].PrintFolds)
		assert.False(t, outcome.Runs[0].PrintFinal)
	})

	t.Run("normalizers", func(t *testing.T) {
		outcome, err := r.Run(ctx, NameNormalizers, points)
		require.NoError(t, err)
		require.Len(t, outcome.Runs, 2*len(normalize.Types))
		assert.Equal(t, "DummyNormalizer", outcome.Runs[0].Normalizer)
		assert.Equal(t, "ZNormalizer", outcome.Runs[3].Normalizer)
		assert.Equal(t, 3, outcome.Runs[4].K)
		for _, run := range outcome.Runs {
			assert.Equal(t, 2, run.Folds)
			assert.True(t, run.PrintFinal)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := r.Run(ctx, "QUESTION_5", points)
		assert.Error(t, err)
	})
}

func TestRunner_RunAll(t *testing.T) {
	r, err := New(knn.Provide, smallPlan())
	require.NoError(t, err)
	outcomes, err := r.RunAll(context.Background(), []Name{NameFolds, NameNormalizers}, clusters(8))
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, NameFolds, outcomes[0].Experiment)
	assert.Equal(t, NameNormalizers, outcomes[1].Experiment)
}

func TestRunner_Errors(t *testing.T) {
	_, err := New(nil, DefaultPlan())
	assert.Error(t, err)

	plan := smallPlan()
	plan.Folds.Folds = []int{20}
	r, err := New(knn.Provide, plan)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), NameFolds, clusters(4))
	assert.Error(t, err)

	_, err = r.Run(context.Background(), NameQuick, nil)
	assert.Error(t, err)
}

func TestLoadPlan(t *testing.T) {
	plan, err := LoadPlan("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPlan(), plan)

	path := filepath.Join(t.TempDir(), "plan.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[folds]
k = 7
folds = [3, 5]
print_final = true

[normalizers]
normalizers = ["MIN_MAX"]
`), 0600))
	plan, err = LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, 7, plan.Folds.K)
	assert.Equal(t, []int{3, 5}, plan.Folds.Folds)
	assert.True(t, plan.Folds.PrintFolds)
	assert.True(t, plan.Folds.PrintFinal)
	assert.Equal(t, []normalize.Type{normalize.TypeMinMax}, plan.Normalizers.Normalizers)
	assert.Equal(t, []int{5, 7}, plan.Normalizers.Ks)
	assert.Equal(t, 30, plan.LOOSweep.MaxK)

	require.NoError(t, os.WriteFile(path, []byte("[folds]\nkk = 1\n"), 0600))
	_, err = LoadPlan(path)
	assert.Error(t, err)
}
