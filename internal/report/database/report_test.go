package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sod/knncv/internal/database"
	"github.com/go-sod/knncv/internal/report/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{
		FileName: filepath.Join(t.TempDir(), "reports.db"),
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})
	return New(db)
}

func TestDB_StoreAndFind(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	first := model.NewReport("FOLDS", "iris.csv", 19, 2, "", []float64{0.9, 0.8}, 0.85)
	first.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	second := model.NewReport("FOLDS", "iris.csv", 19, 10, "", nil, 0.9)
	second.CreatedAt = first.CreatedAt.Add(time.Minute)
	third := model.NewReport("NORMALIZERS", "iris.csv", 5, 2, "ZNormalizer", nil, 0.95)
	third.CreatedAt = first.CreatedAt.Add(2 * time.Minute)

	require.NoError(t, db.Store(ctx, second))
	require.NoError(t, db.StoreMany(ctx, []model.Report{first, third}))

	keys, err := db.Keys()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"FOLDS", "NORMALIZERS"}, keys)

	all, err := db.FindAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, []float64{0.9, 0.8}, all[0].FoldAccuracies)
	assert.Equal(t, third.ID, all[2].ID)

	folds, err := db.FindByExperiment("FOLDS", nil)
	require.NoError(t, err)
	require.Len(t, folds, 2)
	assert.Equal(t, first.ID, folds[0].ID)

	filtered, err := db.FindAll(ctx, func(r model.Report) bool { return r.Folds == 10 })
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)

	n, err := db.CountByExperiment("FOLDS")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestDB_Delete(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	report := model.NewReport("LOO_SWEEP", "iris.csv", 3, 150, "", nil, 0.96)
	require.NoError(t, db.Store(ctx, report))
	require.NoError(t, db.Delete(ctx, report))
	require.NoError(t, db.Delete(ctx, model.NewReport("MISSING", "", 1, 1, "", nil, 0)))

	n, err := db.CountByExperiment("LOO_SWEEP")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	list, err := db.FindByExperiment("MISSING", nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDB_Empty(t *testing.T) {
	db := openDB(t)
	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	all, err := db.FindAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, all)
}
