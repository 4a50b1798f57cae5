package database

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-sod/knncv/internal/database"
	"github.com/go-sod/knncv/internal/report/model"
	bolt "go.etcd.io/bbolt"
)

const (
	experimentKeys = "experiment:keys:"
	prefix         = "report:"
)

type FilterFn func(report model.Report) bool

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

// DB stores reports in one bucket per experiment and indexes experiment names in a
// dedicated bucket.
type DB struct {
	sDB *database.DB
}

func (db *DB) extractKey(key string) string {
	prefixPos := strings.Index(key, prefix)

	return key[prefixPos+len(prefix):]
}

// Keys returns the names of experiments with stored reports.
func (db *DB) Keys() ([]string, error) {
	var bucketKeys []string
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(experimentKeys))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			bucketKeys = append(bucketKeys, db.extractKey(string(k)))
		}
		return nil
	})

	return bucketKeys, err
}

func (db *DB) Store(ctx context.Context, report model.Report) error {
	return db.StoreMany(ctx, []model.Report{report})
}

func (db *DB) StoreMany(_ context.Context, reports []model.Report) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		keys, err := tx.CreateBucketIfNotExists([]byte(experimentKeys))
		if err != nil {
			return fmt.Errorf("unable create experiments bucket: %w", err)
		}
		for _, report := range reports {
			b, err := tx.CreateBucketIfNotExists([]byte(prefix + report.Experiment))
			if err != nil {
				return fmt.Errorf("create bucket: %w", err)
			}
			bytes, err := json.Marshal(report)
			if err != nil {
				return fmt.Errorf("marshal report %s: %w", report.ID, err)
			}
			if err := b.Put([]byte(report.ID.String()), bytes); err != nil {
				return fmt.Errorf("put to bucket error: %w", err)
			}
			if err := keys.Put([]byte(prefix+report.Experiment), []byte{0x0}); err != nil {
				return fmt.Errorf("unable put to experiments bucket: %w", err)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) Delete(_ context.Context, report model.Report) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + report.Experiment))
		if b == nil {
			return nil
		}

		return b.Delete([]byte(report.ID.String()))
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

// FindAll returns every stored report accepted by filter, oldest first.
func (db *DB) FindAll(_ context.Context, filter FilterFn) ([]model.Report, error) {
	var reports []model.Report
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		keys := tx.Bucket([]byte(experimentKeys))
		if keys == nil {
			return nil
		}
		return keys.ForEach(func(k, _ []byte) error {
			found, err := db.scan(tx.Bucket(k), filter)
			if err != nil {
				return err
			}
			reports = append(reports, found...)
			return nil
		})
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	sortByTime(reports)
	return reports, nil
}

// FindByExperiment returns the reports of one experiment accepted by filter, oldest first.
func (db *DB) FindByExperiment(experiment string, filter FilterFn) ([]model.Report, error) {
	var list []model.Report
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		found, err := db.scan(tx.Bucket([]byte(prefix+experiment)), filter)
		list = found
		return err
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	sortByTime(list)
	return list, nil
}

func (db *DB) CountByExperiment(experiment string) (int, error) {
	var length int
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + experiment))
		if b == nil {
			length = 0
			return nil
		}
		stats := b.Stats()
		length = stats.KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("view transaction error: %w", err)
	}

	return length, nil
}

func (db *DB) scan(b *bolt.Bucket, filter FilterFn) ([]model.Report, error) {
	if b == nil {
		return nil, nil
	}
	var list []model.Report
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var report model.Report
		if err := json.Unmarshal(v, &report); err != nil {
			return nil, fmt.Errorf("json unmarshal error, %q", err)
		}
		if filter == nil || filter(report) {
			list = append(list, report)
		}
	}
	return list, nil
}

func sortByTime(reports []model.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
}
