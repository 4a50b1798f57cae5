// Package dataset reads labeled points from delimited text files.
//
// Every non-empty line is one point: all fields but the last are feature values, the
// last field is the label. The 0-based record index is the point name.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-sod/knncv/internal/geom"
	"github.com/go-sod/knncv/internal/logging"
)

var (
	ErrNotExist     = errors.New("input file does not exist")
	ErrMalformedRow = errors.New("malformed row")
	ErrDelimiter    = errors.New("delimiter must be a single character")
)

// Load reads the points stored at path.
func Load(ctx context.Context, path string, delimiter string) ([]geom.Point, error) {
	logger := logging.FromContext(ctx)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		return nil, fmt.Errorf("unable to open dataset: %w", err)
	}
	defer f.Close()

	points, err := Read(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debugf("loaded %d points from %s", len(points), path)
	return points, nil
}

// Read parses points from r.
func Read(r io.Reader, delimiter string) ([]geom.Point, error) {
	comma, err := DelimiterRune(delimiter)
	if err != nil {
		return nil, err
	}
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var points []geom.Point
	for idx := 0; ; idx++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
		point, err := parse(idx, rec)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

func parse(idx int, rec []string) (geom.Point, error) {
	if len(rec) < 2 {
		return geom.Point{}, fmt.Errorf("record %d has %d fields, expected features and a label: %w",
			idx, len(rec), ErrMalformedRow)
	}
	coords := make(geom.Vector, len(rec)-1)
	for j, field := range rec[:len(rec)-1] {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return geom.Point{}, fmt.Errorf("record %d field %d: %v: %w", idx, j, err, ErrMalformedRow)
		}
		coords[j] = value
	}
	label := strings.TrimSpace(rec[len(rec)-1])
	return geom.NewPoint(strconv.Itoa(idx), coords, label), nil
}

// DelimiterRune validates that delimiter is a single character.
func DelimiterRune(delimiter string) (rune, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("%q: %w", delimiter, ErrDelimiter)
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	return r, nil
}
