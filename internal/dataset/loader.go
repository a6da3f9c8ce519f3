package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics
var (
	filesMissing = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricstats_dataset_files_missing_total",
		Help: "Total number of CSV loads that found no file",
	})

	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cricstats_dataset_load_duration_seconds",
		Help:    "Duration of CSV file loads",
		Buckets: prometheus.DefBuckets,
	})
)

// Load reads the CSV at path into a Table. A missing file is not an
// error: it yields an empty zero-column table, matching how the ingestion
// pipeline leaves gaps for categories with no data. Malformed content is
// fatal since source files are produced by a trusted pipeline.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			filesMissing.Inc()
			return NewTable(nil, nil), nil
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	timer := prometheus.NewTimer(loadDuration)
	defer timer.ObserveDuration()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return NewTable(nil, nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row of %s: %w", path, err)
		}
		if len(record) > len(header) {
			record = record[:len(header)]
		}
		rows = append(rows, record)
	}

	return NewTable(header, rows), nil
}
