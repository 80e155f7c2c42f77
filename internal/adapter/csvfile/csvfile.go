// Package csvfile stores the measurement series as a flat CSV table with
// the columns date and weight.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"weighttrend/internal/domain"
	"weighttrend/internal/fsutil"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

var header = []string{"date", "weight"}

// Repo is a SampleRepository backed by a CSV file.
type Repo struct {
	path string
}

// New returns a Repo reading and writing path. The file is created on the
// first save.
func New(path string) *Repo {
	return &Repo{path: path}
}

var _ domain.SampleRepository = (*Repo)(nil)

// Path returns the backing file path.
func (r *Repo) Path() string { return r.path }

// LoadSamples reads every row in file order. A missing file is an empty
// series. Rows without a date or weight are skipped; a value that is
// present but cannot be parsed fails the load with its line number.
func (r *Repo) LoadSamples(ctx context.Context) ([]domain.Sample, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debugf("samples file [%s] does not exist yet", r.path)
		return []domain.Sample{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return decode(f, r.path)
}

// SaveSamples rewrites the file with series, one row per date, ascending.
func (r *Repo) SaveSamples(ctx context.Context, series domain.Series) error {
	return fsutil.WriteFileAtomic(r.path, 0o644, func(f *os.File) error {
		return encode(f, series)
	})
}

func decode(rd io.Reader, path string) ([]domain.Sample, error) {
	cr := csv.NewReader(rd)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return []domain.Sample{}, nil
	}

	dateCol, weightCol, err := columns(rows[0])
	if err != nil {
		return nil, err
	}

	out := make([]domain.Sample, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line := i + 2
		rawDate, rawWeight := field(row, dateCol), field(row, weightCol)
		if rawDate == "" || rawWeight == "" {
			log.Warnf("samples file [%s]: skipping line %d, missing date or weight", path, line)
			continue
		}

		day, err := domain.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad date %q", line, rawDate)
		}
		w, err := decimal.NewFromString(rawWeight)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight %q", line, rawWeight)
		}
		weight := w.InexactFloat64()
		if err := domain.ValidateSample(day, weight); err != nil {
			return nil, fmt.Errorf("line %d: weight %s out of range", line, rawWeight)
		}
		out = append(out, domain.Sample{Day: day, Weight: weight})
	}
	return out, nil
}

func field(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func columns(head []string) (dateCol, weightCol int, err error) {
	dateCol, weightCol = -1, -1
	for i, name := range head {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "date":
			dateCol = i
		case "weight":
			weightCol = i
		}
	}
	if dateCol < 0 || weightCol < 0 {
		return 0, 0, fmt.Errorf("csv header must contain %q and %q columns, got %v", header[0], header[1], head)
	}
	return dateCol, weightCol, nil
}

func encode(w io.Writer, series domain.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range series {
		if err := cw.Write([]string{s.Day.String(), decimal.NewFromFloat(s.Weight).String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
