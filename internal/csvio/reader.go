package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var validate = validator.New()

// trimmingReader trims every field and drops records whose fields are all blank
type trimmingReader struct {
	reader *csv.Reader
}

func newTrimmingReader(in io.Reader) *trimmingReader {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return &trimmingReader{reader: reader}
}

func (r *trimmingReader) Read() ([]string, error) {
	for {
		record, err := r.reader.Read()
		if err != nil {
			return nil, err
		}
		record = lo.Map(record, func(field string, _ int) string { return strings.TrimSpace(field) })
		if lo.SomeBy(record, func(field string) bool { return field != "" }) {
			return record, nil
		}
	}
}

func (r *trimmingReader) ReadAll() ([][]string, error) {
	records := make([][]string, 0)
	for {
		record, err := r.Read()
		if err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// readRecords decodes a headed CSV file into records and drops the ones failing their validate tags
func readRecords[T any](path string, logger *zap.Logger) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", path, err)
	}
	defer file.Close()

	records := make([]T, 0)
	if err := gocsv.UnmarshalCSV(newTrimmingReader(file), &records); err != nil {
		return nil, fmt.Errorf("cannot parse %v: %w", path, err)
	}

	return lo.Filter(records, func(record T, index int) bool {
		if err := validate.Struct(record); err != nil {
			// Header is line 1
			logger.Warn("Skipping invalid record", zap.String("file", path), zap.Int("line", index+2), zap.Error(err))
			return false
		}
		return true
	}), nil
}
