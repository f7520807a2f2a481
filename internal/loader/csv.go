package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"grantbook/internal/core"
	"grantbook/internal/log"
)

// CSVFile loads transactions from a CSV export. The header row names
// the fields; each data row becomes one record with fields in header
// order, blank cells omitted, values kept as raw strings.
type CSVFile struct {
	path   string
	logger *log.Logger
}

func NewCSVFile(path string, logger *log.Logger) *CSVFile {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &CSVFile{path: path, logger: logger}
}

func (s *CSVFile) Load(ctx context.Context) ([]core.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read csv file %s: %w", s.path, err)
	}

	s.logger.Info("loaded transactions from csv",
		log.FieldPath, s.path,
		log.FieldRecordCount, len(records))
	return records, nil
}

// ReadCSV parses CSV content into records. Rows may be ragged; cells
// beyond the header are dropped, short rows fill what they have.
func ReadCSV(r io.Reader) ([]core.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // exports are frequently ragged
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var out []core.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(out)+2, err)
		}
		rec := core.NewRecord()
		for i, cell := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if cell == "" {
				continue
			}
			rec.Set(header[i], cell)
		}
		if rec.Len() == 0 {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
