package pokemon

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"pokedex/pkg/models"
)

// ReadSource reads the raw dataset at path. Files ending in .csv are read as
// CSV with a header row; everything else must be a JSON array of objects.
func ReadSource(path string) ([]models.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return decodeCSV(f)
	}
	return decodeJSON(f)
}

func decodeJSON(r io.Reader) ([]models.RawRecord, error) {
	var out []models.RawRecord
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if out == nil {
		return nil, errors.New("decode json: top-level value is null, want an array")
	}
	return out, nil
}

func decodeCSV(r io.Reader) ([]models.RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("decode csv: empty file")
		}
		return nil, fmt.Errorf("decode csv header: %w", err)
	}
	for i, name := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}

	var out []models.RawRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv row %d: %w", len(out)+1, err)
		}
		if len(row) == 0 {
			continue
		}

		rec := make(models.RawRecord, len(header))
		for idx, name := range header {
			if idx >= len(row) {
				break
			}
			rec[name] = row[idx]
		}
		out = append(out, rec)
	}
	return out, nil
}
