package pokemon

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"pokedex/pkg/models"
)

// CSVHeader selects the column names WriteCSV puts in the header row.
type CSVHeader int

const (
	// CanonicalHeader uses the API field names (id, name, type1, ...).
	CanonicalHeader CSVHeader = iota
	// SourceHeader uses the dataset column names (#, Name, Type 1, ...), which
	// is what ReadSource expects when loading a .csv file.
	SourceHeader
)

func (h CSVHeader) fields() []string {
	if h == SourceHeader {
		return models.SourceFields()
	}
	return models.CanonicalFields()
}

// WriteCSV writes records in FieldMapping column order. Sprites are written as
// a JSON object. Only a SourceHeader export can be loaded back with ReadSource.
func WriteCSV(out io.Writer, records []models.Pokemon, header CSVHeader) error {
	w := csv.NewWriter(out)
	if err := w.Write(header.fields()); err != nil {
		return err
	}

	for _, p := range records {
		spritesJSON, err := json.Marshal(p.Sprites)
		if err != nil {
			return fmt.Errorf("marshal sprites for %s: %w", p.ID, err)
		}
		if err := w.Write([]string{
			p.ID.String(),
			p.Name,
			p.Type1,
			p.Type2,
			strconv.Itoa(p.HP),
			strconv.Itoa(p.Attack),
			strconv.Itoa(p.Defense),
			strconv.Itoa(p.SpAtk),
			strconv.Itoa(p.SpDef),
			strconv.Itoa(p.Speed),
			p.Generation.String(),
			strconv.FormatBool(p.Legendary),
			formatNumber(p.Height),
			formatNumber(p.Weight),
			formatNumber(p.BaseExperience),
			string(spritesJSON),
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
