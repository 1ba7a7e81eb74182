package pokemon

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"pokedex/pkg/models"
)

// noSecondType is the value the dataset writes into "Type 2" when a pokemon
// has no secondary type.
const noSecondType = "Normal"

// Issue is a recoverable problem found while normalizing one entry. The entry
// is still kept, with the offending field set to its fallback value.
type Issue struct {
	Index int    // position in the source collection
	Name  string // entry name, if it could be read
	Field string // canonical field name
	Err   error
}

func (i Issue) Error() string {
	return fmt.Sprintf("entry %d (%s) field %s: %v", i.Index, i.Name, i.Field, i.Err)
}

// Report is the outcome of normalizing a whole collection.
type Report struct {
	Records []models.Pokemon
	Issues  []Issue
}

// Normalize maps every raw entry into a models.Pokemon. It never fails: bad
// fields degrade to zero values and are listed in Report.Issues.
func Normalize(raw []models.RawRecord) Report {
	rep := Report{Records: make([]models.Pokemon, 0, len(raw))}
	for i, r := range raw {
		p, issues := normalizeEntry(i, r)
		rep.Records = append(rep.Records, p)
		rep.Issues = append(rep.Issues, issues...)
	}
	return rep
}

// entry collects the per-field issues of a single raw record.
type entry struct {
	index  int
	raw    models.RawRecord
	name   string
	issues []Issue
}

func (e *entry) fail(field string, err error) {
	e.issues = append(e.issues, Issue{Index: e.index, Name: e.name, Field: field, Err: err})
}

func normalizeEntry(index int, raw models.RawRecord) (models.Pokemon, []Issue) {
	e := &entry{index: index, raw: raw}
	e.name = e.text("Name", "name")

	p := models.Pokemon{
		ID:             e.token("#", "id"),
		Name:           e.name,
		Type1:          e.text("Type 1", "type1"),
		Type2:          e.text("Type 2", "type2"),
		HP:             e.integer("HP", "hp"),
		Attack:         e.integer("Attack", "attack"),
		Defense:        e.integer("Defense", "defense"),
		SpAtk:          e.integer("Sp. Atk", "sp_atk"),
		SpDef:          e.integer("Sp. Def", "sp_def"),
		Speed:          e.integer("Speed", "speed"),
		Generation:     e.token("Generation", "generation"),
		Legendary:      e.flag("Legendary", "legendary"),
		Height:         e.number("height", "height"),
		Weight:         e.number("weight", "weight"),
		BaseExperience: e.number("base_experience", "base_experience"),
	}

	if p.Type2 == noSecondType {
		p.Type2 = ""
	}

	set, err := sprites(raw["sprites"])
	if err != nil {
		e.fail("sprites", err)
		set = models.EmptySprites()
	}
	p.Sprites = set

	return p, e.issues
}

func (e *entry) text(src, field string) string {
	v, ok := e.raw[src]
	if !ok || v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		e.fail(field, err)
		return ""
	}
	return s
}

func (e *entry) integer(src, field string) int {
	v, ok := e.raw[src]
	if !ok || v == nil {
		e.fail(field, fmt.Errorf("missing %q", src))
		return 0
	}
	var (
		n   int
		err error
	)
	if s, isStr := v.(string); isStr {
		n, err = decimalInt(strings.TrimSpace(s))
	} else {
		n, err = cast.ToIntE(v)
	}
	if err != nil {
		e.fail(field, err)
		return 0
	}
	return n
}

// decimalInt reads s as a base 10 integer, so "010" is ten. Decimal fractions
// are truncated toward zero.
func decimalInt(s string) (int, error) {
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || strings.ContainsAny(s, "xX") || math.IsNaN(f) || math.IsInf(f, 0) ||
		f >= math.MaxInt || f < math.MinInt {
		return 0, fmt.Errorf("unable to parse %q as a decimal integer", s)
	}
	return int(f), nil
}

func (e *entry) number(src, field string) float64 {
	v, ok := e.raw[src]
	if !ok || v == nil {
		e.fail(field, fmt.Errorf("missing %q", src))
		return 0
	}
	if s, isStr := v.(string); isStr {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		e.fail(field, err)
		return 0
	}
	return f
}

func (e *entry) flag(src, field string) bool {
	v, ok := e.raw[src]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		v = strings.TrimSpace(s)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		e.fail(field, err)
		return false
	}
	return b
}

func (e *entry) token(src, field string) models.Token {
	switch v := e.raw[src].(type) {
	case nil:
		return models.Token{}
	case string:
		return models.StringToken(v)
	case float64:
		return models.NumberToken(v)
	case int:
		return models.NumberToken(float64(v))
	case int64:
		return models.NumberToken(float64(v))
	case json.Number:
		return models.Token{Text: v.String(), Numeric: true}
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			e.fail(field, err)
			return models.Token{}
		}
		return models.StringToken(s)
	}
}
