package models

// RawRecord is one untransformed entry of the source dataset, keyed by the
// source column names ("#", "Name", "Type 1", ...). It only exists while the
// dataset is being loaded.
type RawRecord map[string]any

// Pokemon is the normalized, queryable form of a dataset entry.
//
// Every field is always populated after normalization; numeric fields fall
// back to zero and strings to "" when the source value could not be coerced.
type Pokemon struct {
	ID             Token     `json:"id"`              // opaque source identifier ("#")
	Name           string    `json:"name"`            // display name
	Type1          string    `json:"type1"`           // primary type
	Type2          string    `json:"type2"`           // "" when there is no secondary type
	HP             int       `json:"hp"`
	Attack         int       `json:"attack"`
	Defense        int       `json:"defense"`
	SpAtk          int       `json:"sp_atk"`
	SpDef          int       `json:"sp_def"`
	Speed          int       `json:"speed"`
	Generation     Token     `json:"generation"`      // number or label, kept as given
	Legendary      bool      `json:"legendary"`
	Height         float64   `json:"height"`          // decimetres in the PokeAPI dump
	Weight         float64   `json:"weight"`          // hectograms in the PokeAPI dump
	BaseExperience float64   `json:"base_experience"`
	Sprites        SpriteSet `json:"sprites"`         // always has "normal" and "animated"
}

const (
	SpriteNormal   = "normal"
	SpriteAnimated = "animated"
)

// SpriteSet maps a sprite kind to an image URL.
type SpriteSet map[string]string

// EmptySprites is the fallback used when a source sprites value is unusable.
func EmptySprites() SpriteSet {
	return SpriteSet{SpriteNormal: "", SpriteAnimated: ""}
}

// Complete fills in the required keys that are missing.
func (s SpriteSet) Complete() SpriteSet {
	if s == nil {
		return EmptySprites()
	}
	for _, k := range []string{SpriteNormal, SpriteAnimated} {
		if _, ok := s[k]; !ok {
			s[k] = ""
		}
	}
	return s
}

// FieldPair links a source column name to its canonical field name.
type FieldPair struct {
	Source    string
	Canonical string
}

// FieldMapping is the fixed column table used by the normalizer, in record order.
var FieldMapping = []FieldPair{
	{"#", "id"},
	{"Name", "name"},
	{"Type 1", "type1"},
	{"Type 2", "type2"},
	{"HP", "hp"},
	{"Attack", "attack"},
	{"Defense", "defense"},
	{"Sp. Atk", "sp_atk"},
	{"Sp. Def", "sp_def"},
	{"Speed", "speed"},
	{"Generation", "generation"},
	{"Legendary", "legendary"},
	{"height", "height"},
	{"weight", "weight"},
	{"base_experience", "base_experience"},
	{"sprites", "sprites"},
}

// SourceFields returns the source column names of FieldMapping.
func SourceFields() []string {
	out := make([]string, 0, len(FieldMapping))
	for _, p := range FieldMapping {
		out = append(out, p.Source)
	}
	return out
}

// CanonicalFields returns the canonical names of FieldMapping.
func CanonicalFields() []string {
	out := make([]string, 0, len(FieldMapping))
	for _, p := range FieldMapping {
		out = append(out, p.Canonical)
	}
	return out
}
