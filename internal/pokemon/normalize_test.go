package pokemon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/pkg/models"
)

func rawBulbasaur() models.RawRecord {
	return models.RawRecord{
		"#":               1.0,
		"Name":            "Bulbasaur",
		"Type 1":          "Grass",
		"Type 2":          "Poison",
		"HP":              45.0,
		"Attack":          49.0,
		"Defense":         49.0,
		"Sp. Atk":         65.0,
		"Sp. Def":         65.0,
		"Speed":           45.0,
		"Generation":      1.0,
		"Legendary":       false,
		"height":          7.0,
		"weight":          69.0,
		"base_experience": 64.0,
		"sprites":         `{'normal': 'https://x/1.png', 'animated': 'https://x/1.gif'}`,
	}
}

func TestNormalize_MapsEveryField(t *testing.T) {
	rep := Normalize([]models.RawRecord{rawBulbasaur()})
	require.Len(t, rep.Records, 1)
	assert.Empty(t, rep.Issues)

	assert.Equal(t, models.Pokemon{
		ID:             models.NumberToken(1),
		Name:           "Bulbasaur",
		Type1:          "Grass",
		Type2:          "Poison",
		HP:             45,
		Attack:         49,
		Defense:        49,
		SpAtk:          65,
		SpDef:          65,
		Speed:          45,
		Generation:     models.NumberToken(1),
		Legendary:      false,
		Height:         7,
		Weight:         69,
		BaseExperience: 64,
		Sprites:        models.SpriteSet{"normal": "https://x/1.png", "animated": "https://x/1.gif"},
	}, rep.Records[0])
}

func TestNormalize_Type2Sentinel(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"sentinel", "Normal", ""},
		{"empty", "", ""},
		{"null", nil, ""},
		{"real type", "Flying", "Flying"},
		{"different case is not the sentinel", "normal", "normal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := rawBulbasaur()
			raw["Type 2"] = tt.in
			rep := Normalize([]models.RawRecord{raw})
			assert.Equal(t, tt.want, rep.Records[0].Type2)
		})
	}

	t.Run("missing key", func(t *testing.T) {
		raw := rawBulbasaur()
		delete(raw, "Type 2")
		rep := Normalize([]models.RawRecord{raw})
		assert.Equal(t, "", rep.Records[0].Type2)
	})
}

func TestNormalize_MalformedSpritesFallBack(t *testing.T) {
	for _, bad := range []any{
		`{'normal': 'https://x/1.png', 'animated': `,
		`garbage`,
		``,
		nil,
		12.0,
	} {
		raw := rawBulbasaur()
		raw["sprites"] = bad

		rep := Normalize([]models.RawRecord{raw})
		require.Len(t, rep.Records, 1, "entry must not be dropped for %#v", bad)
		assert.Equal(t, models.EmptySprites(), rep.Records[0].Sprites)
		assert.Equal(t, "Bulbasaur", rep.Records[0].Name)
		assert.Equal(t, 45, rep.Records[0].HP)

		require.Len(t, rep.Issues, 1)
		assert.Equal(t, "sprites", rep.Issues[0].Field)
		assert.Equal(t, 0, rep.Issues[0].Index)
		assert.Equal(t, "Bulbasaur", rep.Issues[0].Name)
	}
}

func TestNormalize_StructuredSpritesAreKept(t *testing.T) {
	raw := rawBulbasaur()
	raw["sprites"] = map[string]any{"normal": "n.png", "animated": "a.gif"}

	rep := Normalize([]models.RawRecord{raw})
	assert.Equal(t, models.SpriteSet{"normal": "n.png", "animated": "a.gif"}, rep.Records[0].Sprites)
	assert.Empty(t, rep.Issues)
}

func TestNormalize_CoercesTextValues(t *testing.T) {
	raw := models.RawRecord{
		"#":               "025",
		"Name":            "Pikachu",
		"Type 1":          "Electric",
		"Type 2":          "Normal",
		"HP":              "35",
		"Attack":          " 55 ",
		"Defense":         "40",
		"Sp. Atk":         "50",
		"Sp. Def":         "50",
		"Speed":           "90",
		"Generation":      "I",
		"Legendary":       "True",
		"height":          "4",
		"weight":          "60.5",
		"base_experience": "112",
		"sprites":         `{'normal': '', 'animated': ''}`,
	}

	rep := Normalize([]models.RawRecord{raw})
	require.Empty(t, rep.Issues)
	p := rep.Records[0]

	assert.Equal(t, models.StringToken("025"), p.ID)
	assert.Equal(t, "025", p.ID.String())
	assert.Equal(t, 35, p.HP)
	assert.Equal(t, 55, p.Attack)
	assert.Equal(t, 90, p.Speed)
	assert.Equal(t, "I", p.Generation.String())
	assert.True(t, p.Legendary)
	assert.Equal(t, 60.5, p.Weight)
	assert.Equal(t, 112.0, p.BaseExperience)
	assert.Equal(t, "", p.Type2)
}

func TestNormalize_LeadingZerosAreDecimal(t *testing.T) {
	raw := rawBulbasaur()
	raw["HP"] = "010"
	raw["Attack"] = "08"
	raw["Defense"] = "0049"
	raw["Speed"] = "45.9"

	rep := Normalize([]models.RawRecord{raw})
	require.Empty(t, rep.Issues)
	p := rep.Records[0]

	assert.Equal(t, 10, p.HP)
	assert.Equal(t, 8, p.Attack)
	assert.Equal(t, 49, p.Defense)
	assert.Equal(t, 45, p.Speed)
}

func TestNormalize_BadNumbersDegradeToZero(t *testing.T) {
	raw := rawBulbasaur()
	raw["HP"] = "lots"
	raw["Defense"] = "0x31"
	delete(raw, "Speed")

	rep := Normalize([]models.RawRecord{raw})
	require.Len(t, rep.Records, 1)
	assert.Equal(t, 0, rep.Records[0].HP)
	assert.Equal(t, 0, rep.Records[0].Speed)
	assert.Equal(t, 0, rep.Records[0].Defense)
	assert.Equal(t, 49, rep.Records[0].Attack)

	fields := make([]string, 0, len(rep.Issues))
	for _, issue := range rep.Issues {
		fields = append(fields, issue.Field)
	}
	assert.ElementsMatch(t, []string{"hp", "defense", "speed"}, fields)
}

func TestNormalize_KeepsOrderAndCount(t *testing.T) {
	a, b, c := rawBulbasaur(), rawBulbasaur(), rawBulbasaur()
	b["#"], b["Name"] = 2.0, "Ivysaur"
	c["#"], c["Name"], c["sprites"] = 3.0, "Venusaur", "{broken"

	rep := Normalize([]models.RawRecord{a, b, c})
	require.Len(t, rep.Records, 3)
	assert.Equal(t, "Bulbasaur", rep.Records[0].Name)
	assert.Equal(t, "Ivysaur", rep.Records[1].Name)
	assert.Equal(t, "Venusaur", rep.Records[2].Name)
	require.Len(t, rep.Issues, 1)
	assert.Equal(t, 2, rep.Issues[0].Index)
}

func TestNormalize_Empty(t *testing.T) {
	rep := Normalize(nil)
	assert.NotNil(t, rep.Records)
	assert.Empty(t, rep.Records)
	assert.Empty(t, rep.Issues)
}
