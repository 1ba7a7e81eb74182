package pokemon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pokedex/pkg/models"
)

func TestLoad_JSON(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c := Load("testdata/pokemon.json", zap.New(core))

	require.True(t, c.Loaded())
	require.NoError(t, c.LoadErr())
	assert.True(t, c.SourceExists())
	assert.Equal(t, 6, c.Len())

	bulbasaur := c.All()[0]
	assert.Equal(t, "1", bulbasaur.ID.String())
	assert.Equal(t, "https://img.pokemondb.net/sprites/home/normal/bulbasaur.png", bulbasaur.Sprites["normal"])

	charmander, err := c.FindByID("4")
	require.NoError(t, err)
	assert.Equal(t, models.EmptySprites(), charmander.Sprites)
	assert.Equal(t, "", charmander.Type2)

	psyduck, err := c.FindByID("54")
	require.NoError(t, err)
	assert.Equal(t, "https://img.pokemondb.net/sprites/black-white/anim/normal/psyduck.gif", psyduck.Sprites["animated"])

	pidgey, err := c.FindByID("16")
	require.NoError(t, err)
	assert.Equal(t, "Normal", pidgey.Type1)
	assert.Equal(t, "", pidgey.Sprites["animated"])

	raw, ok := c.RawFirstSprites()
	require.True(t, ok)
	assert.IsType(t, "", raw)

	assert.Equal(t, 1, logs.FilterMessage("pokemon entry degraded").Len())
	loaded := logs.FilterMessage("pokemon data loaded").All()
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(6), loaded[0].ContextMap()["count"])
	assert.Equal(t, int64(1), loaded[0].ContextMap()["issues"])
}

func TestLoad_CSV(t *testing.T) {
	c := Load("testdata/pokemon.csv", nil)
	require.True(t, c.Loaded(), "load: %v", c.LoadErr())
	require.Equal(t, 3, c.Len())

	assert.Equal(t, []string{"Bulbasaur", "Ivysaur", "Mewtwo"}, names(c.All()))

	mewtwo, err := c.FindByID("150")
	require.NoError(t, err)
	assert.True(t, mewtwo.Legendary)
	assert.Equal(t, "", mewtwo.Type2)
	assert.Equal(t, 106, mewtwo.HP)
	assert.Equal(t, 1220.0, mewtwo.Weight)
	assert.Equal(t, "https://img.pokemondb.net/sprites/home/normal/mewtwo.png", mewtwo.Sprites["normal"])

	assert.Equal(t, []string{"Mewtwo"}, names(query(c, "legendary=true")))
	assert.Equal(t, []string{"Ivysaur", "Mewtwo"}, names(query(c, "hp_min=60")))
}

func TestLoad_MissingFileGivesEmptyCatalog(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	path := filepath.Join(t.TempDir(), "nope.json")
	c := Load(path, zap.New(core))

	assert.False(t, c.Loaded())
	assert.ErrorIs(t, c.LoadErr(), os.ErrNotExist)
	assert.False(t, c.SourceExists())
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.First())
	assert.Empty(t, c.Query(Filter{}))
	assert.Equal(t, 1, logs.Len())

	_, ok := c.RawFirstSprites()
	assert.False(t, ok)
}

func TestLoad_InvalidJSONGivesEmptyCatalog(t *testing.T) {
	c := Load("testdata/broken.json", nil)
	assert.False(t, c.Loaded())
	assert.Error(t, c.LoadErr())
	assert.True(t, c.SourceExists())
	assert.Equal(t, 0, c.Len())
}

func TestLoad_WrongContainerShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "object.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"#": 1, "Name": "Bulbasaur"}`), 0o644))

	c := Load(path, nil)
	assert.False(t, c.Loaded())
	assert.Equal(t, 0, c.Len())
}

func TestLoad_NullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "null.json")
	require.NoError(t, os.WriteFile(path, []byte("null\n"), 0o644))

	c := Load(path, nil)
	assert.False(t, c.Loaded())
	assert.ErrorContains(t, c.LoadErr(), "null")
	assert.Equal(t, 0, c.Len())

	empty := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))
	c = Load(empty, nil)
	assert.True(t, c.Loaded())
	assert.Equal(t, 0, c.Len())
}

func TestLoad_EmptyCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	c := Load(path, nil)
	assert.False(t, c.Loaded())
	assert.Equal(t, 0, c.Len())
}

func TestCatalog_First(t *testing.T) {
	c := fixtureCatalog(t)
	first := c.First()
	require.NotNil(t, first)
	assert.Equal(t, "Bulbasaur", first.Name)

	first.Name = "changed"
	assert.Equal(t, "Bulbasaur", c.All()[0].Name)
}
