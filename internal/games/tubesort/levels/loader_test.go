package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tubesort/internal/games/tubesort"
)

// writePack creates a level pack with one level per format plus broken files.
func writePack(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"b-swap.yaml": "id: b-swap\nname: Swap\ntubes:\n  - [red, blue]\n  - [blue, red]\n  - []\n",
		"nested/a-duo.jsonc": `{
  // warm-up
  "id": "a-duo",
  "tubes": [["red", "blue"], ["blue"], []],
}`,
		"c-tri.hcl":      "id = \"c-tri\"\nname = \"Triangle\"\ntubes = [[\"green\", \"pink\"], [\"pink\", \"green\"], []]\n",
		"bad-color.yaml": "id: bad\ntubes:\n  - [red, teal]\n",
		"no-tubes.json":  `{"id": "empty", "tubes": []}`,
		"notes.txt":      "not a level",
	}
	for name, body := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(writePack(t))

	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 3, "invalid files are skipped")

	assert.Equal(t, "a-duo", lvls[0].ID)
	assert.Equal(t, "a-duo", lvls[0].Name)
	assert.Equal(t, "b-swap", lvls[1].ID)
	assert.Equal(t, "c-tri", lvls[2].ID)
	assert.Equal(t, "Triangle", lvls[2].Name)

	assert.Equal(t, tubesort.PaletteColor(2), lvls[2].Board[0][0], "green")
}

func TestLoaderLoadByID(t *testing.T) {
	loader := NewLoader(writePack(t))

	lvl, err := loader.LoadByID("b-swap")
	require.NoError(t, err)
	assert.Equal(t, "[RB] [BR] []", lvl.Board.String())
	assert.Equal(t, "b-swap.yaml", filepath.Base(lvl.FilePath))

	_, err = loader.LoadByID("missing")
	assert.ErrorIs(t, err, ErrLevelNotFound)
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := NewLoader(writePack(t)).ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-duo", "b-swap", "c-tri"}, ids)
}

func TestLoaderScanReportsSkipped(t *testing.T) {
	root := writePack(t)

	lvls, skipped, err := NewLoader(root).Scan()
	require.NoError(t, err)
	assert.Len(t, lvls, 3)
	require.Len(t, skipped, 2, "notes.txt is not a level file")

	byName := map[string]error{}
	for _, s := range skipped {
		byName[filepath.Base(s.Path)] = s.Err
	}
	assert.ErrorIs(t, byName["bad-color.yaml"], tubesort.ErrUnknownColor)
	assert.ErrorIs(t, byName["no-tubes.json"], tubesort.ErrEmptyBoard)
	assert.NotContains(t, byName, "notes.txt")
}

func TestLoadFileValidation(t *testing.T) {
	root := writePack(t)

	_, err := LoadFile(filepath.Join(root, "bad-color.yaml"))
	assert.ErrorIs(t, err, tubesort.ErrUnknownColor)

	_, err = LoadFile(filepath.Join(root, "no-tubes.json"))
	assert.ErrorIs(t, err, tubesort.ErrEmptyBoard)

	_, err = LoadFile(filepath.Join(root, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}

func TestPackBoardPlays(t *testing.T) {
	lvl, err := NewLoader(writePack(t)).LoadByID("a-duo")
	require.NoError(t, err)

	s := tubesort.NewCustomSession(tubesort.DefaultOptions(), 1, lvl.Name, lvl.Board)
	s.ClickTube(0)
	require.True(t, s.ClickTube(1))
	assert.True(t, s.Won())
}
