package store

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema/schematest"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

// writeAssetFile plants a file with a caller-controlled name and
// save time, bypassing Save's stamping.
func writeAssetFile(t *testing.T, s *Store, file string, g *asset.Graph, meta Manifest) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Codec{}.Encode(&buf, g, meta))
	path := filepath.Join(s.Dir(), filepath.FromSlash(file))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "assets")
	_, err := Open(dir, nil)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	g := sampleGraph(t, reg)
	ctx := context.Background()

	file, err := s.Save(ctx, g, Manifest{Name: "Weld Cell 7", Kind: "raw-data"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(file, "weld-cell-7_"), "file = %s", file)
	require.True(t, strings.HasSuffix(file, ".json"), "file = %s", file)

	byName, m, err := s.Load(ctx, reg, "Weld Cell 7")
	require.NoError(t, err)
	require.NoError(t, diffGraphs(g, byName))
	require.Equal(t, "Weld Cell 7", m.Name)
	require.Equal(t, "raw-data", m.Kind)
	require.False(t, m.SavedAt.IsZero())

	byPath, _, err := s.Load(ctx, reg, file)
	require.NoError(t, err)
	require.NoError(t, diffGraphs(g, byPath))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)

	_, err := s.Save(context.Background(), sampleGraph(t, reg), Manifest{Name: "cell", Kind: "model"})
	require.NoError(t, err)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.False(t, strings.HasSuffix(entries[0].Name(), ".tmp"))
}

func TestSaveCancelledContext(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, sampleGraph(t, reg), Manifest{Name: "cell"})
	require.ErrorIs(t, err, context.Canceled)

	entries, readErr := os.ReadDir(s.Dir())
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestLoadNotFound(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	ctx := context.Background()

	_, _, err := s.Load(ctx, reg, "never-saved")
	require.ErrorIs(t, err, ErrAssetNotFound)

	_, _, err = s.Load(ctx, reg, "never-saved_20260101_000000.json")
	require.ErrorIs(t, err, ErrAssetNotFound)
}

func TestLoadCorruptFile(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "bad.json"), []byte("garbage\n"), 0644))

	_, _, err := s.Load(context.Background(), reg, "bad.json")
	require.ErrorIs(t, err, ErrCorruptAsset)
}

func TestLoadPicksLatest(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	ctx := context.Background()

	old := asset.NewGraph(reg)
	_, err := old.CreateNode("dcat:Catalog", "")
	require.NoError(t, err)
	writeAssetFile(t, s, "line-4_20260810_080000.json", old,
		Manifest{Name: "line-4", Kind: "model", SavedAt: time.Date(2026, 8, 10, 8, 0, 0, 0, time.UTC)})

	fresh := asset.NewGraph(reg)
	c, err := fresh.CreateNode("dcat:Catalog", "")
	require.NoError(t, err)
	_, err = fresh.CreateNode("dcat:Dataset", c.ID)
	require.NoError(t, err)
	writeAssetFile(t, s, "line-4_20260820_090000.json", fresh,
		Manifest{Name: "line-4", Kind: "model", SavedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)})

	g, m, err := s.Load(ctx, reg, "line-4")
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())
	require.True(t, m.SavedAt.Equal(time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)))
}

func TestList(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	g := asset.NewGraph(reg)

	writeAssetFile(t, s, "alpha_20260801_120000.json", g,
		Manifest{Name: "alpha", Kind: "model", SavedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)})
	writeAssetFile(t, s, "alpha_20260815_120000.json", g,
		Manifest{Name: "alpha", Kind: "model", SavedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)})
	writeAssetFile(t, s, "archive/beta_20260701_120000.json", g,
		Manifest{Name: "beta", Kind: "raw-data", SavedAt: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)})
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "junk.json"), []byte("not an asset\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("ignore me\n"), 0644))

	infos, err := s.List("")
	require.NoError(t, err)
	require.Len(t, infos, 3)
	require.Equal(t, "alpha_20260815_120000.json", infos[0].File, "newest first")
	require.Equal(t, "alpha_20260801_120000.json", infos[1].File)
	require.Equal(t, "archive/beta_20260701_120000.json", infos[2].File)
	require.Equal(t, "beta", infos[2].Name)
	require.Equal(t, "raw-data", infos[2].Kind)

	alphas, err := s.List("alpha*.json")
	require.NoError(t, err)
	require.Len(t, alphas, 2)

	nested, err := s.List("archive/**")
	require.NoError(t, err)
	require.Len(t, nested, 1)
}

func TestDelete(t *testing.T) {
	reg := schematest.Registry(t)
	s := testStore(t)
	g := asset.NewGraph(reg)

	writeAssetFile(t, s, "alpha_20260801_120000.json", g,
		Manifest{Name: "alpha", Kind: "model", SavedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)})
	writeAssetFile(t, s, "alpha_20260815_120000.json", g,
		Manifest{Name: "alpha", Kind: "model", SavedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)})
	writeAssetFile(t, s, "beta_20260701_120000.json", g,
		Manifest{Name: "beta", Kind: "model", SavedAt: time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)})

	require.NoError(t, s.Delete("alpha"))

	infos, err := s.List("")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "beta", infos[0].Name)

	require.ErrorIs(t, s.Delete("alpha"), ErrAssetNotFound)

	require.NoError(t, s.Delete("beta_20260701_120000.json"))
	require.ErrorIs(t, s.Delete("beta_20260701_120000.json"), ErrAssetNotFound)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Weld Cell 7", "weld-cell-7"},
		{"pick_and_place", "pick-and-place"},
		{"  Träger Linie  ", "trger-linie"},
		{"!!!", "asset"},
		{"", "asset"},
	}
	for _, tc := range tests {
		if got := slug(tc.in); got != tc.want {
			t.Errorf("slug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
