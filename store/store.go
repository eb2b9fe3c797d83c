package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/schema"
)

// DefaultPattern matches every asset file under the store directory.
const DefaultPattern = "**/*.json"

// stampLayout is the filename timestamp, second precision.
const stampLayout = "20060102_150405"

// AssetInfo summarizes one stored asset file, read from its manifest
// line only.
type AssetInfo struct {
	// Name is the asset name from the manifest.
	Name string `json:"name"`

	// Kind is the asset kind from the manifest.
	Kind string `json:"kind"`

	// File is the file's path relative to the store directory.
	File string `json:"file"`

	// Schema is the vocabulary fingerprint the file was written
	// against.
	Schema string `json:"schema"`

	// SavedAt is when the file was written.
	SavedAt time.Time `json:"saved_at"`
}

// Store reads and writes asset files under one directory.
type Store struct {
	dir   string
	codec Codec
	log   *slog.Logger
}

// Open returns a store rooted at dir, creating the directory if
// needed.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{dir: dir, log: log}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save encodes the graph into a file named after meta.Name and the
// save instant, then publishes it with a rename so readers never see
// a partial file. It returns the file's path relative to the store
// directory. Save does not validate; callers decide what is fit to
// persist.
func (s *Store) Save(ctx context.Context, g *asset.Graph, meta Manifest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	meta.SavedAt = time.Now().UTC()
	name := fmt.Sprintf("%s_%s.json", slug(meta.Name), meta.SavedAt.Format(stampLayout))

	tmp, err := os.CreateTemp(s.dir, ".rox-asset-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := s.codec.Encode(tmp, g, meta); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("publish asset file: %w", err)
	}

	s.log.Info("asset saved", "name", meta.Name, "file", name, "nodes", g.Len())
	return name, nil
}

// Load finds a stored asset and decodes it against reg. Name may be a
// file path relative to the store directory (anything ending in
// .json) or an asset name, which loads the most recently saved file
// carrying that manifest name.
func (s *Store) Load(ctx context.Context, reg *schema.Registry, name string) (*asset.Graph, Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, Manifest{}, err
	}
	rel := name
	if !strings.HasSuffix(name, ".json") {
		latest, err := s.latest(name)
		if err != nil {
			return nil, Manifest{}, err
		}
		rel = latest
	}

	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Manifest{}, fmt.Errorf("%s: %w", name, ErrAssetNotFound)
		}
		return nil, Manifest{}, fmt.Errorf("open asset file: %w", err)
	}
	defer f.Close()

	g, m, err := s.codec.Decode(f, reg)
	if err != nil {
		return nil, Manifest{}, fmt.Errorf("load %s: %w", rel, err)
	}
	return g, m, nil
}

// Delete removes every stored file whose manifest carries the given
// asset name. A file path (anything ending in .json) removes exactly
// that file.
func (s *Store) Delete(name string) error {
	if strings.HasSuffix(name, ".json") {
		if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(name))); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%s: %w", name, ErrAssetNotFound)
			}
			return fmt.Errorf("delete asset file: %w", err)
		}
		s.log.Info("asset deleted", "file", name)
		return nil
	}

	infos, err := s.List("")
	if err != nil {
		return err
	}
	deleted := 0
	for _, info := range infos {
		if info.Name != name {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(info.File))); err != nil {
			return fmt.Errorf("delete asset file: %w", err)
		}
		deleted++
	}
	if deleted == 0 {
		return fmt.Errorf("%s: %w", name, ErrAssetNotFound)
	}
	s.log.Info("asset deleted", "name", name, "files", deleted)
	return nil
}

// List reads the manifest line of every file matching pattern, a
// doublestar glob relative to the store directory (empty means
// DefaultPattern), and returns their summaries newest first. Files
// that cannot be read as asset files are skipped with a warning.
func (s *Store) List(pattern string) ([]AssetInfo, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(os.DirFS(s.dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	infos := make([]AssetInfo, 0, len(matches))
	for _, rel := range matches {
		m, err := s.readManifest(rel)
		if err != nil {
			s.log.Warn("skipping unreadable asset file", "file", rel, "error", err)
			continue
		}
		infos = append(infos, AssetInfo{
			Name:    m.Name,
			Kind:    m.Kind,
			File:    rel,
			Schema:  m.Schema,
			SavedAt: m.SavedAt,
		})
	}
	slices.SortFunc(infos, func(a, b AssetInfo) int {
		if c := b.SavedAt.Compare(a.SavedAt); c != 0 {
			return c
		}
		return strings.Compare(a.File, b.File)
	})
	return infos, nil
}

// latest returns the newest stored file whose manifest name matches.
func (s *Store) latest(name string) (string, error) {
	infos, err := s.List("")
	if err != nil {
		return "", err
	}
	for _, info := range infos {
		if info.Name == name {
			return info.File, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrAssetNotFound)
}

// readManifest decodes only the first line of a stored file.
func (s *Store) readManifest(rel string) (Manifest, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()

	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: %w", err)
	}
	if m.Format != FormatName {
		return Manifest{}, fmt.Errorf("manifest: not a %s file", FormatName)
	}
	return m, nil
}

// slug derives the filename stem from an asset name: lowercased, with
// word separators folded to dashes and everything else dropped.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == ' ':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "asset"
	}
	return b.String()
}
