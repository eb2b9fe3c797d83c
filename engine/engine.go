package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/roxmodel/asset"
	"github.com/c360studio/roxmodel/config"
	"github.com/c360studio/roxmodel/schema"
	"github.com/c360studio/roxmodel/store"
	"github.com/c360studio/roxmodel/vocabulary"
	"github.com/c360studio/roxmodel/vocabulary/assets"
	"github.com/c360studio/roxmodel/vocabulary/dcat"
	"github.com/c360studio/roxmodel/vocabulary/opcua"
)

// Engine wires the type registry and the asset store together. One
// Engine serves any number of sessions.
type Engine struct {
	cfg   *config.Config
	reg   *schema.Registry
	store *store.Store
	log   *slog.Logger
}

// Boot loads the vocabulary sources named by the configuration (or the
// embedded defaults), merges them with the configured bridge rules,
// and opens the asset store. Vocabulary defects abort here: a
// malformed source or an unresolved reference is a startup failure,
// not something sessions should ever see.
func Boot(cfg *config.Config, log *slog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if log == nil {
		log = slog.Default()
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	schema.InitGlobal(reg)

	st, err := store.Open(cfg.Storage.Dir, log)
	if err != nil {
		return nil, err
	}

	log.Debug("engine ready",
		"types", reg.Len(),
		"schema", reg.Version(),
		"store", st.Dir())

	return &Engine{cfg: cfg, reg: reg, store: st, log: log}, nil
}

// buildRegistry assembles the registry from the configured sources and
// bridge rules.
func buildRegistry(cfg *config.Config) (*schema.Registry, error) {
	catalog, err := loadSource(assets.CatalogName, cfg.Vocabulary.CatalogPath, assets.Catalog)
	if err != nil {
		return nil, err
	}
	robotics, err := loadSource(assets.RoboticsName, cfg.Vocabulary.RoboticsPath, assets.Robotics)
	if err != nil {
		return nil, err
	}
	return schema.NewBuilder().
		AddSource(catalog).
		AddSource(robotics).
		WithBridges(cfg.Bridges...).
		WithClassIRIs(assets.CatalogName, dcat.ClassIRIs).
		WithClassIRIs(assets.RoboticsName, opcua.ClassIRIs).
		Build()
}

// loadSource reads one vocabulary source from path, falling back to
// the embedded default when no path is configured.
func loadSource(name, path string, embedded func() (*vocabulary.Source, error)) (*vocabulary.Source, error) {
	if path == "" {
		return embedded()
	}
	src, err := vocabulary.LoadFile(name, path)
	if err != nil {
		return nil, fmt.Errorf("load %s vocabulary: %w", name, err)
	}
	return src, nil
}

// Registry returns the running type registry.
func (e *Engine) Registry() *schema.Registry {
	return e.reg
}

// TypeFilter narrows ListTypes output.
type TypeFilter struct {
	// Vocabulary restricts listing to one vocabulary prefix, e.g.
	// "dcat". Empty lists every vocabulary.
	Vocabulary string
}

// ListTypes returns type definitions in deterministic ID order,
// optionally restricted to one vocabulary.
func (e *Engine) ListTypes(filter TypeFilter) []*schema.TypeDefinition {
	if filter.Vocabulary != "" {
		return e.reg.ByVocabulary(filter.Vocabulary)
	}
	return e.reg.Types()
}

// DescribeType returns the full definition of one type.
func (e *Engine) DescribeType(id schema.ID) (*schema.TypeDefinition, error) {
	def, ok := e.reg.Get(id)
	if !ok {
		return nil, fmt.Errorf("describe type: %w: %s", asset.ErrUnknownType, id)
	}
	return def, nil
}

// SearchTypes returns the types whose ID, label, or hierarchy path
// contains the term, case-insensitively.
func (e *Engine) SearchTypes(term string) []*schema.TypeDefinition {
	return e.reg.Search(term)
}

// NewSession starts an empty session for a new named asset.
func (e *Engine) NewSession(name string, kind AssetKind) *Session {
	return &Session{
		name: name,
		kind: kind,
		g:    asset.NewGraph(e.reg),
		eng:  e,
	}
}

// OpenSession loads a stored asset into a session. The name resolves
// like store.Load: a manifest name picks the newest save, a relative
// path with a .json suffix picks one file.
func (e *Engine) OpenSession(ctx context.Context, name string) (*Session, error) {
	g, meta, err := e.store.Load(ctx, e.reg, name)
	if err != nil {
		return nil, err
	}
	return &Session{
		name: meta.Name,
		kind: AssetKind(meta.Kind),
		g:    g,
		eng:  e,
	}, nil
}

// ListSavedAssets lists stored assets matching the glob pattern,
// newest first. An empty pattern lists everything.
func (e *Engine) ListSavedAssets(pattern string) ([]store.AssetInfo, error) {
	return e.store.List(pattern)
}

// DeleteAsset removes every saved file of the named asset, or a single
// file when given a relative path.
func (e *Engine) DeleteAsset(name string) error {
	return e.store.Delete(name)
}
