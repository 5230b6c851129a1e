package templates

import (
	"embed"
	stderrors "errors"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ruboto/rubotogen/internal/errors"
)

//go:embed assets
var assets embed.FS

const (
	templateDir = "src"
	sampleDir   = "samples"
	templateExt = ".java"
)

// Store is the read-only asset lookup used by the generators
type Store interface {
	// Template returns the source template with the given id, e.g. "InheritingClass"
	Template(id string) (string, error)
	// Sample returns a sample script by file name, e.g. "sample_activity.rb"
	Sample(id string) (string, error)
}

// FSStore serves templates from src/<id>.java and samples from samples/<id>
type FSStore struct {
	fsys fs.FS
}

// NewFSStore creates a store over any filesystem with src/ and samples/ directories
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Embedded returns the stock templates compiled into the binary
func Embedded() *FSStore {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic("templates: embedded assets missing: " + err.Error())
	}
	return NewFSStore(sub)
}

// Dir returns a store over a user template directory
func Dir(root string) *FSStore {
	return NewFSStore(os.DirFS(root))
}

// Template implements Store
func (s *FSStore) Template(id string) (string, error) {
	return s.read("template", path.Join(templateDir, id+templateExt), id, templateDir, templateExt)
}

// Sample implements Store
func (s *FSStore) Sample(id string) (string, error) {
	return s.read("sample", path.Join(sampleDir, id), id, sampleDir, "")
}

func (s *FSStore) read(kind, name, id, dir, ext string) (string, error) {
	if id == "" || strings.Contains(id, "/") || strings.Contains(id, "..") {
		return "", errors.TemplateMissingError(kind, id, nil)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.TemplateMissingError(kind, id, s.list(dir, ext))
		}
		return "", errors.WrapFileSystemError("read", name, err)
	}
	return string(data), nil
}

// list returns the ids available in dir, for error suggestions
func (s *FSStore) list(dir, ext string) []string {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(ids)
	return ids
}

// Layered consults each store in order; the first one holding the id wins
type Layered []Store

// Template implements Store
func (l Layered) Template(id string) (string, error) {
	return l.first(func(s Store) (string, error) { return s.Template(id) })
}

// Sample implements Store
func (l Layered) Sample(id string) (string, error) {
	return l.first(func(s Store) (string, error) { return s.Sample(id) })
}

func (l Layered) first(get func(Store) (string, error)) (string, error) {
	var missing error
	for _, s := range l {
		text, err := get(s)
		if err == nil {
			return text, nil
		}
		if !errors.HasCode(err, errors.TemplateMissingErrorCode) {
			return "", err
		}
		if missing == nil {
			missing = err
		}
	}
	if missing == nil {
		missing = errors.New(errors.TemplateMissingErrorCode, "no template stores configured")
	}
	return "", missing
}

// Cached memoizes reads from another store
type Cached struct {
	store Store
	cache *lru.Cache[string, string]
}

// NewCached wraps store with an LRU cache holding up to size assets
func NewCached(store Store, size int) (*Cached, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Cached{store: store, cache: cache}, nil
}

// Template implements Store
func (c *Cached) Template(id string) (string, error) {
	return c.get("template:"+id, func() (string, error) { return c.store.Template(id) })
}

// Sample implements Store
func (c *Cached) Sample(id string) (string, error) {
	return c.get("sample:"+id, func() (string, error) { return c.store.Sample(id) })
}

// Len returns the number of cached assets
func (c *Cached) Len() int {
	return c.cache.Len()
}

func (c *Cached) get(key string, load func() (string, error)) (string, error) {
	if text, ok := c.cache.Get(key); ok {
		return text, nil
	}
	text, err := load()
	if err != nil {
		return "", err
	}
	c.cache.Add(key, text)
	return text, nil
}

// NewDefaultStore returns the embedded templates, overlaid by dir when it is set,
// behind a small cache
func NewDefaultStore(dir string) (Store, error) {
	var store Store = Embedded()
	if dir != "" {
		store = Layered{Dir(dir), store}
	}
	cached, err := NewCached(store, 64)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
