package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed data/*.toml
var embedded embed.FS

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Load(embedded, "data")
	if err != nil {
		panic("embedded catalog is invalid: " + err.Error())
	}
	return c
})

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	return defaultCatalog()
}

// Load reads every *.toml file in dir (sorted by name) as one locale.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".toml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	docs := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		docs = append(docs, data)
	}
	return Parse(docs...)
}

// Parse builds a catalog from TOML locale documents. Languages keep the order
// of the documents; the first one is the reference language.
func Parse(docs ...[]byte) (*Catalog, error) {
	if len(docs) == 0 {
		return nil, errors.New("catalog has no locales")
	}

	c := &Catalog{locales: make(map[string]*Locale, len(docs))}
	for i, doc := range docs {
		var loc Locale
		if err := toml.Unmarshal(doc, &loc); err != nil {
			return nil, fmt.Errorf("parse locale document %d: %w", i, err)
		}
		if loc.Code == "" {
			return nil, fmt.Errorf("locale document %d: missing code", i)
		}
		if _, err := language.Parse(loc.Code); err != nil {
			return nil, fmt.Errorf("locale %q: invalid language code: %w", loc.Code, err)
		}
		if _, dup := c.locales[loc.Code]; dup {
			return nil, fmt.Errorf("locale %q defined twice", loc.Code)
		}
		c.order = append(c.order, loc.Code)
		c.locales[loc.Code] = &loc
	}

	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}
