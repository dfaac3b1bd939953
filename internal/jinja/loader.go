package jinja

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikolalohinski/gonja/loaders"
	"gopkg.in/yaml.v3"
)

// LiteralLoader resolves a template identifier as its own source text.
type LiteralLoader struct{}

// Get implements loaders.Loader.
func (LiteralLoader) Get(path string) (io.Reader, error) {
	return strings.NewReader(path), nil
}

// Path implements loaders.Loader.
func (LiteralLoader) Path(path string) (string, error) {
	return path, nil
}

// MapLoader resolves named templates from memory. Names it does not know are
// passed to Fallback when set.
type MapLoader struct {
	Templates map[string]string
	Fallback  loaders.Loader
}

// NewMapLoader returns a MapLoader over a copy of templates.
func NewMapLoader(templates map[string]string, fallback loaders.Loader) *MapLoader {
	copied := make(map[string]string, len(templates))
	for name, src := range templates {
		copied[name] = src
	}
	return &MapLoader{Templates: copied, Fallback: fallback}
}

// Get implements loaders.Loader.
func (l *MapLoader) Get(path string) (io.Reader, error) {
	if src, ok := l.Templates[path]; ok {
		return strings.NewReader(src), nil
	}
	if l.Fallback != nil {
		return l.Fallback.Get(path)
	}
	return nil, fmt.Errorf("template %q not found", path)
}

// Path implements loaders.Loader.
func (l *MapLoader) Path(path string) (string, error) {
	if _, ok := l.Templates[path]; ok {
		return path, nil
	}
	if l.Fallback != nil {
		return l.Fallback.Path(path)
	}
	return "", fmt.Errorf("template %q not found", path)
}

// LoadCatalog decodes a YAML document mapping template names to sources.
func LoadCatalog(r io.Reader) (map[string]string, error) {
	catalog := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return catalog, nil
		}
		return nil, fmt.Errorf("failed to decode template catalog: %w", err)
	}
	return catalog, nil
}

// whitespaceLoader applies the environment's block whitespace policy to
// every template it loads, including includes and parents.
type whitespaceLoader struct {
	inner  loaders.Loader
	trim   bool
	lstrip bool
}

func (l *whitespaceLoader) Get(path string) (io.Reader, error) {
	r, err := l.inner.Get(path)
	if err != nil {
		return nil, err
	}
	if !l.trim && !l.lstrip {
		return r, nil
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return strings.NewReader(stripBlocks(string(raw), l.trim, l.lstrip)), nil
}

func (l *whitespaceLoader) Path(path string) (string, error) {
	return l.inner.Path(path)
}
