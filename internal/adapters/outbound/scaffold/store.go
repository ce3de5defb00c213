// Package scaffold ships the managed context-file templates inside the
// binary and serves them by managed-file path.
package scaffold

import (
	"embed"
	"path"
)

//go:embed all:templates
var templateFS embed.FS

// EmbeddedStore implements domain.TemplateStore from the compiled-in
// template tree.
type EmbeddedStore struct{}

func New() *EmbeddedStore {
	return &EmbeddedStore{}
}

// Read returns the raw template for a managed-file path, placeholders
// unexpanded.
func (s *EmbeddedStore) Read(rel string) ([]byte, error) {
	return templateFS.ReadFile(path.Join("templates", rel))
}

// Has reports whether a template exists for the managed-file path.
func (s *EmbeddedStore) Has(rel string) bool {
	info, err := templateFS.Open(path.Join("templates", rel))
	if err != nil {
		return false
	}
	_ = info.Close()
	return true
}
