// Package workspace tracks open project-file documents and serves them
// over the Language Server Protocol: a block outline as document symbols,
// decoded values on hover, and marker-pairing problems as diagnostics.
package workspace

import (
	"os"
	"sync"
)

// Workspace holds the open documents keyed by path.
type Workspace struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// Document is one tracked file: its content plus the outline and
// problems derived from it.
type Document struct {
	Path     string
	Content  []byte
	Blocks   []*Block
	Problems []Problem
}

func New() *Workspace {
	return &Workspace{docs: make(map[string]*Document)}
}

// Update replaces the content stored for path and rebuilds its outline.
func (w *Workspace) Update(path string, content []byte) *Document {
	blocks, problems := Scan(content)
	doc := &Document{
		Path:     path,
		Content:  content,
		Blocks:   blocks,
		Problems: problems,
	}
	w.mu.Lock()
	w.docs[path] = doc
	w.mu.Unlock()
	return doc
}

// Load reads path from disk and tracks it.
func (w *Workspace) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return w.Update(path, content), nil
}

// Get returns the tracked document for path, or nil.
func (w *Workspace) Get(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.docs[path]
}

// Close drops the document for path.
func (w *Workspace) Close(path string) {
	w.mu.Lock()
	delete(w.docs, path)
	w.mu.Unlock()
}
