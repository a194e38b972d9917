package renderer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"

	"github.com/iedon/happy-vibe-go/fsutil"
)

// Renderer produces the page and keeps a copy of it at a fixed path.
type Renderer struct {
	outputPath string
	minifier   *minify.M
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithMinify strips whitespace from the markup and inline stylesheet before it is served and written.
func WithMinify(enabled bool) Option {
	return func(r *Renderer) {
		if !enabled {
			r.minifier = nil
			return
		}
		m := minify.New()
		m.AddFunc("text/html", html.Minify)
		m.AddFunc("text/css", css.Minify)
		r.minifier = m
	}
}

// New constructs a renderer writing to outputPath.
func New(outputPath string, opts ...Option) *Renderer {
	r := &Renderer{outputPath: strings.TrimSpace(outputPath)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OutputPath reports where rendered pages are persisted.
func (r *Renderer) OutputPath() string {
	return r.outputPath
}

// Render returns the page and overwrites the output file with it.
// Every call renders and writes again; nothing is cached.
func (r *Renderer) Render() (string, error) {
	content, err := r.markup()
	if err != nil {
		return "", err
	}
	if err := fsutil.WriteFile(r.outputPath, []byte(content)); err != nil {
		return "", fmt.Errorf("write page: %w", err)
	}
	return content, nil
}

// Prime creates the output directory and performs the initial render.
func (r *Renderer) Prime() error {
	if err := fsutil.EnsureDir(filepath.Dir(r.outputPath)); err != nil {
		return err
	}
	_, err := r.Render()
	return err
}

func (r *Renderer) markup() (string, error) {
	if r.minifier == nil {
		return Document, nil
	}
	out, err := r.minifier.String("text/html", Document)
	if err != nil {
		return "", fmt.Errorf("minify page: %w", err)
	}
	return out, nil
}
