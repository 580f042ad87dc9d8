// Package site performs one full generation run: the index page,
// copied assets, and rendered blog posts, in that order.
package site

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
	"git.home.luguber.info/inful/webgen/internal/markdown"
	"git.home.luguber.info/inful/webgen/internal/templates"
)

// Generator renders a full site from a loaded descriptor.
type Generator struct {
	desc      *descriptor.Descriptor
	env       *templates.Environment
	converter *markdown.Converter
}

// NewGenerator creates a generator for one run. The template
// environment is rooted at the descriptor's templates directory.
func NewGenerator(desc *descriptor.Descriptor) *Generator {
	return &Generator{
		desc:      desc,
		env:       templates.NewEnvironment(desc.TemplatesDirectory),
		converter: markdown.NewConverter(),
	}
}

// Generate runs the three generation steps in fixed order: index,
// asset copy, blog. There is no rollback; output from completed steps
// stays on disk when a later step fails.
func (g *Generator) Generate() error {
	if err := ensureSiteDirectory(g.desc.SiteDirectory); err != nil {
		return err
	}

	indexTemplate, err := g.env.Lookup(g.desc.Index.IndexTemplate)
	if err != nil {
		return err
	}
	postTemplate, err := g.env.Lookup(g.desc.Blog.PostTemplate)
	if err != nil {
		return err
	}

	slog.Info("Generating index", "posts", len(g.desc.Blog.Posts))
	if err := generateIndex(g.desc.SiteDirectory, indexTemplate, g.desc.Blog.Posts); err != nil {
		return err
	}

	slog.Info("Copying assets", "files", len(g.desc.Copy.Files))
	if err := copyFiles(g.desc.SiteDirectory, g.desc.Copy.Files); err != nil {
		return err
	}

	slog.Info("Generating blog posts", "posts", len(g.desc.Blog.Posts))
	return g.generateBlog(postTemplate)
}

// ensureSiteDirectory creates the output directory if it is missing.
// The create is single-level: a missing parent is an error.
func ensureSiteDirectory(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat site directory: %w", err)
	}
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("create site directory: %w", err)
	}
	return nil
}
