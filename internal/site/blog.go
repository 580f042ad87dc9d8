package site

import (
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
	"git.home.luguber.info/inful/webgen/internal/templates"
)

// generateBlog renders each local post under <site>/posts/<id>/ and
// copies its declared artefacts alongside the rendered page. External
// posts only appear on the index and are skipped here. A failing post
// aborts the run; posts already written stay on disk.
func (g *Generator) generateBlog(tpl *templates.Template) error {
	for _, post := range g.desc.Blog.Posts {
		if post.External() {
			slog.Debug("Skipping external post", "url", post.URL)
			continue
		}
		if err := g.generatePost(tpl, post); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) generatePost(tpl *templates.Template, post descriptor.Post) error {
	contentDir := filepath.Join(g.desc.Blog.PostsContentDirectory, post.Directory)
	source, err := os.ReadFile(filepath.Join(contentDir, "README.md"))
	if err != nil {
		return fmt.Errorf("read post %s: %w", post.ID, err)
	}

	body, err := g.converter.Convert(source)
	if err != nil {
		return fmt.Errorf("convert post %s: %w", post.ID, err)
	}

	postDir := filepath.Join(g.desc.SiteDirectory, "posts", post.ID)
	if err := os.MkdirAll(postDir, 0o755); err != nil {
		return fmt.Errorf("create post directory: %w", err)
	}

	postURL := g.desc.BaseURL + "/posts/" + post.ID + "/index.html"
	bindings := map[string]any{
		"post":     template.HTML(body),
		"post_id":  post.ID,
		"post_url": postURL,
	}
	if err := tpl.RenderToFile(filepath.Join(postDir, "index.html"), bindings); err != nil {
		return fmt.Errorf("render post %s: %w", post.ID, err)
	}
	slog.Info("Post generated", "id", post.ID, "url", postURL)

	// Artefacts are referenced from the rendered page; copy is the
	// only supported operation.
	for _, artefact := range post.Artefacts {
		dst := filepath.Join(postDir, artefact)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create artefact directory for %s: %w", dst, err)
		}
		if err := copyFile(filepath.Join(contentDir, artefact), dst); err != nil {
			return fmt.Errorf("copy artefact for post %s: %w", post.ID, err)
		}
	}
	return nil
}
