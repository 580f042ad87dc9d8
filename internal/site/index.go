package site

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
	"git.home.luguber.info/inful/webgen/internal/templates"
)

// generateIndex renders the index template with the full post list
// bound to "posts" and writes it to <outputDir>/index.html. External
// and local posts are passed through unfiltered, in descriptor order.
func generateIndex(outputDir string, tpl *templates.Template, posts []descriptor.Post) error {
	path := filepath.Join(outputDir, "index.html")
	if err := tpl.RenderToFile(path, map[string]any{"posts": posts}); err != nil {
		return fmt.Errorf("generate index: %w", err)
	}
	slog.Debug("Index written", "path", path)
	return nil
}
