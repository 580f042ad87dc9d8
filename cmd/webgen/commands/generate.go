package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
	"git.home.luguber.info/inful/webgen/internal/site"
)

// GenerateCmd implements the 'generate' command: one full, linear
// regeneration of the site directory from the descriptor.
type GenerateCmd struct{}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	desc, err := descriptor.Load(root.DescriptorFile)
	if err != nil {
		return fmt.Errorf("load descriptor: %w", err)
	}

	slog.Info("Starting site generation",
		"descriptor", root.DescriptorFile,
		"output", desc.SiteDirectory,
		"posts", len(desc.Blog.Posts),
		"files", len(desc.Copy.Files))

	if err := site.NewGenerator(desc).Generate(); err != nil {
		return err
	}

	slog.Info("Site generated", "output", desc.SiteDirectory)
	return nil
}
