package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing descriptor file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	slog.Info("Initializing descriptor", "path", root.DescriptorFile, "force", i.Force)
	return descriptor.Init(root.DescriptorFile, i.Force)
}
