package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// Global carries state shared with subcommands if we need more later.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command definition and global flags.
type CLI struct {
	DescriptorFile string           `short:"d" help:"Path to the site descriptor file" default:"descriptor.yaml"`
	Verbose        bool             `short:"v" help:"Enable verbose logging"`
	Version        kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate the site described by the descriptor"`
	Init     InitCmd     `cmd:"" help:"Write an example descriptor file"`
	Posts    PostsCmd    `cmd:"" help:"List the posts declared in the descriptor"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}
