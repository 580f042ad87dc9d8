package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/webgen/internal/descriptor"
)

// copyFiles copies each descriptor pair into the destination root in
// list order. The final destination is the root joined with the
// pair's relative path; intermediate directories are created as
// needed and existing files are overwritten.
func copyFiles(dstRoot string, files []descriptor.CopyPair) error {
	for _, pair := range files {
		dst := filepath.Join(dstRoot, pair.Destination)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", dst, err)
		}
		if err := copyFile(pair.Source, dst); err != nil {
			return fmt.Errorf("copy %s: %w", pair.Source, err)
		}
		slog.Debug("Copied file", "source", pair.Source, "destination", dst)
	}
	return nil
}

// copyFile copies a single file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = srcFile.Close()
	}()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}
	return dstFile.Sync()
}
