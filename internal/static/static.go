// Package static embeds the files FocusFlow installs into its data directory
package static

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	filesDir = "files"
	iconFile = "focusflow.svg"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies the embedded files into dir, leaving existing files alone,
// and returns the path of the notification icon.
func Install(dir string) (string, error) {
	err := fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			destPath := filepath.Join(
				dir,
				filepath.FromSlash(strings.TrimPrefix(p, filesDir+"/")),
			)

			if _, err := os.Stat(destPath); !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return err
			}

			return os.WriteFile(destPath, b, 0o644)
		},
	)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, iconFile), nil
}
