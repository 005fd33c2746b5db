package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveFile writes img to path, choosing the format from the extension (.ppm or .png).
// Missing parent directories are created.
func SaveFile(path string, img *Image, mode ChannelMode) (err error) {
	var write func(f *os.File) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm":
		write = func(f *os.File) error { return WritePPM(f, img, mode) }
	case ".png":
		write = func(f *os.File) error { return WritePNG(f, img, mode) }
	default:
		return fmt.Errorf("unsupported output format %q (want .ppm or .png)", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	return write(file)
}
