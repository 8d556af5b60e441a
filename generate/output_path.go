package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"tsg/config"
)

const outputExt = ".xlsx"

// buildOutputPath returns absolute path of the workbook to produce. When dst
// is a directory (existing one or ending with path separator) file name is
// derived from the source name, optionally transliterated. Output directory
// is created if necessary.
func buildOutputPath(src, dst string, doc *config.DocumentConfig) (string, error) {
	if len(dst) == 0 {
		return "", fmt.Errorf("no output destination has been specified")
	}

	isDir := strings.HasSuffix(dst, string(os.PathSeparator)) || strings.HasSuffix(dst, "/")
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		isDir = true
	}

	outputName := dst
	if isDir {
		outputName = filepath.Join(dst, buildDefaultFileName(src, doc))
	}
	if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}
	return outputName, nil
}

func buildDefaultFileName(src string, doc *config.DocumentConfig) string {
	baseName := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if doc.FileNameTransliterate {
		baseName = slug.Make(baseName)
	}
	return config.CleanFileName(baseName) + outputExt
}
