package constants

import (
	"path/filepath"
	"strings"
)

const (
	FileTypeImage   = 1
	FileTypeCSV     = 2
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	case ".csv":
		return FileTypeCSV
	default:
		return FileTypeUnknown // Tidak diketahui
	}
}
