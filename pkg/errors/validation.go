package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a destination path for a rendered sheet.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path %q names a directory", path)
	}

	return nil
}

// ValidateMarker validates the filename marker that distinguishes back images.
// The marker is matched literally against the end of the file stem, so it
// must be non-empty and must not contain path separators or a dot.
func ValidateMarker(marker string) error {
	if marker == "" {
		return New(ErrCodeInvalidInput, "back marker cannot be empty")
	}
	if strings.ContainsAny(marker, "/\\.") {
		return New(ErrCodeInvalidInput, "back marker %q cannot contain '/', '\\' or '.'", marker)
	}
	for _, r := range marker {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "back marker %q contains invalid characters", marker)
		}
	}
	return nil
}
