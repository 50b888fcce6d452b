package gemini

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxQueryLen caps query length to keep constructed command lines sane.
const MaxQueryLen = 2000

// ValidateQuery rejects empty (or whitespace-only) and oversized queries.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query cannot be empty", ErrInvalidInput)
	}
	if len(query) > MaxQueryLen {
		return fmt.Errorf("%w: query too long (max %d characters)", ErrInvalidInput, MaxQueryLen)
	}
	return nil
}

// ValidateFilePath confirms path exists, canonicalizes it, and requires the
// canonical path to stay inside root. This is a containment check against
// path traversal, not a sandbox. Returns the canonical absolute path.
func ValidateFilePath(root, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("stat %q: %w", path, err)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", path, err)
	}

	canonRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}
	canonRoot, err = filepath.Abs(canonRoot)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", root, err)
	}

	rel, err := filepath.Rel(canonRoot, resolved)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q is outside the working directory", ErrAccessDenied, path)
	}
	return resolved, nil
}

// ReadTextFile reads a validated path and requires valid UTF-8 content.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %q contains invalid UTF-8", ErrNotText, path)
	}
	return string(data), nil
}
