package storage

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Store persists an uploaded file and returns the public path or URL the
// catalog row should reference.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path component and collapses unsafe runes,
// keeping only [A-Za-z0-9._-].
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "file"
	}
	return name
}

// uniqueName prefixes the sanitized name so concurrent uploads of the same
// filename never overwrite each other.
func uniqueName(name string) string {
	return uuid.NewString() + "-" + SanitizeFilename(name)
}
