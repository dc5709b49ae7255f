package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// kindRegex matches resource kind and tag names ("steel-production", "card-draw").
var kindRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateKind validates a resource kind used as a catalog key.
func ValidateKind(kind string) error {
	if kind == "" {
		return New(ErrCodeInvalidKind, "kind cannot be empty")
	}
	if len(kind) > 64 {
		return New(ErrCodeInvalidKind, "kind too long (max 64 characters)")
	}
	if !kindRegex.MatchString(kind) {
		return New(ErrCodeInvalidKind, "invalid kind: %q (lowercase words joined by '-')", kind)
	}
	return nil
}

// ValidateCardID validates a card identifier taken from a request path.
// Card IDs are short opaque strings; the rules only reject unsafe input.
func ValidateCardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCard, "card id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidCard, "card id too long (max 128 characters)")
	}
	for _, r := range id {
		if unicode.IsControl(r) || r == '/' || r == '\\' {
			return New(ErrCodeInvalidCard, "card id contains invalid characters")
		}
	}
	return nil
}

// ValidatePath validates a relative file path (config or card file).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateBackendURL validates a cache backend URL against allowed schemes.
func ValidateBackendURL(rawURL string, schemes ...string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}
	for _, s := range schemes {
		if strings.HasPrefix(rawURL, s+"://") {
			return nil
		}
	}
	return New(ErrCodeInvalidConfig, "URL must use one of the schemes: %s", strings.Join(schemes, ", "))
}
