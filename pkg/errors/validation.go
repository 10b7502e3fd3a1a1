package errors

import (
	"strings"
	"unicode"
)

// ValidateWorkflowName validates a stored workflow name for safety and
// correctness. Names are used as store keys and URL path segments, so the
// rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateWorkflowName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "workflow name cannot be empty")
	}

	const maxNameLength = 128
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "workflow name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "workflow name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "workflow name cannot contain path components")
	}

	return nil
}

// ValidateJobID validates a job identifier from an imported graph or
// manifest. Job IDs become XML attribute values and store fields; control
// characters would corrupt both.
func ValidateJobID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "job id cannot be empty")
	}

	const maxIDLength = 256
	if len(id) > maxIDLength {
		return New(ErrCodeInvalidGraph, "job id too long (max %d characters)", maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "job id contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a local output path supplied on the command line
// or in service configuration.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
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

	return nil
}
