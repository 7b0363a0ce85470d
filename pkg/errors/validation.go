package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateCandidateID validates a candidate identifier for safety and
// correctness before it enters a profile.
//
// The validation rules are intentionally conservative:
//   - No empty identifiers
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Uniqueness within a ballot is checked separately during profile construction.
func ValidateCandidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidBallot, "candidate identifier cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidBallot, "candidate identifier too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidBallot, "candidate identifier contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates a file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// analysisIDRegex matches the UUID form used for stored analyses.
var analysisIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateAnalysisID validates a stored analysis identifier.
func ValidateAnalysisID(id string) error {
	if id == "" {
		return New(ErrCodeAnalysisNotFound, "analysis identifier cannot be empty")
	}

	if !analysisIDRegex.MatchString(id) {
		return New(ErrCodeAnalysisNotFound, "invalid analysis identifier: %q", id)
	}

	return nil
}
