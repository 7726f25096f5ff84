// Package errors provides typed error values for the tablet application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Each failure
// cause on the archive path has its own sentinel so callers can fail fast and
// distinctly per cause.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Key errors: the key environment variable is absent or unusable
//     (ErrMissingKey, ErrMalformedKey)
//   - Archive errors: the archive file is missing, tampered with, truncated,
//     or holds an invalid collection (ErrArchiveNotFound,
//     ErrAuthenticationFailed, ErrTruncatedArchive, ErrMalformedArchive)
//   - Collection errors: the decrypted collection cannot serve the request
//     (ErrEmptyCollection)
//
// # Usage
//
// Return errors from internal packages, wrapped with context:
//
//	return fmt.Errorf("opening archive %s: %w", path, terrors.ErrArchiveNotFound)
//
// Handle errors in the CLI layer:
//
//	_, err := archive.ReadArchive(path, key)
//	if errors.Is(err, terrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// The core never retries and never falls back: a wrong-key decrypt cannot
// succeed on retry, and an unauthenticated file is never re-read as plaintext.
package errors
