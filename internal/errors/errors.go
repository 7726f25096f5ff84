package errors

import "errors"

// Key errors indicate the archive key could not be resolved from the
// environment. Both are fatal: nothing can proceed without a valid key.
var (
	// ErrMissingKey indicates the key environment variable is unset or blank.
	ErrMissingKey = errors.New("archive key is not set")

	// ErrMalformedKey indicates the key environment variable is set but is not
	// a valid base64url-encoded 32-byte key.
	ErrMalformedKey = errors.New("archive key is malformed")
)

// Archive errors indicate issues reading or decrypting the archive file.
var (
	// ErrArchiveNotFound indicates no archive exists at the given path.
	ErrArchiveNotFound = errors.New("archive not found")

	// ErrAuthenticationFailed indicates decryption failed: the key is wrong or
	// the archive bytes were tampered with. Never downgraded to a decode attempt.
	ErrAuthenticationFailed = errors.New("archive authentication failed")

	// ErrTruncatedArchive indicates the archive file is shorter than the
	// smallest valid sealed blob, so it cannot even be handed to the cipher.
	ErrTruncatedArchive = errors.New("archive is truncated")

	// ErrMalformedArchive indicates decryption succeeded but the plaintext is
	// not a valid serialized proverb collection.
	ErrMalformedArchive = errors.New("archive contents are malformed")
)

// Collection errors indicate issues with the decrypted proverb collection.
var (
	// ErrEmptyCollection indicates an operation that needs at least one proverb
	// was given none.
	ErrEmptyCollection = errors.New("proverb collection is empty")
)
