// Package archive stores the proverb collection as a single encrypted file.
//
// # File Format
//
// The archive on disk is exactly one sealed blob from the crypto package:
// no header, no version byte, no companion metadata. The plaintext inside is
// a JSON array of proverb objects, the same shape the collection has always
// had:
//
//	[
//	  {
//	    "collection": "1",
//	    "proverb_number": 1,
//	    "composition": "6.1.01",
//	    "text": "Wisdom begins in wonder.",
//	    "wisdom_score": 4
//	  }
//	]
//
// # Operations
//
// WriteArchive encodes, seals, and atomically replaces the file (temp file
// then rename, so a crash never leaves a partial archive). ReadArchive is a
// pure observer: read bytes, open, decode, with a distinct error per failure
// cause. Every read is a fresh decrypt; nothing is cached.
//
// Insertion order is preserved exactly through a round trip and duplicates
// are kept. Callers needing mutual exclusion around WriteArchive must
// provide it themselves; ReadArchive is safe for concurrent callers.
//
// The package also carries the corpus heuristics that have always traveled
// with the collection: the deterministic wisdom score and the filter that
// separates substantive proverbs from editorial noise ("3 lines unclear").
package archive
