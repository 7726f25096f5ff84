// Package generate supplies synthetic proverbs for the guessing game.
//
// The archive core knows nothing about how synthetic text is produced; this
// package defines the Generator seam and two sources: CommandGenerator runs
// an external program (the fine-tuned model's sampling script) per proverb,
// and FileSource replays pre-generated lines from a file.
//
// Model output is junk-prone, so every candidate runs through Sanitize and
// Acceptable before it reaches a player: non-ASCII characters are removed,
// and punctuation soup, ellipsis runs, and too-short fragments are rejected
// and retried.
package generate
