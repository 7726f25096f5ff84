// Package ingest parses ETCSL composite-text pages into proverb entries.
//
// Input is a saved ETCSL proverb page (t.6.1.NN.html) read from the local
// filesystem; the archive core does no network I/O. Parsing mirrors what the
// corpus has always needed:
//
//   - paragraph text is extracted and site boilerplate dropped
//   - editorial apparatus is stripped: {...} inline variants,
//     "(1 ms. has instead: ...)", "(cf. ...)", "(= ...)" references, and bare
//     catalogue refs
//   - lines are split into proverbs on their leading "1." / "1-2." markers
//     and renumbered sequentially
//   - the collection number is read from the page's "Proverbs: collection N"
//     heading; the composition id comes from the filename
//
// Entries that carry only editorial noise ("3 lines unclear") are dropped
// unless Options.IncludeEditorialNoise is set.
package ingest
