package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/nisaba-tools/tablet/internal/archive"
)

// boilerplatePrefix opens every ETCSL page; any paragraph starting with it is
// site chrome, not text.
const boilerplatePrefix = "The Electronic Text Corpus"

// boilerplateEnd marks where the chrome stops when it got glued onto the
// first content line.
const boilerplateEnd = "This composition: composite text"

// Options control how a page is ingested.
type Options struct {
	// IncludeEditorialNoise keeps entries that are only editorial apparatus,
	// e.g. "1 line unclear". Off by default.
	IncludeEditorialNoise bool
}

var (
	inlineVariant   = regexp.MustCompile(`\{.*?\}`)
	msHasInstead    = regexp.MustCompile(`(?i)\(\s*1 ms\. has instead:.*?\)`)
	cfReference     = regexp.MustCompile(`\(\s*cf\..*?\)`)
	alsterReference = regexp.MustCompile(`\(\s*=.*?\)`)
	catalogueRef    = regexp.MustCompile(`\(\s*\d+\.\d+\.\d+.*?\)`)

	proverbLineStart = regexp.MustCompile(`^(\d+)(?:-\d+)?\.\s*`)

	collectionHeading = regexp.MustCompile(`(?i)proverbs:?\s*collection\s+(\d+)`)
	collectionLoose   = regexp.MustCompile(`(?i)collection\s+(\d+)`)
	headingLine       = regexp.MustCompile(`(?i)^proverbs:?\s*collection\s+\d+$`)

	compositionName = regexp.MustCompile(`t\.(\d+\.\d+)\.(\d+)\.html$`)
)

// stripEditorial removes editorial notes, references, and variants from a line.
func stripEditorial(line string) string {
	line = inlineVariant.ReplaceAllString(line, "")
	line = msHasInstead.ReplaceAllString(line, "")
	line = cfReference.ReplaceAllString(line, "")
	line = alsterReference.ReplaceAllString(line, "")
	line = catalogueRef.ReplaceAllString(line, "")
	return line
}

// collapseSpaces joins all whitespace runs into single spaces and trims.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// paragraphText flattens the text nodes under a <p> element.
func paragraphText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseSpaces(sb.String())
}

// pageParagraphs returns the cleaned text of every <p> in document order.
func pageParagraphs(doc *html.Node) []string {
	var paragraphs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			paragraphs = append(paragraphs, paragraphText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return paragraphs
}

// collectionFromPage extracts the collection number, e.g.
// "Proverbs: collection 1" yields "1". Proverb pages default to "1".
func collectionFromPage(paragraphs []string) string {
	pageText := strings.Join(paragraphs, " ")
	if m := collectionHeading.FindStringSubmatch(pageText); m != nil {
		return m[1]
	}
	if m := collectionLoose.FindStringSubmatch(pageText); m != nil {
		return m[1]
	}
	return "1"
}

// splitProverbs groups cleaned lines into proverbs. A line opening with
// "1." or "1-2." starts a new block; continuation lines join the current
// one. Proverbs are renumbered 1, 2, 3, ... in page order.
func splitProverbs(lines []string) []string {
	var blocks [][]string
	var current []string

	flush := func() {
		for _, s := range current {
			if strings.TrimSpace(s) != "" {
				blocks = append(blocks, current)
				return
			}
		}
	}

	for _, line := range lines {
		if proverbLineStart.MatchString(line) {
			if current != nil {
				flush()
			}
			rest := strings.TrimSpace(proverbLineStart.ReplaceAllString(line, ""))
			if rest != "" {
				current = []string{rest}
			} else {
				current = []string{}
			}
			continue
		}
		if current == nil {
			current = []string{}
		}
		if strings.TrimSpace(line) != "" {
			current = append(current, strings.TrimSpace(line))
		}
	}
	if current != nil {
		flush()
	}

	texts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		texts = append(texts, strings.Join(block, " "))
	}
	return texts
}

// ParsePage ingests one saved ETCSL proverb page. The composition id is
// supplied by the caller, normally derived from the filename with
// CompositionFromName.
func ParsePage(r io.Reader, composition string, opts Options) ([]archive.Proverb, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	paragraphs := pageParagraphs(doc)
	collection := collectionFromPage(paragraphs)

	var cleaned []string
	for _, line := range paragraphs {
		if strings.HasPrefix(line, boilerplatePrefix) {
			// The chrome paragraph sometimes swallows the first content line.
			if idx := strings.Index(line, boilerplateEnd); idx != -1 {
				if rest := collapseSpaces(line[idx+len(boilerplateEnd):]); rest != "" {
					cleaned = append(cleaned, rest)
				}
			}
			continue
		}
		if strings.HasPrefix(line, "(") || strings.HasPrefix(line, "{") ||
			strings.Contains(strings.ToLower(line), "line fragmentary") {
			continue
		}

		line = collapseSpaces(stripEditorial(line))
		if line == "" || headingLine.MatchString(line) {
			continue
		}
		cleaned = append(cleaned, line)
	}

	var proverbs []archive.Proverb
	num := 0
	for _, text := range splitProverbs(cleaned) {
		if !opts.IncludeEditorialNoise && !archive.IsSubstantive(text) {
			continue
		}
		num++
		proverbs = append(proverbs, archive.Proverb{
			Collection:  collection,
			Number:      num,
			Composition: composition,
			Text:        text,
			Wisdom:      archive.WisdomScore(text),
		})
	}
	return proverbs, nil
}

// CompositionFromName derives the composition id from an ETCSL page
// filename: "t.6.1.01.html" yields "6.1.01". Unrecognized names yield "".
func CompositionFromName(name string) string {
	if m := compositionName.FindStringSubmatch(filepath.Base(name)); m != nil {
		return m[1] + "." + m[2]
	}
	return ""
}

// LoadDir ingests every .html page in dir, in filename order, and returns
// the combined collection.
func LoadDir(dir string, opts Options) ([]archive.Proverb, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".html") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("no .html pages found in %s", dir)
	}

	var all []archive.Proverb
	for _, name := range names {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open page %s: %w", path, err)
		}
		proverbs, err := ParsePage(f, CompositionFromName(name), opts)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", path, err)
		}
		all = append(all, proverbs...)
	}
	return all, nil
}
