package generate

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"unicode"
)

// Acceptability thresholds for generated text.
const (
	// MinAcceptableLength is the minimum length in characters.
	MinAcceptableLength = 15
	// MinLetterRatio is the minimum fraction of letters among non-space characters.
	MinLetterRatio = 0.35
	// MaxLeadingJunk is the maximum punctuation/symbol run at the start.
	MaxLeadingJunk = 2
	// MaxRepeatRun is the longest allowed run of the same punctuation mark.
	MaxRepeatRun = 4

	// DefaultRetries bounds how many candidates a generator draws before
	// giving up.
	DefaultRetries = 15
)

// allowedChars keeps ASCII letters, digits, and common English punctuation.
var allowedChars = regexp.MustCompile(`[^a-zA-Z0-9\s.,!?'"\-;:()]`)

// leadingPunct trims punctuation left dangling at the start after junk removal.
var leadingPunct = regexp.MustCompile(`^[\s.,!?'"\-;:()]+`)

// cjkOrFullwidth catches CJK punctuation and fullwidth forms that slip
// through model sampling.
var cjkOrFullwidth = regexp.MustCompile("[　-〿＀-￯]")

// Sanitize strips characters outside the allowed set, collapses whitespace,
// and trims leading punctuation debris.
func Sanitize(text string) string {
	cleaned := allowedChars.ReplaceAllString(text, "")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.TrimSpace(leadingPunct.ReplaceAllString(cleaned, ""))
	return cleaned
}

// longestPunctRun returns the longest run of one repeated mark among .,_?!-.
func longestPunctRun(s string) int {
	longest, run := 0, 0
	var prev rune
	for _, r := range s {
		if strings.ContainsRune("._?!-", r) && r == prev {
			run++
		} else if strings.ContainsRune("._?!-", r) {
			run = 1
		} else {
			run = 0
		}
		prev = r
		if run > longest {
			longest = run
		}
	}
	return longest
}

// Acceptable reports whether generated text looks like a proverb rather than
// punctuation soup, an ellipsis cascade, or a fragment.
func Acceptable(text string) bool {
	t := strings.TrimSpace(text)
	if len(t) < MinAcceptableLength {
		return false
	}

	junk := 0
	for _, r := range t {
		if unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(`._!?-"'`, r) {
			junk++
			continue
		}
		break
	}
	if junk > MaxLeadingJunk {
		return false
	}

	noSpaces := strings.Join(strings.Fields(t), "")
	if noSpaces == "" {
		return false
	}
	letters := 0
	for _, r := range noSpaces {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if float64(letters)/float64(len([]rune(noSpaces))) < MinLetterRatio {
		return false
	}

	if longestPunctRun(t) > MaxRepeatRun {
		return false
	}
	if strings.Count(t, ".") >= len(t)/2 {
		return false
	}
	if cjkOrFullwidth.MatchString(t) {
		return false
	}
	return true
}

// Generator produces one synthetic proverb per call.
type Generator interface {
	Generate() (string, error)
}

// CommandGenerator runs an external command and takes the first line of its
// stdout as a candidate proverb, retrying until one passes Acceptable.
type CommandGenerator struct {
	// Name is the command to run; Args are passed through verbatim.
	Name string
	Args []string

	// Retries bounds the candidate draws; zero means DefaultRetries.
	Retries int
}

// Generate runs the command until it yields an acceptable proverb.
func (g *CommandGenerator) Generate() (string, error) {
	retries := g.Retries
	if retries <= 0 {
		retries = DefaultRetries
	}

	var last string
	for range retries {
		out, err := exec.Command(g.Name, g.Args...).Output()
		if err != nil {
			return "", fmt.Errorf("generator command %s failed: %w", g.Name, err)
		}

		line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
		last = Sanitize(line)
		if Acceptable(last) {
			return last, nil
		}
	}
	return "", fmt.Errorf("generator produced no acceptable proverb in %d attempts (last: %q)", retries, last)
}

// FileSource replays pre-generated proverbs from a file, one per line.
// Blank lines are skipped; lines are consumed in order and the source errors
// when exhausted.
type FileSource struct {
	lines []string
	next  int
}

// LoadFileSource reads the file of pre-generated proverbs.
func LoadFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open synthetic proverbs file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := Sanitize(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read synthetic proverbs file: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("synthetic proverbs file %s is empty", path)
	}
	return &FileSource{lines: lines}, nil
}

// Len returns how many proverbs remain.
func (s *FileSource) Len() int {
	return len(s.lines) - s.next
}

// Generate returns the next pre-generated proverb.
func (s *FileSource) Generate() (string, error) {
	if s.next >= len(s.lines) {
		return "", fmt.Errorf("synthetic proverbs exhausted after %d lines", len(s.lines))
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}
