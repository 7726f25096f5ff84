package generate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean text unchanged", "A fed cow watches its gate.", "A fed cow watches its gate."},
		{"strips non-ascii", "a house 『built』 on silver", "a house built on silver"},
		{"collapses whitespace", "too   many\t spaces\nhere", "too many spaces here"},
		{"trims leading punctuation", ", a house of sighs", "a house of sighs"},
		{"keeps common punctuation", `he said: "don't go!" (twice); why?`, `he said: "don't go!" (twice); why?`},
		{"empty", "", ""},
		{"only junk", "『』★☆", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAcceptable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"real proverb", "Wealth is hard to come by, but poverty is always at hand.", true},
		{"too short", "A dog barks.", false},
		{"empty", "", false},
		{"leading punctuation soup", `!!!! what is this even`, false},
		{"underscore runs", "the answer is _____ forever", false},
		{"ellipsis cascade", "well....... that is that....... yes", false},
		{"mostly dots", "a.. .. ... .... .....", false},
		{"low letter ratio", "1 2 3 4 5, 6 7 8 9 10!", false},
		{"fullwidth leakage", "a proverb with 『brackets』 inside it", false},
		{"question is fine", "Who can rival the scribe of the tablet house?", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Acceptable(tt.text); got != tt.want {
				t.Errorf("Acceptable(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSanitizeThenAcceptable(t *testing.T) {
	// The game pipeline always sanitizes first; junk that sanitizes down to
	// nothing must never pass.
	inputs := []string{"『『『』』』", "....!!!....", "  \t  "}
	for _, input := range inputs {
		if Acceptable(Sanitize(input)) {
			t.Errorf("Sanitize(%q) passed Acceptable", input)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synthetic.txt")
	content := "The first synthetic proverb of the day.\n\nThe second, somewhat wiser one.\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	src, err := LoadFileSource(path)
	if err != nil {
		t.Fatalf("LoadFileSource() error = %v", err)
	}
	if src.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (blank line skipped)", src.Len())
	}

	first, err := src.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if first != "The first synthetic proverb of the day." {
		t.Errorf("first = %q", first)
	}

	if _, err := src.Generate(); err != nil {
		t.Fatalf("second Generate() error = %v", err)
	}
	if _, err := src.Generate(); err == nil {
		t.Error("expected error once the source is exhausted")
	}
}

func TestLoadFileSource_Missing(t *testing.T) {
	if _, err := LoadFileSource(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLoadFileSource_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileSource(path); err == nil {
		t.Error("expected error for an empty file")
	}
}

func TestCommandGenerator(t *testing.T) {
	gen := &CommandGenerator{
		Name: "echo",
		Args: []string{"A freshly generated proverb about patience."},
	}

	got, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "A freshly generated proverb about patience." {
		t.Errorf("Generate() = %q", got)
	}
}

func TestCommandGenerator_JunkOutput(t *testing.T) {
	gen := &CommandGenerator{
		Name:    "echo",
		Args:    []string{"..."},
		Retries: 3,
	}

	if _, err := gen.Generate(); err == nil {
		t.Error("expected error when every candidate is junk")
	}
}

func TestCommandGenerator_CommandFailure(t *testing.T) {
	gen := &CommandGenerator{Name: "false"}
	if _, err := gen.Generate(); err == nil {
		t.Error("expected error when the command fails")
	}
}
