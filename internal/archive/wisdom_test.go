package archive

import "testing"

func TestWisdomScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plain short line", "A dog barks.", 4},
		{"question", "Who can rival the scribe?", 5},
		{"moderate length", "The fox trod on the hoof of the wild bull and asked did it hurt", 5},
		{"clause structure", "He who eats, drinks; he who drinks, sleeps.", 6},
		{"contrast word", "Wealth is hard to come by, but poverty is always at hand.", 7},
		{"cited speech with contrast", `The donkey said: "I will not carry it."`, 7},
		{"everything at once", `"Will you eat, or will you not eat?" he asked; the hungry man, being hungry, did not wait for seconds.`, 9},
		{"empty", "", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WisdomScore(tt.text); got != tt.want {
				t.Errorf("WisdomScore(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestWisdomScore_Deterministic(t *testing.T) {
	text := "Whoever has walked with truth generates life."
	first := WisdomScore(text)
	for range 10 {
		if got := WisdomScore(text); got != first {
			t.Fatalf("WisdomScore(%q) changed between calls: %d then %d", text, first, got)
		}
	}
}

func TestWisdomScore_Bounds(t *testing.T) {
	texts := []string{
		"",
		"?",
		`"Why, why not, and yet why; who knows?" she said, or sang, or wept today here now.`,
	}
	for _, text := range texts {
		got := WisdomScore(text)
		if got < 1 || got > 10 {
			t.Errorf("WisdomScore(%q) = %d, out of 1-10", text, got)
		}
	}
}
