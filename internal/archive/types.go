package archive

// Proverb is one entry of the collection. Field names match the JSON keys
// the archive has used since the first scraper run.
type Proverb struct {
	// Collection is the ETCSL proverb collection number, e.g. "1".
	Collection string `json:"collection"`

	// Number is the running index of the proverb within its composition.
	Number int `json:"proverb_number"`

	// Composition is the ETCSL composition id, e.g. "6.1.01".
	Composition string `json:"composition"`

	// Text is the proverb itself.
	Text string `json:"text"`

	// Wisdom is the deterministic 1-10 wisdom score computed at ingestion.
	Wisdom int `json:"wisdom_score"`
}
