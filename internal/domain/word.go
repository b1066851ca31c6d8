package domain

// WordRecord is a catalog entry. The scheduler treats it as immutable;
// presentation fields (pinyin, translation) ride along untouched.
type WordRecord struct {
	ID          string
	Word        string
	Pinyin      string
	Translation string
	Rank        *int
}

// NormalizeCatalog validates a raw catalog once at the ingestion boundary.
// Records without an ID cannot be scheduled and are dropped; the core never
// re-validates shapes after this point.
func NormalizeCatalog(words []WordRecord) []WordRecord {
	normalized := make([]WordRecord, 0, len(words))
	for _, w := range words {
		if w.ID == "" {
			continue
		}
		normalized = append(normalized, w)
	}
	return normalized
}
