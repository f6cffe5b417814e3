package model

// Mention is a resolved reference from a message to an external business record.
type Mention struct {
	ExternalID string `json:"external_id"`
	Label      string `json:"label"`
}

// RecordRef is a record-search hit offered to the sender as a mention candidate.
type RecordRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
