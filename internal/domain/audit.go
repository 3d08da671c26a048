package domain

// Timestamp layouts used by the audit trail.
const (
	// StoreTimeLayout is how timestamps are persisted in term meta,
	// expressed in the store's configured timezone.
	StoreTimeLayout = "2006-01-02 15:04:05"

	// DisplayTimeLayout is how timestamps are exposed to API clients,
	// e.g. "Tue Mar 5,2024 14:07:09".
	DisplayTimeLayout = "Mon Jan 2,2006 15:04:05"
)

// AuditRecord is one point-in-time attribution event: who did something
// and when. It is the value appended to the modifications history.
type AuditRecord struct {
	UserID    int64  `json:"user_id"`
	Timestamp string `json:"timestamp"`
}

// MetaKeys names the term meta keys the audit trail is stored under.
// Every key can be overridden to avoid collisions with other writers of
// the same meta table.
type MetaKeys struct {
	CreatedBy             string
	CreatedTimestamp      string
	LastModifiedBy        string
	LastModifiedTimestamp string
	Modifications         string
}

// DefaultMetaKeys returns the stock key names.
func DefaultMetaKeys() MetaKeys {
	return MetaKeys{
		CreatedBy:             "created_by",
		CreatedTimestamp:      "created_timestamp",
		LastModifiedBy:        "last_modified_by",
		LastModifiedTimestamp: "last_modified_timestamp",
		Modifications:         "modifications",
	}
}

// TermEvent is emitted by the term service after a term has been persisted.
type TermEvent struct {
	TermID         int64
	TermTaxonomyID int64
	Taxonomy       string
}
