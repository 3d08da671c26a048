package history

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/termstamps/internal/domain"
)

// storedLayouts are tried in order when parsing a stored timestamp.
var storedLayouts = []string{
	domain.StoreTimeLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseStoredTime parses a stored timestamp. Zone-less values are read in
// loc.
func ParseStoredTime(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range storedLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// FormatTime converts a stored timestamp to the display layout. It returns
// nil if s cannot be parsed.
func FormatTime(s string, loc *time.Location) *string {
	t, ok := ParseStoredTime(s, loc)
	if !ok {
		return nil
	}
	out := t.Format(domain.DisplayTimeLayout)
	return &out
}

// ParseDisplayTime parses a value produced by FormatTime.
func ParseDisplayTime(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DisplayTimeLayout, s, loc)
}

// decodeUserID accepts a JSON number or numeric string and returns it when
// it is a positive integer.
func decodeUserID(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}

	var id int64
	switch x := v.(type) {
	case float64:
		if x != float64(int64(x)) {
			return nil
		}
		id = int64(x)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil
		}
		id = n
	default:
		return nil
	}

	if id <= 0 {
		return nil
	}
	return &id
}

// decodeString returns the JSON string in raw.
func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeRecord decodes one history entry. Unusable parts come back nil.
func decodeRecord(raw json.RawMessage, loc *time.Location) Record {
	var entry struct {
		UserID    json.RawMessage `json:"user_id"`
		Timestamp json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Record{}
	}

	rec := Record{UserID: decodeUserID(entry.UserID)}
	if ts, ok := decodeString(entry.Timestamp); ok {
		rec.Time = FormatTime(ts, loc)
	}
	return rec
}
