package sheet

import (
	"encoding/json"
	"time"
)

// Millis is a time stored as epoch milliseconds on the wire.
type Millis struct {
	time.Time
}

func NewMillis(t time.Time) Millis {
	return Millis{Time: t.Truncate(time.Millisecond)}
}

func (m Millis) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("0"), nil
	}
	return json.Marshal(m.UnixMilli())
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	if ms == 0 {
		m.Time = time.Time{}
		return nil
	}
	m.Time = time.UnixMilli(ms)
	return nil
}

// CustomCheatsheet is a user-authored sheet.
type CustomCheatsheet struct {
	ID          string   `json:"id"                    validate:"required"`
	Title       string   `json:"title"                 validate:"required"`
	Content     string   `json:"content"               validate:"required"`
	CreatedAt   Millis   `json:"createdAt"`
	UpdatedAt   Millis   `json:"updatedAt"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

// OfflineEntry is a remote sheet's raw content persisted for offline use.
type OfflineEntry struct {
	Slug        string `json:"slug"        validate:"required"`
	Content     string `json:"content"`
	LastUpdated Millis `json:"lastUpdated"`
	Size        int    `json:"size"        validate:"min=0"`
}

// FavoriteEntry marks (Provenance, Slug) as a favorite.
type FavoriteEntry struct {
	Provenance Provenance `json:"type"  validate:"required,oneof=custom default"`
	Slug       string     `json:"slug"  validate:"required"`
	Title      string     `json:"title"`
}

func (f FavoriteEntry) Key() Key {
	return Key{Provenance: f.Provenance, Slug: f.Slug}
}
