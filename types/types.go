package types

import (
	"strings"
	"time"

	"github.com/golang-module/carbon"
)

// EntityState is one entry of the state catalog returned by /api/states.
// It is a verbatim snapshot of what the server answered; nothing is cached,
// so a fresh fetch always reflects the server's current view.
type EntityState struct {
	EntityID    string     `json:"entity_id"`
	State       string     `json:"state"`
	Attributes  Attributes `json:"attributes"`
	LastChanged string     `json:"last_changed"`
	LastUpdated string     `json:"last_updated"`
}

// Domain returns the entity category, the part of the id before the first dot.
func (e EntityState) Domain() string {
	domain, _, _ := strings.Cut(e.EntityID, ".")
	return domain
}

// LastChangedTime parses the last_changed timestamp. Returns the zero time
// when the field is absent or unparseable.
func (e EntityState) LastChangedTime() time.Time {
	return carbon.Parse(e.LastChanged).Carbon2Time()
}

// LastUpdatedTime parses the last_updated timestamp. Returns the zero time
// when the field is absent or unparseable.
func (e EntityState) LastUpdatedTime() time.Time {
	return carbon.Parse(e.LastUpdated).Carbon2Time()
}

// Attributes is the open-ended attribute mapping of an entity. The key set
// varies per domain, so lookups return an ok flag instead of assuming a
// schema.
type Attributes map[string]any

// Value returns the raw attribute value for key.
func (a Attributes) Value(key string) (any, bool) {
	v, ok := a[key]
	return v, ok
}

// String returns the attribute value for key when it is a string.
func (a Attributes) String(key string) (string, bool) {
	if v, ok := a[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

// FriendlyName returns the display name of the entity. Not every entity
// has one.
func (a Attributes) FriendlyName() (string, bool) {
	return a.String("friendly_name")
}

// ResolvedEntity is the best fuzzy match for a spoken description, scored
// 0-100. It is built from a single catalog snapshot and meant to be
// consumed immediately.
type ResolvedEntity struct {
	ID         string     `json:"id"`
	DevName    string     `json:"dev_name"`
	State      string     `json:"state"`
	Score      int        `json:"best_score"`
	Attributes Attributes `json:"attributes"`
}

// AttributeSummary is a speech-friendly projection of one entity: its
// display name, current state and unit. UnitMeasure is the brightness for
// lights, unit_of_measurement for everything else, and empty when neither
// attribute exists.
type AttributeSummary struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	UnitMeasure string `json:"unit_measure"`
}
