package domain

import "encoding/json"

// storageFormat is the persisted shape of a snapshot: items and the identity
// counter. The filter is a view concern and is not part of the stored data.
type storageFormat struct {
	Items  []Item `json:"items"`
	NextID int    `json:"next_id"`
}

// MarshalJSON writes the storage format.
func (l List) MarshalJSON() ([]byte, error) {
	return json.Marshal(storageFormat{Items: l.Items, NextID: l.NextID})
}

// UnmarshalJSON reads the storage format. The filter always comes back as
// FilterAll: a loaded snapshot starts with everything visible.
func (l *List) UnmarshalJSON(data []byte) error {
	var stored storageFormat
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	*l = List{Items: stored.Items, NextID: stored.NextID, Filter: FilterAll}
	return nil
}
