package domain

// Item is a single entry in the list. Identity is unique within a snapshot
// and never reused after removal.
type Item struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter selects which items are visible to a view.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// List is the state snapshot. Values are treated as immutable: Transition
// returns a fresh List and never mutates its input.
type List struct {
	Items []Item

	// NextID is the identity counter, carried in the state itself so the
	// transition stays pure and reproducible from its inputs alone.
	NextID int

	// Filter is view state. It is never persisted; see storage.go.
	Filter Filter
}

// NewList creates an empty snapshot. The first added item receives ID 0.
func NewList() List {
	return List{Items: []Item{}, NextID: 0, Filter: FilterAll}
}

// Equal reports value equality between two snapshots.
func (l List) Equal(other List) bool {
	if l.NextID != other.NextID || l.Filter != other.Filter {
		return false
	}
	if len(l.Items) != len(other.Items) {
		return false
	}
	for i := range l.Items {
		if l.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}

// clone returns a deep copy so the caller can mutate freely.
func (l List) clone() List {
	items := make([]Item, len(l.Items))
	copy(items, l.Items)
	l.Items = items
	return l
}

// find returns the index of the item with the given ID, or -1.
func (l List) find(id int) int {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Visible returns the items selected by the current filter.
func (l List) Visible() []Item {
	if l.Filter == "" || l.Filter == FilterAll {
		out := make([]Item, len(l.Items))
		copy(out, l.Items)
		return out
	}
	out := make([]Item, 0, len(l.Items))
	for _, item := range l.Items {
		if (l.Filter == FilterActive && !item.Completed) ||
			(l.Filter == FilterCompleted && item.Completed) {
			out = append(out, item)
		}
	}
	return out
}

// ActiveCount returns the number of items not yet completed.
func (l List) ActiveCount() int {
	n := 0
	for _, item := range l.Items {
		if !item.Completed {
			n++
		}
	}
	return n
}

// HasCompleted reports whether any item is completed.
func (l List) HasCompleted() bool {
	for _, item := range l.Items {
		if item.Completed {
			return true
		}
	}
	return false
}
