package domain

// ActionType tags the variant of an Action.
type ActionType string

const (
	ActionAdd            ActionType = "add"
	ActionToggle         ActionType = "toggle"
	ActionRemove         ActionType = "remove"
	ActionEdit           ActionType = "edit"
	ActionSetFilter      ActionType = "set_filter"
	ActionClearCompleted ActionType = "clear_completed"
)

// Action describes an intended change to the state. It carries only the data
// needed to compute the next state, never side-effect instructions.
type Action struct {
	Type   ActionType `json:"type"`
	ID     int        `json:"id,omitempty"`
	Title  string     `json:"title,omitempty"`
	Filter Filter     `json:"filter,omitempty"`
}

// Add creates an action that appends a new item with the given title.
func Add(title string) Action {
	return Action{Type: ActionAdd, Title: title}
}

// Toggle creates an action that flips the completion flag of an item.
func Toggle(id int) Action {
	return Action{Type: ActionToggle, ID: id}
}

// Remove creates an action that deletes an item.
func Remove(id int) Action {
	return Action{Type: ActionRemove, ID: id}
}

// Edit creates an action that replaces an item's title.
func Edit(id int, title string) Action {
	return Action{Type: ActionEdit, ID: id, Title: title}
}

// SetFilter creates an action that changes the visible-item filter.
func SetFilter(f Filter) Action {
	return Action{Type: ActionSetFilter, Filter: f}
}

// ClearCompleted creates an action that removes every completed item.
func ClearCompleted() Action {
	return Action{Type: ActionClearCompleted}
}
