package domain

import "strings"

// Transition computes the next state from a state and an action.
// It is total: every valid pair yields a defined next state, and edge cases
// (unknown IDs, blank titles, unknown action types) resolve to a value-equal
// state rather than an error. The input state is never mutated.
func Transition(state List, action Action) List {
	switch action.Type {
	case ActionAdd:
		return addItem(state, action.Title)
	case ActionToggle:
		return toggleItem(state, action.ID)
	case ActionRemove:
		return removeItem(state, action.ID)
	case ActionEdit:
		return editItem(state, action.ID, action.Title)
	case ActionSetFilter:
		return setFilter(state, action.Filter)
	case ActionClearCompleted:
		return clearCompleted(state)
	}
	return state
}

func addItem(state List, title string) List {
	title = strings.TrimSpace(title)
	if title == "" {
		return state
	}
	next := state.clone()
	next.Items = append(next.Items, Item{
		ID:    next.NextID,
		Title: title,
	})
	next.NextID++
	return next
}

func toggleItem(state List, id int) List {
	i := state.find(id)
	if i < 0 {
		return state
	}
	next := state.clone()
	next.Items[i].Completed = !next.Items[i].Completed
	return next
}

func removeItem(state List, id int) List {
	if state.find(id) < 0 {
		return state
	}
	next := state.clone()
	items := next.Items[:0]
	for _, item := range next.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	next.Items = items
	return next
}

func editItem(state List, id int, title string) List {
	title = strings.TrimSpace(title)
	i := state.find(id)
	if i < 0 || title == "" || state.Items[i].Title == title {
		return state
	}
	next := state.clone()
	next.Items[i].Title = title
	return next
}

func setFilter(state List, f Filter) List {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
	default:
		return state
	}
	if state.Filter == f {
		return state
	}
	next := state.clone()
	next.Filter = f
	return next
}

func clearCompleted(state List) List {
	if !state.HasCompleted() {
		return state
	}
	next := state.clone()
	items := next.Items[:0]
	for _, item := range next.Items {
		if !item.Completed {
			items = append(items, item)
		}
	}
	next.Items = items
	return next
}
