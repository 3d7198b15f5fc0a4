/*
Package translate maps domain actions to effect commands.

The translation is pure and deterministic, which keeps "what changed" (the
domain transition) decoupled from "what side effect follows". Ordering is
significant: persistence commands come before notification commands, so an
observer never sees an effect confirmed before the data behind it is durable.
*/
package translate

import (
	"fmt"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/latticekit/lattice/pkg/effect"
)

// Todos translates a todo-list action into the ordered commands to run after
// the state swap. A no-op transition (newState value-equal to oldState)
// yields nil, avoiding redundant persistence writes.
func Todos(oldState domain.List, action domain.Action, newState domain.List) []effect.Command {
	if newState.Equal(oldState) {
		return nil
	}

	cmds := make([]effect.Command, 0, 3)

	// Filter changes are view-only: the visible selection moved, the data
	// did not, so nothing needs to reach storage.
	if action.Type != domain.ActionSetFilter {
		cmds = append(cmds, effect.Persist(newState))
	}

	cmds = append(cmds,
		effect.Log(string(action.Type), describe(action)),
		effect.Analytics("action_dispatched", map[string]string{
			"action": string(action.Type),
		}),
	)

	return cmds
}

func describe(action domain.Action) string {
	switch action.Type {
	case domain.ActionAdd:
		return fmt.Sprintf("adding item: %s", action.Title)
	case domain.ActionToggle:
		return fmt.Sprintf("toggling item %d", action.ID)
	case domain.ActionRemove:
		return fmt.Sprintf("removing item %d", action.ID)
	case domain.ActionEdit:
		return fmt.Sprintf("editing item %d to: %s", action.ID, action.Title)
	case domain.ActionSetFilter:
		return fmt.Sprintf("setting filter to: %s", action.Filter)
	case domain.ActionClearCompleted:
		return "clearing completed items"
	}
	return fmt.Sprintf("action %s", action.Type)
}
