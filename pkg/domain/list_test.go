package domain_test

import (
	"strings"
	"testing"

	"github.com/latticekit/lattice/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestList_Equal(t *testing.T) {
	a := domain.Transition(domain.NewList(), domain.Add("x"))
	b := domain.Transition(domain.NewList(), domain.Add("x"))

	assert.True(t, a.Equal(b), "identical histories should produce equal values")

	c := domain.Transition(b, domain.Toggle(0))
	assert.False(t, a.Equal(c))

	d := domain.Transition(b, domain.SetFilter(domain.FilterCompleted))
	assert.False(t, b.Equal(d), "filter is part of the snapshot value")
}

func TestList_Counters(t *testing.T) {
	s := domain.Transition(domain.NewList(), domain.Add("a"))
	s = domain.Transition(s, domain.Add("b"))
	s = domain.Transition(s, domain.Toggle(0))

	assert.Equal(t, 1, s.ActiveCount())
	assert.True(t, s.HasCompleted())

	empty := domain.NewList()
	assert.Equal(t, 0, empty.ActiveCount())
	assert.False(t, empty.HasCompleted())
}

func TestList_VisibleIsACopy(t *testing.T) {
	s := domain.Transition(domain.NewList(), domain.Add("a"))
	visible := s.Visible()
	visible[0].Title = "mutated"

	assert.Equal(t, "a", s.Items[0].Title)
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, domain.ValidateTitle("fine"))
	assert.ErrorIs(t, domain.ValidateTitle("   "), domain.ErrEmptyTitle)
	assert.ErrorIs(t, domain.ValidateTitle(strings.Repeat("x", 201)), domain.ErrTitleTooLong)
	assert.NoError(t, domain.ValidateTitle(strings.Repeat("x", 200)))
}
