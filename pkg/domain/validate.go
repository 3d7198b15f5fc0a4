package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTitleLength is the maximum accepted title length in runes.
const MaxTitleLength = 200

var (
	// ErrEmptyTitle is returned when a title is blank after trimming.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title is too long")
)

// ValidateTitle checks a proposed item title. Hosts can call this before
// dispatching to give users feedback; Transition itself never fails and
// simply ignores blank titles.
func ValidateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
