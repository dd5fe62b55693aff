package catalog

import (
	"strings"
	"unicode/utf8"
)

const (
	// MaxNameLength is the longest allowed movie name, after trimming.
	MaxNameLength = 200
	// MaxGenreLength is the longest allowed genre, after trimming.
	MaxGenreLength = 50
)

// IsValidName reports whether name has 1..MaxNameLength characters after trimming.
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n > 0 && n <= MaxNameLength
}

// IsValidID reports whether id is positive.
func IsValidID(id int64) bool {
	return id > 0
}

// IsValidGenre reports whether genre has 1..MaxGenreLength characters after trimming.
func IsValidGenre(genre string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(genre))
	return n > 0 && n <= MaxGenreLength
}

// IsValid reports whether a movie with this name and id is acceptable.
func IsValid(name string, id int64) bool {
	return IsValidID(id) && IsValidName(name)
}

// Validate returns the names of the fields of e that fail validation.
func (e Entry) Validate() []string {
	var errs []string
	if !IsValidID(e.ID) {
		errs = append(errs, "id")
	}
	if !IsValidName(e.Name) {
		errs = append(errs, "movieName")
	}
	if !IsValidGenre(e.Genre) {
		errs = append(errs, "genre")
	}
	return errs
}
