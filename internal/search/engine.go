package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/vmunix/marquee/internal/catalog"
)

// GenreMatch selects how the genre term is compared.
type GenreMatch int

const (
	// GenreSubstring matches when the entry genre contains the term.
	GenreSubstring GenreMatch = iota
	// GenreExact matches when the entry genre equals the term.
	GenreExact
)

func (m GenreMatch) String() string {
	switch m {
	case GenreExact:
		return "exact"
	default:
		return "substring"
	}
}

// ParseGenreMatch parses "substring" or "exact". Blank means substring.
func ParseGenreMatch(s string) (GenreMatch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "substring":
		return GenreSubstring, nil
	case "exact":
		return GenreExact, nil
	}
	return GenreSubstring, fmt.Errorf("unknown genre match mode %q", s)
}

// Engine applies Criteria to catalog entries.
type Engine struct {
	genre GenreMatch
}

// NewEngine creates an engine with the given genre matching mode.
func NewEngine(mode GenreMatch) *Engine {
	return &Engine{genre: mode}
}

// Mode returns the engine's genre matching mode.
func (e *Engine) Mode() GenreMatch {
	return e.genre
}

// Search returns the entries matching every non-empty term, in input order.
// The result is never nil.
func (e *Engine) Search(entries []catalog.Entry, c Criteria) []catalog.Entry {
	c = c.Normalize()

	// Fold terms once rather than per entry
	name := fold(c.Name)
	genre := fold(c.Genre)

	out := make([]catalog.Entry, 0, len(entries))
	for _, entry := range entries {
		if name != "" && !strings.Contains(fold(entry.Name), name) {
			continue
		}
		if c.ID != 0 && entry.ID != c.ID {
			continue
		}
		if genre != "" && !e.genreMatches(fold(entry.Genre), genre) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (e *Engine) genreMatches(folded, term string) bool {
	if e.genre == GenreExact {
		return folded == term
	}
	return strings.Contains(folded, term)
}

var defaultEngine = NewEngine(GenreSubstring)

// Filter searches with substring genre matching.
func Filter(entries []catalog.Entry, c Criteria) []catalog.Entry {
	return defaultEngine.Search(entries, c)
}

// MatchesName reports whether name contains term, ignoring case.
// A blank term matches everything.
func MatchesName(name, term string) bool {
	term = fold(strings.TrimSpace(term))
	return term == "" || strings.Contains(fold(name), term)
}

// MatchesGenre reports whether genre matches term under mode, ignoring case.
// A blank term matches everything.
func MatchesGenre(genre, term string, mode GenreMatch) bool {
	term = fold(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return NewEngine(mode).genreMatches(fold(genre), term)
}

// fold returns the Unicode case-folded NFC form of s. A Caser keeps state,
// so each call builds its own.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(s))
}
