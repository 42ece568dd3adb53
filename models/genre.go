package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Genre is one of a closed set of genre names. The canonical (lower-case)
// form is what gets stored; parsing is case-insensitive.
type Genre string

const (
	GenreFantasy        Genre = "fantasy"
	GenreSciFi          Genre = "sci-fi"
	GenreThrillerHorror Genre = "thriller/horror"
	GenreAdventure      Genre = "powieść przygodowa"
	GenrePopScience     Genre = "literatura popularno-naukowa"
	GenrePoetry         Genre = "poezja"
)

// Genres lists every valid genre in canonical form.
var Genres = []Genre{
	GenreFantasy,
	GenreSciFi,
	GenreThrillerHorror,
	GenreAdventure,
	GenrePopScience,
	GenrePoetry,
}

// ParseGenre matches s against the closed set, ignoring case. The second
// return value reports whether s named a known genre.
func ParseGenre(s string) (Genre, bool) {
	for _, g := range Genres {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return "", false
}

// UnmarshalJSON canonicalizes the genre at the transport boundary and
// rejects values outside the closed set.
func (g *Genre) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := ParseGenre(s)
	if !ok {
		return fmt.Errorf("unknown genre %q", s)
	}
	*g = parsed
	return nil
}

func (g Genre) String() string {
	return string(g)
}
