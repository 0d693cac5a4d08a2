package game

import (
	"slices"
	"time"
)

// Input is an unvalidated game record.
type Input struct {
	Name        string
	ReleaseDate time.Time
	CopiesSold  int
	Director    string
	Platforms   []string
}

// Valid is a game record that passed validation.
type Valid struct {
	Name        string    `json:"name"`
	ReleaseDate time.Time `json:"releaseDate"`
	CopiesSold  int       `json:"copiesSold"`
	Director    string    `json:"director,omitempty"`
	Platforms   []string  `json:"platforms"`
}

func NewValid(in Input) Valid {
	return Valid{
		Name:        in.Name,
		ReleaseDate: in.ReleaseDate,
		CopiesSold:  in.CopiesSold,
		Director:    in.Director,
		Platforms:   slices.Clone(in.Platforms),
	}
}
