package game

import "github.com/AlexPlatt23/rulekit/pkg/validation"

// Config holds the bounds used by DefaultRuleset.
type Config struct {
	MaxNameLength int
	// Release year must be strictly between YearAfter and YearBefore.
	YearAfter   int
	YearBefore  int
	FixDirector bool
}

func DefaultConfig() Config {
	return Config{
		MaxNameLength: 60,
		YearAfter:     1970,
		YearBefore:    2023,
		FixDirector:   true,
	}
}

// DefaultRuleset assembles the reference game rules in their canonical order.
func DefaultRuleset(cfg Config, opts ...validation.Option) *Ruleset {
	opts = append([]validation.Option{validation.WithName("game")}, opts...)
	return validation.New[Valid, Violation, Input](opts...).
		AddNamed("name_required", NameEntered()).
		AddNamed("name_max_length", NameMaxLen(cfg.MaxNameLength)).
		AddNamed("release_year", ReleaseYearBetween(cfg.YearAfter, cfg.YearBefore)).
		AddNamed("copies_sold", CopiesSoldPositive()).
		AddNamed("platforms", PlatformsNonEmpty()).
		AddNamed("director", DirectorCapitalized(cfg.FixDirector))
}
