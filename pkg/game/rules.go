package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AlexPlatt23/rulekit/pkg/validation"
)

// Rule is a validation rule over game records.
type Rule = validation.Rule[Valid, Violation, Input]

// Ruleset validates game records.
type Ruleset = validation.Ruleset[Valid, Violation, Input]

func pass(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
	return validation.Pass[Valid, Violation](NewValid(in), in)
}

func reject(v Violation) (validation.Result[Valid, Violation], validation.Next[Input]) {
	return validation.Reject[Valid, Violation, Input](v)
}

// NameEntered rejects blank names.
func NameEntered() Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		if strings.TrimSpace(in.Name) == "" {
			return reject(NameViolation{Kind: NameRequired})
		}
		return pass(in)
	}
}

// NameMaxLen rejects names longer than limit characters.
func NameMaxLen(limit int) Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		if n := utf8.RuneCountInString(in.Name); n > limit {
			return reject(NameViolation{Kind: NameMaxLength, Limit: limit, Got: n})
		}
		return pass(in)
	}
}

// ReleaseYearBetween requires after < year < before.
func ReleaseYearBetween(after, before int) Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		year := in.ReleaseDate.Year()
		if year <= after || year >= before {
			return reject(ReleaseDateViolation{Kind: ValidYear, After: after, Before: before, Year: year})
		}
		return pass(in)
	}
}

func CopiesSoldPositive() Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		if in.CopiesSold <= 0 {
			return reject(CopiesSoldViolation{Kind: CopiesNotPositive, Got: in.CopiesSold})
		}
		return pass(in)
	}
}

func PlatformsNonEmpty() Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		if len(in.Platforms) == 0 {
			return reject(PlatformsViolation{Kind: PlatformRequired})
		}
		return pass(in)
	}
}

// DirectorCapitalized checks that the director starts with an uppercase letter.
// With fix set, a lowercase first letter is upper-cased and the corrected record
// is forwarded instead of rejected. An empty director passes.
func DirectorCapitalized(fix bool) Rule {
	return func(in Input) (validation.Result[Valid, Violation], validation.Next[Input]) {
		first, size := utf8.DecodeRuneInString(in.Director)
		if size == 0 || !unicode.IsLetter(first) || unicode.IsUpper(first) {
			return pass(in)
		}
		if !fix {
			return reject(DirectorViolation{Kind: DirectorNotCapitalized, Director: in.Director})
		}

		out := in
		out.Director = string(unicode.ToUpper(first)) + in.Director[size:]
		return pass(out)
	}
}
