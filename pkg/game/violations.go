package game

import "fmt"

// Violation codes
const (
	CodeNameRequired           = "name_required"
	CodeNameMaxLength          = "name_max_length"
	CodeValidYear              = "release_year_out_of_range"
	CodeCopiesNotPositive      = "copies_sold_not_positive"
	CodeDirectorNotCapitalized = "director_not_capitalized"
	CodePlatformRequired       = "platform_required"
)

// Violation is the error payload of every game rule. The set of implementations
// is closed to this package.
type Violation interface {
	error
	Code() string
	violation()
}

type NameKind int

const (
	NameRequired NameKind = iota
	NameMaxLength
)

type NameViolation struct {
	Kind  NameKind
	Limit int
	Got   int
}

func (v NameViolation) Code() string {
	if v.Kind == NameMaxLength {
		return CodeNameMaxLength
	}
	return CodeNameRequired
}

func (v NameViolation) Error() string {
	if v.Kind == NameMaxLength {
		return fmt.Sprintf("name must be at most %d characters, got %d", v.Limit, v.Got)
	}
	return "name must be entered"
}

func (NameViolation) violation() {}

type ReleaseDateKind int

const (
	ValidYear ReleaseDateKind = iota
)

// ReleaseDateViolation reports a release year outside (After, Before).
type ReleaseDateViolation struct {
	Kind   ReleaseDateKind
	After  int
	Before int
	Year   int
}

func (v ReleaseDateViolation) Code() string { return CodeValidYear }

func (v ReleaseDateViolation) Error() string {
	return fmt.Sprintf("release year must be after %d and before %d, got %d", v.After, v.Before, v.Year)
}

func (ReleaseDateViolation) violation() {}

type CopiesSoldKind int

const (
	CopiesNotPositive CopiesSoldKind = iota
)

type CopiesSoldViolation struct {
	Kind CopiesSoldKind
	Got  int
}

func (v CopiesSoldViolation) Code() string { return CodeCopiesNotPositive }

func (v CopiesSoldViolation) Error() string {
	return fmt.Sprintf("copies sold must be positive, got %d", v.Got)
}

func (CopiesSoldViolation) violation() {}

type DirectorKind int

const (
	DirectorNotCapitalized DirectorKind = iota
)

type DirectorViolation struct {
	Kind     DirectorKind
	Director string
}

func (v DirectorViolation) Code() string { return CodeDirectorNotCapitalized }

func (v DirectorViolation) Error() string {
	return fmt.Sprintf("director %q must start with an uppercase letter", v.Director)
}

func (DirectorViolation) violation() {}

type PlatformsKind int

const (
	PlatformRequired PlatformsKind = iota
)

type PlatformsViolation struct {
	Kind PlatformsKind
}

func (v PlatformsViolation) Code() string { return CodePlatformRequired }

func (v PlatformsViolation) Error() string { return "at least one platform is required" }

func (PlatformsViolation) violation() {}
