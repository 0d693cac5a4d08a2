package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRulesSpecified is returned by Validate when the ruleset is empty.
	ErrNoRulesSpecified = errors.New("no rules have been specified in this ruleset")

	// ErrMissingNextInput is returned when a rule succeeds with Stop while more rules remain.
	ErrMissingNextInput = errors.New("rule succeeded without forwarding an input")
)

// ContractError reports a rule that broke the Rule contract during Validate.
type ContractError struct {
	Index int
	Name  string
	Err   error
}

func (e *ContractError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("rule %d: %v", e.Index, e.Err)
}

func (e *ContractError) Unwrap() error {
	return e.Err
}
