package validation

import "go.uber.org/zap"

type namedRule[S, E, I any] struct {
	name string
	run  Rule[S, E, I]
}

// Ruleset is an ordered, append-only collection of rules validating values of type I.
// It is not safe for concurrent Add and Validate calls.
type Ruleset[S, E, I any] struct {
	rules  []namedRule[S, E, I]
	logger *zap.Logger
	name   string
}

func New[S, E, I any](opts ...Option) *Ruleset[S, E, I] {
	o := newOptions(opts)
	return &Ruleset[S, E, I]{
		logger: o.logger,
		name:   o.name,
	}
}

// Add appends rule to the end of the ruleset.
func (rs *Ruleset[S, E, I]) Add(rule Rule[S, E, I]) *Ruleset[S, E, I] {
	return rs.AddNamed("", rule)
}

// AddNamed appends rule with a name used in logs and contract errors.
func (rs *Ruleset[S, E, I]) AddNamed(name string, rule Rule[S, E, I]) *Ruleset[S, E, I] {
	rs.rules = append(rs.rules, namedRule[S, E, I]{name: name, run: rule})
	return rs
}

func (rs *Ruleset[S, E, I]) Len() int {
	return len(rs.rules)
}

// Validate runs the rules in order against input and returns the first error
// result, or the success result of the last rule. The returned error is non-nil
// only when the ruleset itself is misconfigured; the Result is then the zero value
// and must not be used.
func (rs *Ruleset[S, E, I]) Validate(input I) (Result[S, E], error) {
	if len(rs.rules) == 0 {
		rs.logger.Warn("validate called on empty ruleset", zap.String("ruleset", rs.name))
		return Result[S, E]{}, ErrNoRulesSpecified
	}

	var result Result[S, E]
	current := input
	last := len(rs.rules) - 1

	for i, rule := range rs.rules {
		var next Next[I]
		result, next = rule.run(current)

		if result.IsErr() {
			rs.logger.Debug("rule failed",
				zap.String("ruleset", rs.name),
				zap.Int("index", i),
				zap.String("rule", rule.name),
				zap.Stringer("result_id", result.Id()))
			return result, nil
		}

		rs.logger.Debug("rule passed",
			zap.String("ruleset", rs.name),
			zap.Int("index", i),
			zap.String("rule", rule.name))

		if i == last {
			break
		}

		v, ok := next.Value()
		if !ok {
			rs.logger.Error("rule broke contract",
				zap.String("ruleset", rs.name),
				zap.Int("index", i),
				zap.String("rule", rule.name))
			return Result[S, E]{}, &ContractError{Index: i, Name: rule.name, Err: ErrMissingNextInput}
		}
		current = v
	}

	rs.logger.Debug("ruleset passed",
		zap.String("ruleset", rs.name),
		zap.Int("rules", len(rs.rules)),
		zap.Stringer("result_id", result.Id()))
	return result, nil
}
