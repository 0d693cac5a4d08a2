// Package game is a sample domain for the validation engine: video game records,
// a closed taxonomy of violations, and the rules checking them.
//
// Typical usage:
//
//	rs := game.DefaultRuleset(game.DefaultConfig())
//	res, err := rs.Validate(input)
//	if err != nil {
//		// ruleset misconfigured
//	}
//	if res.IsErr() {
//		fmt.Println(res.Failure().Code())
//	}
package game
