package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AlexPlatt23/rulekit/pkg/game"
	"github.com/AlexPlatt23/rulekit/pkg/validation"
)

// validateAll runs rs over inputs on up to workers goroutines. Results keep the
// input order. rs must not be modified while this runs.
func validateAll(ctx context.Context, rs *game.Ruleset, inputs []game.Input,
	workers int) ([]validation.Result[game.Valid, game.Violation], error) {

	if workers < 1 {
		workers = 1
	}

	results := make([]validation.Result[game.Valid, game.Violation], len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, in := i, in
		g.Go(func() error {
			res, err := rs.Validate(in)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
