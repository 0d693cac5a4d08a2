package main

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexPlatt23/rulekit/pkg/game"
	"github.com/AlexPlatt23/rulekit/pkg/validation"
)

func sampleInputs(n int) []game.Input {
	inputs := make([]game.Input, n)
	for i := range inputs {
		inputs[i] = game.Input{
			Name:        "game " + strconv.Itoa(i),
			ReleaseDate: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			CopiesSold:  i, // zero copies fails for the first record
			Platforms:   []string{"PC"},
		}
	}
	return inputs
}

func TestValidateAll_KeepsOrder(t *testing.T) {
	t.Parallel()

	inputs := sampleInputs(50)
	rs := game.DefaultRuleset(game.DefaultConfig())

	results, err := validateAll(context.Background(), rs, inputs, 8)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	assert.True(t, results[0].IsErr())
	for i := 1; i < len(results); i++ {
		require.True(t, results[i].IsOk())
		assert.Equal(t, inputs[i].Name, results[i].Success().Name)
	}
}

func TestValidateAll_MisconfiguredRuleset(t *testing.T) {
	t.Parallel()

	rs := validation.New[game.Valid, game.Violation, game.Input]()
	_, err := validateAll(context.Background(), rs, sampleInputs(3), 0)
	assert.ErrorIs(t, err, validation.ErrNoRulesSpecified)
}

func TestValidateAll_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := validateAll(ctx, game.DefaultRuleset(game.DefaultConfig()), sampleInputs(3), 2)
	assert.ErrorIs(t, err, context.Canceled)
}
