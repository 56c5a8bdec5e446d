package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/orchestrators/dice"
	"github.com/wizarding-rpg/character-api/internal/pkg/idgen"
)

func newService(t *testing.T) dice.Service {
	t.Helper()
	svc, err := dice.NewOrchestrator(&dice.Config{
		IDGenerator: idgen.NewSequential("roll"),
	})
	require.NoError(t, err)
	return svc
}

func TestRollBounds(t *testing.T) {
	svc := newService(t)

	out, err := svc.Roll(context.Background(), &dice.RollInput{Notation: "2d6"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.RollID)
	assert.Equal(t, "2d6", out.Notation)
	assert.Len(t, out.Dice, 2)
	assert.GreaterOrEqual(t, out.Total, 2)
	assert.LessOrEqual(t, out.Total, 12)
	for _, d := range out.Dice {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 6)
	}
}

func TestRollWithModifier(t *testing.T) {
	svc := newService(t)

	out, err := svc.Roll(context.Background(), &dice.RollInput{Notation: "1d20+3"})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Modifier)
	assert.GreaterOrEqual(t, out.Total, 4)
	assert.LessOrEqual(t, out.Total, 23)

	out, err = svc.Roll(context.Background(), &dice.RollInput{Notation: "1d4-1"})
	require.NoError(t, err)
	assert.Equal(t, -1, out.Modifier)
	assert.GreaterOrEqual(t, out.Total, 0)
	assert.LessOrEqual(t, out.Total, 3)
}

func TestRollInvalidNotation(t *testing.T) {
	svc := newService(t)

	for _, notation := range []string{"", "d6", "2d", "abc", "0d6", "2d0", "2d6+", "-1d6"} {
		_, err := svc.Roll(context.Background(), &dice.RollInput{Notation: notation})
		assert.Truef(t, errors.IsInvalidArgument(err), "notation %q should be rejected", notation)
	}
}

func TestRollHitDiePerCastingStyle(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		style   entities.CastingStyle
		dieSize int
	}{
		{entities.CastingStyleWillpower, 10},
		{entities.CastingStyleTechnique, 6},
		{entities.CastingStyleIntellect, 8},
		{entities.CastingStyleVigor, 12},
		{"", 8}, // unknown styles fall back to d8
	}
	for _, c := range cases {
		out, err := svc.RollHitDie(context.Background(), &dice.RollHitDieInput{CastingStyle: c.style})
		require.NoError(t, err)
		assert.Equal(t, c.dieSize, out.DieSize)
		assert.GreaterOrEqual(t, out.Result, 1)
		assert.LessOrEqual(t, out.Result, c.dieSize)
	}
}

func TestToolkitRollerBounds(t *testing.T) {
	var roller dice.ToolkitRoller

	for i := 0; i < 20; i++ {
		total, err := roller.Roll(1, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, total, 1)
		assert.LessOrEqual(t, total, 10)
	}
}
