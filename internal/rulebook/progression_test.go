package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

func TestSpellSlotMaximumsShape(t *testing.T) {
	previous := rulebook.SpellSlotMaximums(1)
	for _, slots := range previous {
		assert.GreaterOrEqual(t, slots, 0)
	}

	for level := 2; level <= 20; level++ {
		current := rulebook.SpellSlotMaximums(level)
		for tier := 0; tier < entities.SpellSlotTiers; tier++ {
			assert.GreaterOrEqual(t, current[tier], 0, "level %d tier %d", level, tier)
			assert.GreaterOrEqual(t, current[tier], previous[tier],
				"slots must be non-decreasing: level %d tier %d", level, tier)
		}
		previous = current
	}
}

func TestSpellSlotMaximumsKnownLevels(t *testing.T) {
	assert.Equal(t, [9]int{2, 0, 0, 0, 0, 0, 0, 0, 0}, rulebook.SpellSlotMaximums(1))
	assert.Equal(t, [9]int{4, 2, 0, 0, 0, 0, 0, 0, 0}, rulebook.SpellSlotMaximums(3))
	assert.Equal(t, [9]int{4, 3, 3, 3, 1, 0, 0, 0, 0}, rulebook.SpellSlotMaximums(9))
	assert.Equal(t, [9]int{4, 3, 3, 3, 3, 2, 2, 1, 1}, rulebook.SpellSlotMaximums(20))
}

func TestSpellSlotMaximumsClampsOutOfDomainLevels(t *testing.T) {
	assert.Equal(t, rulebook.SpellSlotMaximums(1), rulebook.SpellSlotMaximums(0))
	assert.Equal(t, rulebook.SpellSlotMaximums(20), rulebook.SpellSlotMaximums(21))
}

func TestSorceryPointMaximum(t *testing.T) {
	assert.Equal(t, 0, rulebook.SorceryPointMaximum(1))
	assert.Equal(t, 2, rulebook.SorceryPointMaximum(2))
	assert.Equal(t, 11, rulebook.SorceryPointMaximum(11))
	assert.Equal(t, 20, rulebook.SorceryPointMaximum(20))

	assert.Equal(t, 0, rulebook.SorceryPointMaximum(0))
	assert.Equal(t, 20, rulebook.SorceryPointMaximum(21))
}

func TestApplyProgressionTopsUpFullPools(t *testing.T) {
	res := rulebook.InitialResources("char_1", "user_1", 2)
	// Level 2: four level-1 slots at max 3, all unspent.
	assert.Equal(t, entities.Pool{Current: 3, Max: 3}, res.Slot(1))

	rulebook.ApplyProgression(res, 3)

	// Full pool rises with the new max; a new tier opens full.
	assert.Equal(t, entities.Pool{Current: 4, Max: 4}, res.Slot(1))
	assert.Equal(t, entities.Pool{Current: 2, Max: 2}, res.Slot(2))
}

func TestApplyProgressionPreservesSpentResources(t *testing.T) {
	res := rulebook.InitialResources("char_1", "user_1", 2)
	res.SpellSlots[0].Current = 1 // two slots spent

	rulebook.ApplyProgression(res, 3)

	// Spent slots stay spent; only the max moves.
	assert.Equal(t, entities.Pool{Current: 1, Max: 4}, res.Slot(1))
}

func TestApplyProgressionNeverLowersMaximums(t *testing.T) {
	res := rulebook.InitialResources("char_1", "user_1", 5)
	manual := entities.Pool{Current: 6, Max: 6} // manual override above table
	res.SetSlot(1, manual)

	rulebook.ApplyProgression(res, 6)

	assert.Equal(t, manual, res.Slot(1))
}

func TestApplyProgressionSorceryPoints(t *testing.T) {
	res := rulebook.InitialResources("char_1", "user_1", 4)
	assert.Equal(t, entities.Pool{Current: 4, Max: 4}, res.SorceryPoints)

	// Spend a couple, then level: spent points stay spent.
	res.SorceryPoints.Current = 1
	rulebook.ApplyProgression(res, 5)
	assert.Equal(t, entities.Pool{Current: 1, Max: 5}, res.SorceryPoints)

	// At max, the pool tops up with the new max.
	res.SorceryPoints.Current = 5
	rulebook.ApplyProgression(res, 6)
	assert.Equal(t, entities.Pool{Current: 6, Max: 6}, res.SorceryPoints)
}

func TestInitialResources(t *testing.T) {
	res := rulebook.InitialResources("char_9", "user_9", 1)
	assert.Equal(t, "char_9", res.CharacterID)
	assert.Equal(t, "user_9", res.OwnerID)
	assert.Equal(t, entities.Pool{Current: 2, Max: 2}, res.Slot(1))
	assert.Equal(t, entities.Pool{}, res.Slot(2))
	assert.Equal(t, entities.Pool{}, res.SorceryPoints)
}
