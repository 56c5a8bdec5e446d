package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

func TestSubclassCatalogShape(t *testing.T) {
	names := rulebook.SubclassNames()
	assert.GreaterOrEqual(t, len(names), 20)

	for _, name := range names {
		s, ok := rulebook.GetSubclass(name)
		require.True(t, ok, name)
		assert.Equal(t, name, s.Name)
		assert.NotEmpty(t, s.Features, name)

		previousLevel := 0
		for _, f := range s.Features {
			assert.NotEmpty(t, f.Name, "%s feature at level %d", name, f.Level)
			assert.Greater(t, f.Level, previousLevel, "%s features must be level-ordered", name)
			previousLevel = f.Level
		}
	}
}

func TestSubclassChoiceValidation(t *testing.T) {
	charms, ok := rulebook.GetSubclass("Charms")
	require.True(t, ok)

	assert.True(t, charms.HasChoice(6, "Rapid Casting"))
	assert.False(t, charms.HasChoice(6, "Loud Casting"))
	assert.False(t, charms.HasChoice(10, "Rapid Casting"))

	_, ok = rulebook.GetSubclass("Unheard Of Studies")
	assert.False(t, ok)
}

func TestFeatureAt(t *testing.T) {
	dueling, ok := rulebook.GetSubclass("Dueling")
	require.True(t, ok)

	f, ok := dueling.FeatureAt(1)
	require.True(t, ok)
	assert.Equal(t, "Duelist's Stance", f.Name)

	_, ok = dueling.FeatureAt(2)
	assert.False(t, ok)
}

func TestGetHouse(t *testing.T) {
	for _, h := range []string{"gryffindor", "hufflepuff", "ravenclaw", "slytherin"} {
		details, ok := rulebook.GetHouse(entities.House(h))
		require.True(t, ok, h)
		assert.NotEmpty(t, details.DisplayName)
		assert.NotEmpty(t, details.AbilityTraining)
		assert.Len(t, details.Skills, 2)
	}
}

func TestGetBackgroundEquipment(t *testing.T) {
	b, ok := rulebook.GetBackground("Bookworm")
	require.True(t, ok)
	assert.NotEmpty(t, b.Equipment)
	for _, eq := range b.Equipment {
		assert.GreaterOrEqual(t, eq.Quantity, 1)
	}
}

func TestGetMetamagic(t *testing.T) {
	m, ok := rulebook.GetMetamagic("Quickened Spell")
	require.True(t, ok)
	assert.Equal(t, 2, m.Cost)

	assert.NotEmpty(t, rulebook.MetamagicNames())
}
