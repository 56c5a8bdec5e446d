package rulebook

import "github.com/wizarding-rpg/character-api/internal/entities"

// spellSlotTable is the standard tiered-caster progression: for each level
// 1-20, the maximum number of slots per slot level 1-9.
var spellSlotTable = [MaxLevel][entities.SpellSlotTiers]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0}, // 1
	{3, 0, 0, 0, 0, 0, 0, 0, 0}, // 2
	{4, 2, 0, 0, 0, 0, 0, 0, 0}, // 3
	{4, 3, 0, 0, 0, 0, 0, 0, 0}, // 4
	{4, 3, 2, 0, 0, 0, 0, 0, 0}, // 5
	{4, 3, 3, 0, 0, 0, 0, 0, 0}, // 6
	{4, 3, 3, 1, 0, 0, 0, 0, 0}, // 7
	{4, 3, 3, 2, 0, 0, 0, 0, 0}, // 8
	{4, 3, 3, 3, 1, 0, 0, 0, 0}, // 9
	{4, 3, 3, 3, 2, 0, 0, 0, 0}, // 10
	{4, 3, 3, 3, 2, 1, 0, 0, 0}, // 11
	{4, 3, 3, 3, 2, 1, 0, 0, 0}, // 12
	{4, 3, 3, 3, 2, 1, 1, 0, 0}, // 13
	{4, 3, 3, 3, 2, 1, 1, 0, 0}, // 14
	{4, 3, 3, 3, 2, 1, 1, 1, 0}, // 15
	{4, 3, 3, 3, 2, 1, 1, 1, 0}, // 16
	{4, 3, 3, 3, 2, 1, 1, 1, 1}, // 17
	{4, 3, 3, 3, 3, 1, 1, 1, 1}, // 18
	{4, 3, 3, 3, 3, 2, 1, 1, 1}, // 19
	{4, 3, 3, 3, 3, 2, 2, 1, 1}, // 20
}

// SpellSlotMaximums returns the maximum spell slots per tier for a level.
// Levels outside [1, 20] are clamped.
func SpellSlotMaximums(level int) [entities.SpellSlotTiers]int {
	return spellSlotTable[ClampLevel(level)-1]
}

// SorceryPointMaximum returns the sorcery point maximum for a level.
// Points unlock at level 2 and track level from there. Levels outside
// [1, 20] are clamped.
func SorceryPointMaximum(level int) int {
	level = ClampLevel(level)
	if level < 2 {
		return 0
	}
	return level
}

// ApplyProgression raises the resource maximums for a character reaching
// newLevel. Maximums never decrease here — only a manual edit can lower
// them — and the top-up house rule is preserved: a pool's current value is
// raised to the new maximum only when it was at or above the old maximum.
// Spent resources stay spent across a level-up.
func ApplyProgression(res *entities.CharacterResources, newLevel int) {
	newSlots := SpellSlotMaximums(newLevel)

	for tier := 0; tier < entities.SpellSlotTiers; tier++ {
		pool := res.SpellSlots[tier]
		if newMax := newSlots[tier]; newMax > pool.Max {
			if pool.Current >= pool.Max {
				pool.Current = newMax
			}
			pool.Max = newMax
		}
		res.SpellSlots[tier] = pool
	}

	if newPoints := SorceryPointMaximum(newLevel); newPoints > res.SorceryPoints.Max {
		if res.SorceryPoints.Current >= res.SorceryPoints.Max {
			res.SorceryPoints.Current = newPoints
		}
		res.SorceryPoints.Max = newPoints
	}

	res.Clamp()
}

// InitialResources builds the resource satellite for a freshly created
// character: every pool full at its level maximum.
func InitialResources(characterID, ownerID string, level int) *entities.CharacterResources {
	res := entities.DefaultResources(characterID, ownerID)

	slots := SpellSlotMaximums(level)
	for tier := 0; tier < entities.SpellSlotTiers; tier++ {
		res.SpellSlots[tier] = entities.Pool{Current: slots[tier], Max: slots[tier]}
	}

	points := SorceryPointMaximum(level)
	res.SorceryPoints = entities.Pool{Current: points, Max: points}

	return res
}
