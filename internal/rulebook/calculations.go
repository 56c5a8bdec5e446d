package rulebook

import (
	"github.com/wizarding-rpg/character-api/internal/entities"
)

// MinLevel and MaxLevel bound character progression.
const (
	MinLevel = 1
	MaxLevel = 20
)

// MinSchoolYear and MaxSchoolYear bound school-year progression.
const (
	MinSchoolYear = 1
	MaxSchoolYear = 7
)

// Roller produces uniform die rolls. The production implementation lives in
// the dice orchestrator; tests substitute deterministic rollers.
type Roller interface {
	// Roll returns the sum of count uniform rolls of a size-sided die.
	Roll(count, size int) (int, error)
}

// ClampLevel clamps a level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// AbilityModifier returns floor((score - 10) / 2).
func AbilityModifier(score int) int {
	d := score - 10
	if d < 0 {
		// Integer division truncates toward zero; shift to floor.
		return (d - 1) / 2
	}
	return d / 2
}

// ProficiencyBonus returns ceil(level / 4) + 1, in {2..6} for levels 1-20.
func ProficiencyBonus(level int) int {
	level = ClampLevel(level)
	return (level+3)/4 + 1
}

// ProficiencyIncreases reports whether the proficiency bonus changes when
// moving from oldLevel to newLevel.
func ProficiencyIncreases(oldLevel, newLevel int) bool {
	return ProficiencyBonus(newLevel) > ProficiencyBonus(oldLevel)
}

// hit die size by casting style
var hitDieSizes = map[entities.CastingStyle]int{
	entities.CastingStyleTechnique: 6,
	entities.CastingStyleIntellect: 8,
	entities.CastingStyleWillpower: 10,
	entities.CastingStyleVigor:     12,
}

// DefaultHitDieSize is used when the casting style is unknown.
const DefaultHitDieSize = 8

// HitDieSize maps a casting style to its hit-die size.
func HitDieSize(style entities.CastingStyle) int {
	if size, ok := hitDieSizes[style]; ok {
		return size
	}
	return DefaultHitDieSize
}

// spellcasting ability by casting style
var spellcastingAbilities = map[entities.CastingStyle]entities.Ability{
	entities.CastingStyleWillpower: entities.AbilityCharisma,
	entities.CastingStyleTechnique: entities.AbilityWisdom,
	entities.CastingStyleIntellect: entities.AbilityIntelligence,
	entities.CastingStyleVigor:     entities.AbilityConstitution,
}

// SpellcastingAbility maps a casting style to its spellcasting ability.
// Unknown styles cast with intelligence.
func SpellcastingAbility(style entities.CastingStyle) entities.Ability {
	if a, ok := spellcastingAbilities[style]; ok {
		return a
	}
	return entities.AbilityIntelligence
}

// AverageHPGain is the fixed hit-point gain on level-up:
// floor(die/2) + 1 + constitution modifier.
func AverageHPGain(style entities.CastingStyle, conModifier int) int {
	return HitDieSize(style)/2 + 1 + conModifier
}

// RolledHPGain rolls the hit die for a level-up. The gain is never below 1
// even with a deeply negative constitution modifier.
func RolledHPGain(style entities.CastingStyle, conModifier int, roller Roller) (int, error) {
	roll, err := roller.Roll(1, HitDieSize(style))
	if err != nil {
		return 0, err
	}
	gain := roll + conModifier
	if gain < 1 {
		gain = 1
	}
	return gain, nil
}

// SpellSaveDC returns 8 + proficiency bonus + spellcasting ability modifier.
func SpellSaveDC(proficiencyBonus, spellcastingModifier int) int {
	return 8 + proficiencyBonus + spellcastingModifier
}
