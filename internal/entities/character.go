// Package entities defines the core domain types for the character service.
package entities

import "time"

// House is one of the four school houses.
type House string

// School houses.
const (
	HouseGryffindor House = "gryffindor"
	HouseHufflepuff House = "hufflepuff"
	HouseRavenclaw  House = "ravenclaw"
	HouseSlytherin  House = "slytherin"
)

// CastingStyle determines a character's hit-die size and spellcasting
// ability.
type CastingStyle string

// Casting styles.
const (
	CastingStyleWillpower CastingStyle = "willpower"
	CastingStyleTechnique CastingStyle = "technique"
	CastingStyleIntellect CastingStyle = "intellect"
	CastingStyleVigor     CastingStyle = "vigor"
)

// CastingStyleNames lists the valid casting style values for validation.
var CastingStyleNames = []string{
	string(CastingStyleWillpower),
	string(CastingStyleTechnique),
	string(CastingStyleIntellect),
	string(CastingStyleVigor),
}

// Ability identifies one of the six ability scores.
type Ability string

// Abilities.
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// AbilityScores maps each ability to its score.
type AbilityScores map[Ability]int

// ASIChoiceType distinguishes a flat ability bump from a named feat.
type ASIChoiceType string

// ASI choice types.
const (
	ASIChoiceAbility ASIChoiceType = "asi"
	ASIChoiceFeat    ASIChoiceType = "feat"
)

// ASISelection records what a character took at an ability-score-improvement
// level: either an ability increase or a feat.
type ASISelection struct {
	Type    ASIChoiceType `json:"type"`
	Ability Ability       `json:"ability,omitempty"`
	Amount  int           `json:"amount,omitempty"`
	Feat    string        `json:"feat,omitempty"`
}

// Character is the central entity. Field names are camelCase in memory and
// snake_case in the store; the json tags carry that translation.
type Character struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`

	// Progression
	Level            int          `json:"level"`
	SchoolYear       int          `json:"school_year"`
	CastingStyle     CastingStyle `json:"casting_style"`
	MaxHitPoints     int          `json:"max_hit_points"`
	CurrentHitPoints int          `json:"current_hit_points"`
	HitDice          int          `json:"hit_dice"`

	// Choices
	House            House                  `json:"house,omitempty"`
	HouseChoices     []string               `json:"house_choices,omitempty"`
	Subclass         string                 `json:"subclass,omitempty"`
	SubclassFeatures []string               `json:"subclass_features,omitempty"`
	SubclassChoices  map[int]SubclassChoice `json:"subclass_choices,omitempty"`
	Background       string                 `json:"background,omitempty"`
	InnateHeritage   string                 `json:"innate_heritage,omitempty"`
	HeritageChoices  []string               `json:"heritage_choices,omitempty"`

	AbilityScores      AbilityScores        `json:"ability_scores"`
	SkillProficiencies []string             `json:"skill_proficiencies,omitempty"`
	SkillExpertise     []string             `json:"skill_expertise,omitempty"`
	ASIChoices         map[int]ASISelection `json:"asi_choices,omitempty"`
	StandardFeats      []string             `json:"standard_feats,omitempty"`
	AllFeats           []string             `json:"all_feats,omitempty"`

	// Lifecycle. Archiving is the only form of deletion; hard deletes do
	// not exist.
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
	RestoredAt *time.Time `json:"restored_at,omitempty"`
}

// AbilityScore returns the score for an ability, zero when unset.
func (c *Character) AbilityScore(a Ability) int {
	if c.AbilityScores == nil {
		return 0
	}
	return c.AbilityScores[a]
}

// OwnerInfo is the display annotation attached to characters in admin
// listings. Nil owner info means the profile lookup was unavailable.
type OwnerInfo struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// AdminCharacter is a character annotated with its owner for admin views.
type AdminCharacter struct {
	Character *Character `json:"character"`
	Owner     *OwnerInfo `json:"owner,omitempty"`
}
