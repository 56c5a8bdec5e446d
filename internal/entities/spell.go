package entities

import "time"

// SpellStatus is the review status of a custom spell.
type SpellStatus string

// Custom spell statuses.
const (
	SpellStatusDraft    SpellStatus = "draft"
	SpellStatusPending  SpellStatus = "pending"
	SpellStatusApproved SpellStatus = "approved"
	SpellStatusRetired  SpellStatus = "retired"
)

// SpellStatusNames lists the valid status values for validation.
var SpellStatusNames = []string{
	string(SpellStatusDraft),
	string(SpellStatusPending),
	string(SpellStatusApproved),
	string(SpellStatusRetired),
}

// CustomSpell is a free-form, player-authored spell definition. It shares
// vocabulary with the static spell catalog but has no relationship to it.
type CustomSpell struct {
	ID          string      `json:"id"`
	CharacterID string      `json:"character_id"`
	Name        string      `json:"name"`
	Class       string      `json:"class,omitempty"`
	Level       int         `json:"level"`
	CastingTime string      `json:"casting_time,omitempty"`
	Range       string      `json:"range,omitempty"`
	CheckType   string      `json:"check_type,omitempty"`
	SaveAbility Ability     `json:"save_ability,omitempty"`
	DamageDice  string      `json:"damage_dice,omitempty"`
	Status      SpellStatus `json:"status"`
	Description string      `json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
