package entities

// SpellSlotTiers is the number of spell slot tiers a character can hold.
const SpellSlotTiers = 9

// Pool tracks a spendable resource with a current and maximum value.
type Pool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// CharacterResources is the 1:1 satellite record tracking a character's
// expendable resources. It is created lazily on first access and upserted
// by (character id, owner id).
type CharacterResources struct {
	CharacterID string `json:"character_id"`
	OwnerID     string `json:"owner_id"`

	Inspiration      bool `json:"inspiration"`
	SorceryPoints    Pool `json:"sorcery_points"`
	CorruptionPoints int  `json:"corruption_points"`

	// SpellSlots[i] is the pool for slot level i+1.
	SpellSlots [SpellSlotTiers]Pool `json:"spell_slots"`
}

// DefaultResources materializes the all-zero satellite for a character
// whose resource row does not exist yet. The zero-fill policy for missing
// rows lives here, not in the fetch path.
func DefaultResources(characterID, ownerID string) *CharacterResources {
	return &CharacterResources{
		CharacterID: characterID,
		OwnerID:     ownerID,
	}
}

// Slot returns the pool for a slot level in [1, 9]; the zero pool
// otherwise.
func (r *CharacterResources) Slot(level int) Pool {
	if level < 1 || level > SpellSlotTiers {
		return Pool{}
	}
	return r.SpellSlots[level-1]
}

// SetSlot stores the pool for a slot level in [1, 9].
func (r *CharacterResources) SetSlot(level int, p Pool) {
	if level < 1 || level > SpellSlotTiers {
		return
	}
	r.SpellSlots[level-1] = p
}

// Clamp enforces current <= max on every pool. Manual edits may push
// currents past their maximums; the invariant is restored before writes.
func (r *CharacterResources) Clamp() {
	if r.SorceryPoints.Current > r.SorceryPoints.Max {
		r.SorceryPoints.Current = r.SorceryPoints.Max
	}
	for i := range r.SpellSlots {
		if r.SpellSlots[i].Current > r.SpellSlots[i].Max {
			r.SpellSlots[i].Current = r.SpellSlots[i].Max
		}
	}
}
