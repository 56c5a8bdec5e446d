package rulebook

import "sort"

// SubclassFeature is one level-gated node in a subclass feature tree. A
// node may carry a set of mutually exclusive named choices; a character's
// recorded choice for that level must name one of them.
type SubclassFeature struct {
	Level       int
	Name        string
	Description string
	Choices     []string
}

// Subclass is one catalog entry: a school of study with its feature tree.
type Subclass struct {
	Name        string
	Description string
	Features    []SubclassFeature
}

// FeatureAt returns the feature node gained at a level, if any.
func (s *Subclass) FeatureAt(level int) (SubclassFeature, bool) {
	for _, f := range s.Features {
		if f.Level == level {
			return f, true
		}
	}
	return SubclassFeature{}, false
}

// HasChoice reports whether choiceName is a valid choice for the feature
// node at the given level.
func (s *Subclass) HasChoice(level int, choiceName string) bool {
	f, ok := s.FeatureAt(level)
	if !ok {
		return false
	}
	for _, c := range f.Choices {
		if c == choiceName {
			return true
		}
	}
	return false
}

// castingChoices is the shared level-6 casting specialization offered by
// the spell-focused schools.
var castingChoices = []string{"Rapid Casting", "Precise Casting", "Potent Casting"}

var subclassCatalog = map[string]*Subclass{
	"Charms": {
		Name:        "Charms",
		Description: "Mastery of enchantments that add properties to targets.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Charms Savant", Description: "Halve the time and cost to learn charm spells."},
			{Level: 6, Name: "Signature Casting", Description: "Choose a casting specialization for your charms.", Choices: castingChoices},
			{Level: 10, Name: "Double Charm", Description: "Twin a charm of 2nd level or lower without spending sorcery points."},
			{Level: 14, Name: "Master of Charms", Description: "Charms you cast resist being dispelled."},
		},
	},
	"Transfiguration": {
		Name:        "Transfiguration",
		Description: "The art of altering the form of objects and creatures.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Transfiguration Savant", Description: "Halve the time and cost to learn transfiguration spells."},
			{Level: 6, Name: "Signature Casting", Description: "Choose a casting specialization for your transfigurations.", Choices: castingChoices},
			{Level: 10, Name: "Partial Transformation", Description: "Transform part of a target while leaving the rest unchanged."},
			{Level: 14, Name: "Animagus Insight", Description: "Begin the animagus process with a tutor's guidance."},
		},
	},
	"Defense Against the Dark Arts": {
		Name:        "Defense Against the Dark Arts",
		Description: "Protective magic and the study of dark creatures.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Defensive Duelist", Description: "Cast the shield charm as a reaction once per rest for free."},
			{Level: 6, Name: "Counter-Curse Specialist", Description: "Choose your counter-casting focus.", Choices: []string{"Shield Mastery", "Curse Deflection", "Swift Riposte"}},
			{Level: 10, Name: "Dark Creature Lore", Description: "Advantage on checks to recall dark creature weaknesses."},
			{Level: 14, Name: "Unbreakable Ward", Description: "Your wards persist even while you are unconscious."},
		},
	},
	"Dark Arts": {
		Name:        "Dark Arts",
		Description: "The forbidden school: jinxes, hexes, and curses.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Forbidden Knowledge", Description: "Learn one curse from the restricted section."},
			{Level: 6, Name: "Creeping Corruption", Description: "Choose how your dark magic manifests.", Choices: []string{"Withering Hex", "Binding Curse", "Spiteful Jinx"}},
			{Level: 10, Name: "Curse Channeler", Description: "Spend corruption points to empower a curse."},
			{Level: 14, Name: "Master of Malice", Description: "Your curses are harder to break the longer they hold."},
		},
	},
	"Healing": {
		Name:        "Healing",
		Description: "Restorative magic and magical medicine.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Healer's Touch", Description: "Your healing spells restore extra hit points equal to your proficiency bonus."},
			{Level: 6, Name: "Triage", Description: "Stabilize a dying creature as a bonus action."},
			{Level: 10, Name: "Restorative Expertise", Description: "Cure one disease or condition when you cast a healing spell of 2nd level or higher."},
			{Level: 14, Name: "Miracle Worker", Description: "Once per day, return a creature to half its maximum hit points."},
		},
	},
	"Divinations": {
		Name:        "Divinations",
		Description: "Scrying, prophecy, and glimpses of what may come.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Portent", Description: "Roll two d20s after a long rest; replace any roll you can see with one."},
			{Level: 6, Name: "Expanded Sight", Description: "Choose the focus of your sight.", Choices: []string{"Cartomancy", "Crystal Gazing", "Astrology"}},
			{Level: 10, Name: "The Third Eye", Description: "See invisible creatures within 10 feet."},
			{Level: 14, Name: "Greater Portent", Description: "Roll three portent dice instead of two."},
		},
	},
	"Herbology": {
		Name:        "Herbology",
		Description: "Magical plants, their care, and their uses.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Green Thumb", Description: "Identify any magical plant and its properties."},
			{Level: 6, Name: "Poultice Brewer", Description: "Craft healing poultices during a rest."},
			{Level: 10, Name: "Grasping Vines", Description: "Conjure vines that restrain a target."},
			{Level: 14, Name: "One With the Green", Description: "Plants will not hinder you, and some will fight for you."},
		},
	},
	"Potions": {
		Name:        "Potions",
		Description: "The subtle science and exact art of potion-making.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Potioneer's Kit", Description: "Brew common potions at half cost."},
			{Level: 6, Name: "Signature Brew", Description: "Choose a signature potion you can brew from memory.", Choices: []string{"Draught of Vigor", "Essence of Clarity", "Tincture of Shadows"}},
			{Level: 10, Name: "Rapid Brewing", Description: "Halve the brewing time of any potion."},
			{Level: 14, Name: "Master Brewer", Description: "Your potions have their effects doubled in duration."},
		},
	},
	"Magizoology": {
		Name:        "Magizoology",
		Description: "The study and care of magical creatures.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Creature Empathy", Description: "Communicate simple ideas to magical beasts."},
			{Level: 6, Name: "Bonded Companion", Description: "Choose a companion creature.", Choices: []string{"Bowtruckle", "Kneazle", "Niffler", "Owl"}},
			{Level: 10, Name: "Pack Tactics", Description: "You and your companion flank together."},
			{Level: 14, Name: "Apex Handler", Description: "Even dangerous beasts hesitate before attacking you."},
		},
	},
	"Astronomy": {
		Name:        "Astronomy",
		Description: "Celestial observation and star-guided magic.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Star Chart", Description: "After observing the night sky, gain guidance on one check the next day."},
			{Level: 6, Name: "Constellation Form", Description: "Choose a guiding constellation.", Choices: []string{"The Archer", "The Chalice", "The Dragon"}},
			{Level: 10, Name: "Cosmic Insight", Description: "Your spells ignore dim light and darkness penalties."},
			{Level: 14, Name: "Starfall", Description: "Call down radiant motes once per long rest."},
		},
	},
	"Ancient Runes": {
		Name:        "Ancient Runes",
		Description: "Written magic: runic scripts and their power.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Runic Literacy", Description: "Read any runic script without a spell."},
			{Level: 6, Name: "Inscribed Ward", Description: "Inscribe a protective rune on an object or doorway."},
			{Level: 10, Name: "Rune of Power", Description: "Empower a spell by tracing its rune, raising its effective slot by one."},
			{Level: 14, Name: "Living Glyph", Description: "Carry one rune active on your skin at all times."},
		},
	},
	"Arithmancy": {
		Name:        "Arithmancy",
		Description: "Magical number theory and predictive calculation.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Calculated Casting", Description: "Once per rest, treat a damage die as having rolled its average."},
			{Level: 6, Name: "Probability Lattice", Description: "Choose your preferred calculation.", Choices: []string{"Odds of Ruin", "Favorable Figures", "Perfect Sums"}},
			{Level: 10, Name: "Recursive Insight", Description: "Recast a failed utility spell without spending a slot, once per day."},
			{Level: 14, Name: "Grand Equation", Description: "Your spell save DC increases by one."},
		},
	},
	"History of Magic": {
		Name:        "History of Magic",
		Description: "Scholarship of the magical past and its lessons.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Deep Archives", Description: "Recall historical precedent for nearly any magical event."},
			{Level: 6, Name: "Lessons of the Fallen", Description: "Advantage on saves against effects you have seen before."},
			{Level: 10, Name: "Forgotten Incantation", Description: "Learn one spell from a lost tradition."},
			{Level: 14, Name: "Voice of Ages", Description: "Summon the echo of a historical witch or wizard for counsel."},
		},
	},
	"Muggle Studies": {
		Name:        "Muggle Studies",
		Description: "Understanding the non-magical world and blending in.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Unremarkable", Description: "Muggles rationalize away your minor magic."},
			{Level: 6, Name: "Improvised Tools", Description: "Use muggle artifacts as spell foci."},
			{Level: 10, Name: "Technomancy", Description: "Magic no longer disrupts electronics near you."},
			{Level: 14, Name: "Two Worlds", Description: "Once per day, duplicate the effect of a muggle device with magic."},
		},
	},
	"Flying": {
		Name:        "Flying",
		Description: "Broomcraft, aerial maneuvering, and airborne casting.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Natural Flier", Description: "Mount or dismount a broom as a free action."},
			{Level: 6, Name: "Aerial Maneuvers", Description: "Choose a signature maneuver.", Choices: []string{"Barrel Roll", "Dive Feint", "Loop Climb"}},
			{Level: 10, Name: "Cast on the Wing", Description: "No penalty to concentration while flying."},
			{Level: 14, Name: "Storm Rider", Description: "Ignore weather penalties while airborne."},
		},
	},
	"Quidditch": {
		Name:        "Quidditch",
		Description: "Competitive flying: positions, plays, and grit.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Team Position", Description: "Choose your position.", Choices: []string{"Chaser", "Beater", "Keeper", "Seeker"}},
			{Level: 6, Name: "Signature Play", Description: "Pull off a trained play once per match or encounter."},
			{Level: 10, Name: "Iron Grip", Description: "You cannot be knocked from your broom while conscious."},
			{Level: 14, Name: "Star of the Pitch", Description: "Allies within sight gain morale when you succeed."},
		},
	},
	"Ghoul Studies": {
		Name:        "Ghoul Studies",
		Description: "Spirits, poltergeists, and the restless dead.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Spirit Sight", Description: "See and speak with ghosts at will."},
			{Level: 6, Name: "Calming Presence", Description: "Pacify a hostile spirit with a successful check."},
			{Level: 10, Name: "Ectoplasmic Grasp", Description: "Your spells affect incorporeal creatures normally."},
			{Level: 14, Name: "Beyond the Veil", Description: "Once per day, ask a question of the recently departed."},
		},
	},
	"Alchemy": {
		Name:        "Alchemy",
		Description: "Transmutation of substance and the pursuit of the Stone.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Base Transmutation", Description: "Transmute small quantities of mundane materials."},
			{Level: 6, Name: "Alchemical Focus", Description: "Choose your great work.", Choices: []string{"Panacea", "Aurum", "Azoth"}},
			{Level: 10, Name: "Philosopher's Insight", Description: "Identify any substance by touch."},
			{Level: 14, Name: "Magnum Opus", Description: "Begin brewing a single drop of the elixir of life."},
		},
	},
	"Curse-Breaking": {
		Name:        "Curse-Breaking",
		Description: "Ward analysis and the safe unraveling of hostile magic.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Trap Sense", Description: "Detect cursed objects within 10 feet."},
			{Level: 6, Name: "Methodical Unraveling", Description: "Choose your breaking discipline.", Choices: []string{"Ward Splitting", "Hex Grounding", "Seal Inversion"}},
			{Level: 10, Name: "Tomb Delver", Description: "Advantage on saves against ancient wards."},
			{Level: 14, Name: "Master Breaker", Description: "Dispel as if using a slot two levels higher."},
		},
	},
	"Dueling": {
		Name:        "Dueling",
		Description: "Formal combat casting: speed, form, and nerve.",
		Features: []SubclassFeature{
			{Level: 1, Name: "Duelist's Stance", Description: "Gain a bonus to initiative equal to your proficiency bonus."},
			{Level: 6, Name: "Signature Casting", Description: "Choose a casting specialization for your duels.", Choices: castingChoices},
			{Level: 10, Name: "Riposte Hex", Description: "When an opponent's spell misses you, cast a cantrip as a reaction."},
			{Level: 14, Name: "Perfect Form", Description: "Once per duel, treat a spell attack roll as a 20."},
		},
	},
}

// GetSubclass looks up a catalog entry by name.
func GetSubclass(name string) (*Subclass, bool) {
	s, ok := subclassCatalog[name]
	return s, ok
}

// SubclassNames returns the catalog's entry names in lexicographic order.
func SubclassNames() []string {
	names := make([]string, 0, len(subclassCatalog))
	for name := range subclassCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
