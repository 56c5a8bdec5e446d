package rulebook

import "sort"

// Metamagic is one catalog entry: a casting modification with its sorcery
// point cost.
type Metamagic struct {
	Name        string
	Cost        int
	Description string
}

var metamagicCatalog = map[string]Metamagic{
	"Careful Spell":   {Name: "Careful Spell", Cost: 1, Description: "Chosen creatures automatically succeed on the spell's save."},
	"Distant Spell":   {Name: "Distant Spell", Cost: 1, Description: "Double the spell's range, or reach touch spells to 30 feet."},
	"Empowered Spell": {Name: "Empowered Spell", Cost: 1, Description: "Reroll a number of damage dice up to your charisma modifier."},
	"Extended Spell":  {Name: "Extended Spell", Cost: 1, Description: "Double the spell's duration, up to 24 hours."},
	"Heightened Spell": {
		Name: "Heightened Spell", Cost: 3,
		Description: "One target has disadvantage on its first save against the spell.",
	},
	"Quickened Spell": {Name: "Quickened Spell", Cost: 2, Description: "Cast a one-action spell as a bonus action."},
	"Subtle Spell":    {Name: "Subtle Spell", Cost: 1, Description: "Cast without somatic or verbal components."},
	"Twinned Spell":   {Name: "Twinned Spell", Cost: 0, Description: "Target a second creature; costs points equal to the spell's level."},
}

// GetMetamagic looks up a metamagic option by name.
func GetMetamagic(name string) (Metamagic, bool) {
	m, ok := metamagicCatalog[name]
	return m, ok
}

// MetamagicNames returns the catalog's entry names in lexicographic order.
func MetamagicNames() []string {
	names := make([]string, 0, len(metamagicCatalog))
	for name := range metamagicCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
