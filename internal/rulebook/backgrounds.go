package rulebook

import "github.com/wizarding-rpg/character-api/internal/entities"

// StartingEquipment is one inventory row a background grants at creation.
type StartingEquipment struct {
	Name     string
	Category entities.ItemCategory
	Quantity int
}

// Background is one static background entry.
type Background struct {
	Name        string
	Description string
	Skills      []string
	Equipment   []StartingEquipment
}

var backgroundCatalog = map[string]Background{
	"Bookworm": {
		Name:        "Bookworm",
		Description: "You grew up between library shelves.",
		Skills:      []string{"History of Magic", "Investigation"},
		Equipment: []StartingEquipment{
			{Name: "Well-worn spellbook", Category: entities.ItemCategoryBook, Quantity: 1},
			{Name: "Ink and quill set", Category: entities.ItemCategoryGear, Quantity: 1},
		},
	},
	"Potioneer's Apprentice": {
		Name:        "Potioneer's Apprentice",
		Description: "You spent your childhood stirring cauldrons.",
		Skills:      []string{"Potion-Making", "Nature"},
		Equipment: []StartingEquipment{
			{Name: "Copper cauldron", Category: entities.ItemCategoryGear, Quantity: 1},
			{Name: "Vial of common ingredients", Category: entities.ItemCategoryPotion, Quantity: 3},
		},
	},
	"Quidditch Fanatic": {
		Name:        "Quidditch Fanatic",
		Description: "You know every team, every play, every score.",
		Skills:      []string{"Acrobatics", "Athletics"},
		Equipment: []StartingEquipment{
			{Name: "Secondhand broomstick", Category: entities.ItemCategoryGear, Quantity: 1},
			{Name: "Team scarf", Category: entities.ItemCategoryClothing, Quantity: 1},
		},
	},
	"Muggle-Raised": {
		Name:        "Muggle-Raised",
		Description: "The magical world is still new and astonishing to you.",
		Skills:      []string{"Muggle Studies", "Insight"},
		Equipment: []StartingEquipment{
			{Name: "Muggle pocket torch", Category: entities.ItemCategoryOther, Quantity: 1},
		},
	},
	"Pureblood Heir": {
		Name:        "Pureblood Heir",
		Description: "Your family name opens doors and raises eyebrows.",
		Skills:      []string{"Persuasion", "History of Magic"},
		Equipment: []StartingEquipment{
			{Name: "Signet ring", Category: entities.ItemCategoryArtifact, Quantity: 1},
			{Name: "Tailored robes", Category: entities.ItemCategoryClothing, Quantity: 1},
		},
	},
	"Shopkeep's Child": {
		Name:        "Shopkeep's Child",
		Description: "You grew up behind a counter on a busy wizarding street.",
		Skills:      []string{"Persuasion", "Sleight of Hand"},
		Equipment: []StartingEquipment{
			{Name: "Ledger book", Category: entities.ItemCategoryBook, Quantity: 1},
			{Name: "Shop apron", Category: entities.ItemCategoryClothing, Quantity: 1},
		},
	},
}

// GetBackground looks up a background by name.
func GetBackground(name string) (Background, bool) {
	b, ok := backgroundCatalog[name]
	return b, ok
}
