package rulebook

import "github.com/wizarding-rpg/character-api/internal/entities"

// HouseDetails is the static record for one school house.
type HouseDetails struct {
	House           entities.House
	DisplayName     string
	AbilityTraining string
	Skills          []string
}

var houseCatalog = map[entities.House]HouseDetails{
	entities.HouseGryffindor: {
		House:           entities.HouseGryffindor,
		DisplayName:     "Gryffindor",
		AbilityTraining: "Courage under pressure: advantage on saves against being frightened.",
		Skills:          []string{"Athletics", "Intimidation"},
	},
	entities.HouseHufflepuff: {
		House:           entities.HouseHufflepuff,
		DisplayName:     "Hufflepuff",
		AbilityTraining: "Steadfast loyalty: helping an ally grants them a small bonus to their next check.",
		Skills:          []string{"Persuasion", "Survival"},
	},
	entities.HouseRavenclaw: {
		House:           entities.HouseRavenclaw,
		DisplayName:     "Ravenclaw",
		AbilityTraining: "Keen study: add half proficiency to intelligence checks you are not proficient in.",
		Skills:          []string{"Arcana", "Investigation"},
	},
	entities.HouseSlytherin: {
		House:           entities.HouseSlytherin,
		DisplayName:     "Slytherin",
		AbilityTraining: "Cunning ambition: once per rest, reroll a failed charisma check.",
		Skills:          []string{"Deception", "Stealth"},
	},
}

// GetHouse looks up the static record for a house.
func GetHouse(h entities.House) (HouseDetails, bool) {
	details, ok := houseCatalog[h]
	return details, ok
}
