package rulebook

// Heritage is one innate-heritage entry.
type Heritage struct {
	Name        string
	Description string
	Skills      []string
	Choices     []string
}

var heritageCatalog = map[string]Heritage{
	"Part-Veela": {
		Name:        "Part-Veela",
		Description: "Veela blood runs in your family.",
		Skills:      []string{"Persuasion"},
		Choices:     []string{"Allure", "Stormtemper"},
	},
	"Part-Goblin": {
		Name:        "Part-Goblin",
		Description: "Goblin ancestry sharpened your eye for craft and coin.",
		Skills:      []string{"Insight", "Investigation"},
	},
	"Werewolf": {
		Name:        "Werewolf",
		Description: "You carry the curse of the full moon.",
		Skills:      []string{"Perception", "Survival"},
		Choices:     []string{"Restrained Change", "Feral Senses"},
	},
	"Metamorphmagus": {
		Name:        "Metamorphmagus",
		Description: "You can change your appearance at will.",
		Skills:      []string{"Deception"},
	},
	"Parselmouth": {
		Name:        "Parselmouth",
		Description: "You speak the language of serpents.",
		Skills:      []string{"Animal Handling"},
	},
	"Seer": {
		Name:        "Seer",
		Description: "True prophecy surfaces in your dreams.",
		Skills:      []string{"Insight"},
		Choices:     []string{"Waking Visions", "Dream Omens"},
	},
	"Giant's Blood": {
		Name:        "Giant's Blood",
		Description: "A giant stands somewhere in your family tree.",
		Skills:      []string{"Athletics", "Intimidation"},
	},
}

// GetHeritage looks up a heritage by name.
func GetHeritage(name string) (Heritage, bool) {
	h, ok := heritageCatalog[name]
	return h, ok
}
