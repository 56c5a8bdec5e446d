// Package features flattens a character's house, subclass, background, and
// feat selections into normalized display lists. Aggregation is a pure
// function of the character record and the static rulebook tables.
package features

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// Feature is one named entry in a category. Level is zero when the feature
// is not tied to a particular level.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level,omitempty"`
}

// CharacterFeatures groups a character's features into the four fixed
// display categories. Entries within each category are sorted by name,
// then level, so output is deterministic.
type CharacterFeatures struct {
	House      []Feature `json:"house"`
	Subclass   []Feature `json:"subclass"`
	Background []Feature `json:"background"`
	Feats      []Feature `json:"feats"`
}

// Aggregate builds the normalized feature lists for a character.
func Aggregate(c *entities.Character) *CharacterFeatures {
	out := &CharacterFeatures{
		House:      houseFeatures(c),
		Subclass:   subclassFeatures(c),
		Background: backgroundFeatures(c),
		Feats:      featFeatures(c),
	}
	sortFeatures(out.House)
	sortFeatures(out.Subclass)
	sortFeatures(out.Background)
	sortFeatures(out.Feats)
	return out
}

func houseFeatures(c *entities.Character) []Feature {
	if c.House == "" {
		return nil
	}

	var features []Feature
	if details, ok := rulebook.GetHouse(c.House); ok {
		features = append(features,
			Feature{
				Name:        details.DisplayName + " Member",
				Description: fmt.Sprintf("Member of %s house. Trained skills: %s.", details.DisplayName, strings.Join(details.Skills, ", ")),
			},
			Feature{
				Name:        details.DisplayName + " Training",
				Description: details.AbilityTraining,
			},
		)
	} else {
		features = append(features, Feature{Name: string(c.House) + " Member"})
	}

	for _, choice := range c.HouseChoices {
		features = append(features, Feature{Name: choice})
	}
	return features
}

func subclassFeatures(c *entities.Character) []Feature {
	if c.Subclass == "" {
		return nil
	}

	var features []Feature
	subclass, known := rulebook.GetSubclass(c.Subclass)
	if known {
		features = append(features, Feature{Name: subclass.Name, Description: subclass.Description})
	} else {
		features = append(features, Feature{Name: c.Subclass})
	}

	for _, name := range c.SubclassFeatures {
		f := Feature{Name: name}
		if known {
			for _, node := range subclass.Features {
				if node.Name == name {
					f.Description = node.Description
					f.Level = node.Level
					break
				}
			}
		}
		features = append(features, f)
	}

	for level, choice := range c.SubclassChoices {
		if choice.Name == "" {
			continue
		}
		features = append(features, Feature{Name: choice.Name, Level: level})
	}
	return features
}

func backgroundFeatures(c *entities.Character) []Feature {
	var features []Feature

	if c.Background != "" {
		if bg, ok := rulebook.GetBackground(c.Background); ok {
			features = append(features, Feature{Name: bg.Name, Description: bg.Description})
			if len(bg.Skills) > 0 {
				features = append(features, Feature{
					Name:        bg.Name + " Skills",
					Description: strings.Join(bg.Skills, ", "),
				})
			}
		} else {
			features = append(features, Feature{Name: c.Background})
		}
	}

	if c.InnateHeritage != "" {
		if heritage, ok := rulebook.GetHeritage(c.InnateHeritage); ok {
			features = append(features, Feature{Name: heritage.Name, Description: heritage.Description})
			if len(heritage.Skills) > 0 {
				features = append(features, Feature{
					Name:        heritage.Name + " Skills",
					Description: strings.Join(heritage.Skills, ", "),
				})
			}
		} else {
			features = append(features, Feature{Name: c.InnateHeritage})
		}
	}

	for _, choice := range c.HeritageChoices {
		features = append(features, Feature{Name: choice})
	}
	return features
}

// levelSuffix matches free-form feat strings like "Tough (Level 4)".
var levelSuffix = regexp.MustCompile(`^(.*?)\s*\(Level\s+(\d+)\)$`)

type featKey struct {
	name  string
	level int
}

func featFeatures(c *entities.Character) []Feature {
	seen := make(map[featKey]bool)
	var features []Feature

	add := func(name string, level int) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := featKey{name: name, level: level}
		if seen[key] {
			return
		}
		seen[key] = true
		features = append(features, Feature{Name: name, Level: level})
	}

	for level, selection := range c.ASIChoices {
		if selection.Type == entities.ASIChoiceFeat {
			add(selection.Feat, level)
		}
	}
	for _, name := range c.StandardFeats {
		add(name, 0)
	}
	for _, raw := range c.AllFeats {
		name, level := parseFeatString(raw)
		add(name, level)
	}
	return features
}

// parseFeatString splits a free-form feat string into its name and an
// optional level suffix.
func parseFeatString(raw string) (string, int) {
	if m := levelSuffix.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
		level, err := strconv.Atoi(m[2])
		if err == nil {
			return m[1], level
		}
	}
	return strings.TrimSpace(raw), 0
}

func sortFeatures(features []Feature) {
	sort.Slice(features, func(i, j int) bool {
		if features[i].Name != features[j].Name {
			return features[i].Name < features[j].Name
		}
		return features[i].Level < features[j].Level
	})
}
