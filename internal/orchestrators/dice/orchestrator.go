// Package dice implements the dice orchestrator backing the dice-roller
// panel and level-up hit-point rolls.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/wizarding-rpg/character-api/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/pkg/idgen"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// Regex for dice notation like "2d6", "1d20+3", "4d8-1"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// Service defines the interface for dice operations.
type Service interface {
	// Roll rolls dice from notation like "2d6" or "1d20+3".
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// RollHitDie rolls a single hit die for a casting style.
	RollHitDie(ctx context.Context, input *RollHitDieInput) (*RollHitDieOutput, error)
}

// RollInput defines the input for a notation roll.
type RollInput struct {
	Notation    string
	Description string
}

// RollOutput defines the output for a notation roll.
type RollOutput struct {
	RollID      string
	Notation    string
	Dice        []int
	Modifier    int
	Total       int
	Description string
}

// RollHitDieInput defines the input for a hit die roll.
type RollHitDieInput struct {
	CastingStyle entities.CastingStyle
}

// RollHitDieOutput defines the output for a hit die roll.
type RollHitDieOutput struct {
	RollID  string
	DieSize int
	Result  int
}

// Config holds the dependencies for the dice orchestrator.
type Config struct {
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type orchestrator struct {
	idGen idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &orchestrator{idGen: cfg.IDGenerator}, nil
}

// parseNotation parses notation like "2d6+3" into count, size, modifier.
func parseNotation(notation string) (count, size, modifier int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}
	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	return count, size, modifier, nil
}

// rollWithToolkit rolls count dice of the given size and returns the
// individual values and their sum.
func rollWithToolkit(count, size int) ([]int, int, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()
	description := roll.GetDescription()

	// Individual values are only exposed through the description, which
	// looks like "+2d6[3,4]=7".
	var individual []int
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				individual = append(individual, d)
			}
		}
	}
	return individual, total, nil
}

func (o *orchestrator) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, modifier, err := parseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	individual, total, err := rollWithToolkit(count, size)
	if err != nil {
		return nil, err
	}

	out := &RollOutput{
		RollID:      o.idGen.Generate(),
		Notation:    input.Notation,
		Dice:        individual,
		Modifier:    modifier,
		Total:       total + modifier,
		Description: input.Description,
	}

	slog.DebugContext(ctx, "dice rolled",
		"notation", input.Notation,
		"total", out.Total,
		"roll_id", out.RollID)

	return out, nil
}

func (o *orchestrator) RollHitDie(ctx context.Context, input *RollHitDieInput) (*RollHitDieOutput, error) {
	size := rulebook.HitDieSize(input.CastingStyle)

	_, total, err := rollWithToolkit(1, size)
	if err != nil {
		return nil, err
	}

	out := &RollHitDieOutput{
		RollID:  o.idGen.Generate(),
		DieSize: size,
		Result:  total,
	}

	slog.DebugContext(ctx, "hit die rolled",
		"casting_style", string(input.CastingStyle),
		"die_size", size,
		"result", total)

	return out, nil
}

// ToolkitRoller adapts rpg-toolkit dice to the rulebook's Roller
// interface for rolled hit-point gains.
type ToolkitRoller struct{}

var _ rulebook.Roller = (*ToolkitRoller)(nil)

// Roll rolls count dice of the given size and returns the sum.
func (ToolkitRoller) Roll(count, size int) (int, error) {
	_, total, err := rollWithToolkit(count, size)
	return total, err
}
