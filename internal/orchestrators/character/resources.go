package character

import (
	"context"
	"log/slog"

	"github.com/wizarding-rpg/character-api/internal/entities"
	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
	"github.com/wizarding-rpg/character-api/internal/repositories/resources"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// loadResourcesScoped resolves the character under the caller's owner
// scope and returns its satellite row, materializing the default when none
// exists.
func (o *Orchestrator) loadResourcesScoped(
	ctx context.Context,
	id, ownerID string,
) (*entities.CharacterResources, error) {
	getOut, err := o.characterRepo.Get(ctx, characters.GetInput{ID: id, OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return o.loadResources(ctx, getOut.Character)
}

func (o *Orchestrator) saveResources(
	ctx context.Context,
	res *entities.CharacterResources,
) (*entities.CharacterResources, error) {
	out, err := o.resourceRepo.Upsert(ctx, resources.UpsertInput{Resources: res})
	if err != nil {
		return nil, err
	}
	return out.Resources, nil
}

func (o *Orchestrator) SpendSpellSlot(ctx context.Context, input *SpendSpellSlotInput) (*SpendSpellSlotOutput, error) {
	if input.SlotLevel < 1 || input.SlotLevel > entities.SpellSlotTiers {
		return nil, errors.InvalidArgumentf("slot level must be between 1 and %d", entities.SpellSlotTiers)
	}

	res, err := o.loadResourcesScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	slot := res.Slot(input.SlotLevel)
	if slot.Current < 1 {
		return nil, errors.FailedPreconditionf("no level %d spell slots remaining", input.SlotLevel)
	}
	slot.Current--
	res.SetSlot(input.SlotLevel, slot)

	saved, err := o.saveResources(ctx, res)
	if err != nil {
		return nil, err
	}
	return &SpendSpellSlotOutput{Resources: saved}, nil
}

func (o *Orchestrator) SpendSorceryPoints(
	ctx context.Context,
	input *SpendSorceryPointsInput,
) (*SpendSorceryPointsOutput, error) {
	if input.Amount < 1 {
		return nil, errors.InvalidArgument("amount must be positive")
	}

	res, err := o.loadResourcesScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if res.SorceryPoints.Current < input.Amount {
		return nil, errors.FailedPreconditionf(
			"insufficient sorcery points: have %d, need %d",
			res.SorceryPoints.Current, input.Amount)
	}
	res.SorceryPoints.Current -= input.Amount

	saved, err := o.saveResources(ctx, res)
	if err != nil {
		return nil, err
	}
	return &SpendSorceryPointsOutput{Resources: saved}, nil
}

// ConvertSlotToSorceryPoints burns a spell slot for sorcery points equal
// to the slot's level, capped at the sorcery point maximum.
func (o *Orchestrator) ConvertSlotToSorceryPoints(
	ctx context.Context,
	input *ConvertSlotToSorceryPointsInput,
) (*ConvertSlotToSorceryPointsOutput, error) {
	if input.SlotLevel < 1 || input.SlotLevel > entities.SpellSlotTiers {
		return nil, errors.InvalidArgumentf("slot level must be between 1 and %d", entities.SpellSlotTiers)
	}

	res, err := o.loadResourcesScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	slot := res.Slot(input.SlotLevel)
	if slot.Current < 1 {
		return nil, errors.FailedPreconditionf("no level %d spell slots remaining", input.SlotLevel)
	}
	slot.Current--
	res.SetSlot(input.SlotLevel, slot)

	before := res.SorceryPoints.Current
	res.SorceryPoints.Current += input.SlotLevel
	if res.SorceryPoints.Current > res.SorceryPoints.Max {
		res.SorceryPoints.Current = res.SorceryPoints.Max
	}
	gained := res.SorceryPoints.Current - before

	saved, err := o.saveResources(ctx, res)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "converted spell slot to sorcery points",
		"character_id", input.ID,
		"slot_level", input.SlotLevel,
		"points_gained", gained)

	return &ConvertSlotToSorceryPointsOutput{Resources: saved, PointsGained: gained}, nil
}

// UseMetamagic spends a metamagic option's sorcery point cost.
func (o *Orchestrator) UseMetamagic(ctx context.Context, input *UseMetamagicInput) (*UseMetamagicOutput, error) {
	meta, ok := rulebook.GetMetamagic(input.Metamagic)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown metamagic: %s", input.Metamagic)
	}

	res, err := o.loadResourcesScoped(ctx, input.ID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if res.SorceryPoints.Current < meta.Cost {
		return nil, errors.FailedPreconditionf(
			"insufficient sorcery points for %s: have %d, need %d",
			meta.Name, res.SorceryPoints.Current, meta.Cost)
	}
	res.SorceryPoints.Current -= meta.Cost

	saved, err := o.saveResources(ctx, res)
	if err != nil {
		return nil, err
	}
	return &UseMetamagicOutput{Resources: saved, Metamagic: meta}, nil
}
