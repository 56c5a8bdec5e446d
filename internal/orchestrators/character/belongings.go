package character

import (
	"context"

	"github.com/wizarding-rpg/character-api/internal/errors"
	"github.com/wizarding-rpg/character-api/internal/repositories/characters"
	"github.com/wizarding-rpg/character-api/internal/repositories/inventory"
	"github.com/wizarding-rpg/character-api/internal/repositories/spells"
	"github.com/wizarding-rpg/character-api/internal/repositories/vault"
	"github.com/wizarding-rpg/character-api/internal/rulebook"
)

// requireOwnedCharacter resolves the character under the caller's owner
// scope. The satellite repositories have no owner column of their own;
// this check is the ownership gate for everything hanging off a
// character.
func (o *Orchestrator) requireOwnedCharacter(ctx context.Context, id, ownerID string) error {
	_, err := o.characterRepo.Get(ctx, characters.GetInput{ID: id, OwnerID: ownerID})
	return err
}

func (o *Orchestrator) AddInventoryItem(ctx context.Context, input *AddInventoryItemInput) (*AddInventoryItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	item := *input.Item
	item.ID = o.idGen.Generate()
	item.CharacterID = input.CharacterID

	out, err := o.inventoryRepo.Add(ctx, inventory.AddInput{Item: &item})
	if err != nil {
		return nil, err
	}
	return &AddInventoryItemOutput{Item: out.Item}, nil
}

func (o *Orchestrator) UpdateInventoryItem(
	ctx context.Context,
	input *UpdateInventoryItemInput,
) (*UpdateInventoryItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item cannot be nil")
	}
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	item := *input.Item
	item.CharacterID = input.CharacterID

	out, err := o.inventoryRepo.Update(ctx, inventory.UpdateInput{Item: &item})
	if err != nil {
		return nil, err
	}
	return &UpdateInventoryItemOutput{Item: out.Item}, nil
}

func (o *Orchestrator) RemoveInventoryItem(
	ctx context.Context,
	input *RemoveInventoryItemInput,
) (*RemoveInventoryItemOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	_, err := o.inventoryRepo.Remove(ctx, inventory.RemoveInput{
		CharacterID: input.CharacterID,
		ItemID:      input.ItemID,
	})
	if err != nil {
		return nil, err
	}
	return &RemoveInventoryItemOutput{}, nil
}

func (o *Orchestrator) ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	out, err := o.inventoryRepo.List(ctx, inventory.ListInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	return &ListInventoryOutput{Items: out.Items}, nil
}

func (o *Orchestrator) AddCustomSpell(ctx context.Context, input *AddCustomSpellInput) (*AddCustomSpellOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument("spell cannot be nil")
	}
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	spell := *input.Spell
	spell.ID = o.idGen.Generate()
	spell.CharacterID = input.CharacterID

	out, err := o.spellRepo.Add(ctx, spells.AddInput{Spell: &spell})
	if err != nil {
		return nil, err
	}
	return &AddCustomSpellOutput{Spell: out.Spell}, nil
}

func (o *Orchestrator) UpdateCustomSpell(
	ctx context.Context,
	input *UpdateCustomSpellInput,
) (*UpdateCustomSpellOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument("spell cannot be nil")
	}
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	spell := *input.Spell
	spell.CharacterID = input.CharacterID

	out, err := o.spellRepo.Update(ctx, spells.UpdateInput{Spell: &spell})
	if err != nil {
		return nil, err
	}
	return &UpdateCustomSpellOutput{Spell: out.Spell}, nil
}

func (o *Orchestrator) RemoveCustomSpell(
	ctx context.Context,
	input *RemoveCustomSpellInput,
) (*RemoveCustomSpellOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	_, err := o.spellRepo.Remove(ctx, spells.RemoveInput{
		CharacterID: input.CharacterID,
		SpellID:     input.SpellID,
	})
	if err != nil {
		return nil, err
	}
	return &RemoveCustomSpellOutput{}, nil
}

func (o *Orchestrator) ListCustomSpells(
	ctx context.Context,
	input *ListCustomSpellsInput,
) (*ListCustomSpellsOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	out, err := o.spellRepo.List(ctx, spells.ListInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	return &ListCustomSpellsOutput{Spells: out.Spells}, nil
}

func (o *Orchestrator) GetVault(ctx context.Context, input *GetVaultInput) (*GetVaultOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	out, err := o.vaultRepo.Get(ctx, vault.GetInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	return &GetVaultOutput{
		Knuts:     out.Knuts,
		Breakdown: rulebook.Breakdown(int(out.Knuts)),
	}, nil
}

func (o *Orchestrator) DepositToVault(ctx context.Context, input *DepositToVaultInput) (*DepositToVaultOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	total := rulebook.TotalKnuts(input.Galleons, input.Sickles, input.Knuts)
	out, err := o.vaultRepo.Deposit(ctx, vault.DepositInput{
		CharacterID: input.CharacterID,
		Knuts:       int64(total),
	})
	if err != nil {
		return nil, err
	}
	return &DepositToVaultOutput{
		Knuts:     out.Knuts,
		Breakdown: rulebook.Breakdown(int(out.Knuts)),
	}, nil
}

func (o *Orchestrator) SpendFromVault(ctx context.Context, input *SpendFromVaultInput) (*SpendFromVaultOutput, error) {
	if err := o.requireOwnedCharacter(ctx, input.CharacterID, input.OwnerID); err != nil {
		return nil, err
	}

	total := rulebook.TotalKnuts(input.Galleons, input.Sickles, input.Knuts)
	out, err := o.vaultRepo.Spend(ctx, vault.SpendInput{
		CharacterID: input.CharacterID,
		Knuts:       int64(total),
	})
	if err != nil {
		return nil, err
	}
	return &SpendFromVaultOutput{
		Knuts:     out.Knuts,
		Breakdown: rulebook.Breakdown(int(out.Knuts)),
	}, nil
}
